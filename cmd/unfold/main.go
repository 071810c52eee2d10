// Command unfold shows markdown as expandable text blocks in the terminal.
//
// Usage:
//
//	unfold [flags]
//
// Flags:
//
//	-doc string         Path to a document file (JSON)
//	-glob string        Glob pattern for markdown files, e.g. docs/**/*.md
//	-root string        Directory the glob pattern is matched against (default ".")
//	-max-lines int      Lines shown while collapsed (overrides every entry)
//	-duration duration  Length of the expand/collapse animation, 0 for instant (overrides every entry)
//	-hint string        Label shown after "… " in collapsed text (overrides every entry)
//	-east-asian         Treat ambiguous-width characters as wide
//	-debug-log string   Write debug logs to this file
//	-init string        Write a sample document to this path and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/unfold"
	bt "github.com/fwojciec/unfold/bubbletea"
	unfoldjson "github.com/fwojciec/unfold/json"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "unfold: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse flags.
	var (
		docPath   = flag.String("doc", "", "Path to a document file (JSON)")
		pattern   = flag.String("glob", "", "Glob pattern for markdown files, e.g. docs/**/*.md")
		root      = flag.String("root", ".", "Directory the glob pattern is matched against")
		maxLines  = flag.Int("max-lines", 0, "Lines shown while collapsed (overrides every entry)")
		duration  = flag.Duration("duration", 0, "Length of the expand/collapse animation, 0 for instant (overrides every entry)")
		hint      = flag.String("hint", "", `Label shown after "… " in collapsed text (overrides every entry)`)
		eastAsian = flag.Bool("east-asian", false, "Treat ambiguous-width characters as wide")
		debugLog  = flag.String("debug-log", "", "Write debug logs to this file")
		initPath  = flag.String("init", "", "Write a sample document to this path and exit")
	)
	flag.Parse()

	if *initPath != "" {
		if err := unfoldjson.Save(*initPath, sampleDocument()); err != nil {
			return fmt.Errorf("write sample document: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Sample document written to %s\n", *initPath)
		return nil
	}

	if *debugLog != "" {
		f, err := tea.LogToFile(*debugLog, "unfold")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	doc, loadErrs, err := loadDocument(*docPath, *root, *pattern)
	if err != nil {
		return err
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	doc = applyOverrides(doc, set, unfold.Settings{
		MaxLines:   *maxLines,
		Duration:   *duration,
		HintSuffix: *hint,
	})
	log.Printf("loaded %d entries (%d errors)", len(doc.Entries), len(loadErrs))

	config := bt.Config{
		EastAsian:  *eastAsian,
		LoadErrors: loadErrs,
	}
	if err := bt.Run(ctx, bt.New(doc, unfold.DefaultTheme(), config)); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}
