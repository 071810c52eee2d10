package uniseg

// maxCacheEntries bounds a Cache. A widget typically lays out two texts per
// width: the canonical text and its collapsed rendering.
const maxCacheEntries = 16

// Cache memoizes layouts by text. All entries are dropped when the options
// change, which in practice means the host was resized.
type Cache struct {
	entries map[string]*Layout
	opts    Options
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Layout)}
}

// Layout returns the layout of text under opts, computing it on a miss.
func (c *Cache) Layout(text string, opts Options) *Layout {
	if opts != c.opts {
		c.entries = make(map[string]*Layout)
		c.opts = opts
	}
	if l, ok := c.entries[text]; ok {
		return l
	}
	if len(c.entries) >= maxCacheEntries {
		clear(c.entries)
	}
	l := New(text, opts)
	c.entries[text] = l
	return l
}

// Len returns the number of cached layouts.
func (c *Cache) Len() int { return len(c.entries) }

// Invalidate drops every entry.
func (c *Cache) Invalidate() {
	c.entries = make(map[string]*Layout)
	c.opts = Options{}
}
