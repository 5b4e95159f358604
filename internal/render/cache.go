package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// maxIdle bounds the idle renderers kept per option set
const maxIdle = 4

// rendererCache hands out glamour renderers exclusively. A TermRenderer must
// not be shared between concurrent Render calls.
type rendererCache struct {
	mu   sync.Mutex
	idle map[Options][]*glamour.TermRenderer
}

var renderers = &rendererCache{
	idle: make(map[Options][]*glamour.TermRenderer),
}

func (c *rendererCache) acquire(opts Options) (*glamour.TermRenderer, error) {
	c.mu.Lock()
	if free := c.idle[opts]; len(free) > 0 {
		r := free[len(free)-1]
		c.idle[opts] = free[:len(free)-1]
		c.mu.Unlock()
		return r, nil
	}
	if _, ok := c.idle[opts]; !ok {
		c.idle[opts] = nil
	}
	c.mu.Unlock()

	return newRenderer(opts)
}

func (c *rendererCache) release(opts Options, r *glamour.TermRenderer) {
	if r == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.idle[opts]) < maxIdle {
		c.idle[opts] = append(c.idle[opts], r)
	}
}

func (c *rendererCache) idleCount(opts Options) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.idle[opts])
}

// newRenderer builds a TermRenderer. Standard style names use glamour's
// bundled styles; anything else is treated as a path to a JSON style.
func newRenderer(opts Options) (*glamour.TermRenderer, error) {
	style := opts.Style
	if style == "" {
		style = ThemeDark
	}

	rendererOpts := []glamour.TermRendererOption{
		glamour.WithWordWrap(opts.Width),
		glamour.WithTableWrap(opts.TableWrap),
		glamour.WithInlineTableLinks(opts.InlineTableLinks),
	}
	if IsBuiltinStyle(style) {
		rendererOpts = append(rendererOpts, glamour.WithStandardStyle(style))
	} else {
		rendererOpts = append(rendererOpts, glamour.WithStylePath(style))
	}
	if opts.EnableEmoji {
		rendererOpts = append(rendererOpts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		rendererOpts = append(rendererOpts, glamour.WithPreservedNewLines())
	}

	return glamour.NewTermRenderer(rendererOpts...)
}

// ClearCache drops every idle renderer
func ClearCache() {
	renderers.mu.Lock()
	renderers.idle = make(map[Options][]*glamour.TermRenderer)
	renderers.mu.Unlock()
}

// CacheSize returns the number of distinct option sets seen since the last clear
func CacheSize() int {
	renderers.mu.Lock()
	defer renderers.mu.Unlock()
	return len(renderers.idle)
}
