package mainloop

import "sync"

// Coalescer folds bursts of same-key posts into a single queued run: while
// a run for a key is queued, later posts for that key replace its callback
// instead of queueing another, and the run executes whichever callback was
// posted last. The shell routes layout and tree change notifications
// through it so a storm of mutations in one turn notifies the front end
// once.
type Coalescer struct {
	mu      sync.Mutex
	post    func(func())
	pending map[string]func()
	closed  bool
}

// NewCoalescer creates a coalescer that hands merged runs to post,
// typically Loop.Dispatch.
func NewCoalescer(post func(func())) *Coalescer {
	return &Coalescer{
		post:    post,
		pending: make(map[string]func()),
	}
}

// Post queues fn under key, replacing any callback already queued for it.
func (c *Coalescer) Post(key string, fn func()) {
	if key == "" || fn == nil {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	_, queued := c.pending[key]
	c.pending[key] = fn
	post := c.post
	c.mu.Unlock()

	if queued {
		return
	}
	post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.pending[key]
	delete(c.pending, key)
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Close drops every pending callback and makes further posts no-ops.
func (c *Coalescer) Close() {
	c.mu.Lock()
	c.closed = true
	c.pending = make(map[string]func())
	c.mu.Unlock()
}
