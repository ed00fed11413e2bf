package render

// Counter is the running line number shared by every source of one run.
// It starts at 1 and only advances when a numbered line is written.
type Counter struct {
	next int
}

// NewCounter returns a counter positioned at 1.
func NewCounter() *Counter {
	return &Counter{next: 1}
}

func (c *Counter) advance() int {
	n := c.next
	c.next++
	return n
}
