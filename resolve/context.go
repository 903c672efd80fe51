package resolve

// Context is the set of type names already visited while following
// references from one unit into others. It is passed explicitly to every
// step of a cross-unit walk and never shared between walks.
type Context struct {
	visited map[string]struct{}
	order   []string
}

func NewContext() *Context {
	return &Context{visited: map[string]struct{}{}}
}

// Visit marks name as visited and reports whether this is the first visit.
func (c *Context) Visit(name string) bool {
	if _, ok := c.visited[name]; ok {
		return false
	}
	c.visited[name] = struct{}{}
	c.order = append(c.order, name)
	return true
}

func (c *Context) Visited(name string) bool {
	_, ok := c.visited[name]
	return ok
}

// Order returns the visited names in the order they were first visited.
func (c *Context) Order() []string {
	return c.order
}
