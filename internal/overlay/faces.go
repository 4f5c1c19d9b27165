package overlay

import "slices"

// FaceCycler walks the face list circularly on each right click.
type FaceCycler struct {
	names []string
	index int
}

func NewFaceCycler(names []string) *FaceCycler {
	return &FaceCycler{names: slices.Clone(names)}
}

// SetNames replaces the list. The position is kept and wraps on the next call.
func (c *FaceCycler) SetNames(names []string) {
	c.names = slices.Clone(names)
}

// Next returns the face at the current position and advances.
func (c *FaceCycler) Next() (string, bool) {
	if len(c.names) == 0 {
		return "", false
	}
	if c.index >= len(c.names) {
		c.index = 0
	}
	name := c.names[c.index]
	c.index++
	return name, true
}

func (c *FaceCycler) Names() []string {
	return slices.Clone(c.names)
}

func (c *FaceCycler) Len() int {
	return len(c.names)
}
