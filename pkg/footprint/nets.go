package footprint

// NetTable assigns board-wide net numbers by name, in order of first use.
// Numbering starts at 1; KiCad reserves net 0 for unconnected pads.
// A NetTable is not safe for concurrent use.
type NetTable struct {
	byName map[string]*Net
	order  []*Net
}

// NewNetTable creates an empty table.
func NewNetTable() *NetTable {
	return &NetTable{byName: make(map[string]*Net)}
}

// Net returns the net registered under name, creating it on first use.
// An empty name means "no connection" and returns nil.
func (t *NetTable) Net(name string) *Net {
	if name == "" {
		return nil
	}
	if n, ok := t.byName[name]; ok {
		return n
	}
	n := &Net{Number: len(t.order) + 1, Name: name}
	t.byName[name] = n
	t.order = append(t.order, n)
	return n
}

// GetByName looks a net up without creating it.
func (t *NetTable) GetByName(name string) (*Net, bool) {
	n, ok := t.byName[name]
	return n, ok
}

// Nets returns the registered nets in number order.
func (t *NetTable) Nets() []Net {
	out := make([]Net, len(t.order))
	for i, n := range t.order {
		out[i] = *n
	}
	return out
}

// Len returns the number of registered nets.
func (t *NetTable) Len() int {
	return len(t.order)
}
