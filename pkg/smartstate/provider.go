package smartstate

// Provider is a fixed pool of cells handed out in traversal order.
// Create it once at setup, call Restart at the start of every frame and
// take one cell per stable widget with Next.
type Provider struct {
	cells []Smartstate
	pos   int
}

// NewProvider creates a pool of capacity unset cells.
func NewProvider(capacity int) *Provider {
	if capacity < 0 {
		capacity = 0
	}
	return &Provider{cells: make([]Smartstate, capacity)}
}

// Next returns the next cell, or nil once the pool is exhausted. A nil cell
// makes the widget redraw every frame, which is always correct.
func (p *Provider) Next() *Smartstate {
	if p.pos >= len(p.cells) {
		p.pos++
		return nil
	}
	c := &p.cells[p.pos]
	p.pos++
	return c
}

// Peek returns the cell Next would return without advancing.
func (p *Provider) Peek() *Smartstate {
	if p.pos >= len(p.cells) {
		return nil
	}
	return &p.cells[p.pos]
}

// Skip advances the cursor by n cells.
func (p *Provider) Skip(n int) {
	p.pos += n
}

// Cell returns slot i, or nil when out of range.
func (p *Provider) Cell(i int) *Smartstate {
	if i < 0 || i >= len(p.cells) {
		return nil
	}
	return &p.cells[i]
}

// Restart rewinds the cursor to the first cell.
func (p *Provider) Restart() {
	p.pos = 0
}

// Position returns how many cells were requested since the last Restart,
// including requests past the end of the pool.
func (p *Provider) Position() int {
	return p.pos
}

// Cap returns the pool capacity.
func (p *Provider) Cap() int {
	return len(p.cells)
}

// ForceRedrawAll resets every cell, e.g. after clearing the screen or
// switching theme.
func (p *Provider) ForceRedrawAll() {
	for i := range p.cells {
		p.cells[i].Reset()
	}
}
