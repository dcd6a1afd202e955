package sheet

import (
	"strings"

	"spreadsheetEngine/contracts"
)

// Cell owns one content impl and the set of cells whose formulas
// reference it.
type Cell struct {
	sheet          *Sheet
	impl           cellImpl
	referringCells map[*Cell]struct{}
}

func newCell(sheet *Sheet) *Cell {
	return &Cell{
		sheet:          sheet,
		impl:           emptyImpl{},
		referringCells: map[*Cell]struct{}{},
	}
}

// Set installs new content. The impl swap, the edge rewiring and the
// cache invalidation happen only after the parse and the cycle check
// have passed; a failed Set leaves cell and edges untouched.
func (c *Cell) Set(text string) error {
	if text == c.GetText() {
		return nil
	}

	newImpl, err := c.buildImpl(text)
	if err != nil {
		return err
	}

	newReferenced := newImpl.ReferencedPositions()
	if len(newReferenced) > 0 {
		referencedCells := make([]*Cell, 0, len(newReferenced))
		for _, pos := range newReferenced {
			referencedCells = append(referencedCells, c.sheet.getOrCreate(pos))
		}
		if err = c.checkDependencies(referencedCells); err != nil {
			return err
		}
	}

	for _, pos := range c.impl.ReferencedPositions() {
		if referenced := c.sheet.cellAt(pos); referenced != nil {
			referenced.deleteReference(c)
		}
	}
	for _, pos := range newReferenced {
		c.sheet.cellAt(pos).addReference(c)
	}

	c.impl = newImpl
	c.invalidateCache()

	return nil
}

func (c *Cell) Clear() error {
	return c.Set("")
}

func (c *Cell) GetValue() contracts.Value { return c.impl.GetValue() }

func (c *Cell) GetText() string { return c.impl.GetText() }

func (c *Cell) GetReferencedCells() []contracts.Position {
	return c.impl.ReferencedPositions()
}

func (c *Cell) IsReferenced() bool { return len(c.referringCells) > 0 }

func (c *Cell) IsEmpty() bool {
	_, ok := c.impl.(emptyImpl)
	return ok
}

func (c *Cell) buildImpl(text string) (cellImpl, error) {
	if text == "" {
		return emptyImpl{}, nil
	}

	if strings.HasPrefix(text, FormulaPrefix) && len(text) > 1 {
		formula, err := ParseFormula(text[len(FormulaPrefix):])
		if err != nil {
			return nil, err
		}
		return &formulaImpl{formula: formula, sheet: c.sheet}, nil
	}

	return textImpl{text: text}, nil
}

func (c *Cell) addReference(referring *Cell) {
	c.referringCells[referring] = struct{}{}
}

func (c *Cell) deleteReference(referring *Cell) {
	delete(c.referringCells, referring)
}

// invalidateCache clears this cell's cached value and walks the
// dependents, pruning branches whose cache is already empty.
func (c *Cell) invalidateCache() {
	c.impl.ClearCache()
	for referring := range c.referringCells {
		if referring.impl.CacheIsFull() {
			referring.invalidateCache()
		}
	}
}

// checkDependencies rejects the proposed reference set if any path over
// the current graph leads back to this cell. The proposed edges are not
// installed yet, so reaching c again means a pre-existing path closes
// the loop.
func (c *Cell) checkDependencies(referencedCells []*Cell) error {
	for _, referenced := range referencedCells {
		if referenced == c {
			return contracts.CircularDependencyError
		}
	}

	visited := map[*Cell]struct{}{}
	for _, referenced := range referencedCells {
		if err := referenced.recursedCheck(c, visited); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cell) recursedCheck(start *Cell, visited map[*Cell]struct{}) error {
	if _, ok := visited[c]; ok {
		return nil
	}
	if c == start {
		return contracts.CircularDependencyError
	}
	visited[c] = struct{}{}

	for _, pos := range c.impl.ReferencedPositions() {
		if referenced := c.sheet.cellAt(pos); referenced != nil {
			if err := referenced.recursedCheck(start, visited); err != nil {
				return err
			}
		}
	}
	return nil
}
