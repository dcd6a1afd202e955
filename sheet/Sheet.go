package sheet

import (
	"fmt"
	"io"

	"spreadsheetEngine/contracts"
)

// Sheet is the sole owner of all cells. Back-references between cells
// are plain pointers and never outlive the sheet.
type Sheet struct {
	cells    map[contracts.Position]*Cell
	rowsUsed map[int]map[int]struct{}
	colsUsed map[int]map[int]struct{}
}

func NewSheet() *Sheet {
	return &Sheet{
		cells:    map[contracts.Position]*Cell{},
		rowsUsed: map[int]map[int]struct{}{},
		colsUsed: map[int]map[int]struct{}{},
	}
}

func (s *Sheet) SetCell(pos contracts.Position, text string) error {
	if !pos.IsValid() {
		return fmt.Errorf("set cell (%d, %d): %w", pos.Row, pos.Col, contracts.InvalidPositionError)
	}

	cell, existed := s.cells[pos]
	if !existed {
		cell = newCell(s)
		s.cells[pos] = cell
	}

	if err := cell.Set(text); err != nil {
		if !existed && !cell.IsReferenced() {
			delete(s.cells, pos)
		}
		return err
	}

	s.markUsed(pos)
	return nil
}

func (s *Sheet) GetCell(pos contracts.Position) (contracts.CellInterface, error) {
	if !pos.IsValid() {
		return nil, fmt.Errorf("get cell (%d, %d): %w", pos.Row, pos.Col, contracts.InvalidPositionError)
	}

	if cell, ok := s.cells[pos]; ok {
		return cell, nil
	}
	return nil, nil
}

// ClearCell resets the cell. A cell nothing refers to is removed
// outright; a referenced one is kept as an empty placeholder so that its
// dependents still find it. Either way the position leaves the usage
// indices.
func (s *Sheet) ClearCell(pos contracts.Position) error {
	if !pos.IsValid() {
		return fmt.Errorf("clear cell (%d, %d): %w", pos.Row, pos.Col, contracts.InvalidPositionError)
	}

	cell, ok := s.cells[pos]
	if !ok {
		return nil
	}

	if err := cell.Clear(); err != nil {
		return err
	}
	if !cell.IsReferenced() {
		delete(s.cells, pos)
	}

	s.unmarkUsed(pos)
	return nil
}

// GetValue is the evaluator-facing read. A position that was never
// materialized counts as 0 so that formulas can sum over sparse ranges;
// a materialized empty placeholder reports a Value error through its
// impl.
func (s *Sheet) GetValue(pos contracts.Position) (contracts.Value, error) {
	if !pos.IsValid() {
		return contracts.Value{}, contracts.NewFormulaError(contracts.FormulaErrorRef)
	}

	cell, ok := s.cells[pos]
	if !ok {
		return contracts.NumberValue(0), nil
	}
	return cell.GetValue(), nil
}

func (s *Sheet) GetPrintableSize() contracts.Size {
	size := contracts.Size{}
	for row := range s.rowsUsed {
		if row+1 > size.Rows {
			size.Rows = row + 1
		}
	}
	for col := range s.colsUsed {
		if col+1 > size.Cols {
			size.Cols = col + 1
		}
	}
	return size
}

func (s *Sheet) PrintValues(out io.Writer) error {
	return s.print(out, func(cell *Cell) string { return cell.GetValue().String() })
}

func (s *Sheet) PrintTexts(out io.Writer) error {
	return s.print(out, func(cell *Cell) string { return cell.GetText() })
}

func (s *Sheet) print(out io.Writer, render func(*Cell) string) error {
	size := s.GetPrintableSize()

	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			if col > 0 {
				if _, err := io.WriteString(out, "\t"); err != nil {
					return err
				}
			}
			if cell, ok := s.cells[contracts.Position{Row: row, Col: col}]; ok {
				if _, err := io.WriteString(out, render(cell)); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}

	return nil
}

func (s *Sheet) cellAt(pos contracts.Position) *Cell {
	return s.cells[pos]
}

// getOrCreate materializes an empty placeholder for a referenced
// position. Placeholders stay out of the usage indices until the
// position is written through SetCell.
func (s *Sheet) getOrCreate(pos contracts.Position) *Cell {
	if cell, ok := s.cells[pos]; ok {
		return cell
	}

	cell := newCell(s)
	s.cells[pos] = cell
	return cell
}

func (s *Sheet) markUsed(pos contracts.Position) {
	if s.rowsUsed[pos.Row] == nil {
		s.rowsUsed[pos.Row] = map[int]struct{}{}
	}
	s.rowsUsed[pos.Row][pos.Col] = struct{}{}

	if s.colsUsed[pos.Col] == nil {
		s.colsUsed[pos.Col] = map[int]struct{}{}
	}
	s.colsUsed[pos.Col][pos.Row] = struct{}{}
}

func (s *Sheet) unmarkUsed(pos contracts.Position) {
	if cols, ok := s.rowsUsed[pos.Row]; ok {
		delete(cols, pos.Col)
		if len(cols) == 0 {
			delete(s.rowsUsed, pos.Row)
		}
	}
	if rows, ok := s.colsUsed[pos.Col]; ok {
		delete(rows, pos.Row)
		if len(rows) == 0 {
			delete(s.colsUsed, pos.Col)
		}
	}
}
