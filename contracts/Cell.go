package contracts

import "errors"

// CellInterface is the read view of one cell.
type CellInterface interface {
	GetValue() Value
	GetText() string
	GetReferencedCells() []Position
}

var InvalidPositionError = errors.New("invalid position")

var FormulaSyntaxError = errors.New("incorrect formula syntax")

var CircularDependencyError = errors.New("circular dependency detected")

var CellNotFoundError = errors.New("cell not found")
