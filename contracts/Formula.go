package contracts

// CellValueGetter resolves one referenced position during evaluation.
type CellValueGetter func(pos Position) (Value, error)

// FormulaHandle is a parsed formula.
/**
 * For the source text `=A1+A2*2`:
 *   PrintCanonical()      => "A1+A2*2"
 *   ReferencedPositions() => [A1 A2] (unique, row-major)
 *   Evaluate(getValue)    => Number or Error value, never a Go error
 */
type FormulaHandle interface {
	Evaluate(getValue CellValueGetter) Value
	PrintCanonical() string
	ReferencedPositions() []Position
}
