package sheet

import (
	"strings"

	"spreadsheetEngine/contracts"
)

// cellImpl is the content variant of one cell: empty, text, or formula.
type cellImpl interface {
	GetValue() contracts.Value
	GetText() string
	ClearCache()
	CacheIsFull() bool
	ReferencedPositions() []contracts.Position
}

type emptyImpl struct{}

// GetValue of an empty cell is a Value error: a placeholder that a
// formula references directly has nothing numeric to offer. Positions
// that were never materialized at all count as 0 instead — see
// Sheet.GetValue.
func (emptyImpl) GetValue() contracts.Value {
	return contracts.ErrorValue(contracts.NewFormulaError(contracts.FormulaErrorValue))
}

func (emptyImpl) GetText() string { return "" }

func (emptyImpl) ClearCache() {}

func (emptyImpl) CacheIsFull() bool { return true }

func (emptyImpl) ReferencedPositions() []contracts.Position { return nil }

type textImpl struct {
	text string
}

func (impl textImpl) GetValue() contracts.Value {
	if strings.HasPrefix(impl.text, EscapePrefix) {
		return contracts.TextValue(impl.text[len(EscapePrefix):])
	}
	return contracts.TextValue(impl.text)
}

func (impl textImpl) GetText() string { return impl.text }

func (impl textImpl) ClearCache() {}

func (impl textImpl) CacheIsFull() bool { return true }

func (impl textImpl) ReferencedPositions() []contracts.Position { return nil }

type formulaImpl struct {
	formula contracts.FormulaHandle
	sheet   *Sheet
	cache   *contracts.Value
}

func (impl *formulaImpl) GetValue() contracts.Value {
	if impl.cache != nil {
		return *impl.cache
	}

	value := impl.formula.Evaluate(impl.sheet.GetValue)
	impl.cache = &value
	return value
}

func (impl *formulaImpl) GetText() string {
	return FormulaPrefix + impl.formula.PrintCanonical()
}

func (impl *formulaImpl) ClearCache() { impl.cache = nil }

func (impl *formulaImpl) CacheIsFull() bool { return impl.cache != nil }

func (impl *formulaImpl) ReferencedPositions() []contracts.Position {
	return impl.formula.ReferencedPositions()
}
