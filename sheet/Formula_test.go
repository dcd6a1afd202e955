package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spreadsheetEngine/contracts"
	"spreadsheetEngine/mocks"
)

func _position(t *testing.T, reference string) contracts.Position {
	t.Helper()
	pos, ok := contracts.PositionFromString(reference)
	assert.True(t, ok, reference)
	return pos
}

func TestParseFormula(t *testing.T) {
	t.Run("syntax_errors", func(t *testing.T) {
		expressions := []string{
			"",
			"1+",
			"(A1",
			"A1 && A2",
			"A1 == A2",
			`"text"`,
			"foo",
			"a1+2",
			"A1 % 2",
			"sum()",
			"pow(1,2)",
			"[1,2]",
		}

		for _, expression := range expressions {
			_, err := ParseFormula(expression)
			assert.Error(t, err, expression)
			assert.ErrorIs(t, err, contracts.FormulaSyntaxError, expression)
		}
	})

	t.Run("canonical_print", func(t *testing.T) {
		testCases := map[string]string{
			" A1 +  A2 ":    "A1+A2",
			"A1+(A2*2)":     "A1+A2*2",
			"(A1+A2)*2":     "(A1+A2)*2",
			"A1-(A2-A3)":    "A1-(A2-A3)",
			"(A1-A2)-A3":    "A1-A2-A3",
			"A1/(A2*A3)":    "A1/(A2*A3)",
			"-(A1+A2)":      "-(A1+A2)",
			"-A1":           "-A1",
			"2.50":          "2.5",
			"1/2":           "1/2",
			"sum(A1, A2)":   "sum(A1,A2)",
			"avg( 1, 2,3 )": "avg(1,2,3)",
		}

		for expression, expected := range testCases {
			formula, err := ParseFormula(expression)
			assert.NoError(t, err, expression)
			assert.Equal(t, expected, formula.PrintCanonical(), expression)
		}
	})

	t.Run("referenced_positions", func(t *testing.T) {
		formula, err := ParseFormula("B2+A1*B2+sum(C3,A1)")
		assert.NoError(t, err)

		assert.Equal(t, []contracts.Position{
			_position(t, "A1"),
			_position(t, "B2"),
			_position(t, "C3"),
		}, formula.ReferencedPositions())
	})

	t.Run("duplicate_identifiers_collapse", func(t *testing.T) {
		formula, err := ParseFormula("A1+A01")
		assert.NoError(t, err)

		assert.Equal(t, []contracts.Position{_position(t, "A1")}, formula.ReferencedPositions())
	})

	t.Run("out_of_bounds_reference_parses", func(t *testing.T) {
		formula, err := ParseFormula("ZZZZZ99999+1")
		assert.NoError(t, err)
		assert.Empty(t, formula.ReferencedPositions())
	})
}

func TestFormula_Evaluate(t *testing.T) {
	t.Run("literals_only", func(t *testing.T) {
		formula, err := ParseFormula("1+2*3")
		assert.NoError(t, err)

		assert.Equal(t, contracts.NumberValue(7), formula.Evaluate(nil))
	})

	t.Run("integer_division_is_float", func(t *testing.T) {
		formula, err := ParseFormula("1/2")
		assert.NoError(t, err)

		assert.Equal(t, contracts.NumberValue(0.5), formula.Evaluate(nil))
	})

	t.Run("division_by_zero", func(t *testing.T) {
		formula, err := ParseFormula("1/0")
		assert.NoError(t, err)

		value := formula.Evaluate(nil)
		assert.True(t, value.IsError())
		assert.Equal(t, contracts.FormulaErrorArithmetic, value.FormulaError().Category)
	})

	t.Run("references", func(t *testing.T) {
		valuesGetter := mocks.NewCellValueGetter(t)
		valuesGetter.On("Execute", _position(t, "A1")).Return(contracts.NumberValue(110), nil)
		valuesGetter.On("Execute", _position(t, "A2")).Return(contracts.NumberValue(20.5), nil)

		formula, err := ParseFormula("A1+A2")
		assert.NoError(t, err)

		assert.Equal(t, contracts.NumberValue(130.5), formula.Evaluate(valuesGetter.Execute))
	})

	t.Run("numeric_text_operand", func(t *testing.T) {
		valuesGetter := mocks.NewCellValueGetter(t)
		valuesGetter.On("Execute", _position(t, "A1")).Return(contracts.TextValue("7"), nil)

		formula, err := ParseFormula("A1*3")
		assert.NoError(t, err)

		assert.Equal(t, contracts.NumberValue(21), formula.Evaluate(valuesGetter.Execute))
	})

	t.Run("non_numeric_text_operand", func(t *testing.T) {
		valuesGetter := mocks.NewCellValueGetter(t)
		valuesGetter.On("Execute", _position(t, "A1")).Return(contracts.TextValue("awesome"), nil)

		formula, err := ParseFormula("A1+1")
		assert.NoError(t, err)

		value := formula.Evaluate(valuesGetter.Execute)
		assert.True(t, value.IsError())
		assert.Equal(t, contracts.FormulaErrorValue, value.FormulaError().Category)
	})

	t.Run("operand_error_propagates", func(t *testing.T) {
		valuesGetter := mocks.NewCellValueGetter(t)
		valuesGetter.On("Execute", _position(t, "A1")).
			Return(contracts.ErrorValue(contracts.NewFormulaError(contracts.FormulaErrorArithmetic)), nil)

		formula, err := ParseFormula("A1+1")
		assert.NoError(t, err)

		value := formula.Evaluate(valuesGetter.Execute)
		assert.True(t, value.IsError())
		assert.Equal(t, contracts.FormulaErrorArithmetic, value.FormulaError().Category)
	})

	t.Run("getter_error_propagates", func(t *testing.T) {
		valuesGetter := mocks.NewCellValueGetter(t)
		valuesGetter.On("Execute", _position(t, "A1")).
			Return(contracts.Value{}, contracts.NewFormulaError(contracts.FormulaErrorRef))

		formula, err := ParseFormula("A1")
		assert.NoError(t, err)

		value := formula.Evaluate(valuesGetter.Execute)
		assert.True(t, value.IsError())
		assert.Equal(t, contracts.FormulaErrorRef, value.FormulaError().Category)
	})

	t.Run("out_of_bounds_reference", func(t *testing.T) {
		formula, err := ParseFormula("ZZZZZ99999+1")
		assert.NoError(t, err)

		value := formula.Evaluate(nil)
		assert.True(t, value.IsError())
		assert.Equal(t, contracts.FormulaErrorRef, value.FormulaError().Category)
	})

	t.Run("unary_minus", func(t *testing.T) {
		valuesGetter := mocks.NewCellValueGetter(t)
		valuesGetter.On("Execute", _position(t, "A1")).Return(contracts.NumberValue(4), nil)

		formula, err := ParseFormula("-A1")
		assert.NoError(t, err)

		assert.Equal(t, contracts.NumberValue(-4), formula.Evaluate(valuesGetter.Execute))
	})
}

func TestFormula_MathFunctions(t *testing.T) {
	evaluate := func(t *testing.T, expression string, values map[string]contracts.Value) contracts.Value {
		t.Helper()

		valuesGetter := mocks.NewCellValueGetter(t)
		for reference, value := range values {
			valuesGetter.On("Execute", _position(t, reference)).Return(value, nil)
		}

		formula, err := ParseFormula(expression)
		assert.NoError(t, err)
		return formula.Evaluate(valuesGetter.Execute)
	}

	t.Run("sum", func(t *testing.T) {
		value := evaluate(t, "sum(A1,A2,4)", map[string]contracts.Value{
			"A1": contracts.NumberValue(1),
			"A2": contracts.NumberValue(2.5),
		})
		assert.Equal(t, contracts.NumberValue(7.5), value)
	})

	t.Run("min_max", func(t *testing.T) {
		values := map[string]contracts.Value{
			"A1": contracts.NumberValue(-10),
			"A2": contracts.NumberValue(50),
		}

		assert.Equal(t, contracts.NumberValue(-10), evaluate(t, "min(A1,A2,3)", values))

		values = map[string]contracts.Value{
			"A1": contracts.NumberValue(-10),
			"A2": contracts.NumberValue(50),
		}
		assert.Equal(t, contracts.NumberValue(50), evaluate(t, "max(A1,A2,3)", values))
	})

	t.Run("avg", func(t *testing.T) {
		value := evaluate(t, "avg(2,4,6,8)", nil)
		assert.Equal(t, contracts.NumberValue(5), value)
	})

	t.Run("nested", func(t *testing.T) {
		value := evaluate(t, "sum(1,avg(2,4))*2", nil)
		assert.Equal(t, contracts.NumberValue(8), value)
	})
}
