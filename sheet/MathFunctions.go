package sheet

import (
	"github.com/expr-lang/expr"

	"spreadsheetEngine/contracts"
)

func toFunctionOperand(argument any) (float64, error) {
	if number, ok := toNumber(argument); ok {
		return number, nil
	}
	return 0, contracts.NewFormulaError(contracts.FormulaErrorValue)
}

var calculateSum = func(args ...any) (any, error) {
	sum := 0.0
	for _, arg := range args {
		number, err := toFunctionOperand(arg)
		if err != nil {
			return nil, err
		}
		sum += number
	}
	return sum, nil
}

var calculateMin = func(args ...any) (any, error) {
	minValue, err := toFunctionOperand(args[0])
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		number, err := toFunctionOperand(arg)
		if err != nil {
			return nil, err
		}
		if number < minValue {
			minValue = number
		}
	}
	return minValue, nil
}

var calculateMax = func(args ...any) (any, error) {
	maxValue, err := toFunctionOperand(args[0])
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		number, err := toFunctionOperand(arg)
		if err != nil {
			return nil, err
		}
		if number > maxValue {
			maxValue = number
		}
	}
	return maxValue, nil
}

var calculateAvg = func(args ...any) (any, error) {
	sum, err := calculateSum(args...)
	if err != nil {
		return nil, err
	}
	return sum.(float64) / float64(len(args)), nil
}

var sumFunction = expr.Function("sum", calculateSum)
var minFunction = expr.Function("min", calculateMin)
var maxFunction = expr.Function("max", calculateMax)
var avgFunction = expr.Function("avg", calculateAvg)
