package sheet

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/conf"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"

	"spreadsheetEngine/contracts"
)

const FormulaPrefix = "="

const EscapePrefix = "'"

// referencePattern is the shape of a cell reference inside a formula.
// Reference-shaped identifiers that do not fit the sheet bounds still
// parse; they evaluate to a Ref error.
var referencePattern = regexp.MustCompile(`^[A-Z]+[0-9]+$`)

// reference is one identifier of the formula body. Out-of-bounds
// references keep pos == NonePosition.
type reference struct {
	identifier string
	pos        contracts.Position
}

// Formula is the parsed form of a cell's "=..." text: compiled once,
// evaluated on demand against getter-supplied operands.
type Formula struct {
	program    *vm.Program
	expression string
	references []reference
	positions  []contracts.Position
}

var compilerOptions = []expr.Option{
	expr.Env(map[string]any{}),
	expr.AllowUndefinedVariables(),
	expr.Optimize(false),
	expr.DisableAllBuiltins(),
	expr.Patch(&NumbersToFloatPatcher{}),
	sumFunction,
	minFunction,
	maxFunction,
	avgFunction,
}

var vmPool = sync.Pool{
	New: func() any {
		return new(vm.VM)
	},
}

// ParseFormula parses the expression after the leading "=".
func ParseFormula(expression string) (*Formula, error) {
	// Parsing with the compile options makes sum/min/max come out as calls
	// of the formula functions instead of expr's own builtin nodes.
	config := conf.CreateNew()
	for _, option := range compilerOptions {
		option(config)
	}

	tree, err := parser.ParseWithConfig(expression, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.FormulaSyntaxError, err)
	}

	if err = validateNode(tree.Node); err != nil {
		return nil, err
	}

	canonical := printCanonical(tree.Node)

	program, err := expr.Compile(canonical, compilerOptions...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.FormulaSyntaxError, err)
	}

	visitor := &FindReferencesVisitor{}
	ast.Walk(&tree.Node, visitor)

	return &Formula{
		program:    program,
		expression: canonical,
		references: visitor.References(),
		positions:  visitor.Positions(),
	}, nil
}

func (f *Formula) Evaluate(getValue contracts.CellValueGetter) contracts.Value {
	vars := make(map[string]any, len(f.references))
	for _, ref := range f.references {
		operand, err := f.resolveOperand(ref, getValue)
		if err != nil {
			return contracts.ErrorValue(asFormulaError(err))
		}
		vars[ref.identifier] = operand
	}

	v := vmPool.Get().(*vm.VM)
	output, err := v.Run(f.program, vars)
	vmPool.Put(v)

	if err != nil {
		return contracts.ErrorValue(asFormulaError(err))
	}

	number, ok := toNumber(output)
	if !ok {
		return contracts.ErrorValue(contracts.NewFormulaError(contracts.FormulaErrorValue))
	}
	if math.IsInf(number, 0) || math.IsNaN(number) {
		return contracts.ErrorValue(contracts.NewFormulaError(contracts.FormulaErrorArithmetic))
	}

	return contracts.NumberValue(number)
}

func (f *Formula) PrintCanonical() string {
	return f.expression
}

func (f *Formula) ReferencedPositions() []contracts.Position {
	return f.positions
}

func (f *Formula) resolveOperand(ref reference, getValue contracts.CellValueGetter) (float64, error) {
	if !ref.pos.IsValid() {
		return 0, contracts.NewFormulaError(contracts.FormulaErrorRef)
	}

	value, err := getValue(ref.pos)
	if err != nil {
		return 0, err
	}

	switch {
	case value.IsNumber():
		return value.Number(), nil
	case value.IsError():
		return 0, value.FormulaError()
	default:
		number, parseErr := strconv.ParseFloat(value.Text(), 64)
		if parseErr != nil {
			return 0, contracts.NewFormulaError(contracts.FormulaErrorValue)
		}
		return number, nil
	}
}

var functionNames = map[string]bool{
	"sum": true,
	"min": true,
	"max": true,
	"avg": true,
}

// validateNode restricts the parsed tree to the formula grammar: number
// literals, cell references, unary and binary arithmetic, and the math
// functions.
func validateNode(node ast.Node) error {
	switch typed := node.(type) {
	case *ast.IntegerNode, *ast.FloatNode:
		return nil

	case *ast.IdentifierNode:
		if !referencePattern.MatchString(typed.Value) {
			return fmt.Errorf("%w: unexpected identifier %q", contracts.FormulaSyntaxError, typed.Value)
		}
		return nil

	case *ast.UnaryNode:
		if typed.Operator != "+" && typed.Operator != "-" {
			return fmt.Errorf("%w: unsupported operator %q", contracts.FormulaSyntaxError, typed.Operator)
		}
		return validateNode(typed.Node)

	case *ast.BinaryNode:
		switch typed.Operator {
		case "+", "-", "*", "/":
		default:
			return fmt.Errorf("%w: unsupported operator %q", contracts.FormulaSyntaxError, typed.Operator)
		}
		if err := validateNode(typed.Left); err != nil {
			return err
		}
		return validateNode(typed.Right)

	case *ast.CallNode:
		identifierNode, ok := typed.Callee.(*ast.IdentifierNode)
		if !ok || !functionNames[identifierNode.Value] {
			return fmt.Errorf("%w: unknown function", contracts.FormulaSyntaxError)
		}
		if len(typed.Arguments) == 0 {
			return fmt.Errorf("%w: %s requires arguments", contracts.FormulaSyntaxError, identifierNode.Value)
		}
		for _, argument := range typed.Arguments {
			if err := validateNode(argument); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("%w: unsupported expression", contracts.FormulaSyntaxError)
	}
}

const (
	precedenceAdditive = iota + 1
	precedenceMultiplicative
	precedenceUnary
)

func operatorPrecedence(operator string) int {
	if operator == "*" || operator == "/" {
		return precedenceMultiplicative
	}
	return precedenceAdditive
}

// printCanonical renders the tree without whitespace and without
// redundant parentheses.
func printCanonical(node ast.Node) string {
	var builder strings.Builder
	printNode(&builder, node, 0, false, "")
	return builder.String()
}

func printNode(builder *strings.Builder, node ast.Node, parentPrecedence int, isRightOperand bool, parentOperator string) {
	switch typed := node.(type) {
	case *ast.IntegerNode:
		builder.WriteString(strconv.Itoa(typed.Value))

	case *ast.FloatNode:
		builder.WriteString(strconv.FormatFloat(typed.Value, 'f', -1, 64))

	case *ast.IdentifierNode:
		builder.WriteString(typed.Value)

	case *ast.UnaryNode:
		builder.WriteString(typed.Operator)
		_, childIsUnary := typed.Node.(*ast.UnaryNode)
		if childIsUnary {
			builder.WriteByte('(')
			printNode(builder, typed.Node, 0, false, "")
			builder.WriteByte(')')
		} else {
			printNode(builder, typed.Node, precedenceUnary, false, typed.Operator)
		}

	case *ast.BinaryNode:
		precedence := operatorPrecedence(typed.Operator)
		needsParens := precedence < parentPrecedence ||
			(precedence == parentPrecedence && isRightOperand &&
				(parentOperator == "-" || parentOperator == "/"))
		if needsParens {
			builder.WriteByte('(')
		}
		printNode(builder, typed.Left, precedence, false, typed.Operator)
		builder.WriteString(typed.Operator)
		printNode(builder, typed.Right, precedence, true, typed.Operator)
		if needsParens {
			builder.WriteByte(')')
		}

	case *ast.CallNode:
		if identifierNode, ok := typed.Callee.(*ast.IdentifierNode); ok {
			builder.WriteString(identifierNode.Value)
		}
		builder.WriteByte('(')
		for index, argument := range typed.Arguments {
			if index > 0 {
				builder.WriteByte(',')
			}
			printNode(builder, argument, 0, false, "")
		}
		builder.WriteByte(')')
	}
}

func asFormulaError(err error) contracts.FormulaError {
	var formulaErr contracts.FormulaError
	if errors.As(err, &formulaErr) {
		return formulaErr
	}
	return contracts.NewFormulaError(contracts.FormulaErrorValue)
}

func toNumber(output any) (float64, bool) {
	switch number := output.(type) {
	case float64:
		return number, true
	case int:
		return float64(number), true
	}
	return 0, false
}
