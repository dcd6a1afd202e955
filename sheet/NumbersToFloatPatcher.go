package sheet

import "github.com/expr-lang/expr/ast"

// NumbersToFloatPatcher rewrites integer literals to floats at compile
// time so that all arithmetic, division included, runs on float64.
type NumbersToFloatPatcher struct{}

func (p *NumbersToFloatPatcher) Visit(node *ast.Node) {
	integerNode, ok := (*node).(*ast.IntegerNode)
	if !ok {
		return
	}

	ast.Patch(node, &ast.FloatNode{Value: float64(integerNode.Value)})
}
