package sheet

import (
	"sort"

	"github.com/expr-lang/expr/ast"

	"spreadsheetEngine/contracts"
)

// FindReferencesVisitor collects reference-shaped identifiers from a
// parsed formula tree, first occurrence wins.
type FindReferencesVisitor struct {
	seen       map[string]bool
	references []reference
}

func (v *FindReferencesVisitor) Visit(node *ast.Node) {
	identifierNode, ok := (*node).(*ast.IdentifierNode)
	if !ok || !referencePattern.MatchString(identifierNode.Value) {
		return
	}

	if v.seen == nil {
		v.seen = map[string]bool{}
	}
	if v.seen[identifierNode.Value] {
		return
	}
	v.seen[identifierNode.Value] = true

	pos, valid := contracts.PositionFromString(identifierNode.Value)
	if !valid {
		pos = contracts.NonePosition
	}

	v.references = append(v.references, reference{identifier: identifierNode.Value, pos: pos})
}

func (v *FindReferencesVisitor) References() []reference {
	return v.references
}

// Positions returns the valid referenced positions, unique and in
// row-major order. Identifiers such as "A1" and "A01" collapse to one
// position.
func (v *FindReferencesVisitor) Positions() []contracts.Position {
	unique := make(map[contracts.Position]bool, len(v.references))
	positions := make([]contracts.Position, 0, len(v.references))

	for _, ref := range v.references {
		if !ref.pos.IsValid() || unique[ref.pos] {
			continue
		}
		unique[ref.pos] = true
		positions = append(positions, ref.pos)
	}

	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Less(positions[j])
	})

	return positions
}
