package expression

import (
	"fmt"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// Op is a binary vector operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpDot
	OpCross
)

// String returns the operator symbol.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpDot:
		return "*"
	case OpCross:
		return "x"
	default:
		return "?"
	}
}

// Node is an expression tree node.
type Node interface {
	// Eval computes the node's value.
	Eval() (domain.Vector, error)

	// String renders the node so that parsing the text yields an
	// equivalent tree.
	String() string
}

// Literal is a vector literal.
type Literal struct {
	Value domain.Vector
}

// Scaled multiplies its operand by a scalar prefix.
type Scaled struct {
	Factor  domain.Rational
	Operand Node
}

// Binary applies Op to two operands.
type Binary struct {
	Op          Op
	Left, Right Node
}

var (
	_ Node = (*Literal)(nil)
	_ Node = (*Scaled)(nil)
	_ Node = (*Binary)(nil)
)

func (n *Literal) Eval() (domain.Vector, error) {
	return n.Value, nil
}

func (n *Literal) String() string {
	return n.Value.String()
}

func (n *Scaled) Eval() (domain.Vector, error) {
	v, err := n.Operand.Eval()
	if err != nil {
		return domain.Vector{}, err
	}
	return v.Scale(n.Factor)
}

func (n *Scaled) String() string {
	return n.Factor.String() + n.Operand.String()
}

func (n *Binary) Eval() (domain.Vector, error) {
	left, err := n.Left.Eval()
	if err != nil {
		return domain.Vector{}, err
	}
	right, err := n.Right.Eval()
	if err != nil {
		return domain.Vector{}, err
	}

	switch n.Op {
	case OpAdd:
		return left.Add(right)
	case OpSub:
		return left.Sub(right)
	case OpDot:
		return left.Dot(right)
	case OpCross:
		return left.Cross(right)
	default:
		return domain.Vector{}, fmt.Errorf("%w: %s", domain.ErrOperator, n.Op)
	}
}

func (n *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}
