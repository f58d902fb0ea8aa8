package ast

// Visitor has one method per concrete node kind. A node's Accept calls
// exactly the method for its own kind.
type Visitor interface {
	VisitCreateStream(n *CreateStream, ctx any) any
	VisitDropStream(n *DropStream, ctx any) any
	VisitShowStreams(n *ShowStreams, ctx any) any

	VisitColumnDef(n *ColumnDef, ctx any) any
	VisitKeyConstraint(n *KeyConstraint, ctx any) any
	VisitProperties(n *Properties, ctx any) any

	VisitIdentifier(n *Identifier, ctx any) any
	VisitStringLiteral(n *StringLiteral, ctx any) any
	VisitIntegerLiteral(n *IntegerLiteral, ctx any) any
	VisitBooleanLiteral(n *BooleanLiteral, ctx any) any
}

// BaseVisitor implements Visitor by routing every kind to the Fallback hook.
// Embed it and override the methods you care about. A nil Fallback makes
// unhandled nodes return nil.
type BaseVisitor struct {
	Fallback func(n Node, ctx any) any
}

func (b *BaseVisitor) visit(n Node, ctx any) any {
	if b.Fallback == nil {
		return nil
	}
	return b.Fallback(n, ctx)
}

func (b *BaseVisitor) VisitCreateStream(n *CreateStream, ctx any) any     { return b.visit(n, ctx) }
func (b *BaseVisitor) VisitDropStream(n *DropStream, ctx any) any         { return b.visit(n, ctx) }
func (b *BaseVisitor) VisitShowStreams(n *ShowStreams, ctx any) any       { return b.visit(n, ctx) }
func (b *BaseVisitor) VisitColumnDef(n *ColumnDef, ctx any) any           { return b.visit(n, ctx) }
func (b *BaseVisitor) VisitKeyConstraint(n *KeyConstraint, ctx any) any   { return b.visit(n, ctx) }
func (b *BaseVisitor) VisitProperties(n *Properties, ctx any) any         { return b.visit(n, ctx) }
func (b *BaseVisitor) VisitIdentifier(n *Identifier, ctx any) any         { return b.visit(n, ctx) }
func (b *BaseVisitor) VisitStringLiteral(n *StringLiteral, ctx any) any   { return b.visit(n, ctx) }
func (b *BaseVisitor) VisitIntegerLiteral(n *IntegerLiteral, ctx any) any { return b.visit(n, ctx) }
func (b *BaseVisitor) VisitBooleanLiteral(n *BooleanLiteral, ctx any) any { return b.visit(n, ctx) }
