// Package ast defines the abstract syntax tree for the Azalea language: the
// contract between the parser, which produces it, and the lowering pipeline,
// which consumes it.  The tree is built once during parsing and is read-only
// thereafter.
package ast

import "azlc/report"

// Node is the abstract interface for all AST nodes.
type Node interface {
	// Span returns the text span of the node.
	Span() *report.TextSpan
}

// NodeBase is a utility base struct for all AST nodes.
type NodeBase struct {
	// The span over which the node occurs.
	span *report.TextSpan
}

// NewNodeBaseOn creates a new node base with the given span.
func NewNodeBaseOn(span *report.TextSpan) NodeBase {
	return NodeBase{span: span}
}

// NewNodeBaseOver creates a new node base spanning over two spans.
func NewNodeBaseOver(start, end *report.TextSpan) NodeBase {
	return NodeBase{span: report.NewSpanOver(start, end)}
}

func (nb NodeBase) Span() *report.TextSpan {
	return nb.span
}
