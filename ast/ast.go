/*
Copyright 2026 The litfold Authors. All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ast

import (
	"fmt"
)

// Identifier represents a variable / parameter / attribute name.
type Identifier string

// Identifiers represents an Identifier slice.
type Identifiers []Identifier

// ---------------------------------------------------------------------------

// Node is a node of the syntax tree. Besides its location every node carries
// a back-reference to its nearest enclosing scope, filled in by the scope
// tagging pass.
type Node interface {
	Loc() *LocationRange
	EnclosingScope() Scope
	SetEnclosingScope(Scope)
}

// Nodes represents a Node slice.
type Nodes []Node

// ---------------------------------------------------------------------------

// NodeBase holds fields common to all node types.
type NodeBase struct {
	loc            LocationRange
	enclosingScope Scope
}

// NewNodeBaseLoc creates a new NodeBase from an initial LocationRange.
func NewNodeBaseLoc(loc LocationRange) NodeBase {
	return NodeBase{loc: loc}
}

// Loc returns a NodeBase's loc.
func (n *NodeBase) Loc() *LocationRange {
	return &n.loc
}

// EnclosingScope returns the nearest scope containing the node, or the node
// itself for scope nodes. It is nil if the node was never tagged or was
// tagged outside of any module.
func (n *NodeBase) EnclosingScope() Scope {
	return n.enclosingScope
}

// SetEnclosingScope sets a NodeBase's enclosing scope.
func (n *NodeBase) SetEnclosingScope(scope Scope) {
	n.enclosingScope = scope
}

// ---------------------------------------------------------------------------

// Scope is a node that owns a list of declared variables.
// Only Module, FunctionDef, For, If and With implement it.
type Scope interface {
	Node
	Vars() []*Name
	SetVars([]*Name)
	AddVar(*Name)
}

// ScopeBase holds the variable list of a scope node.
//
// The list keeps declaration order. Re-declarations are appended again, so
// lookups should take the first match.
type ScopeBase struct {
	vars []*Name
}

// Vars returns the variables declared in the scope.
func (s *ScopeBase) Vars() []*Name {
	return s.vars
}

// SetVars replaces the variable list.
func (s *ScopeBase) SetVars(vars []*Name) {
	s.vars = vars
}

// AddVar appends a declared variable.
func (s *ScopeBase) AddVar(v *Name) {
	s.vars = append(s.vars, v)
}

// ---------------------------------------------------------------------------

// ExprContext tells whether an expression is read, written or deleted.
type ExprContext int

const (
	Load ExprContext = iota
	Store
	Del
)

var exprContextStrings = []string{
	Load:  "load",
	Store: "store",
	Del:   "del",
}

func (c ExprContext) String() string {
	if c < 0 || int(c) >= len(exprContextStrings) {
		panic(fmt.Sprintf("INTERNAL ERROR: Unrecognised expression context: %d", c))
	}
	return exprContextStrings[c]
}

// ---------------------------------------------------------------------------

// Module represents a whole source file.
type Module struct {
	NodeBase
	ScopeBase
	Body Nodes
}

// ---------------------------------------------------------------------------

// FunctionDef represents def name(params): body.
//
// Params are Names in Store context. Defaults holds the default values of
// trailing parameters, so len(Defaults) <= len(Params).
type FunctionDef struct {
	NodeBase
	ScopeBase
	Name       Identifier
	Params     []*Name
	Defaults   Nodes
	Decorators Nodes
	Body       Nodes
}

// ---------------------------------------------------------------------------

// For represents for target in iter: body [else: orelse].
type For struct {
	NodeBase
	ScopeBase
	Target Node
	Iter   Node
	Body   Nodes
	Orelse Nodes
}

// ---------------------------------------------------------------------------

// If represents if test: body [else: orelse]. An elif chain is a nested If
// as the only statement of Orelse.
type If struct {
	NodeBase
	ScopeBase
	Test   Node
	Body   Nodes
	Orelse Nodes

	thenVars []*Name
	elseVars []*Name
}

// ThenVars returns the variables declared directly in the then branch.
func (n *If) ThenVars() []*Name {
	return n.thenVars
}

// ElseVars returns the variables declared directly in the else branch.
func (n *If) ElseVars() []*Name {
	return n.elseVars
}

// SetBranchVars sets the per-branch variable lists.
func (n *If) SetBranchVars(thenVars, elseVars []*Name) {
	n.thenVars = thenVars
	n.elseVars = elseVars
}

// ---------------------------------------------------------------------------

// WithItem is a helper struct for With.
type WithItem struct {
	ContextExpr  Node
	OptionalVars Node // Can be nil.
}

// With represents with item [as target], ...: body.
type With struct {
	NodeBase
	ScopeBase
	Items []WithItem
	Body  Nodes
}

// ---------------------------------------------------------------------------

// Assign represents t1 = t2 = ... = value.
type Assign struct {
	NodeBase
	Targets Nodes
	Value   Node
}

// AugAssign represents target op= value.
type AugAssign struct {
	NodeBase
	Target Node
	Op     string
	Value  Node
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	NodeBase
	Value Node
}

// Return represents return [value]. Value can be nil.
type Return struct {
	NodeBase
	Value Node
}

// While represents while test: body [else: orelse]. It does not introduce a
// scope.
type While struct {
	NodeBase
	Test   Node
	Body   Nodes
	Orelse Nodes
}

// ClassDef represents class name(bases): body. It does not introduce a
// scope.
type ClassDef struct {
	NodeBase
	Name       Identifier
	Bases      Nodes
	Decorators Nodes
	Body       Nodes
}

// Pass represents the pass statement.
type Pass struct{ NodeBase }

// Break represents the break statement.
type Break struct{ NodeBase }

// Continue represents the continue statement.
type Continue struct{ NodeBase }

// ---------------------------------------------------------------------------

// Keyword is a name=value argument of a call. Name is empty for **value.
type Keyword struct {
	NodeBase
	Name  Identifier
	Value Node
}

// Call represents func(args, keywords).
type Call struct {
	NodeBase
	Func     Node
	Args     Nodes
	Keywords []*Keyword
}

// ---------------------------------------------------------------------------

// Name represents a reference to a variable.
//
// When the Name is a declared variable, AssignedFrom links it to the
// assignment that introduced it and Calls lists the mutation calls recorded
// against it.
type Name struct {
	NodeBase
	ID  Identifier
	Ctx ExprContext

	assignedFrom *Assign
	calls        []*Call
}

// AssignedFrom returns the assignment that introduced the variable, or nil.
func (n *Name) AssignedFrom() *Assign {
	return n.assignedFrom
}

// SetAssignedFrom sets the originating assignment.
func (n *Name) SetAssignedFrom(assign *Assign) {
	n.assignedFrom = assign
}

// Calls returns the mutation calls recorded in program order.
func (n *Name) Calls() []*Call {
	return n.calls
}

// AddCall records a mutation call.
func (n *Name) AddCall(call *Call) {
	n.calls = append(n.calls, call)
}

// Attribute represents value.attr.
type Attribute struct {
	NodeBase
	Value Node
	Attr  Identifier
	Ctx   ExprContext
}

// Subscript represents value[index].
type Subscript struct {
	NodeBase
	Value Node
	Index Node
	Ctx   ExprContext
}

// Starred represents *value.
type Starred struct {
	NodeBase
	Value Node
	Ctx   ExprContext
}

// ---------------------------------------------------------------------------

// List represents list literals [1, 2, 3].
type List struct {
	NodeBase
	Elements Nodes
	Ctx      ExprContext
}

// Tuple represents tuples (1, 2) and bare target lists a, b.
type Tuple struct {
	NodeBase
	Elements Nodes
	Ctx      ExprContext
}

// Dict represents dict literals. Keys[i] is nil for **value entries.
type Dict struct {
	NodeBase
	Keys   Nodes
	Values Nodes
}

// ---------------------------------------------------------------------------

// Binary represents binary, comparison and boolean operators.
type Binary struct {
	NodeBase
	Left  Node
	Op    string
	Right Node
}

// Unary represents unary operators, including not.
type Unary struct {
	NodeBase
	Op   string
	Expr Node
}

// ---------------------------------------------------------------------------

// LiteralKind distinguishes literal constants.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralBoolean
	LiteralNone
)

var literalKindStrings = []string{
	LiteralNumber:  "number",
	LiteralString:  "string",
	LiteralBoolean: "boolean",
	LiteralNone:    "none",
}

func (k LiteralKind) String() string {
	if k < 0 || int(k) >= len(literalKindStrings) {
		panic(fmt.Sprintf("INTERNAL ERROR: Unrecognised literal kind: %d", k))
	}
	return literalKindStrings[k]
}

// Literal represents numbers, strings, booleans and None. Value is the
// source text.
type Literal struct {
	NodeBase
	Kind  LiteralKind
	Value string
}

// ---------------------------------------------------------------------------

// Extension represents a construct that has no dedicated node type, such as
// a comprehension or a try statement. Its children are still traversed.
type Extension struct {
	NodeBase
	Kind     string
	Children Nodes
}
