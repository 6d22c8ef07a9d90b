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

// Package pass provides a visitor over the syntax tree that annotation
// passes embed and selectively override.
package pass

import (
	"github.com/litfold/litfold/ast"
)

// Context can be used to provide context when visting child expressions.
type Context interface{}

// CompilerPass is an interface for a pass that walks the AST in some way.
type CompilerPass interface {
	Statements(CompilerPass, ast.Nodes, Context)
	WithItem(CompilerPass, *ast.WithItem, Context)

	Module(CompilerPass, *ast.Module, Context)
	FunctionDef(CompilerPass, *ast.FunctionDef, Context)
	For(CompilerPass, *ast.For, Context)
	If(CompilerPass, *ast.If, Context)
	With(CompilerPass, *ast.With, Context)

	Assign(CompilerPass, *ast.Assign, Context)
	AugAssign(CompilerPass, *ast.AugAssign, Context)
	ExprStmt(CompilerPass, *ast.ExprStmt, Context)
	Return(CompilerPass, *ast.Return, Context)
	While(CompilerPass, *ast.While, Context)
	ClassDef(CompilerPass, *ast.ClassDef, Context)
	Pass(CompilerPass, *ast.Pass, Context)
	Break(CompilerPass, *ast.Break, Context)
	Continue(CompilerPass, *ast.Continue, Context)

	Call(CompilerPass, *ast.Call, Context)
	Keyword(CompilerPass, *ast.Keyword, Context)
	Name(CompilerPass, *ast.Name, Context)
	Attribute(CompilerPass, *ast.Attribute, Context)
	Subscript(CompilerPass, *ast.Subscript, Context)
	Starred(CompilerPass, *ast.Starred, Context)
	List(CompilerPass, *ast.List, Context)
	Tuple(CompilerPass, *ast.Tuple, Context)
	Dict(CompilerPass, *ast.Dict, Context)
	Binary(CompilerPass, *ast.Binary, Context)
	Unary(CompilerPass, *ast.Unary, Context)
	Literal(CompilerPass, *ast.Literal, Context)
	Extension(CompilerPass, *ast.Extension, Context)

	Visit(CompilerPass, ast.Node, Context)
	BaseContext(CompilerPass) Context
	File(CompilerPass, *ast.Module)
}

// Base implements basic traversal so other passes can extend it.
type Base struct {
}

// Statements traverses a statement list in order
func (*Base) Statements(p CompilerPass, body ast.Nodes, ctx Context) {
	for _, stmt := range body {
		p.Visit(p, stmt, ctx)
	}
}

// WithItem traverses a single item of a with statement
func (*Base) WithItem(p CompilerPass, item *ast.WithItem, ctx Context) {
	p.Visit(p, item.ContextExpr, ctx)
	if item.OptionalVars != nil {
		p.Visit(p, item.OptionalVars, ctx)
	}
}

// Module traverses that kind of node
func (*Base) Module(p CompilerPass, node *ast.Module, ctx Context) {
	p.Statements(p, node.Body, ctx)
}

// FunctionDef traverses that kind of node
func (*Base) FunctionDef(p CompilerPass, node *ast.FunctionDef, ctx Context) {
	for _, decorator := range node.Decorators {
		p.Visit(p, decorator, ctx)
	}
	for _, param := range node.Params {
		p.Visit(p, param, ctx)
	}
	for _, def := range node.Defaults {
		p.Visit(p, def, ctx)
	}
	p.Statements(p, node.Body, ctx)
}

// For traverses that kind of node
func (*Base) For(p CompilerPass, node *ast.For, ctx Context) {
	p.Visit(p, node.Target, ctx)
	p.Visit(p, node.Iter, ctx)
	p.Statements(p, node.Body, ctx)
	p.Statements(p, node.Orelse, ctx)
}

// If traverses that kind of node
func (*Base) If(p CompilerPass, node *ast.If, ctx Context) {
	p.Visit(p, node.Test, ctx)
	p.Statements(p, node.Body, ctx)
	p.Statements(p, node.Orelse, ctx)
}

// With traverses that kind of node
func (*Base) With(p CompilerPass, node *ast.With, ctx Context) {
	for i := range node.Items {
		p.WithItem(p, &node.Items[i], ctx)
	}
	p.Statements(p, node.Body, ctx)
}

// Assign traverses that kind of node
func (*Base) Assign(p CompilerPass, node *ast.Assign, ctx Context) {
	for _, target := range node.Targets {
		p.Visit(p, target, ctx)
	}
	p.Visit(p, node.Value, ctx)
}

// AugAssign traverses that kind of node
func (*Base) AugAssign(p CompilerPass, node *ast.AugAssign, ctx Context) {
	p.Visit(p, node.Target, ctx)
	p.Visit(p, node.Value, ctx)
}

// ExprStmt traverses that kind of node
func (*Base) ExprStmt(p CompilerPass, node *ast.ExprStmt, ctx Context) {
	p.Visit(p, node.Value, ctx)
}

// Return traverses that kind of node
func (*Base) Return(p CompilerPass, node *ast.Return, ctx Context) {
	if node.Value != nil {
		p.Visit(p, node.Value, ctx)
	}
}

// While traverses that kind of node
func (*Base) While(p CompilerPass, node *ast.While, ctx Context) {
	p.Visit(p, node.Test, ctx)
	p.Statements(p, node.Body, ctx)
	p.Statements(p, node.Orelse, ctx)
}

// ClassDef traverses that kind of node
func (*Base) ClassDef(p CompilerPass, node *ast.ClassDef, ctx Context) {
	for _, decorator := range node.Decorators {
		p.Visit(p, decorator, ctx)
	}
	for _, base := range node.Bases {
		p.Visit(p, base, ctx)
	}
	p.Statements(p, node.Body, ctx)
}

// Pass cannot descend any further
func (*Base) Pass(p CompilerPass, node *ast.Pass, ctx Context) {
}

// Break cannot descend any further
func (*Base) Break(p CompilerPass, node *ast.Break, ctx Context) {
}

// Continue cannot descend any further
func (*Base) Continue(p CompilerPass, node *ast.Continue, ctx Context) {
}

// Call traverses that kind of node
func (*Base) Call(p CompilerPass, node *ast.Call, ctx Context) {
	p.Visit(p, node.Func, ctx)
	for _, arg := range node.Args {
		p.Visit(p, arg, ctx)
	}
	for _, kw := range node.Keywords {
		p.Visit(p, kw, ctx)
	}
}

// Keyword traverses that kind of node
func (*Base) Keyword(p CompilerPass, node *ast.Keyword, ctx Context) {
	p.Visit(p, node.Value, ctx)
}

// Name cannot descend any further
func (*Base) Name(p CompilerPass, node *ast.Name, ctx Context) {
}

// Attribute traverses that kind of node
func (*Base) Attribute(p CompilerPass, node *ast.Attribute, ctx Context) {
	p.Visit(p, node.Value, ctx)
}

// Subscript traverses that kind of node
func (*Base) Subscript(p CompilerPass, node *ast.Subscript, ctx Context) {
	p.Visit(p, node.Value, ctx)
	p.Visit(p, node.Index, ctx)
}

// Starred traverses that kind of node
func (*Base) Starred(p CompilerPass, node *ast.Starred, ctx Context) {
	p.Visit(p, node.Value, ctx)
}

// List traverses that kind of node
func (*Base) List(p CompilerPass, node *ast.List, ctx Context) {
	for _, elem := range node.Elements {
		p.Visit(p, elem, ctx)
	}
}

// Tuple traverses that kind of node
func (*Base) Tuple(p CompilerPass, node *ast.Tuple, ctx Context) {
	for _, elem := range node.Elements {
		p.Visit(p, elem, ctx)
	}
}

// Dict traverses that kind of node
func (*Base) Dict(p CompilerPass, node *ast.Dict, ctx Context) {
	for i := range node.Values {
		if i < len(node.Keys) && node.Keys[i] != nil {
			p.Visit(p, node.Keys[i], ctx)
		}
		p.Visit(p, node.Values[i], ctx)
	}
}

// Binary traverses that kind of node
func (*Base) Binary(p CompilerPass, node *ast.Binary, ctx Context) {
	p.Visit(p, node.Left, ctx)
	p.Visit(p, node.Right, ctx)
}

// Unary traverses that kind of node
func (*Base) Unary(p CompilerPass, node *ast.Unary, ctx Context) {
	p.Visit(p, node.Expr, ctx)
}

// Literal cannot descend any further
func (*Base) Literal(p CompilerPass, node *ast.Literal, ctx Context) {
}

// Extension traverses the children of an unmodelled construct
func (*Base) Extension(p CompilerPass, node *ast.Extension, ctx Context) {
	for _, child := range node.Children {
		p.Visit(p, child, ctx)
	}
}

// Visit traverses into an arbitrary node type. Nil nodes are ignored.
func (*Base) Visit(p CompilerPass, node ast.Node, ctx Context) {
	switch node := node.(type) {
	case nil:
	case *ast.Module:
		p.Module(p, node, ctx)
	case *ast.FunctionDef:
		p.FunctionDef(p, node, ctx)
	case *ast.For:
		p.For(p, node, ctx)
	case *ast.If:
		p.If(p, node, ctx)
	case *ast.With:
		p.With(p, node, ctx)
	case *ast.Assign:
		p.Assign(p, node, ctx)
	case *ast.AugAssign:
		p.AugAssign(p, node, ctx)
	case *ast.ExprStmt:
		p.ExprStmt(p, node, ctx)
	case *ast.Return:
		p.Return(p, node, ctx)
	case *ast.While:
		p.While(p, node, ctx)
	case *ast.ClassDef:
		p.ClassDef(p, node, ctx)
	case *ast.Pass:
		p.Pass(p, node, ctx)
	case *ast.Break:
		p.Break(p, node, ctx)
	case *ast.Continue:
		p.Continue(p, node, ctx)
	case *ast.Call:
		p.Call(p, node, ctx)
	case *ast.Keyword:
		p.Keyword(p, node, ctx)
	case *ast.Name:
		p.Name(p, node, ctx)
	case *ast.Attribute:
		p.Attribute(p, node, ctx)
	case *ast.Subscript:
		p.Subscript(p, node, ctx)
	case *ast.Starred:
		p.Starred(p, node, ctx)
	case *ast.List:
		p.List(p, node, ctx)
	case *ast.Tuple:
		p.Tuple(p, node, ctx)
	case *ast.Dict:
		p.Dict(p, node, ctx)
	case *ast.Binary:
		p.Binary(p, node, ctx)
	case *ast.Unary:
		p.Unary(p, node, ctx)
	case *ast.Literal:
		p.Literal(p, node, ctx)
	case *ast.Extension:
		p.Extension(p, node, ctx)
	}
}

// BaseContext just returns nil.
func (*Base) BaseContext(CompilerPass) Context {
	return nil
}

// File processes a whole module
func (*Base) File(p CompilerPass, node *ast.Module) {
	ctx := p.BaseContext(p)
	p.Visit(p, node, ctx)
}
