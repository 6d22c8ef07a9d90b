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

package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/litfold/litfold/ast"
)

func (c *converter) module(n *sitter.Node) *ast.Module {
	return &ast.Module{
		NodeBase: c.base(n),
		Body:     c.statements(n),
	}
}

// statements converts the statements of a block or module.
func (c *converter) statements(n *sitter.Node) ast.Nodes {
	if n == nil {
		return nil
	}
	var body ast.Nodes
	for _, child := range namedChildren(n) {
		if stmt := c.statement(child); stmt != nil {
			body = append(body, stmt)
		}
	}
	return body
}

func isStatement(kind string) bool {
	switch kind {
	case "expression_statement", "function_definition", "decorated_definition",
		"class_definition", "for_statement", "if_statement", "while_statement",
		"with_statement", "return_statement", "pass_statement",
		"break_statement", "continue_statement":
		return true
	}
	return false
}

func (c *converter) statement(n *sitter.Node) ast.Node {
	switch n.Type() {
	case "expression_statement":
		return c.expressionStatement(n)
	case "function_definition":
		return c.functionDef(n, nil)
	case "class_definition":
		return c.classDef(n, nil)
	case "decorated_definition":
		return c.decoratedDefinition(n)
	case "for_statement":
		return c.forStatement(n)
	case "if_statement":
		return c.ifStatement(n)
	case "while_statement":
		return c.whileStatement(n)
	case "with_statement":
		return c.withStatement(n)
	case "return_statement":
		return &ast.Return{NodeBase: c.base(n), Value: c.expr(firstNamedChild(n))}
	case "pass_statement":
		return &ast.Pass{NodeBase: c.base(n)}
	case "break_statement":
		return &ast.Break{NodeBase: c.base(n)}
	case "continue_statement":
		return &ast.Continue{NodeBase: c.base(n)}
	}
	return c.extension(n)
}

func (c *converter) expressionStatement(n *sitter.Node) ast.Node {
	children := namedChildren(n)
	if len(children) != 1 {
		return &ast.ExprStmt{NodeBase: c.base(n), Value: c.tuple(n, children, ast.Load)}
	}
	child := children[0]
	switch child.Type() {
	case "assignment":
		return c.assignment(child)
	case "augmented_assignment":
		return &ast.AugAssign{
			NodeBase: c.base(child),
			Target:   c.target(child.ChildByFieldName("left")),
			Op:       c.text(child.ChildByFieldName("operator")),
			Value:    c.expr(child.ChildByFieldName("right")),
		}
	}
	return &ast.ExprStmt{NodeBase: c.base(n), Value: c.expr(child)}
}

// assignment flattens a = b = value into a single multi-target Assign.
// An annotation without a value binds nothing.
func (c *converter) assignment(n *sitter.Node) ast.Node {
	assign := &ast.Assign{NodeBase: c.base(n)}
	for cur := n; ; {
		assign.Targets = append(assign.Targets, c.target(cur.ChildByFieldName("left")))
		right := cur.ChildByFieldName("right")
		switch {
		case right == nil:
			return &ast.Extension{NodeBase: c.base(n), Kind: "annotation", Children: assign.Targets}
		case right.Type() == "assignment":
			cur = right
		default:
			assign.Value = c.expr(right)
			return assign
		}
	}
}

func (c *converter) functionDef(n *sitter.Node, decorators ast.Nodes) *ast.FunctionDef {
	fn := &ast.FunctionDef{
		NodeBase:   c.base(n),
		Name:       ast.Identifier(c.text(n.ChildByFieldName("name"))),
		Decorators: decorators,
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		for _, param := range namedChildren(params) {
			c.parameter(fn, param)
		}
	}
	fn.Body = c.statements(n.ChildByFieldName("body"))
	return fn
}

func (c *converter) parameter(fn *ast.FunctionDef, n *sitter.Node) {
	switch n.Type() {
	case "identifier":
		fn.Params = append(fn.Params, c.name(n, ast.Store))
	case "typed_parameter", "list_splat_pattern", "dictionary_splat_pattern":
		if inner := firstNamedChild(n); inner != nil {
			c.parameter(fn, inner)
		}
	case "default_parameter", "typed_default_parameter":
		if name := n.ChildByFieldName("name"); name != nil {
			c.parameter(fn, name)
		}
		if value := n.ChildByFieldName("value"); value != nil {
			fn.Defaults = append(fn.Defaults, c.expr(value))
		}
	}
}

func (c *converter) classDef(n *sitter.Node, decorators ast.Nodes) *ast.ClassDef {
	class := &ast.ClassDef{
		NodeBase:   c.base(n),
		Name:       ast.Identifier(c.text(n.ChildByFieldName("name"))),
		Decorators: decorators,
		Body:       c.statements(n.ChildByFieldName("body")),
	}
	if bases := n.ChildByFieldName("superclasses"); bases != nil {
		for _, base := range namedChildren(bases) {
			class.Bases = append(class.Bases, c.argument(base))
		}
	}
	return class
}

func (c *converter) decoratedDefinition(n *sitter.Node) ast.Node {
	var decorators ast.Nodes
	for _, child := range namedChildren(n) {
		if child.Type() == "decorator" {
			decorators = append(decorators, c.expr(firstNamedChild(child)))
		}
	}
	def := n.ChildByFieldName("definition")
	if def == nil {
		return c.extension(n)
	}
	switch def.Type() {
	case "function_definition":
		return c.functionDef(def, decorators)
	case "class_definition":
		return c.classDef(def, decorators)
	}
	return c.extension(n)
}

// elseBody returns the body of an else_clause child stored in field.
func (c *converter) elseBody(n *sitter.Node, field string) ast.Nodes {
	alt := n.ChildByFieldName(field)
	if alt == nil {
		return nil
	}
	return c.statements(alt.ChildByFieldName("body"))
}

func (c *converter) forStatement(n *sitter.Node) *ast.For {
	return &ast.For{
		NodeBase: c.base(n),
		Target:   c.target(n.ChildByFieldName("left")),
		Iter:     c.expr(n.ChildByFieldName("right")),
		Body:     c.statements(n.ChildByFieldName("body")),
		Orelse:   c.elseBody(n, "alternative"),
	}
}

func (c *converter) whileStatement(n *sitter.Node) *ast.While {
	return &ast.While{
		NodeBase: c.base(n),
		Test:     c.expr(n.ChildByFieldName("condition")),
		Body:     c.statements(n.ChildByFieldName("body")),
		Orelse:   c.elseBody(n, "alternative"),
	}
}

// ifStatement turns every elif clause into an If nested in the else branch
// of the previous one.
func (c *converter) ifStatement(n *sitter.Node) *ast.If {
	var alternatives []*sitter.Node
	for _, child := range namedChildren(n) {
		switch child.Type() {
		case "elif_clause", "else_clause":
			alternatives = append(alternatives, child)
		}
	}

	var orelse ast.Nodes
	for i := len(alternatives) - 1; i >= 0; i-- {
		alt := alternatives[i]
		if alt.Type() == "else_clause" {
			orelse = c.statements(alt.ChildByFieldName("body"))
			continue
		}
		orelse = ast.Nodes{&ast.If{
			NodeBase: c.base(alt),
			Test:     c.expr(alt.ChildByFieldName("condition")),
			Body:     c.statements(alt.ChildByFieldName("consequence")),
			Orelse:   orelse,
		}}
	}

	return &ast.If{
		NodeBase: c.base(n),
		Test:     c.expr(n.ChildByFieldName("condition")),
		Body:     c.statements(n.ChildByFieldName("consequence")),
		Orelse:   orelse,
	}
}

func (c *converter) withStatement(n *sitter.Node) *ast.With {
	with := &ast.With{
		NodeBase: c.base(n),
		Body:     c.statements(n.ChildByFieldName("body")),
	}
	items := namedChildren(n)
	for _, child := range items {
		if child.Type() == "with_clause" {
			items = namedChildren(child)
			break
		}
	}
	for _, item := range items {
		if item.Type() == "with_item" {
			with.Items = append(with.Items, c.withItem(item))
		}
	}
	return with
}

// withItem handles both item shapes produced by the grammar: a value with an
// alias field, and a value that is an as_pattern.
func (c *converter) withItem(n *sitter.Node) ast.WithItem {
	value := n.ChildByFieldName("value")
	if value == nil {
		value = firstNamedChild(n)
	}
	alias := n.ChildByFieldName("alias")
	if value != nil && value.Type() == "as_pattern" {
		alias = value.ChildByFieldName("alias")
		value = firstNamedChild(value)
	}

	item := ast.WithItem{ContextExpr: c.expr(value)}
	if alias != nil {
		if alias.Type() == "as_pattern_target" {
			if inner := firstNamedChild(alias); inner != nil {
				alias = inner
			} else {
				item.OptionalVars = &ast.Name{NodeBase: c.base(alias), ID: ast.Identifier(c.text(alias)), Ctx: ast.Store}
				return item
			}
		}
		item.OptionalVars = c.target(alias)
	}
	return item
}
