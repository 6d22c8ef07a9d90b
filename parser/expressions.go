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
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/litfold/litfold/ast"
)

func (c *converter) name(n *sitter.Node, ctx ast.ExprContext) *ast.Name {
	return &ast.Name{NodeBase: c.base(n), ID: ast.Identifier(c.text(n)), Ctx: ctx}
}

func (c *converter) tuple(n *sitter.Node, elems []*sitter.Node, ctx ast.ExprContext) *ast.Tuple {
	tuple := &ast.Tuple{NodeBase: c.base(n), Ctx: ctx}
	for _, elem := range elems {
		if ctx == ast.Store {
			tuple.Elements = append(tuple.Elements, c.target(elem))
		} else {
			tuple.Elements = append(tuple.Elements, c.expr(elem))
		}
	}
	return tuple
}

// target converts an expression in a declaration position. Names, sequences,
// attributes and subscripts get Store context; the values they are taken
// from stay in Load context.
func (c *converter) target(n *sitter.Node) ast.Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "identifier":
		return c.name(n, ast.Store)
	case "pattern_list", "tuple_pattern", "tuple", "expression_list":
		return c.tuple(n, namedChildren(n), ast.Store)
	case "list_pattern", "list":
		list := &ast.List{NodeBase: c.base(n), Ctx: ast.Store}
		for _, elem := range namedChildren(n) {
			list.Elements = append(list.Elements, c.target(elem))
		}
		return list
	case "list_splat_pattern", "list_splat":
		return &ast.Starred{NodeBase: c.base(n), Value: c.target(firstNamedChild(n)), Ctx: ast.Store}
	case "attribute":
		return &ast.Attribute{
			NodeBase: c.base(n),
			Value:    c.expr(n.ChildByFieldName("object")),
			Attr:     ast.Identifier(c.text(n.ChildByFieldName("attribute"))),
			Ctx:      ast.Store,
		}
	case "subscript":
		return &ast.Subscript{
			NodeBase: c.base(n),
			Value:    c.expr(n.ChildByFieldName("value")),
			Index:    c.expr(n.ChildByFieldName("subscript")),
			Ctx:      ast.Store,
		}
	case "parenthesized_expression":
		return c.target(firstNamedChild(n))
	}
	return c.expr(n)
}

func (c *converter) expr(n *sitter.Node) ast.Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "identifier":
		return c.name(n, ast.Load)
	case "integer", "float":
		return &ast.Literal{NodeBase: c.base(n), Kind: ast.LiteralNumber, Value: c.text(n)}
	case "string", "concatenated_string":
		return &ast.Literal{NodeBase: c.base(n), Kind: ast.LiteralString, Value: c.text(n)}
	case "true", "false":
		return &ast.Literal{NodeBase: c.base(n), Kind: ast.LiteralBoolean, Value: c.text(n)}
	case "none":
		return &ast.Literal{NodeBase: c.base(n), Kind: ast.LiteralNone, Value: c.text(n)}
	case "list":
		list := &ast.List{NodeBase: c.base(n), Ctx: ast.Load}
		for _, elem := range namedChildren(n) {
			list.Elements = append(list.Elements, c.expr(elem))
		}
		return list
	case "tuple", "expression_list":
		return c.tuple(n, namedChildren(n), ast.Load)
	case "dictionary":
		return c.dict(n)
	case "parenthesized_expression":
		return c.expr(firstNamedChild(n))
	case "attribute":
		return &ast.Attribute{
			NodeBase: c.base(n),
			Value:    c.expr(n.ChildByFieldName("object")),
			Attr:     ast.Identifier(c.text(n.ChildByFieldName("attribute"))),
			Ctx:      ast.Load,
		}
	case "subscript":
		return &ast.Subscript{
			NodeBase: c.base(n),
			Value:    c.expr(n.ChildByFieldName("value")),
			Index:    c.expr(n.ChildByFieldName("subscript")),
			Ctx:      ast.Load,
		}
	case "call":
		return c.call(n)
	case "list_splat":
		return &ast.Starred{NodeBase: c.base(n), Value: c.expr(firstNamedChild(n)), Ctx: ast.Load}
	case "binary_operator", "boolean_operator":
		return &ast.Binary{
			NodeBase: c.base(n),
			Left:     c.expr(n.ChildByFieldName("left")),
			Op:       c.text(n.ChildByFieldName("operator")),
			Right:    c.expr(n.ChildByFieldName("right")),
		}
	case "comparison_operator":
		return c.comparison(n)
	case "unary_operator":
		return &ast.Unary{
			NodeBase: c.base(n),
			Op:       c.text(n.ChildByFieldName("operator")),
			Expr:     c.expr(n.ChildByFieldName("argument")),
		}
	case "not_operator":
		return &ast.Unary{NodeBase: c.base(n), Op: "not", Expr: c.expr(n.ChildByFieldName("argument"))}
	}
	return c.extension(n)
}

func (c *converter) dict(n *sitter.Node) *ast.Dict {
	dict := &ast.Dict{NodeBase: c.base(n)}
	for _, entry := range namedChildren(n) {
		switch entry.Type() {
		case "pair":
			dict.Keys = append(dict.Keys, c.expr(entry.ChildByFieldName("key")))
			dict.Values = append(dict.Values, c.expr(entry.ChildByFieldName("value")))
		case "dictionary_splat":
			dict.Keys = append(dict.Keys, nil)
			dict.Values = append(dict.Values, c.expr(firstNamedChild(entry)))
		}
	}
	return dict
}

func (c *converter) call(n *sitter.Node) *ast.Call {
	call := &ast.Call{NodeBase: c.base(n), Func: c.expr(n.ChildByFieldName("function"))}
	args := n.ChildByFieldName("arguments")
	if args == nil {
		return call
	}
	if args.Type() != "argument_list" {
		// f(x for x in xs)
		call.Args = append(call.Args, c.expr(args))
		return call
	}
	for _, arg := range namedChildren(args) {
		switch arg.Type() {
		case "keyword_argument":
			call.Keywords = append(call.Keywords, &ast.Keyword{
				NodeBase: c.base(arg),
				Name:     ast.Identifier(c.text(arg.ChildByFieldName("name"))),
				Value:    c.expr(arg.ChildByFieldName("value")),
			})
		case "dictionary_splat":
			call.Keywords = append(call.Keywords, &ast.Keyword{
				NodeBase: c.base(arg),
				Value:    c.expr(firstNamedChild(arg)),
			})
		default:
			call.Args = append(call.Args, c.argument(arg))
		}
	}
	return call
}

// argument converts a positional argument or a class base.
func (c *converter) argument(n *sitter.Node) ast.Node {
	if n.Type() == "keyword_argument" {
		return &ast.Keyword{
			NodeBase: c.base(n),
			Name:     ast.Identifier(c.text(n.ChildByFieldName("name"))),
			Value:    c.expr(n.ChildByFieldName("value")),
		}
	}
	return c.expr(n)
}

// comparison folds a chained comparison a < b <= c into nested Binary nodes.
// Operators spanning two tokens, like "not in", are joined with a space.
func (c *converter) comparison(n *sitter.Node) ast.Node {
	var operands ast.Nodes
	var ops []string
	var pending []string
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == "comment" {
			continue
		}
		if !child.IsNamed() {
			pending = append(pending, c.text(child))
			continue
		}
		if len(pending) > 0 {
			ops = append(ops, strings.Join(pending, " "))
			pending = nil
		}
		operands = append(operands, c.expr(child))
	}
	if len(operands) == 0 {
		return c.extension(n)
	}
	result := operands[0]
	for i, op := range ops {
		if i+1 >= len(operands) {
			break
		}
		result = &ast.Binary{NodeBase: c.base(n), Left: result, Op: op, Right: operands[i+1]}
	}
	return result
}

// extension wraps a construct without a dedicated node type. Blocks are
// flattened into statements so assignments inside them are still seen.
func (c *converter) extension(n *sitter.Node) *ast.Extension {
	ext := &ast.Extension{NodeBase: c.base(n), Kind: n.Type()}
	for _, child := range namedChildren(n) {
		switch {
		case child.Type() == "block":
			ext.Children = append(ext.Children, c.statements(child)...)
		case isStatement(child.Type()):
			ext.Children = append(ext.Children, c.statement(child))
		default:
			ext.Children = append(ext.Children, c.expr(child))
		}
	}
	return ext
}
