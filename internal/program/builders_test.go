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

package program

import (
	"github.com/litfold/litfold/ast"
)

// Small constructors for hand-built trees.

func load(id ast.Identifier) *ast.Name {
	return &ast.Name{ID: id, Ctx: ast.Load}
}

func store(id ast.Identifier) *ast.Name {
	return &ast.Name{ID: id, Ctx: ast.Store}
}

func num(v string) *ast.Literal {
	return &ast.Literal{Kind: ast.LiteralNumber, Value: v}
}

func list(elems ...ast.Node) *ast.List {
	return &ast.List{Elements: elems, Ctx: ast.Load}
}

func assign(value ast.Node, targets ...ast.Node) *ast.Assign {
	return &ast.Assign{Targets: targets, Value: value}
}

func method(receiver ast.Node, name ast.Identifier, args ...ast.Node) *ast.Call {
	return &ast.Call{
		Func: &ast.Attribute{Value: receiver, Attr: name, Ctx: ast.Load},
		Args: args,
	}
}

func call(fn ast.Identifier, args ...ast.Node) *ast.Call {
	return &ast.Call{Func: load(fn), Args: args}
}

func expr(value ast.Node) *ast.ExprStmt {
	return &ast.ExprStmt{Value: value}
}

func module(body ...ast.Node) *ast.Module {
	return &ast.Module{Body: body}
}

func def(name ast.Identifier, params []*ast.Name, body ...ast.Node) *ast.FunctionDef {
	return &ast.FunctionDef{Name: name, Params: params, Body: body}
}

func names(ns []*ast.Name) []ast.Identifier {
	var ids []ast.Identifier
	for _, n := range ns {
		ids = append(ids, n.ID)
	}
	return ids
}

func sameIdentifiers(a, b []ast.Identifier) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
