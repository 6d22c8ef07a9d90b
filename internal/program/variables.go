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
	"github.com/litfold/litfold/pass"
)

// variableCollector fills the variable lists of scope nodes.
type variableCollector struct {
	pass.Base
}

func (c *variableCollector) Module(p pass.CompilerPass, node *ast.Module, ctx pass.Context) {
	node.SetVars(nil)
	c.Base.Module(p, node, ctx)
}

func (c *variableCollector) FunctionDef(p pass.CompilerPass, node *ast.FunctionDef, ctx pass.Context) {
	node.SetVars(append([]*ast.Name(nil), node.Params...))
	c.Base.FunctionDef(p, node, ctx)
}

func (c *variableCollector) For(p pass.CompilerPass, node *ast.For, ctx pass.Context) {
	node.SetVars(declaredNames(node.Target, nil))
	c.Base.For(p, node, ctx)
}

func (c *variableCollector) With(p pass.CompilerPass, node *ast.With, ctx pass.Context) {
	var vars []*ast.Name
	for _, item := range node.Items {
		vars = declaredNames(item.OptionalVars, vars)
	}
	node.SetVars(vars)
	c.Base.With(p, node, ctx)
}

// If keeps the declarations of each branch apart. Its own list ends up
// empty, so lookups through the enclosing scope never see branch-local
// variables.
func (c *variableCollector) If(p pass.CompilerPass, node *ast.If, ctx pass.Context) {
	node.SetVars(nil)
	p.Visit(p, node.Test, ctx)
	p.Statements(p, node.Body, ctx)
	thenVars := node.Vars()

	node.SetVars(nil)
	p.Statements(p, node.Orelse, ctx)
	elseVars := node.Vars()

	node.SetBranchVars(thenVars, elseVars)
	node.SetVars(nil)
}

func (c *variableCollector) Assign(p pass.CompilerPass, node *ast.Assign, ctx pass.Context) {
	scope := node.EnclosingScope()
	for _, target := range node.Targets {
		for _, name := range declaredNames(target, nil) {
			name.SetAssignedFrom(node)
			if scope != nil {
				scope.AddVar(name)
			}
		}
	}
	c.Base.Assign(p, node, ctx)
}

// declaredNames appends the names bound by target to names. Tuple and list
// targets are expanded element by element; attribute and subscript targets
// bind nothing.
func declaredNames(target ast.Node, names []*ast.Name) []*ast.Name {
	switch target := target.(type) {
	case *ast.Name:
		names = append(names, target)
	case *ast.Tuple:
		for _, elem := range target.Elements {
			names = declaredNames(elem, names)
		}
	case *ast.List:
		for _, elem := range target.Elements {
			names = declaredNames(elem, names)
		}
	case *ast.Starred:
		names = declaredNames(target.Value, names)
	}
	return names
}

// CollectVariables computes the variable list of every scope in root and
// links assignment targets to their assignment. root must be scope-tagged.
func CollectVariables(root *ast.Module) *ast.Module {
	c := &variableCollector{}
	c.File(c, root)
	return root
}
