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

// scopeTagger sets the enclosing scope of every node. The stack belongs to a
// single traversal.
type scopeTagger struct {
	pass.Base
	stack  []ast.Scope
	pushes int
	pops   int
}

// enter pushes node if it is a scope. The returned function pops it again.
func (t *scopeTagger) enter(node ast.Node) func() {
	scope, ok := ast.AsScope(node)
	if !ok {
		return func() {}
	}
	t.stack = append(t.stack, scope)
	t.pushes++
	return func() {
		t.stack = t.stack[:len(t.stack)-1]
		t.pops++
	}
}

func (t *scopeTagger) current() ast.Scope {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1]
}

func (t *scopeTagger) Visit(p pass.CompilerPass, node ast.Node, ctx pass.Context) {
	if node == nil {
		return
	}
	defer t.enter(node)()
	node.SetEnclosingScope(t.current())
	t.Base.Visit(p, node, ctx)
}

// TagScopes sets the enclosing scope of every node reachable from root.
// A scope node is its own enclosing scope.
func TagScopes(root *ast.Module) *ast.Module {
	t := &scopeTagger{}
	t.File(t, root)
	return root
}
