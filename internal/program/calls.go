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

// mutationCallDetector records list mutation calls on the variables they
// mutate.
type mutationCallDetector struct {
	pass.Base
}

func (d *mutationCallDetector) Call(p pass.CompilerPass, node *ast.Call, ctx pass.Context) {
	if v := MutatedListVar(node); v != nil {
		v.AddCall(node)
	}
	d.Base.Call(p, node, ctx)
}

// MutationReceiver matches receiver.method(...) where receiver is a bare
// name and method is a mutation method.
func MutationReceiver(call *ast.Call) (*ast.Name, MutationMethod, bool) {
	attr, ok := call.Func.(*ast.Attribute)
	if !ok || attr.Ctx != ast.Load {
		return nil, 0, false
	}
	receiver, ok := attr.Value.(*ast.Name)
	if !ok {
		return nil, 0, false
	}
	method, ok := ParseMutationMethod(string(attr.Attr))
	if !ok {
		return nil, 0, false
	}
	return receiver, method, true
}

// MutatedListVar returns the variable mutated by call when call matches the
// mutation shape and the variable was declared in the call's own scope from
// a list literal. Otherwise it returns nil.
func MutatedListVar(call *ast.Call) *ast.Name {
	receiver, _, ok := MutationReceiver(call)
	if !ok {
		return nil
	}
	v := ast.LookupVar(call.EnclosingScope(), receiver.ID)
	if v == nil || !isListAssignment(v) {
		return nil
	}
	return v
}

// isListAssignment reports whether v is bound as a whole to a list literal.
// Names inside destructuring targets are bound to parts of the value and
// never match.
func isListAssignment(v *ast.Name) bool {
	assign := v.AssignedFrom()
	if assign == nil || len(assign.Targets) == 0 {
		return false
	}
	if _, ok := assign.Value.(*ast.List); !ok {
		return false
	}
	if !isDirectTarget(assign, v) {
		return false
	}
	ctx, ok := exprContext(assign.Targets[0])
	return ok && ctx == ast.Store
}

func isDirectTarget(assign *ast.Assign, v *ast.Name) bool {
	for _, target := range assign.Targets {
		if name, ok := target.(*ast.Name); ok && name == v {
			return true
		}
	}
	return false
}

func exprContext(node ast.Node) (ast.ExprContext, bool) {
	switch node := node.(type) {
	case *ast.Name:
		return node.Ctx, true
	case *ast.Attribute:
		return node.Ctx, true
	case *ast.Subscript:
		return node.Ctx, true
	case *ast.Starred:
		return node.Ctx, true
	case *ast.List:
		return node.Ctx, true
	case *ast.Tuple:
		return node.Ctx, true
	}
	return 0, false
}

// DetectMutationCalls records every list mutation call of root against the
// variable it mutates. root must be scope-tagged and have its variables
// collected.
func DetectMutationCalls(root *ast.Module) *ast.Module {
	d := &mutationCallDetector{}
	d.File(d, root)
	return root
}
