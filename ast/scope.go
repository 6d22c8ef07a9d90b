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

var (
	_ Scope = &Module{}
	_ Scope = &FunctionDef{}
	_ Scope = &For{}
	_ Scope = &If{}
	_ Scope = &With{}
)

// IsScope reports whether node introduces a scope. This is the only test
// used to make scoping decisions; any other node type, including Extension,
// is non-scoping.
func IsScope(node Node) bool {
	switch node.(type) {
	case *Module, *FunctionDef, *For, *If, *With:
		return true
	}
	return false
}

// AsScope returns node as a Scope if it introduces one.
func AsScope(node Node) (Scope, bool) {
	if !IsScope(node) {
		return nil, false
	}
	return node.(Scope), true
}

// ScopeKind returns a short lowercase description of a scope node.
func ScopeKind(scope Scope) string {
	switch scope.(type) {
	case *Module:
		return "module"
	case *FunctionDef:
		return "function"
	case *For:
		return "for"
	case *If:
		return "if"
	case *With:
		return "with"
	}
	return "unknown"
}

// ScopeName is like ScopeKind but includes the function name, e.g.
// "function build".
func ScopeName(scope Scope) string {
	if fn, ok := scope.(*FunctionDef); ok {
		return "function " + string(fn.Name)
	}
	return ScopeKind(scope)
}

// LookupVar returns the first variable declared in scope with the given
// identifier, or nil.
func LookupVar(scope Scope, id Identifier) *Name {
	if scope == nil {
		return nil
	}
	for _, v := range scope.Vars() {
		if v.ID == id {
			return v
		}
	}
	return nil
}
