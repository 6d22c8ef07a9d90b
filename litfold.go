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

// Package litfold annotates Python syntax trees with the information needed
// to fold list-building mutation sequences into list literals.
//
// The pipeline consists of three passes which must run in order:
//
//	root = litfold.TagScopes(root)
//	root = litfold.CollectVariables(root)
//	root = litfold.DetectMutationCalls(root)
//
// Annotate runs all three. Afterwards, every variable initialized from a list
// literal and mutated with append, extend or insert in the same scope carries
// the mutation calls in program order (ast.Name.Calls).
package litfold

import (
	"github.com/litfold/litfold/ast"
	"github.com/litfold/litfold/internal/program"
	"github.com/litfold/litfold/parser"
)

// Note: this needs to be in sync with the release tags.
const version = "v0.1.0"

// Version returns the litfold version number.
func Version() string {
	return version
}

// SnippetToAST parses Python source into an unannotated syntax tree.
func SnippetToAST(filename string, snippet string) (*ast.Module, error) {
	return parser.SnippetToAST(filename, snippet)
}

// TagScopes sets the enclosing scope of every node in root.
func TagScopes(root *ast.Module) *ast.Module {
	return program.TagScopes(root)
}

// CollectVariables fills the variable list of every scope in root. It needs
// the annotations of TagScopes.
func CollectVariables(root *ast.Module) *ast.Module {
	return program.CollectVariables(root)
}

// DetectMutationCalls records list mutation calls against the variables they
// mutate. It needs the annotations of TagScopes and CollectVariables.
func DetectMutationCalls(root *ast.Module) *ast.Module {
	return program.DetectMutationCalls(root)
}

// Annotate runs TagScopes, CollectVariables and DetectMutationCalls.
func Annotate(root *ast.Module) *ast.Module {
	return program.Annotate(root)
}
