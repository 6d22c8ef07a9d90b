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

// Package program implements the annotation passes run over a parsed module.
//
// The passes must run in order: TagScopes, CollectVariables,
// DetectMutationCalls. Each one reads annotations produced by the previous
// ones. Running them out of order gives incomplete annotations, not errors.
package program

import (
	"github.com/litfold/litfold/ast"
)

// Annotate runs all passes over root and returns it.
func Annotate(root *ast.Module) *ast.Module {
	TagScopes(root)
	CollectVariables(root)
	DetectMutationCalls(root)
	return root
}
