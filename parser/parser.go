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

// Package parser builds litfold syntax trees from Python source using
// tree-sitter.
package parser

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/litfold/litfold/ast"
	"github.com/litfold/litfold/internal/errors"
)

// Parse converts Python source to a Module. Syntax errors are returned as
// errors.StaticError located at the first erroneous node.
func Parse(ctx context.Context, filename string, src []byte) (*ast.Module, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	c := &converter{filename: filename, src: src}
	root := tree.RootNode()
	if root.HasError() {
		return nil, c.syntaxError(root)
	}
	return c.module(root), nil
}

// SnippetToAST converts a Python code snippet to a Module.
func SnippetToAST(filename string, snippet string) (*ast.Module, error) {
	return Parse(context.Background(), filename, []byte(snippet))
}

// converter maps tree-sitter nodes onto ast nodes for one source file.
type converter struct {
	filename string
	src      []byte
}

func (c *converter) loc(n *sitter.Node) ast.LocationRange {
	begin, end := n.StartPoint(), n.EndPoint()
	return ast.MakeLocationRange(
		c.filename,
		ast.Location{Line: int(begin.Row) + 1, Column: int(begin.Column) + 1},
		ast.Location{Line: int(end.Row) + 1, Column: int(end.Column) + 1},
	)
}

func (c *converter) base(n *sitter.Node) ast.NodeBase {
	return ast.NewNodeBaseLoc(c.loc(n))
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

// namedChildren returns the named children of n without comments.
func namedChildren(n *sitter.Node) []*sitter.Node {
	var children []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func firstNamedChild(n *sitter.Node) *sitter.Node {
	children := namedChildren(n)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

func (c *converter) syntaxError(root *sitter.Node) error {
	bad := findError(root)
	if bad == nil {
		return errors.MakeStaticError("syntax error", c.loc(root))
	}
	if bad.IsMissing() {
		return errors.MakeStaticErrorPoint(fmt.Sprintf("syntax error: missing %s", bad.Type()), c.filename, c.loc(bad).Begin)
	}
	near := strings.TrimSpace(c.text(bad))
	if i := strings.IndexByte(near, '\n'); i >= 0 {
		near = near[:i]
	}
	if len(near) > 20 {
		near = near[:20] + "..."
	}
	return errors.MakeStaticError(fmt.Sprintf("syntax error near %q", near), c.loc(bad))
}

// findError returns the first ERROR or missing node in source order.
func findError(n *sitter.Node) *sitter.Node {
	if n.IsMissing() || n.Type() == "ERROR" {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.HasError() && !child.IsMissing() {
			continue
		}
		if bad := findError(child); bad != nil {
			return bad
		}
	}
	return nil
}
