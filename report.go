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

package litfold

import (
	"fmt"
	"io"
	"strings"

	"github.com/minio/highwayhash"
	"sigs.k8s.io/yaml"

	"github.com/litfold/litfold/ast"
	"github.com/litfold/litfold/internal/program"
	"github.com/litfold/litfold/pass"
)

// CallSite is a recorded mutation call.
type CallSite struct {
	Method string `json:"method"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Candidate is a variable initialized from a list literal and grown by
// mutation calls in the same scope.
type Candidate struct {
	ID       string     `json:"id,omitempty"`
	Variable string     `json:"variable"`
	Scope    string     `json:"scope"`
	Line     int        `json:"line"`
	Column   int        `json:"column"`
	Elements int        `json:"elements"`
	Calls    []CallSite `json:"calls"`
}

// FileReport holds the candidates of one source file.
type FileReport struct {
	File       string      `json:"file"`
	Candidates []Candidate `json:"candidates"`
}

// Report holds the candidates of a batch of files, in input order.
type Report struct {
	Files []FileReport `json:"files"`
}

// YAML serializes the report.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// Text writes one line per candidate.
func (r *Report) Text(w io.Writer) error {
	for _, f := range r.Files {
		for _, c := range f.Candidates {
			methods := make([]string, 0, len(c.Calls))
			for _, call := range c.Calls {
				methods = append(methods, call.Method)
			}
			_, err := fmt.Fprintf(w, "%s:%d:%d: list %s (%s) grows by %d call(s): %s\n",
				f.File, c.Line, c.Column, c.Variable, c.Scope, len(c.Calls), strings.Join(methods, ", "))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Count returns the total number of candidates.
func (r *Report) Count() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Candidates)
	}
	return n
}

// candidateCollector walks the scopes of an annotated tree.
type candidateCollector struct {
	pass.Base
	filename   string
	candidates []Candidate
}

func (c *candidateCollector) Visit(p pass.CompilerPass, node ast.Node, ctx pass.Context) {
	if scope, ok := ast.AsScope(node); ok {
		for _, v := range scope.Vars() {
			if len(v.Calls()) > 0 {
				c.candidates = append(c.candidates, c.candidate(scope, v))
			}
		}
	}
	c.Base.Visit(p, node, ctx)
}

func (c *candidateCollector) candidate(scope ast.Scope, v *ast.Name) Candidate {
	loc := v.Loc()
	cand := Candidate{
		ID:       candidateID(c.filename, v),
		Variable: string(v.ID),
		Scope:    ast.ScopeName(scope),
		Line:     loc.Begin.Line,
		Column:   loc.Begin.Column,
	}
	if assign := v.AssignedFrom(); assign != nil {
		if list, ok := assign.Value.(*ast.List); ok {
			cand.Elements = len(list.Elements)
		}
	}
	for _, call := range v.Calls() {
		site := CallSite{Line: call.Loc().Begin.Line, Column: call.Loc().Begin.Column}
		if _, method, ok := program.MutationReceiver(call); ok {
			site.Method = method.String()
		}
		cand.Calls = append(cand.Calls, site)
	}
	return cand
}

// Collect returns the candidates of an annotated tree, scope by scope in
// source order.
func Collect(filename string, root *ast.Module) []Candidate {
	c := &candidateCollector{filename: filename, candidates: []Candidate{}}
	c.File(c, root)
	return c.candidates
}

var hashKey = []byte("litfold-candidate-id-key-0123456")

// candidateID identifies a candidate by file, position and name, so it stays
// stable across runs over the same source.
func candidateID(filename string, v *ast.Name) string {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		panic(fmt.Sprintf("INTERNAL ERROR: %v", err))
	}
	loc := v.Loc()
	fmt.Fprintf(hash, "%s:%d:%d:%s", filename, loc.Begin.Line, loc.Begin.Column, v.ID)
	return fmt.Sprintf("%016x", hash.Sum64())
}
