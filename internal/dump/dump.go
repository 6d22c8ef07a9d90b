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

// Package dump prints an annotated syntax tree in an indented, line-per-node
// form. Child nodes are discovered through the exported fields of each node,
// so the non-owning annotation pointers never cause cycles.
package dump

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/litfold/litfold/ast"
)

const indentWidth = 2

type dumper struct {
	w io.Writer
}

// Dump writes node and everything below it to w, one line per node or field.
// Each node line carries its location and the annotations computed by the
// pipeline: enclosing scope, declared variables and recorded calls.
func Dump(w io.Writer, node ast.Node) {
	d := dumper{w: w}
	d.value("", reflect.ValueOf(&node).Elem(), 0)
}

func (d *dumper) label(label string, depth int) {
	mustWrite(d.w, []byte(strings.Repeat(" ", depth*indentWidth)))
	if label != "" {
		mustWrite(d.w, []byte(label+": "))
	}
}

func (d *dumper) newline() {
	mustWrite(d.w, []byte("\n"))
}

// asNode returns val as an ast.Node.
func asNode(val reflect.Value) (ast.Node, bool) {
	if val.Kind() != reflect.Ptr || !val.CanInterface() {
		return nil, false
	}
	node, ok := val.Interface().(ast.Node)
	return node, ok
}

func (d *dumper) value(label string, val reflect.Value, depth int) {
	if isNilValue(val) {
		d.label(label, depth)
		printNil(d.w)
		d.newline()
		return
	}
	val = deInterface(val)
	if node, ok := asNode(val); ok {
		d.node(label, node, depth)
		return
	}
	switch val.Kind() {
	case reflect.Slice:
		for i := 0; i < val.Len(); i++ {
			d.value(fmt.Sprintf("%s[%d]", label, i), val.Index(i), depth)
		}
		return
	case reflect.Ptr:
		d.value(label, val.Elem(), depth)
		return
	case reflect.Struct:
		// Plain structs such as With.Items carry no annotations.
		d.label(label, depth)
		mustWrite(d.w, []byte(val.Type().Name()))
		d.newline()
		d.fields(val, depth+1)
		return
	}

	d.label(label, depth)
	if val.CanInterface() {
		if s, ok := val.Interface().(fmt.Stringer); ok {
			mustWrite(d.w, []byte(s.String()))
			d.newline()
			return
		}
	}
	switch val.Kind() {
	case reflect.Bool:
		printBool(d.w, val.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		printInt(d.w, val, true)
	case reflect.String:
		printString(d.w, val.String())
	default:
		panic(fmt.Sprintf("INTERNAL ERROR: cannot dump value of kind %v", val.Kind()))
	}
	d.newline()
}

func (d *dumper) node(label string, node ast.Node, depth int) {
	v := reflect.ValueOf(node).Elem()
	d.label(label, depth)
	mustWrite(d.w, []byte(v.Type().Name()))
	mustWrite(d.w, []byte(annotations(node)))
	d.newline()

	d.fields(v, depth+1)
}

func (d *dumper) fields(v reflect.Value, depth int) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous || !field.IsExported() {
			continue
		}
		d.value(field.Name, v.Field(i), depth)
	}
}

func names(vars []*ast.Name) string {
	ids := make([]string, 0, len(vars))
	for _, v := range vars {
		ids = append(ids, string(v.ID))
	}
	return "[" + strings.Join(ids, " ") + "]"
}

func annotations(node ast.Node) string {
	var sb strings.Builder
	if loc := *node.Loc(); loc.IsSet() {
		loc.FileName = ""
		sb.WriteString(" @" + loc.String())
	}
	if scope := node.EnclosingScope(); scope != nil {
		sb.WriteString(" scope=" + strings.ReplaceAll(ast.ScopeName(scope), " ", ":"))
	}
	if scope, ok := ast.AsScope(node); ok {
		sb.WriteString(" vars=" + names(scope.Vars()))
	}
	switch node := node.(type) {
	case *ast.If:
		sb.WriteString(" then=" + names(node.ThenVars()) + " else=" + names(node.ElseVars()))
	case *ast.Name:
		if assign := node.AssignedFrom(); assign != nil {
			sb.WriteString(" assigned")
			if assign.Loc().IsSet() {
				sb.WriteString("@" + assign.Loc().Begin.String())
			}
		}
		if calls := node.Calls(); len(calls) > 0 {
			sb.WriteString(fmt.Sprintf(" calls=%d", len(calls)))
		}
	}
	return sb.String()
}
