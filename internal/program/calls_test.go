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
	"testing"

	"github.com/litfold/litfold/ast"
)

func sameCalls(got []*ast.Call, want ...*ast.Call) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestDetectMutationCallsAppendExtend(t *testing.T) {
	// x = []; x.append(1); x.extend([2, 3])
	x := store("x")
	appendCall := method(load("x"), "append", num("1"))
	extendCall := method(load("x"), "extend", list(num("2"), num("3")))
	Annotate(module(
		assign(list(), x),
		expr(appendCall),
		expr(extendCall),
	))

	if !sameCalls(x.Calls(), appendCall, extendCall) {
		t.Errorf("expected [append extend], got %d calls", len(x.Calls()))
	}
}

func TestDetectMutationCallsInsideFunction(t *testing.T) {
	// def build(n):
	//     out = [0]
	//     out.insert(0, n)
	//     return out
	out := store("out")
	insertCall := method(load("out"), "insert", num("0"), load("n"))
	Annotate(module(def("build", []*ast.Name{store("n")},
		assign(list(num("0")), out),
		expr(insertCall),
		&ast.Return{Value: load("out")},
	)))

	if !sameCalls(out.Calls(), insertCall) {
		t.Errorf("expected the insert call to be recorded, got %d calls", len(out.Calls()))
	}
}

func TestDetectMutationCallsNegative(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*ast.Module, []*ast.Name)
	}{
		{
			name: "method not in the mutation set",
			build: func() (*ast.Module, []*ast.Name) {
				x := store("x")
				return module(
					assign(list(num("1"), num("2"), num("3")), x),
					expr(method(load("x"), "sort")),
				), []*ast.Name{x}
			},
		},
		{
			name: "value is not a list literal",
			build: func() (*ast.Module, []*ast.Name) {
				x := store("x")
				return module(
					assign(call("compute"), x),
					expr(method(load("x"), "append", num("1"))),
				), []*ast.Name{x}
			},
		},
		{
			name: "tuple target bound to an element",
			build: func() (*ast.Module, []*ast.Name) {
				// a, b = [[], []]; a.append(1)
				a, b := store("a"), store("b")
				return module(
					assign(list(list(), list()), &ast.Tuple{Elements: ast.Nodes{a, b}, Ctx: ast.Store}),
					expr(method(load("a"), "append", num("1"))),
				), []*ast.Name{a, b}
			},
		},
		{
			name: "starred target inside a list target",
			build: func() (*ast.Module, []*ast.Name) {
				// [first, *rest] = [1, 2, 3]; rest.append(4)
				first, rest := store("first"), store("rest")
				target := &ast.List{Elements: ast.Nodes{first, &ast.Starred{Value: rest, Ctx: ast.Store}}, Ctx: ast.Store}
				return module(
					assign(list(num("1"), num("2"), num("3")), target),
					expr(method(load("rest"), "append", num("4"))),
				), []*ast.Name{first, rest}
			},
		},
		{
			name: "parameter without local assignment",
			build: func() (*ast.Module, []*ast.Name) {
				x := store("x")
				return module(def("f", []*ast.Name{x},
					expr(method(load("x"), "append", num("1"))),
				)), []*ast.Name{x}
			},
		},
		{
			name: "declared in outer function",
			build: func() (*ast.Module, []*ast.Name) {
				x := store("x")
				return module(def("outer", nil,
					assign(list(), x),
					def("inner", nil, expr(method(load("x"), "append", num("1")))),
				)), []*ast.Name{x}
			},
		},
		{
			name: "mutated inside a conditional",
			build: func() (*ast.Module, []*ast.Name) {
				x, y := store("x"), store("y")
				return module(
					assign(list(), x),
					&ast.If{
						Test: load("c"),
						Body: ast.Nodes{
							expr(method(load("x"), "append", num("1"))),
							assign(list(), y),
							expr(method(load("y"), "append", num("2"))),
						},
					},
				), []*ast.Name{x, y}
			},
		},
		{
			name: "receiver is not a bare name",
			build: func() (*ast.Module, []*ast.Name) {
				x := store("x")
				return module(
					assign(list(), x),
					expr(method(&ast.Attribute{Value: load("self"), Attr: "x", Ctx: ast.Load}, "append", num("1"))),
					expr(method(&ast.Subscript{Value: load("x"), Index: num("0"), Ctx: ast.Load}, "append", num("1"))),
				), []*ast.Name{x}
			},
		},
		{
			name: "attribute is not loaded",
			build: func() (*ast.Module, []*ast.Name) {
				x := store("x")
				return module(
					assign(list(), x),
					expr(&ast.Call{Func: &ast.Attribute{Value: load("x"), Attr: "append", Ctx: ast.Store}}),
				), []*ast.Name{x}
			},
		},
		{
			name: "target is not stored",
			build: func() (*ast.Module, []*ast.Name) {
				x := &ast.Name{ID: "x", Ctx: ast.Del}
				return module(
					assign(list(), x),
					expr(method(load("x"), "append", num("1"))),
				), []*ast.Name{x}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			root, vars := test.build()
			Annotate(root)
			for _, v := range vars {
				if len(v.Calls()) != 0 {
					t.Errorf("unexpected calls recorded on %s: %d", v.ID, len(v.Calls()))
				}
			}
		})
	}
}

func TestDetectMutationCallsMissingDeclaration(t *testing.T) {
	// Neither a lookup miss nor a plain function call may fail.
	root := module(
		expr(method(load("undeclared"), "append", num("1"))),
		expr(call("print", num("1"))),
		expr(&ast.Call{Func: &ast.Extension{Kind: "lambda"}}),
	)
	Annotate(root)
	if len(root.Vars()) != 0 {
		t.Errorf("unexpected module variables %v", names(root.Vars()))
	}
}

func TestDetectMutationCallsMultiTarget(t *testing.T) {
	// a = b = []; a.append(1); b.append(2)
	a, b := store("a"), store("b")
	appendA := method(load("a"), "append", num("1"))
	appendB := method(load("b"), "append", num("2"))
	Annotate(module(
		assign(list(), a, b),
		expr(appendA),
		expr(appendB),
	))

	if !sameCalls(a.Calls(), appendA) {
		t.Errorf("unexpected calls on a: %d", len(a.Calls()))
	}
	if !sameCalls(b.Calls(), appendB) {
		t.Errorf("unexpected calls on b: %d", len(b.Calls()))
	}
}

func TestDetectMutationCallsNestedArguments(t *testing.T) {
	// x = []; y = []; x.append(y.append(1))
	x, y := store("x"), store("y")
	inner := method(load("y"), "append", num("1"))
	outer := method(load("x"), "append", inner)
	Annotate(module(
		assign(list(), x),
		assign(list(), y),
		expr(outer),
	))

	if !sameCalls(x.Calls(), outer) {
		t.Errorf("outer call not recorded on x")
	}
	if !sameCalls(y.Calls(), inner) {
		t.Errorf("nested call not recorded on y")
	}
}

func TestDetectMutationCallsFirstDeclarationWins(t *testing.T) {
	// x = []; x = compute(); x.append(1)
	first, second := store("x"), store("x")
	appendCall := method(load("x"), "append", num("1"))
	Annotate(module(
		assign(list(), first),
		assign(call("compute"), second),
		expr(appendCall),
	))

	if !sameCalls(first.Calls(), appendCall) {
		t.Errorf("expected the call on the first declaration")
	}
	if len(second.Calls()) != 0 {
		t.Errorf("later declaration must not receive calls")
	}
}

func TestDetectMutationCallsForLoopScope(t *testing.T) {
	// for i in r:
	//     acc = []
	//     acc.append(i)
	acc := store("acc")
	appendCall := method(load("acc"), "append", load("i"))
	loop := &ast.For{
		Target: store("i"),
		Iter:   load("r"),
		Body:   ast.Nodes{assign(list(), acc), expr(appendCall)},
	}
	Annotate(module(loop))

	if !sameCalls(acc.Calls(), appendCall) {
		t.Errorf("expected the call to be recorded inside the loop scope")
	}
}

func TestParseMutationMethod(t *testing.T) {
	for _, name := range []string{"append", "extend", "insert"} {
		m, ok := ParseMutationMethod(name)
		if !ok || m.String() != name {
			t.Errorf("%s: got %v, %v", name, m, ok)
		}
	}
	for _, name := range []string{"sort", "pop", "remove", "add", "Append", ""} {
		if _, ok := ParseMutationMethod(name); ok {
			t.Errorf("%q must not be a mutation method", name)
		}
	}
}
