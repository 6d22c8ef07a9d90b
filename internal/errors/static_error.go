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

// Package errors defines the errors reported about source text.
package errors

import (
	"fmt"

	"github.com/litfold/litfold/ast"
)

//////////////////////////////////////////////////////////////////////////////
// StaticError

// StaticError represents an error found while parsing some source, before any
// annotation takes place.
type StaticError struct {
	Loc ast.LocationRange
	Msg string
}

// MakeStaticErrorPoint returns a StaticError with a message and a single point
// location.
func MakeStaticErrorPoint(msg string, fn string, l ast.Location) StaticError {
	return StaticError{Msg: msg, Loc: ast.MakeLocationRange(fn, l, l)}
}

// MakeStaticError returns a StaticError with a message and a LocationRange.
func MakeStaticError(msg string, lr ast.LocationRange) StaticError {
	return StaticError{Msg: msg, Loc: lr}
}

func (err StaticError) Error() string {
	loc := ""
	if err.Loc.IsSet() {
		loc = err.Loc.String()
	}
	return fmt.Sprintf("%v %v", loc, err.Msg)
}
