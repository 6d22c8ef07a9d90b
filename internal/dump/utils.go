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

package dump

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

func mustWrite(w io.Writer, data []byte) {
	if _, err := w.Write(data); err != nil {
		panic(err)
	}
}

func printBool(w io.Writer, value bool) {
	mustWrite(w, []byte(strconv.FormatBool(value)))
}

func printInt(w io.Writer, val reflect.Value, stripPackageName bool) {
	typeName := val.Type().String()
	if stripPackageName && strings.HasPrefix(typeName, "ast.") {
		typeName = typeName[4:]
	}
	mustWrite(w, []byte(fmt.Sprintf("%s(%s)", typeName, strconv.FormatInt(val.Int(), 10))))
}

func printString(w io.Writer, value string) {
	mustWrite(w, []byte(strconv.Quote(value)))
}

func printNil(w io.Writer) {
	mustWrite(w, []byte("nil"))
}

// deInterface returns values inside of non-nil interfaces when possible.
func deInterface(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
