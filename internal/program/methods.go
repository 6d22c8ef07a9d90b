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

import "fmt"

// MutationMethod is a list method that grows its receiver in place.
// The set is closed.
type MutationMethod int

const (
	MethodAppend MutationMethod = iota
	MethodExtend
	MethodInsert
)

var mutationMethodStrings = []string{
	MethodAppend: "append",
	MethodExtend: "extend",
	MethodInsert: "insert",
}

var mutationMethodMap = map[string]MutationMethod{
	"append": MethodAppend,
	"extend": MethodExtend,
	"insert": MethodInsert,
}

func (m MutationMethod) String() string {
	if m < 0 || int(m) >= len(mutationMethodStrings) {
		panic(fmt.Sprintf("INTERNAL ERROR: Unrecognised mutation method: %d", m))
	}
	return mutationMethodStrings[m]
}

// ParseMutationMethod returns the mutation method called name, if any.
func ParseMutationMethod(name string) (MutationMethod, bool) {
	m, ok := mutationMethodMap[name]
	return m, ok
}
