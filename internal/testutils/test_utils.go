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

// Package testutils provides golden file helpers for tests.
//
// Golden fixtures are txtar archives: the input and the expected outputs are
// files of the same archive.
package testutils

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/tools/txtar"
)

// Diff produces a pretty diff of two files
func Diff(a, b string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffPrettyText(diffs)
}

// CompareWithGolden check if a result is the same as the golden content.
// If it is not it produces a pretty diff.
func CompareWithGolden(result string, golden []byte) (string, bool) {
	if !bytes.Equal(golden, []byte(result)) {
		return Diff(result, string(golden)), true
	}
	return "", false
}

// ReadArchive parses the txtar archive at path.
func ReadArchive(path string) (*txtar.Archive, error) {
	return txtar.ParseFile(path)
}

// ArchiveFile returns the content of the named file of an archive.
func ArchiveFile(archive *txtar.Archive, name string) ([]byte, error) {
	for _, f := range archive.Files {
		if f.Name == name {
			return f.Data, nil
		}
	}
	return nil, fmt.Errorf("archive has no file %q", name)
}

// UpdateArchiveFile sets the named file of the archive at path to content,
// adding it if needed. It returns whether or not the archive was rewritten
// (i.e. the desired content was different than actual).
func UpdateArchiveFile(path string, archive *txtar.Archive, name string, content []byte) (changed bool, err error) {
	found := false
	for i := range archive.Files {
		f := &archive.Files[i]
		if f.Name != name {
			continue
		}
		if bytes.Equal(f.Data, content) {
			return false, nil
		}
		f.Data = content
		found = true
		break
	}
	if !found {
		archive.Files = append(archive.Files, txtar.File{Name: name, Data: content})
	}
	if err := os.WriteFile(path, txtar.Format(archive), 0666); err != nil {
		return false, err
	}
	return true, nil
}
