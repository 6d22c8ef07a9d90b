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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessArgs(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		status processArgsStatus
		conf   config
		err    string
	}{
		{
			name:   "files",
			args:   []string{"a.py", "b.py"},
			status: processArgsStatusContinue,
			conf:   config{inputFiles: []string{"a.py", "b.py"}, format: formatText},
		},
		{
			name:   "combined short options",
			args:   []string{"-vf", "yaml", "a.py"},
			status: processArgsStatusContinue,
			conf:   config{inputFiles: []string{"a.py"}, format: formatYAML, verbose: true},
		},
		{
			name:   "output file and no color",
			args:   []string{"--no-color", "-o", "out.txt", "a.py"},
			status: processArgsStatusContinue,
			conf:   config{inputFiles: []string{"a.py"}, outputFile: "out.txt", format: formatText, noColor: true},
		},
		{
			name:   "double dash",
			args:   []string{"--", "-weird.py"},
			status: processArgsStatusContinue,
			conf:   config{inputFiles: []string{"-weird.py"}, format: formatText},
		},
		{
			name:   "empty long format",
			args:   []string{"--format", "", "a.py"},
			status: processArgsStatusFailure,
			conf:   config{format: formatText},
			err:    "--format argument was empty string",
		},
		{
			name:   "missing output file",
			args:   []string{"a.py", "--output-file"},
			status: processArgsStatusFailure,
			conf:   config{format: formatText},
			err:    "--output-file argument was empty string",
		},
		{
			name:   "empty short output file",
			args:   []string{"-o", "", "a.py"},
			status: processArgsStatusFailure,
			conf:   config{format: formatText},
			err:    "-o argument was empty string",
		},
		{
			name:   "help",
			args:   []string{"--help"},
			status: processArgsStatusSuccessUsage,
			conf:   config{format: formatText},
		},
		{
			name:   "no files",
			args:   []string{"-v"},
			status: processArgsStatusFailureUsage,
			conf:   config{format: formatText, verbose: true},
			err:    "must give filename",
		},
		{
			name:   "unknown option",
			args:   []string{"--frobnicate", "a.py"},
			status: processArgsStatusFailure,
			conf:   config{format: formatText},
			err:    "unrecognized argument: --frobnicate",
		},
		{
			name:   "unknown format",
			args:   []string{"-f", "json", "a.py"},
			status: processArgsStatusFailure,
			conf:   config{format: "json"},
			err:    `unknown format "json"`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			conf := config{format: formatText}
			var out bytes.Buffer
			status, err := processArgs(test.args, &conf, &out)
			assert.Equal(t, test.status, status)
			if test.err == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.err)
			}
			assert.Equal(t, test.conf, conf)
		})
	}
}

func TestProcessArgsVersion(t *testing.T) {
	conf := makeConfig()
	var out bytes.Buffer
	status, err := processArgs([]string{"--version"}, &conf, &out)
	require.NoError(t, err)
	assert.Equal(t, processArgsStatus(processArgsStatusSuccess), status)
	assert.True(t, strings.HasPrefix(out.String(), "litfold v"))
}

func TestMakeConfigFormatFromEnv(t *testing.T) {
	t.Setenv("LITFOLD_FORMAT", "YAML")
	assert.Equal(t, formatYAML, makeConfig().format)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunText(t *testing.T) {
	t.Setenv("LITFOLD_FORMAT", "")
	dir := t.TempDir()
	path := writeFile(t, dir, "a.py", "x = [1]\nx.append(2)\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-color", path}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, path+":1:1: list x (module) grows by 1 call(s): append\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunYAMLToOutputFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.yaml")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-color", "-v", "-f", "yaml", "-o", out, "-"},
		strings.NewReader("def f():\n    items = []\n    items.extend([1])\n"), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "variable: items")
	assert.Contains(t, string(data), "scope: function f")
	assert.Contains(t, stderr.String(), "read - (")
	assert.Contains(t, stderr.String(), "1 candidate(s) in 1 file(s)")
}

func TestRunSyntaxError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.py", "x = [1,\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-color", path}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "ERROR:")
	assert.Contains(t, stderr.String(), "bad.py")
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-color", filepath.Join(t.TempDir(), "missing.py")}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "failed to read")
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"--no-color"}, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stderr.String(), "must give filename")
	assert.Contains(t, stderr.String(), "litfold {<option>} <filename>...")

	stdout.Reset()
	stderr.Reset()
	assert.Equal(t, 0, run([]string{"-h"}, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Available options:")
}

func TestRunDump(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.py", "x = [1]\nx.append(2)\nwith open(x) as fh:\n    lines = []\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-color", "--dump", path}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "# "+path+"\nModule @"))
	assert.Contains(t, stdout.String(), "scope=module assigned@1:1 calls=1")
	assert.Contains(t, stdout.String(), "scope=with vars=[fh lines]")
	assert.Contains(t, stdout.String(), "Items[0]: WithItem\n")
}

func TestCloseWith(t *testing.T) {
	errWrite := errors.New("write failed")
	errClose := errors.New("close failed")
	closeOK := func() error { return nil }
	closeFails := func() error { return errClose }

	assert.NoError(t, closeWith(nil, closeOK))
	assert.Equal(t, errClose, closeWith(nil, closeFails))
	assert.Equal(t, errWrite, closeWith(errWrite, closeFails))

	closed := false
	assert.Equal(t, errWrite, closeWith(errWrite, func() error { closed = true; return nil }))
	assert.True(t, closed)
}
