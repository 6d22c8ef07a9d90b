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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/viant/afs"

	"github.com/litfold/litfold"
	"github.com/litfold/litfold/cmd/internal/cmd"
	"github.com/litfold/litfold/internal/dump"
	"github.com/litfold/litfold/parser"
)

func version(o io.Writer) {
	fmt.Fprintf(o, "litfold %s\n", litfold.Version())
}

func usage(o io.Writer) {
	version(o)
	fmt.Fprintln(o)
	fmt.Fprintln(o, "litfold {<option>} <filename>...")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "Finds Python lists that are built by append/extend/insert right after")
	fmt.Fprintln(o, "being initialized from a list literal.")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "Available options:")
	fmt.Fprintln(o, "  -h / --help                This message")
	fmt.Fprintln(o, "  -d / --dump                Print the annotated syntax tree instead of the report")
	fmt.Fprintln(o, "  -f / --format <format>     Output format: text (default) or yaml")
	fmt.Fprintln(o, "  -o / --output-file <file>  Write to the output file rather than stdout")
	fmt.Fprintln(o, "  -v / --verbose             Report progress on stderr")
	fmt.Fprintln(o, "  --no-color                 Disable colored diagnostics")
	fmt.Fprintln(o, "  --version                  Print version")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "Environment variables:")
	fmt.Fprintln(o, "  LITFOLD_FORMAT sets the default output format. --format takes precedence.")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "In all cases:")
	fmt.Fprintln(o, "  <filename> can be - (stdin), a path, or a URL such as file:///src/a.py")
	fmt.Fprintln(o, "  Multichar options are expanded e.g. -abc becomes -a -b -c.")
	fmt.Fprintln(o, "  The -- option suppresses option processing for subsequent arguments.")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "Exit code:")
	fmt.Fprintln(o, "  0 – If all files were analyzed.")
	fmt.Fprintln(o, "  1 – If errors occured which prevented the analysis (e.g. a syntax error).")
}

const (
	formatText = "text"
	formatYAML = "yaml"
)

type config struct {
	inputFiles []string
	outputFile string
	format     string
	noColor    bool
	verbose    bool
	dump       bool
}

func makeConfig() config {
	conf := config{format: formatText}
	if format := os.Getenv("LITFOLD_FORMAT"); format != "" {
		conf.format = strings.ToLower(format)
	}
	return conf
}

type processArgsStatus int

const (
	processArgsStatusContinue     = iota
	processArgsStatusSuccessUsage = iota
	processArgsStatusFailureUsage = iota
	processArgsStatusSuccess      = iota
	processArgsStatusFailure      = iota
)

func processArgs(givenArgs []string, conf *config, o io.Writer) (processArgsStatus, error) {
	args := cmd.SimplifyArgs(givenArgs)
	remainingArgs := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "-h" || arg == "--help" {
			return processArgsStatusSuccessUsage, nil
		} else if arg == "--version" {
			version(o)
			return processArgsStatusSuccess, nil
		} else if arg == "-v" || arg == "--verbose" {
			conf.verbose = true
		} else if arg == "-d" || arg == "--dump" {
			conf.dump = true
		} else if arg == "--no-color" {
			conf.noColor = true
		} else if arg == "-f" || arg == "--format" {
			format := strings.ToLower(cmd.NextArg(&i, args))
			if len(format) == 0 {
				return processArgsStatusFailure, fmt.Errorf("%s argument was empty string", arg)
			}
			conf.format = format
		} else if arg == "-o" || arg == "--output-file" {
			outputFile := cmd.NextArg(&i, args)
			if len(outputFile) == 0 {
				return processArgsStatusFailure, fmt.Errorf("%s argument was empty string", arg)
			}
			conf.outputFile = outputFile
		} else if arg == "--" {
			// All subsequent args are not options.
			i++
			for ; i < len(args); i++ {
				remainingArgs = append(remainingArgs, args[i])
			}
			break
		} else if len(arg) > 1 && arg[0] == '-' {
			return processArgsStatusFailure, fmt.Errorf("unrecognized argument: %s", arg)
		} else {
			remainingArgs = append(remainingArgs, arg)
		}
	}

	if conf.format != formatText && conf.format != formatYAML {
		return processArgsStatusFailure, fmt.Errorf("unknown format %q, want %s or %s", conf.format, formatText, formatYAML)
	}

	if len(remainingArgs) == 0 {
		return processArgsStatusFailureUsage, fmt.Errorf("must give filename")
	}
	conf.inputFiles = remainingArgs
	return processArgsStatusContinue, nil
}

// readInput loads a file from stdin, a local path or any URL afs supports.
func readInput(ctx context.Context, fs afs.Service, name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	location := name
	if !strings.Contains(location, "://") {
		abs, err := filepath.Abs(location)
		if err != nil {
			return nil, err
		}
		location = abs
	}
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func openOutput(conf *config, stdout io.Writer) (io.Writer, func() error, error) {
	if conf.outputFile == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(conf.outputFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func writeReport(report *litfold.Report, conf *config, out io.Writer) error {
	if conf.format == formatYAML {
		data, err := report.YAML()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	return report.Text(out)
}

// writeDump prints the annotated tree of every source. Parsing stops at the
// first syntax error.
func writeDump(ctx context.Context, sources []litfold.Source, out io.Writer) error {
	for _, source := range sources {
		root, err := parser.Parse(ctx, source.Name, source.Data)
		if err != nil {
			return err
		}
		litfold.Annotate(root)
		fmt.Fprintf(out, "# %s\n", source.Name)
		dump.Dump(out, root)
	}
	return nil
}

// writeOutput writes the dump or the report of sources to out. The report is
// nil in dump mode.
func writeOutput(ctx context.Context, sources []litfold.Source, conf *config, out io.Writer) (*litfold.Report, error) {
	if conf.dump {
		return nil, writeDump(ctx, sources, out)
	}
	report, err := litfold.AnalyzeFiles(ctx, sources)
	if err != nil {
		return nil, err
	}
	return report, writeReport(report, conf, out)
}

// closeWith closes the output and returns err, or the close error when err
// is nil.
func closeWith(err error, closeOutput func() error) error {
	if closeErr := closeOutput(); err == nil {
		err = closeErr
	}
	return err
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	errorf := color.New(color.FgRed).Fprintf
	notef := color.New(color.FgCyan).Fprintf

	conf := makeConfig()
	status, err := processArgs(args, &conf, stdout)
	if conf.noColor {
		color.NoColor = true
	}
	if err != nil {
		errorf(stderr, "ERROR: %s\n", err.Error())
	}
	switch status {
	case processArgsStatusContinue:
		break
	case processArgsStatusSuccessUsage:
		usage(stdout)
		return 0
	case processArgsStatusFailureUsage:
		if err != nil {
			fmt.Fprintln(stderr, "")
		}
		usage(stderr)
		return 1
	case processArgsStatusSuccess:
		return 0
	case processArgsStatusFailure:
		return 1
	}

	ctx := context.Background()
	fs := afs.New()
	sources := make([]litfold.Source, 0, len(conf.inputFiles))
	for _, name := range conf.inputFiles {
		data, err := readInput(ctx, fs, name, stdin)
		if err != nil {
			errorf(stderr, "ERROR: %s\n", err.Error())
			return 1
		}
		if conf.verbose {
			fmt.Fprintf(stderr, "read %s (%d bytes)\n", name, len(data))
		}
		sources = append(sources, litfold.Source{Name: name, Data: data})
	}

	out, closeOutput, err := openOutput(&conf, stdout)
	if err != nil {
		errorf(stderr, "ERROR: %s\n", err.Error())
		return 1
	}
	report, err := writeOutput(ctx, sources, &conf, out)
	if err = closeWith(err, closeOutput); err != nil {
		errorf(stderr, "ERROR: %s\n", err.Error())
		return 1
	}
	if report != nil && conf.verbose {
		notef(stderr, "%d candidate(s) in %d file(s)\n", report.Count(), len(report.Files))
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
