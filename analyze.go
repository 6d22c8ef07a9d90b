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
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/litfold/litfold/internal/program"
	"github.com/litfold/litfold/parser"
)

// Source is a named Python source file.
type Source struct {
	Name string
	Data []byte
}

// AnalyzeFiles parses and annotates every source and collects its
// candidates. Files are processed concurrently, each with its own tree, and
// the report keeps the order of sources. The first parse error aborts the
// batch.
func AnalyzeFiles(ctx context.Context, sources []Source) (*Report, error) {
	files := make([]FileReport, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			root, err := parser.Parse(ctx, src.Name, src.Data)
			if err != nil {
				return err
			}
			program.Annotate(root)
			files[i] = FileReport{File: src.Name, Candidates: Collect(src.Name, root)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Report{Files: files}, nil
}
