// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rewrite

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/enumfix/pkg/rule"
	"github.com/walteh/enumfix/pkg/text"
)

// 🔧 Option configures a Rewriter
type Option func(*Rewriter)

// WithDryRun skips the write step
func WithDryRun(dryRun bool) Option {
	return func(r *Rewriter) {
		r.dryRun = dryRun
	}
}

// WithReplacer swaps the replacement engine
func WithReplacer(replacer text.TextReplacer) Option {
	return func(r *Rewriter) {
		r.replacer = replacer
	}
}

// ✏️ Rewriter rewrites a single file in place
type Rewriter struct {
	fs       afero.Fs
	replacer text.TextReplacer
	dryRun   bool
}

// 🏭 New creates a rewriter backed by fs
func New(fs afero.Fs, opts ...Option) *Rewriter {
	r := &Rewriter{
		fs:       fs,
		replacer: text.NewSimpleTextReplacer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// 📝 Rewrite loads path once, applies rules in order and writes the result
// back over path once. Rules that match nothing are not an error.
func (r *Rewriter) Rewrite(ctx context.Context, path string, rules []rule.Rule) (*Report, error) {
	logger := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	if err := rule.Validate(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	info, err := r.fs.Stat(path)
	if err != nil {
		return nil, errors.Errorf("reading target file: %w", err)
	}
	if info.IsDir() {
		return nil, errors.Errorf("reading target file: %s is a directory", path)
	}

	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, errors.Errorf("reading target file: %w", err)
	}

	logger.Debug().Int("bytes", len(content)).Int("rules", len(rules)).Msg("loaded target file")

	result, err := r.replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return nil, errors.Errorf("replacing text: %w", err)
	}

	report := &Report{
		Path:   path,
		Result: result,
		DryRun: r.dryRun,
	}

	if r.dryRun {
		logger.Debug().Int("replacements", result.ReplacementCount).Msg("dry run, skipping write")
		return report, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("rewrite cancelled: %w", err)
	}

	if err := afero.WriteFile(r.fs, path, result.ModifiedContent, info.Mode().Perm()); err != nil {
		return nil, errors.Errorf("writing target file: %w", err)
	}
	report.Written = true

	logger.Debug().
		Int("replacements", result.ReplacementCount).
		Bool("modified", result.WasModified).
		Msg("wrote target file")

	return report, nil
}
