package text

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/enumfix/pkg/rule"
)

var _ TextReplacer = (*SimpleTextReplacer)(nil)

// SimpleTextReplacer implements TextReplacer using basic string replacement
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []rule.Rule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	return r.ReplaceBytes(ctx, originalContent, rules), nil
}

// ReplaceBytes applies the rules to an in-memory buffer
func (r *SimpleTextReplacer) ReplaceBytes(ctx context.Context, originalContent []byte, rules []rule.Rule) *ReplacementResult {
	logger := zerolog.Ctx(ctx)

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
		Rules:           make([]RuleResult, 0, len(rules)),
	}

	currentContent := string(originalContent)
	for _, rl := range rules {
		// an empty pattern would match between every byte
		if rl.Pattern == "" {
			continue
		}

		matches := strings.Count(currentContent, rl.Pattern)
		result.Rules = append(result.Rules, RuleResult{Rule: rl, Matches: matches})

		logger.Debug().
			Str("pattern", rl.Pattern).
			Str("replacement", rl.Replacement).
			Int("matches", matches).
			Msg("applied rule")

		if matches == 0 {
			continue
		}

		currentContent = strings.ReplaceAll(currentContent, rl.Pattern, rl.Replacement)
		result.ReplacementCount += matches
	}

	result.ModifiedContent = []byte(currentContent)
	result.WasModified = currentContent != string(originalContent)
	return result
}
