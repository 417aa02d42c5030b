package text

import (
	"context"
	"io"

	"github.com/walteh/enumfix/pkg/rule"
)

// RuleResult records how a single rule fared against the content
type RuleResult struct {
	// Rule is the rule that was applied
	Rule rule.Rule

	// Matches is the number of occurrences found when the rule ran
	Matches int
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// Rules holds one entry per applied rule, in application order
	Rules []RuleResult

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// Unmatched returns the rules that found nothing to replace
func (r *ReplacementResult) Unmatched() []rule.Rule {
	var out []rule.Rule
	for _, rr := range r.Rules {
		if rr.Matches == 0 {
			out = append(out, rr.Rule)
		}
	}
	return out
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies the rules to the content in order.
	// Each rule sees the output of the rules before it.
	ReplaceText(ctx context.Context, content io.Reader, rules []rule.Rule) (*ReplacementResult, error)
}
