package rewrite

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/walteh/enumfix/pkg/text"
)

// 📊 Report describes the outcome of a Rewrite
type Report struct {
	Path    string                  // file that was rewritten
	Result  *text.ReplacementResult // replacement details
	DryRun  bool                    // whether the write step was skipped
	Written bool                    // whether the file was written
}

// Diff renders the changed lines, prefixed with - and +
func (r *Report) Diff() string {
	if r.Result == nil || !r.Result.WasModified {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("--- " + r.Path + "\n")
	sb.WriteString("+++ " + r.Path + "\n")
	for _, d := range diffLines(string(r.Result.OriginalContent), string(r.Result.ModifiedContent)) {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// diffLines diffs a and b line by line. Every distinct line is encoded as a
// single rune so the character diff can never split or cross-match lines.
func diffLines(a, b string) []diffmatchpatch.Diff {
	var lines []string
	index := map[string]rune{}

	encode := func(s string) []rune {
		var out []rune
		for _, line := range strings.SplitAfter(s, "\n") {
			if line == "" {
				continue
			}
			r, ok := index[line]
			if !ok {
				r = lineRune(len(lines))
				index[line] = r
				lines = append(lines, line)
			}
			out = append(out, r)
		}
		return out
	}

	ra, rb := encode(a), encode(b)

	decoded := make(map[rune]string, len(index))
	for line, r := range index {
		decoded[r] = line
	}

	diffs := diffmatchpatch.New().DiffMainRunes(ra, rb, false)
	for i, d := range diffs {
		var sb strings.Builder
		for _, r := range d.Text {
			sb.WriteString(decoded[r])
		}
		diffs[i].Text = sb.String()
	}
	return diffs
}

// lineRune maps a line index to a rune, skipping NUL and the surrogate block
func lineRune(i int) rune {
	r := rune(i + 1)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
