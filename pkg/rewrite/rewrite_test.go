package rewrite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/enumfix/pkg/rule"
	"github.com/walteh/enumfix/pkg/text"
)

const cardsFile = "client/src/game/data/cards.ts"

const cardsBefore = `export const cards: CardData[] = [
  {
    id: 1,
    battlecry: {
      type: "heal",
      requiresTarget: true,
      targetType: "friendly_hero",
    },
  },
  {
    id: 2,
    battlecry: { type: "damage", targetType: "any" },
    deathrattle: { type: "damage", targetType: "any_hero" },
  },
  {
    id: 3,
    battlecry: { type: "buff", targetType: "enemy_taunt" },
  },
];
`

const cardsAfter = `export const cards: CardData[] = [
  {
    id: 1,
    battlecry: {
      type: "heal",
      requiresTarget: true,
      targetType: BattlecryTargetType.FRIENDLY_HERO,
    },
  },
  {
    id: 2,
    battlecry: { type: "damage", targetType: BattlecryTargetType.ANY },
    deathrattle: { type: "damage", targetType: BattlecryTargetType.ANY_HERO },
  },
  {
    id: 3,
    battlecry: { type: "buff", targetType: "enemy_taunt" },
  },
];
`

func writeCards(t *testing.T, fs afero.Fs, content string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, fs.MkdirAll("client/src/game/data", 0o755))
	require.NoError(t, afero.WriteFile(fs, cardsFile, []byte(content), perm))
}

func readCards(t *testing.T, fs afero.Fs) string {
	t.Helper()
	data, err := afero.ReadFile(fs, cardsFile)
	require.NoError(t, err)
	return string(data)
}

func TestRewriter_Rewrite(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		opts         []Option
		want         string
		wantCount    int
		wantWritten  bool
		wantModified bool
	}{
		{
			name:         "converts_literals",
			content:      cardsBefore,
			want:         cardsAfter,
			wantCount:    3,
			wantWritten:  true,
			wantModified: true,
		},
		{
			name:         "already_converted",
			content:      cardsAfter,
			want:         cardsAfter,
			wantCount:    0,
			wantWritten:  true,
			wantModified: false,
		},
		{
			name:         "empty_file",
			content:      "",
			want:         "",
			wantCount:    0,
			wantWritten:  true,
			wantModified: false,
		},
		{
			name:         "dry_run_leaves_file",
			content:      cardsBefore,
			opts:         []Option{WithDryRun(true)},
			want:         cardsBefore,
			wantCount:    3,
			wantWritten:  false,
			wantModified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeCards(t, fs, tt.content, 0o644)

			report, err := New(fs, tt.opts...).Rewrite(context.Background(), cardsFile, rule.BattlecryTargetTypes())
			require.NoError(t, err)
			require.NotNil(t, report)

			assert.Equal(t, cardsFile, report.Path)
			assert.Equal(t, tt.wantWritten, report.Written)
			assert.Equal(t, tt.wantCount, report.Result.ReplacementCount)
			assert.Equal(t, tt.wantModified, report.Result.WasModified)
			assert.Len(t, report.Result.Rules, 10)
			assert.Equal(t, tt.want, readCards(t, fs))
		})
	}
}

func TestRewriter_RewriteTwiceIsNoop(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCards(t, fs, cardsBefore, 0o644)
	rw := New(fs)

	_, err := rw.Rewrite(context.Background(), cardsFile, rule.BattlecryTargetTypes())
	require.NoError(t, err)
	first := readCards(t, fs)

	report, err := rw.Rewrite(context.Background(), cardsFile, rule.BattlecryTargetTypes())
	require.NoError(t, err)
	assert.False(t, report.Result.WasModified)
	assert.Equal(t, first, readCards(t, fs))
}

func TestRewriter_PreservesMode(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCards(t, fs, cardsBefore, 0o600)

	_, err := New(fs).Rewrite(context.Background(), cardsFile, rule.BattlecryTargetTypes())
	require.NoError(t, err)

	info, err := fs.Stat(cardsFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRewriter_Errors(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T) afero.Fs
		path      string
		rules     []rule.Rule
		ctx       func() context.Context
		wantError string
		wantFile  string
	}{
		{
			name: "missing_file",
			setup: func(t *testing.T) afero.Fs {
				return afero.NewMemMapFs()
			},
			path:      cardsFile,
			wantError: "reading target file",
		},
		{
			name: "directory",
			setup: func(t *testing.T) afero.Fs {
				fs := afero.NewMemMapFs()
				require.NoError(t, fs.MkdirAll("client", 0o755))
				return fs
			},
			path:      "client",
			wantError: "is a directory",
		},
		{
			name: "read_only",
			setup: func(t *testing.T) afero.Fs {
				fs := afero.NewMemMapFs()
				writeCards(t, fs, cardsBefore, 0o644)
				return afero.NewReadOnlyFs(fs)
			},
			path:      cardsFile,
			wantError: "writing target file",
			wantFile:  cardsBefore,
		},
		{
			name: "invalid_rules",
			setup: func(t *testing.T) afero.Fs {
				fs := afero.NewMemMapFs()
				writeCards(t, fs, cardsBefore, 0o644)
				return fs
			},
			path:      cardsFile,
			rules:     []rule.Rule{{Replacement: "x"}},
			wantError: "validating rules",
			wantFile:  cardsBefore,
		},
		{
			name: "cancelled",
			setup: func(t *testing.T) afero.Fs {
				fs := afero.NewMemMapFs()
				writeCards(t, fs, cardsBefore, 0o644)
				return fs
			},
			path: cardsFile,
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			wantError: "rewrite cancelled",
			wantFile:  cardsBefore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := tt.setup(t)
			rules := tt.rules
			if rules == nil {
				rules = rule.BattlecryTargetTypes()
			}
			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			report, err := New(fs).Rewrite(ctx, tt.path, rules)
			require.Error(t, err)
			assert.Nil(t, report)
			assert.Contains(t, err.Error(), tt.wantError)

			if tt.wantFile != "" {
				assert.Equal(t, tt.wantFile, readCards(t, fs))
			}
		})
	}
}

func TestReport_Diff(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCards(t, fs, cardsBefore, 0o644)

	report, err := New(fs, WithDryRun(true)).Rewrite(context.Background(), cardsFile, rule.BattlecryTargetTypes())
	require.NoError(t, err)

	diff := report.Diff()
	assert.Contains(t, diff, "--- "+cardsFile+"\n")
	assert.Contains(t, diff, "+++ "+cardsFile+"\n")
	assert.Contains(t, diff, "-      targetType: \"friendly_hero\",\n")
	assert.Contains(t, diff, "+      targetType: BattlecryTargetType.FRIENDLY_HERO,\n")
	assert.Contains(t, diff, "+    battlecry: { type: \"damage\", targetType: BattlecryTargetType.ANY },\n")
	assert.Contains(t, diff, "+    deathrattle: { type: \"damage\", targetType: BattlecryTargetType.ANY_HERO },\n")
	assert.NotContains(t, diff, "enemy_taunt")
	assert.NotContains(t, diff, "id: 1")
	assert.NotContains(t, diff, "export const")
	assert.NotContains(t, diff, "-  {")

	unchanged := &Report{Path: cardsFile}
	assert.Empty(t, unchanged.Diff())
}

type brokenReplacer struct{}

func (brokenReplacer) ReplaceText(context.Context, io.Reader, []rule.Rule) (*text.ReplacementResult, error) {
	return nil, errors.New("engine down")
}

func TestRewriter_WithReplacer(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCards(t, fs, cardsBefore, 0o644)

	_, err := New(fs, WithReplacer(brokenReplacer{})).Rewrite(context.Background(), cardsFile, rule.BattlecryTargetTypes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replacing text: engine down")
	assert.Equal(t, cardsBefore, readCards(t, fs))
}

func TestReport_DiffLongFile(t *testing.T) {
	var before, after strings.Builder
	for i := 1; i <= 30; i++ {
		line := fmt.Sprintf("  { id: %d, battlecry: { targetType: \"enemy_taunt\" } },\n", i)
		switch i {
		case 12:
			before.WriteString("  { id: 12, battlecry: { targetType: \"any\" } },\n")
			after.WriteString("  { id: 12, battlecry: { targetType: BattlecryTargetType.ANY } },\n")
		case 21:
			before.WriteString("  { id: 21, battlecry: { targetType: \"none\" } },\n")
			after.WriteString("  { id: 21, battlecry: { targetType: BattlecryTargetType.NONE } },\n")
		default:
			before.WriteString(line)
			after.WriteString(line)
		}
	}
	// a repeated line shared by both sides
	before.WriteString("];\n];\n")
	after.WriteString("];\n];\n")

	fs := afero.NewMemMapFs()
	writeCards(t, fs, before.String(), 0o644)

	report, err := New(fs, WithDryRun(true)).Rewrite(context.Background(), cardsFile, rule.BattlecryTargetTypes())
	require.NoError(t, err)
	require.Equal(t, after.String(), string(report.Result.ModifiedContent))

	want := "--- " + cardsFile + "\n" +
		"+++ " + cardsFile + "\n" +
		"-  { id: 12, battlecry: { targetType: \"any\" } },\n" +
		"+  { id: 12, battlecry: { targetType: BattlecryTargetType.ANY } },\n" +
		"-  { id: 21, battlecry: { targetType: \"none\" } },\n" +
		"+  { id: 21, battlecry: { targetType: BattlecryTargetType.NONE } },\n"
	assert.Equal(t, want, report.Diff())
}

func TestReport_DiffMissingTrailingNewline(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCards(t, fs, "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\ntargetType: \"any\"", 0o644)

	report, err := New(fs, WithDryRun(true)).Rewrite(context.Background(), cardsFile, rule.BattlecryTargetTypes())
	require.NoError(t, err)

	want := "--- " + cardsFile + "\n" +
		"+++ " + cardsFile + "\n" +
		"-targetType: \"any\"\n" +
		"+targetType: BattlecryTargetType.ANY\n"
	assert.Equal(t, want, report.Diff())
}
