package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/enumfix/cmd/enumfix/opts"
	"github.com/walteh/enumfix/pkg/log"
	"github.com/walteh/enumfix/pkg/rewrite"
	"github.com/walteh/enumfix/pkg/rule"
)

// RunRewrite returns the RunE converting the target file.
// A normal run prints exactly one line on stdout.
func RunRewrite(o *opts.RootOpts) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		console := log.FromContext(ctx)
		verbose := o.IsDebug()

		target := o.TargetPath()
		rules := rule.BattlecryTargetTypes()

		ctx = zerolog.Ctx(ctx).With().Str("command", "rewrite").Logger().WithContext(ctx)

		if verbose {
			console.Header("converting " + rule.BattlecryTargetType + " literals")
			console.StartRewriteOperation(ctx, log.RewriteOperation{
				Path:   target,
				Rules:  len(rules),
				DryRun: o.DryRun,
			})
		}

		report, err := rewrite.New(o.Fs, rewrite.WithDryRun(o.DryRun)).Rewrite(ctx, target, rules)
		if err != nil {
			return errors.Errorf("rewriting %s: %w", target, err)
		}

		if verbose {
			for _, rr := range report.Result.Rules {
				console.LogRuleOperation(ctx, log.RuleOperation{
					Pattern:     rr.Rule.Pattern,
					Replacement: rr.Rule.Replacement,
					Matches:     rr.Matches,
				})
			}
			console.EndRewriteOperation(ctx)

			// zero matches is allowed, but a changed file layout shows up here
			for _, r := range report.Result.Unmatched() {
				console.Warningf("no match for %s", r.Pattern)
			}
		}

		if o.DryRun {
			console.Raw(report.Diff())
			console.Successf("Would convert %d %s literals in %s", report.Result.ReplacementCount, rule.BattlecryTargetType, target)
			return nil
		}

		console.Successf("Converted %d %s literals in %s", report.Result.ReplacementCount, rule.BattlecryTargetType, target)
		return nil
	}
}
