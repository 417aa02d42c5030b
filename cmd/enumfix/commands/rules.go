package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/enumfix/cmd/enumfix/opts"
	"github.com/walteh/enumfix/pkg/log"
	"github.com/walteh/enumfix/pkg/rule"
)

// NewRulesCmd creates a command listing the built-in rules
func NewRulesCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the replacements in the order they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{{"#", "pattern", "replacement"}}
			for i, r := range rule.BattlecryTargetTypes() {
				rows = append(rows, []string{strconv.Itoa(i + 1), r.Pattern, r.Replacement})
			}

			if err := log.FromContext(cmd.Context()).Table(rows); err != nil {
				return errors.Errorf("rendering rules: %w", err)
			}
			return nil
		},
	}

	return cmd
}
