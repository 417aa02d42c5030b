package commands

import (
	"github.com/spf13/cobra"

	"github.com/walteh/enumfix/pkg/log"
)

// NewVersionCmd creates a command printing build information
func NewVersionCmd(format func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.FromContext(cmd.Context()).Raw(format())
			return nil
		},
	}
}
