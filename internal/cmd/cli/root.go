package cli

import (
	"github.com/spf13/cobra"

	"github.com/chronid/chronid/internal/config"
	"github.com/chronid/chronid/pkg/log"
)

// NewRoot constructs the root Cobra command for the chronid CLI.
// It registers the generate and inspect commands.
func NewRoot(cfg config.Config, logger log.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "chronid",
		Short: "Generate and inspect time-ordered 128-bit identifiers",
		Long: "chronid mints 128-bit, lexicographically sortable identifiers and decodes\n" +
			"their canonical 25-digit base-36 form back into fields.",
		SilenceUsage: true,
	}
	root.AddCommand(NewGenerateCommand(cfg, logger))
	root.AddCommand(NewInspectCommand(cfg, logger))
	return root
}
