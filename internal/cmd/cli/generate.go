// Package cli contains Cobra CLI commands for chronid.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronid/chronid/internal/config"
	"github.com/chronid/chronid/pkg/id"
	"github.com/chronid/chronid/pkg/log"
)

// NewGenerateCommand constructs the `generate` command.
func NewGenerateCommand(cfg config.Config, logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate fresh IDs",
		Aliases: []string{"gen", "new"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			asJSON, _ := cmd.Flags().GetBool("json")
			if count < 1 {
				return fmt.Errorf("invalid --count %d; must be at least 1", count)
			}
			logger.Debug("generating ids", log.Int("count", count))

			g := id.NewGenerator()
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for i := 0; i < count; i++ {
				v := g.Generate()
				if asJSON {
					if err := enc.Encode(describe(v)); err != nil {
						return err
					}
				} else {
					fmt.Fprintln(out, v.String())
				}
			}
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", cfg.GenerateCount, "Number of IDs to generate")
	cmd.Flags().Bool("json", cfg.OutputFormat == config.FormatJSON, "Emit JSON objects with decoded fields")
	return cmd
}
