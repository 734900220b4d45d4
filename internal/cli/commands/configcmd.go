package commands

import (
	"fmt"

	"github.com/gazetteerlabs/placematch/internal/cli/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command: prints the fully
// resolved configuration (defaults, file, environment, and flags
// already layered) as YAML, for diagnosing precedence questions.
func NewConfigCommand(getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := yaml.Marshal(getConfig())
			if err != nil {
				return fmt.Errorf("config: marshaling: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
