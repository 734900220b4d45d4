// Package cli provides the command-line interface for placematch.
package cli

import (
	"fmt"
	"os"

	"github.com/gazetteerlabs/placematch/internal/cli/commands"
	"github.com/gazetteerlabs/placematch/internal/cli/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	dataDir string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "placematch",
		Short: "placematch - gazetteer place resolution engine",
		Long: `placematch resolves free-text place references (e.g. "St. Louis, Mo.")
against a curated gazetteer of geographic places, returning ranked
candidates or, in new mode, a synthetic finer place when the input
names a level the gazetteer doesn't have.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands.
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}

			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "Using data dir: %s\n", cfg.DataDir)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Gazetteer place resolution engine
`)

	// Global persistent flags.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./placematch.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the gazetteer property list and text sources")
	rootCmd.PersistentFlags().String("places-file", "", "path to the places text source (relative to data-dir)")
	rootCmd.PersistentFlags().String("words-file", "", "path to the place_words text source (relative to data-dir)")
	rootCmd.PersistentFlags().String("database-url", "", "backing store DSN; selects backed mode over the text files")
	rootCmd.PersistentFlags().String("http-addr", "", "listen address for the serve command")
	rootCmd.PersistentFlags().String("default-mode", "", "default standardize mode (best|required|new)")
	rootCmd.PersistentFlags().Int("default-num-results", 0, "default number of results")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("default-mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"best", "required", "new"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewResolveCommand(GetConfig))
	rootCmd.AddCommand(commands.NewPlaceCommand(GetConfig))
	rootCmd.AddCommand(commands.NewServeCommand(GetConfig))
	rootCmd.AddCommand(commands.NewConfigCommand(GetConfig))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the configuration loaded by the root command's
// PersistentPreRunE. Subcommands call this rather than reading the
// package-level variable directly, so a command built for testing
// without going through Execute still has a usable default.
func GetConfig() *config.Config {
	if cfg != nil {
		return cfg
	}
	return &config.Config{
		DataDir:           config.DefaultDataDir,
		PlacesFile:        config.DefaultPlacesFile,
		WordsFile:         config.DefaultWordsFile,
		HTTPAddr:          config.DefaultHTTPAddr,
		DefaultMode:       config.DefaultMode,
		DefaultNumResults: config.DefaultNumResults,
		LogLevel:          config.DefaultLogLevel,
		LogFormat:         config.DefaultLogFormat,
	}
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for placematch.

Bash:
  $ source <(placematch completion bash)

Zsh:
  $ placematch completion zsh > "${fpath[1]}/_placematch"

Fish:
  $ placematch completion fish | source

PowerShell:
  PS> placematch completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
