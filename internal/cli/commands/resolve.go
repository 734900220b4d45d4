package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gazetteerlabs/placematch/internal/cli/config"
	"github.com/gazetteerlabs/placematch/pkg/core"
	"github.com/spf13/cobra"
)

// ResolveOptions holds options for the resolve command.
type ResolveOptions struct {
	Mode           string
	NumResults     int
	DefaultCountry int
	JSONOutput     bool
}

// NewResolveCommand creates the resolve command: a one-shot CLI wrapper
// over the engine's standardize operation (spec §6), for scripting and
// for sanity-checking a gazetteer build without standing up the HTTP
// surface.
func NewResolveCommand(getConfig func() *config.Config) *cobra.Command {
	opts := &ResolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [text]",
		Short: "Resolve a free-text place reference against the gazetteer",
		Long: `Resolve standardizes a free-text place reference (e.g. "St. Louis, Mo.")
against the configured gazetteer and prints the ranked candidates.

Mode controls how an incomplete or ambiguous match is handled:
  best     - return the best-effort match (default)
  required - return nothing unless the finest input level matched
  new      - synthesize a placeholder place one level finer than the
             best match, when the finest input level didn't match`,
		Example: `  # Resolve a place, default mode and result count
  placematch resolve "St. Louis, Mo."

  # Require the finest level to match
  placematch resolve "Nowhere, Missouri" --mode required

  # Synthesize a new place under the best match
  placematch resolve "Nowhere, Missouri" --mode new`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, getConfig(), opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "standardize mode (best|required|new); defaults to config's default_mode")
	cmd.Flags().IntVarP(&opts.NumResults, "num-results", "n", 0, "maximum number of results; defaults to config's default_num_results")
	cmd.Flags().IntVar(&opts.DefaultCountry, "default-country", 0, "reserved default-country hint (spec §9, currently a no-op)")
	cmd.Flags().BoolVar(&opts.JSONOutput, "json", false, "output as JSON")

	_ = cmd.RegisterFlagCompletionFunc("mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"best", "required", "new"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runResolve(cmd *cobra.Command, cfg *config.Config, opts *ResolveOptions, text string) error {
	eng, err := createEngine(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	modeStr := opts.Mode
	if modeStr == "" {
		modeStr = cfg.DefaultMode
	}
	mode, err := modeFromString(modeStr)
	if err != nil {
		return err
	}

	numResults := opts.NumResults
	if numResults <= 0 {
		numResults = cfg.DefaultNumResults
	}

	results := eng.Standardize(text, opts.DefaultCountry, mode, numResults)

	w := cmd.OutOrStdout()
	if opts.JSONOutput {
		return writeResolveJSON(w, results)
	}
	return writeResolveText(w, text, results)
}

type resolveResultJSON struct {
	PlaceID     int      `json:"placeId"`
	Name        string   `json:"name"`
	Types       []string `json:"types,omitempty"`
	LocatedInID int      `json:"locatedInId,omitempty"`
	Level       int      `json:"level"`
	CountryID   int      `json:"countryId"`
	Score       float64  `json:"score"`
}

func writeResolveJSON(w io.Writer, results []core.PlaceScore) error {
	out := make([]resolveResultJSON, 0, len(results))
	for _, r := range results {
		out = append(out, resolveResultJSON{
			PlaceID:     r.Place.ID,
			Name:        r.Place.Name,
			Types:       r.Place.Types,
			LocatedInID: r.Place.LocatedInID,
			Level:       r.Place.Level,
			CountryID:   r.Place.CountryID,
			Score:       r.Score,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeResolveText(w io.Writer, text string, results []core.PlaceScore) error {
	if len(results) == 0 {
		fmt.Fprintf(w, "no match for %q\n", text)
		return nil
	}
	fmt.Fprintf(w, "%d result(s) for %q:\n\n", len(results), text)
	for i, r := range results {
		typeSuffix := ""
		if len(r.Place.Types) > 0 {
			typeSuffix = fmt.Sprintf(" [%s]", strings.Join(r.Place.Types, ", "))
		}
		fmt.Fprintf(w, "  %2d. id=%-8d level=%d score=%-8.2f %s%s\n",
			i+1, r.Place.ID, r.Place.Level, r.Score, r.Place.Name, typeSuffix)
	}
	return nil
}
