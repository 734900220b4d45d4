package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gazetteerlabs/placematch/internal/cli/config"
	"github.com/gazetteerlabs/placematch/pkg/core"
	"github.com/spf13/cobra"
)

// NewPlaceCommand creates the place command: a direct lookup of a
// gazetteer record by id, wrapping the engine's place(id) operation.
func NewPlaceCommand(getConfig func() *config.Config) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "place [id]",
		Short: "Look up a gazetteer place by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be an integer: %w", err)
			}

			eng, err := createEngine(getConfig())
			if err != nil {
				return err
			}
			defer func() { _ = eng.Close() }()

			place, ok := eng.Place(id)
			if !ok {
				return fmt.Errorf("no place with id %d", id)
			}

			w := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(place)
			}
			printPlace(cmd, place)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func printPlace(cmd *cobra.Command, p *core.Place) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "id:          %d\n", p.ID)
	fmt.Fprintf(w, "name:        %s\n", p.Name)
	fmt.Fprintf(w, "level:       %d\n", p.Level)
	fmt.Fprintf(w, "country_id:  %d\n", p.CountryID)
	fmt.Fprintf(w, "located_in:  %d\n", p.LocatedInID)
	if len(p.AlsoLocatedInIDs) > 0 {
		fmt.Fprintf(w, "also_in:     %v\n", p.AlsoLocatedInIDs)
	}
	if len(p.Types) > 0 {
		fmt.Fprintf(w, "types:       %v\n", p.Types)
	}
	if len(p.AltNames) > 0 {
		fmt.Fprintf(w, "alt_names:\n")
		for _, a := range p.AltNames {
			fmt.Fprintf(w, "  - %s\n", a.Text)
		}
	}
}
