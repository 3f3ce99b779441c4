package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewArchetypesCmd lists the archetype table of the active catalog.
func NewArchetypesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "archetypes",
		Short: "List the archetypes of the active catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			catalog, closeCatalog, err := loadActiveCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeCatalog()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTRAITS")
			for _, a := range catalog.Archetypes {
				name := a.Name
				if a.Emoji != "" {
					name = a.Emoji + " " + a.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", a.ID, name, strings.Join(a.Traits, ", "))
			}
			return w.Flush()
		},
	}
}
