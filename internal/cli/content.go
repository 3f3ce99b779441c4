package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"totem-quiz/internal/config"
	"totem-quiz/internal/content"
)

// NewContentCmd groups the content tooling.
func NewContentCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect and validate quiz content",
	}
	cmd.AddCommand(newContentValidateCmd(configPath))
	return cmd
}

func newContentValidateCmd(configPath *string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a catalog document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runContentValidate(cmd.Context(), cfg, file, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "catalog JSON file (default: the active catalog)")
	return cmd
}

func runContentValidate(ctx context.Context, cfg config.Config, file string, out io.Writer) error {
	var catalog content.Catalog
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		catalog, err = content.ParseCatalog(data)
		if err != nil {
			return err
		}
	} else {
		loaded, closeCatalog, err := loadActiveCatalog(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeCatalog()
		catalog = loaded
	}

	if err := content.ValidateCatalog(catalog); err != nil {
		var verr *content.ValidationError
		if errors.As(err, &verr) {
			for _, p := range verr.Problems {
				fmt.Fprintln(out, p)
			}
			return fmt.Errorf("catalog %s: %d problem(s)", verr.Catalog, len(verr.Problems))
		}
		return err
	}
	fmt.Fprintf(out, "catalog %s: ok (%d questions, %d archetypes)\n",
		catalog.ID, len(catalog.Quiz.Questions), len(catalog.Archetypes))
	return nil
}
