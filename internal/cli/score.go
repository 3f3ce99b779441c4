package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"totem-quiz/internal/config"
	"totem-quiz/internal/domain"
	"totem-quiz/internal/scoring"
)

// NewScoreCmd scores a serialized response list without a session.
func NewScoreCmd(configPath *string) *cobra.Command {
	var (
		input  string
		output string
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a response list from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runScore(cmd.Context(), cfg, input, output, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "path to a JSON response list")
	cmd.Flags().StringVar(&output, "output", "text", "output format: text or json")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runScore(ctx context.Context, cfg config.Config, input, output string, out io.Writer) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	var responses []domain.Response
	if err := json.Unmarshal(data, &responses); err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	engine, err := scoring.NewEngine(cfg.Scoring)
	if err != nil {
		return err
	}
	result, err := engine.Compute(responses)
	if err != nil {
		return err
	}

	switch output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "text":
		catalog, closeCatalog, err := loadActiveCatalog(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeCatalog()
		printResult(out, catalog, result)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
