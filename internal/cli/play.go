package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"totem-quiz/internal/app"
	"totem-quiz/internal/domain"
)

// NewPlayCmd runs the quiz interactively in the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Take the quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			service, closeAll, err := buildService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeAll()
			return runPlay(cmd.Context(), service, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runPlay(ctx context.Context, service *app.QuizService, in io.Reader, out io.Writer) error {
	catalog, err := service.Catalog(ctx)
	if err != nil {
		return err
	}
	questions := catalog.OrderedQuestions()

	session, err := service.Start(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, catalog.Quiz.Title)
	fmt.Fprintln(out, "Answer with the option letter, s to skip, u if unsure, q to quit.")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for i, q := range questions {
		fmt.Fprintf(out, "%d/%d %s\n", i+1, len(questions), q.Text)
		for _, opt := range q.Options {
			fmt.Fprintf(out, "  %s) %s\n", opt.ID, opt.Text)
		}

		selected, quit := readSelection(scanner, out, q)
		if quit {
			fmt.Fprintln(out, "Quiz abandoned.")
			return service.Abandon(ctx, session.ID())
		}
		if err := service.Answer(ctx, session.ID(), q.ID, selected); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	result, err := service.Complete(ctx, session.ID())
	if err != nil {
		return err
	}
	printResult(out, catalog, result)
	return nil
}

// readSelection prompts until it reads a valid option letter or sentinel.
// The second return is true when the player quits or input runs out.
func readSelection(scanner *bufio.Scanner, out io.Writer, q domain.Question) (string, bool) {
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return "", true
		}
		raw := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(raw) {
		case "q", "quit":
			return "", true
		case "s", "skip":
			return domain.SelectionSkip, false
		case "u", "unsure":
			return domain.SelectionUnknown, false
		}
		letter := strings.ToUpper(raw)
		if _, ok := q.Option(letter); ok {
			return letter, false
		}
		fmt.Fprintf(out, "Please answer %s, s, u or q.\n", optionLetters(q))
	}
}

func optionLetters(q domain.Question) string {
	letters := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		letters = append(letters, opt.ID)
	}
	return strings.Join(letters, "/")
}
