package cli

import (
	"fmt"
	"io"
	"strings"

	"totem-quiz/internal/content"
	"totem-quiz/internal/domain"
)

// printResult renders the result card. Archetype ids missing from the
// catalog are printed as-is, so scoring foreign response files still works.
func printResult(out io.Writer, catalog content.Catalog, result domain.QuizResult) {
	rule := strings.Repeat("-", 44)

	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "%s (%d points)\n", archetypeLabel(catalog, result.Primary.Archetype), result.Primary.TotalPoints)
	if a, ok := catalog.Archetype(result.Primary.Archetype); ok {
		if a.Description != "" {
			fmt.Fprintln(out, a.Description)
		}
		if len(a.Traits) > 0 {
			fmt.Fprintf(out, "Traits: %s\n", strings.Join(a.Traits, ", "))
		}
	}
	if result.Secondary != nil {
		fmt.Fprintf(out, "Runner-up: %s (%d points)\n", archetypeLabel(catalog, result.Secondary.Archetype), result.Secondary.TotalPoints)
	}
	fmt.Fprintf(out, "Confidence: %s, %d answered, %d skipped\n",
		result.Confidence, result.QuestionsAnswered, result.QuestionsSkipped)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, shareLine(catalog, result))
}

func archetypeLabel(catalog content.Catalog, id string) string {
	a, ok := catalog.Archetype(id)
	if !ok {
		return id
	}
	if a.Emoji != "" {
		return a.Emoji + " " + a.Name
	}
	return a.Name
}

// shareLine builds a copy-pasteable one-line summary of the result.
func shareLine(catalog content.Catalog, result domain.QuizResult) string {
	name := result.Primary.Archetype
	emoji := ""
	if a, ok := catalog.Archetype(result.Primary.Archetype); ok {
		name = a.Name
		emoji = a.Emoji
	}
	var b strings.Builder
	b.WriteString("Share: I got ")
	b.WriteString(name)
	if emoji != "" {
		b.WriteString(" " + emoji)
	}
	if title := catalog.Quiz.Title; title != "" {
		fmt.Fprintf(&b, " on %q", title)
	}
	b.WriteString(" - what's yours?")
	return b.String()
}
