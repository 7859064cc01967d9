package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/services"
)

var (
	articleJSON  bool
	articleSpans bool
)

var articleCmd = &cobra.Command{
	Use:   "article [title]",
	Short: "Print an article",
	Long: `Loads an article by its exact title and prints it as text, with the
reference and link sections at the end removed.

Use --spans to print the formatted span sequence, one span per line, or
--json for the same spans as JSON.`,
	Annotations: map[string]string{annotationSession: "true"},
	Args:        cobra.ExactArgs(1),
	RunE:        runArticle,
}

func init() {
	articleCmd.Flags().BoolVar(&articleJSON, "json", false, "output spans as JSON")
	articleCmd.Flags().BoolVar(&articleSpans, "spans", false, "output one span per line")
	articleCmd.MarkFlagsMutuallyExclusive("json", "spans")
	rootCmd.AddCommand(articleCmd)
}

func runArticle(cmd *cobra.Command, args []string) error {
	title := args[0]

	if articleService == nil {
		return errors.New("article service not configured")
	}

	// Load through a slot, as the terminal UI does.
	slot := services.NewSlot(articleService.Article)
	slot.Launch(cmd.Context(), title)
	status, err := slot.Wait(cmd.Context())
	if err != nil {
		return fmt.Errorf("article load interrupted: %w", err)
	}
	if status.Err != nil {
		return fmt.Errorf("article failed: %w", status.Err)
	}

	article := status.Value
	switch {
	case articleJSON:
		return outputArticleJSON(cmd, article)
	case articleSpans:
		for _, span := range article.Spans {
			cmd.Println(span.String())
		}
		return nil
	default:
		cmd.Print(article.Text())
		return nil
	}
}

func outputArticleJSON(cmd *cobra.Command, article *domain.Article) error {
	out := struct {
		Title string                 `json:"title"`
		Spans []domain.FormattedSpan `json:"spans"`
	}{
		Title: article.Title,
		Spans: article.Spans,
	}
	if out.Spans == nil {
		out.Spans = []domain.FormattedSpan{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal article: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
