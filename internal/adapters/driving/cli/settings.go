package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wik/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the API endpoint, search limit, cache backend and
article pruning.

Use subcommands to change a single key or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set a single setting by key. List settings take a comma-separated value.

Run 'wik settings keys' to list the keys.

Examples:
  wik settings set search.limit 50
  wik settings set cache.backend memory
  wik settings set article.trailer_titles "See also,External links"`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable keys",
	RunE:  runSettingsKeys,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	cmd.Printf("  Timeout: %s\n", settings.API.Timeout())
	cmd.Printf("  Rate: %g requests/s\n", settings.API.RequestsPerSecond)
	if settings.API.UserAgent != "" {
		cmd.Printf("  User agent: %s\n", settings.API.UserAgent)
	} else {
		cmd.Printf("  User agent: (default)\n")
	}
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Limit: %d\n", settings.Search.Limit)
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  Backend: %s\n", settings.Cache.Backend.Description())
	if settings.Cache.Root != "" {
		cmd.Printf("  Root: %s\n", settings.Cache.Root)
	} else {
		cmd.Printf("  Root: (default)\n")
	}
	cmd.Println()

	cmd.Println("[Article]")
	cmd.Printf("  Boilerplate headings: %s\n", formatList(settings.Article.BoilerplateTitles))
	cmd.Printf("  Trailer headings: %s\n", formatList(settings.Article.TrailerTitles))
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("%s updated.\n", key)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("wik Settings Wizard")
	cmd.Println("===================")
	cmd.Println("Press Enter to keep the value in brackets.")
	cmd.Println()

	cmd.Println("Cache backend:")
	backends := domain.AllCacheBackends()
	current := 1
	for i, b := range backends {
		if b == settings.Cache.Backend {
			current = i + 1
		}
		cmd.Printf("  [%d] %s\n", i+1, b.Description())
	}
	cmd.Printf("Select backend [%d]: ", current)
	choice := parseChoice(readLine(reader), len(backends), current)
	if err := settingsService.Set("cache.backend", backends[choice-1].String()); err != nil {
		return fmt.Errorf("failed to set cache backend: %w", err)
	}
	cmd.Println()

	prompts := []struct {
		key     string
		label   string
		current string
	}{
		{"api.base_url", "API base URL", settings.API.BaseURL},
		{"api.timeout_seconds", "Request timeout (seconds)", strconv.Itoa(settings.API.TimeoutSeconds)},
		{"api.requests_per_second", "Requests per second", strconv.FormatFloat(settings.API.RequestsPerSecond, 'g', -1, 64)},
		{"search.limit", "Search result limit", strconv.Itoa(settings.Search.Limit)},
	}

	for _, p := range prompts {
		cmd.Printf("%s [%s]: ", p.label, p.current)
		input := readLine(reader)
		if input == "" {
			continue
		}
		if err := settingsService.Set(p.key, input); err != nil {
			cmd.Printf("  Keeping %s: %v\n", p.current, err)
		}
	}

	cmd.Println()
	cmd.Println("Settings saved.")
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > maxVal {
		return defaultVal
	}
	return choice
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
