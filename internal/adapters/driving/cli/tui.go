package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/wik/internal/adapters/driving/tui"
	"github.com/custodia-labs/wik/internal/logger"
)

// Fallback screen size used when the terminal cannot report one and the
// prompt is left blank.
const (
	fallbackRows    = 24
	fallbackColumns = 80
)

// screenSize is a fixed screen size entered by the user.
type screenSize struct {
	Rows    int
	Columns int
	Margin  int
}

// Width returns the usable width inside the margin.
func (s screenSize) Width() int {
	return max(s.Columns-2*s.Margin, 1)
}

// Height returns the usable height inside the margin.
func (s screenSize) Height() int {
	return max(s.Rows-2*s.Margin, 1)
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for wik.

Type a query on the title screen and press Enter to search. Pick a result
to read the article. Esc opens the menu on any screen.

Controls:
  ↑/k, ↓/j   - Navigate results / scroll
  PgUp/PgDn  - Scroll a page
  g, G       - Top / bottom of the article
  Enter      - Search / Open article
  /          - New search
  Esc        - Menu
  Ctrl+C     - Quit`,
	Annotations: map[string]string{annotationSession: "true"},
	RunE:        runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if searchService == nil || articleService == nil {
		return errors.New("search and article services not configured")
	}

	app, err := tui.NewApp(tui.NewPorts(searchService, articleService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if _, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr != nil {
		logger.Debug("Terminal size unavailable: %v", sizeErr)
		size := promptScreenSize(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
		app.SetDimensions(size.Width(), size.Height())
	}

	// Log lines would corrupt the screen.
	if logFile == "" {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// promptScreenSize asks for a fixed screen size. Blank or invalid answers
// take the fallback values.
func promptScreenSize(reader *bufio.Reader, out io.Writer) screenSize {
	fmt.Fprintln(out, "Could not determine the terminal size.")

	fmt.Fprintf(out, "Rows [%d]: ", fallbackRows)
	rows := parsePositive(readLine(reader), fallbackRows)

	fmt.Fprintf(out, "Columns [%d]: ", fallbackColumns)
	columns := parsePositive(readLine(reader), fallbackColumns)

	fmt.Fprint(out, "Margin [0]: ")
	margin := parsePositive(readLine(reader), 0)
	if 2*margin >= rows || 2*margin >= columns {
		margin = 0
	}

	return screenSize{Rows: rows, Columns: columns, Margin: margin}
}

func parsePositive(input string, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 0 {
		return defaultVal
	}
	return val
}
