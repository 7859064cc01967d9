// Package cli provides the cobra command tree for wik.
// Running wik with no subcommand starts the terminal UI.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wik/internal/core/ports/driving"
	"github.com/custodia-labs/wik/internal/logger"
)

// annotationSession marks commands that run a fetch session. The cache
// root is wiped when such a command exits, unless --keep-cache is set.
const annotationSession = "wik/session"

// Services bundles the driving ports the commands use.
type Services struct {
	Search   driving.SearchService
	Article  driving.ArticleService
	Settings driving.SettingsService
	Cache    driving.CacheService
}

// Options carries the root flags a Bootstrapper needs.
type Options struct {
	// ConfigDir overrides the configuration directory. Empty means ~/.wik.
	ConfigDir string
}

// Bootstrapper builds the services before a command runs.
// The returned func releases whatever the services hold open.
type Bootstrapper func(opts Options) (*Services, func() error, error)

var (
	version = "dev"

	// Persistent flags.
	verbose   bool
	configDir string
	logFile   string
	keepCache bool

	searchService   driving.SearchService
	articleService  driving.ArticleService
	settingsService driving.SettingsService
	cacheService    driving.CacheService

	bootstrap   Bootstrapper
	teardown    func() error
	logCloser   io.Closer
	clearOnExit bool
)

var rootCmd = &cobra.Command{
	Use:   "wik",
	Short: "Search and read Wikipedia from the terminal",
	Long: `wik searches Wikipedia and shows articles in the terminal.

Run without a subcommand to start the interactive interface. Search
results and articles are cached for the session, so going back to a
page never refetches it. The cache is wiped when wik exits.`,
	Annotations:       map[string]string{annotationSession: "true"},
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.wik)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&keepCache, "keep-cache", false, "Leave the cache in place on exit")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap sets the function that builds services before a command runs.
func SetBootstrap(b Bootstrapper) {
	bootstrap = b
}

// SetServices injects the driving ports used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	searchService = s.Search
	articleService = s.Article
	settingsService = s.Settings
	cacheService = s.Cache
}

// Execute runs the root command, then releases services and, for session
// commands, wipes the cache. Teardown failures go to stderr and do not
// change the result.
func Execute() error {
	err := rootCmd.Execute()
	finish(os.Stderr)
	return err
}

// setup applies the logging flags and builds services.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if logFile != "" {
		closer, err := logger.OpenFile(logFile)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logCloser = closer
	}

	clearOnExit = cmd.Annotations[annotationSession] == "true" && !keepCache

	if servicesConfigured() || bootstrap == nil {
		return nil
	}

	services, release, err := bootstrap(Options{ConfigDir: configDir})
	if err != nil {
		return fmt.Errorf("starting wik: %w", err)
	}
	SetServices(services)
	teardown = release
	return nil
}

func servicesConfigured() bool {
	return searchService != nil || articleService != nil || settingsService != nil || cacheService != nil
}

// finish runs once after the command tree returns.
func finish(stderr io.Writer) {
	var errs []error

	if clearOnExit && cacheService != nil {
		logger.Debug("Wiping cache root %s", cacheService.Root())
		if err := cacheService.Clear(); err != nil {
			errs = append(errs, fmt.Errorf("clearing cache: %w", err))
		}
	}
	clearOnExit = false

	if teardown != nil {
		if err := teardown(); err != nil {
			errs = append(errs, err)
		}
		teardown = nil
	}

	if logCloser != nil {
		logger.SetOutput(os.Stderr)
		if err := logCloser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing log file: %w", err))
		}
		logCloser = nil
	}

	if err := errors.Join(errs...); err != nil {
		fmt.Fprintf(stderr, "wik: %v\n", err)
	}
}
