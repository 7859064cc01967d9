package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wik/internal/logger"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and clear the request cache",
	Long: `Inspect and clear the cache root.

Every wik session keeps its payloads in its own area under the cache root.
Session commands wipe the root when they exit; these commands do not.`,
}

var cacheListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List cached sessions",
	RunE:    runCacheList,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Wipe the cache root",
	RunE:  runCacheClear,
}

var cacheWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes under the cache root",
	Long: `Print files created and removed under the cache root until interrupted.

Useful alongside a running wik session to see which requests hit the network.`,
	RunE: runCacheWatch,
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheWatchCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheList(cmd *cobra.Command, _ []string) error {
	if cacheService == nil {
		return errors.New("cache service not configured")
	}

	sessions, err := cacheService.Sessions()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	cmd.Printf("Cache root: %s\n", cacheService.Root())
	if len(sessions) == 0 {
		cmd.Println("No cached sessions.")
		return nil
	}

	cmd.Printf("Sessions (%d):\n", len(sessions))
	for _, id := range sessions {
		cmd.Printf("  %s\n", id)
	}
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	if cacheService == nil {
		return errors.New("cache service not configured")
	}

	if err := cacheService.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	cmd.Printf("Cleared %s\n", cacheService.Root())
	return nil
}

func runCacheWatch(cmd *cobra.Command, _ []string) error {
	if cacheService == nil {
		return errors.New("cache service not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", cacheService.Root())
	return watchCache(ctx, cacheService.Root(), cmd.OutOrStdout())
}

// watchCache prints events under root and its session directories until
// ctx is done. Session directories created while watching are added.
func watchCache(ctx context.Context, root string, out io.Writer) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("cache root %q is not a directory", root)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(root); err != nil {
		return fmt.Errorf("watching %s: %w", root, err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("reading %s: %w", root, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			addWatch(watcher, filepath.Join(root, e.Name()))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					addWatch(watcher, event.Name)
				}
			}
			if line := describeEvent(root, event); line != "" {
				fmt.Fprintln(out, line)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Cache watcher error: %v", err)
		}
	}
}

func addWatch(watcher *fsnotify.Watcher, dir string) {
	if err := watcher.Add(dir); err != nil {
		logger.Warn("Cannot watch %s: %v", dir, err)
	}
}

// describeEvent formats an event relative to root. Chmod events are dropped.
func describeEvent(root string, event fsnotify.Event) string {
	var op string
	switch {
	case event.Has(fsnotify.Create):
		op = "create"
	case event.Has(fsnotify.Write):
		op = "write"
	case event.Has(fsnotify.Remove):
		op = "remove"
	case event.Has(fsnotify.Rename):
		op = "rename"
	default:
		return ""
	}

	name := event.Name
	if rel, err := filepath.Rel(root, event.Name); err == nil {
		name = rel
	}
	return fmt.Sprintf("%-6s %s", op, name)
}
