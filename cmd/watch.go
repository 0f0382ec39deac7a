package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"showcase/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the gallery whenever the collection changes",
	Long: `Watch the templates and thumbnails directories and rebuild the gallery
page when files are added, changed, renamed or removed.

Rapid bursts of events (an editor save, a batch copy) are coalesced into a
single rebuild by a debounce timer (watch_debounce_ms in the config).

Use --quiet to suppress per-rebuild notifications.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress rebuild notifications")
}

func runWatch(cmd *cobra.Command, args []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{appWorkspace.TemplatesPath, appWorkspace.ThumbnailsPath} {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	if !watchQuiet {
		fmt.Println(ui.FormatRocket("Watching the collection..."))
		fmt.Println(ui.FormatMuted("Templates:  " + appWorkspace.TemplatesPath))
		fmt.Println(ui.FormatMuted("Thumbnails: " + appWorkspace.ThumbnailsPath))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	// Initial build so the page reflects the current state
	if err := rebuildAndReport(); err != nil {
		return err
	}

	debounce := newDebouncer(time.Duration(appConfig.WatchDebounceMS) * time.Millisecond)
	defer debounce.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isCollectionFile(event.Name) {
				continue
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {
				debounce.Trigger()
			}

		case <-debounce.C:
			// Rebuilds run here, on the loop goroutine, so two rebuilds
			// never write the output file concurrently
			if err := rebuildAndReport(); err != nil && !watchQuiet {
				fmt.Println(ui.FormatError("Rebuild failed: " + err.Error()))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println(ui.FormatError("Watcher error: " + err.Error()))
		}
	}
}

// debouncer coalesces a burst of Trigger calls into a single signal on C,
// sent once the burst has been quiet for the full duration.
type debouncer struct {
	C chan struct{}

	duration time.Duration
	mu       sync.Mutex
	timer    *time.Timer
}

func newDebouncer(duration time.Duration) *debouncer {
	return &debouncer{
		C:        make(chan struct{}, 1),
		duration: duration,
	}
}

// Trigger restarts the quiet-period timer.
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		// Non-blocking: a signal already pending covers this burst too
		select {
		case d.C <- struct{}{}:
		default:
		}
	})
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
}

// isCollectionFile reports whether a change to the named file can affect
// the catalog: templates, thumbnails, nothing hidden, never the output.
func isCollectionFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~") {
		return false
	}
	if base == appConfig.OutputFile {
		return false
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".html", ".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg":
		return true
	}
	return false
}

func rebuildAndReport() error {
	resp, err := rebuildGallery()
	if err != nil {
		return err
	}
	if !watchQuiet {
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Rebuilt: %d assets in %d categories (%d skipped)",
			resp.Matched, len(resp.Catalog.Sections), resp.Skipped)))
	}
	return nil
}
