package catalog

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"pravobot/pkg"
)

// Index is the in-memory video catalog.  The entry slice is an immutable
// snapshot swapped under a single pointer write, so lookups never block and
// never observe a partially rebuilt catalog.
type Index struct {
	path    string
	entries atomic.Pointer[[]pkg.VideoEntry]
	logger  *slog.Logger
}

// New constructs an empty index bound to a snapshot file.  Call Load to
// populate it.
func New(path string, logger *slog.Logger) *Index {
	ix := &Index{path: path, logger: logger}
	empty := []pkg.VideoEntry{}
	ix.entries.Store(&empty)
	return ix
}

// Load reads the snapshot file and atomically replaces the whole catalog.
// Lines have the form "Title: <title>, Link: <link>"; anything else is
// skipped silently.  A title containing the literal ", Link: " separator is
// unparseable in this format and gets skipped like any other malformed line.
func (ix *Index) Load() error {
	f, err := os.Open(ix.path)
	if err != nil {
		return err
	}
	defer f.Close()

	var entries []pkg.VideoEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), ", Link: ")
		if len(parts) != 2 {
			continue
		}
		entries = append(entries, pkg.VideoEntry{
			Title: strings.TrimSpace(strings.TrimPrefix(parts[0], "Title: ")),
			Link:  strings.TrimSpace(parts[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	ix.entries.Store(&entries)
	ix.logger.Info("video catalog loaded", "path", ix.path, "entries", len(entries))
	return nil
}

// Lookup returns the link of the first entry whose title shares at least
// one token with the keyword set, or "" when nothing matches.  Titles are
// lowercased and split on spaces; there is no ranking.
func (ix *Index) Lookup(keywords []string) string {
	for _, entry := range *ix.entries.Load() {
		titleWords := make(map[string]struct{})
		for _, w := range strings.Fields(strings.ToLower(entry.Title)) {
			titleWords[w] = struct{}{}
		}
		for _, kw := range keywords {
			if _, ok := titleWords[kw]; ok {
				return entry.Link
			}
		}
	}
	return ""
}

// Len reports the current snapshot size.
func (ix *Index) Len() int {
	return len(*ix.entries.Load())
}

// Refresh re-reads the snapshot file on the given interval until the
// context is cancelled.  The catalog scraper rewrites the file on its own
// schedule; this loop only ever publishes a finished snapshot and holds no
// lock shared with the request path.
func (ix *Index) Refresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := ix.Load(); err != nil {
				ix.logger.Warn("video catalog refresh failed", "path", ix.path, "error", err)
			}
		}
	}
}
