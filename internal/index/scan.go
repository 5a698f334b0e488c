package index

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"slate/internal/logging"
	"slate/internal/project"
)

// ScanOptions controls workfile discovery.
type ScanOptions struct {
	// Extensions are the lowercase file extensions (with dot) that
	// count as workfiles.
	Extensions []string

	// Include and Exclude are comma-separated doublestar patterns
	// applied to the path relative to the scan root.
	Include string
	Exclude string

	// Parser overrides the convention parser; nil selects the
	// platform parser.
	Parser *project.Parser

	Logger *slog.Logger
}

// ScanSummary reports what a scan did.
type ScanSummary struct {
	Indexed  int
	Skipped  int
	Duration time.Duration
}

// Scan walks root, parses every candidate workfile, and upserts the
// results into the store. Files that do not follow the naming
// convention are counted as skipped; walk errors abort the scan.
func Scan(ctx context.Context, store *Store, root string, opts ScanOptions) (ScanSummary, error) {
	start := time.Now()

	parser := opts.Parser
	if parser == nil {
		parser = project.Platform()
	}
	logger := logging.NewComponentLogger(opts.Logger, "scan")

	patterns := opts.Include
	for _, pattern := range strings.Split(opts.Exclude, ",") {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			patterns += ",!" + pattern
		}
	}
	matcher := parseGlobPattern(patterns)

	extensions := make(map[string]struct{}, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extensions[strings.ToLower(ext)] = struct{}{}
	}

	var summary ScanSummary
	scannedAt := time.Now().UTC()

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			return nil
		}
		if len(extensions) > 0 {
			if _, ok := extensions[strings.ToLower(filepath.Ext(path))]; !ok {
				return nil
			}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		if ok, err := matcher.match(rel); err != nil {
			return err
		} else if !ok {
			return nil
		}

		parts, parseErr := parser.Parse(path)
		if parseErr != nil {
			summary.Skipped++
			logger.Debug("skipping unparseable workfile",
				logging.String("path", path),
				logging.Error(parseErr))
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat %q: %w", path, err)
		}

		rec := &Record{
			Path:      path,
			Parts:     parts,
			SizeBytes: info.Size(),
			Modified:  info.ModTime(),
			ScannedAt: scannedAt,
		}
		if err := store.Upsert(ctx, rec); err != nil {
			return err
		}
		summary.Indexed++
		return nil
	})

	summary.Duration = time.Since(start)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return summary, err
		}
		return summary, fmt.Errorf("scan %q: %w", root, err)
	}

	if err := store.recordScan(ctx, scannedAt, summary.Skipped); err != nil {
		return summary, err
	}

	logger.Info("scan complete",
		logging.String("root", root),
		logging.Int("indexed", summary.Indexed),
		logging.Int("skipped", summary.Skipped),
		logging.Duration("duration", summary.Duration))
	return summary, nil
}
