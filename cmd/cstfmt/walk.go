package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	goignore "github.com/cyber-nic/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// formatFunc formats one file's source and returns the rendered
// output, or an error the walker logs and continues past.
type formatFunc func(path string, source []byte) (string, error)

// walkOptions controls how walkAndFormat traverses a root directory.
type walkOptions struct {
	Concurrency int // bounded worker count; <= 0 means runtime.NumCPU()
	Logger      *slog.Logger
}

// walkAndFormat walks rootPath, skips anything matched by
// defaultIgnorePatterns or a root-level .cstfmtignore file (the
// go-gitignore-backed override the teacher's CLI already used), and
// runs format concurrently over every remaining file whose extension
// resolves to a supported grammar. Results are delivered through fn in
// no particular order; errors from individual files are logged, not
// fatal to the walk.
func walkAndFormat(ctx context.Context, rootPath string, opts walkOptions, format formatFunc, fn func(path, rendered string)) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	gi, err := goignore.CompileIgnoreFile(filepath.Join(rootPath, ".cstfmtignore"))
	if err != nil {
		gi = goignore.CompileIgnoreLines()
	}

	g, ctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	} else {
		g.SetLimit(runtime.NumCPU())
	}

	var resultMu sync.Mutex
	walkErr := filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(rootPath, path)
		if relErr != nil {
			rel = path
		}

		if matchIgnorePattern(rel, defaultIgnorePatterns) || gi.MatchesPath(rel) {
			return nil
		}

		if _, _, langErr := GetLanguageFromFileName(path); langErr != nil {
			return nil
		}

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			source, readErr := os.ReadFile(path)
			if readErr != nil {
				logger.Warn("cstfmt: failed to read file", "path", path, "err", readErr)
				return nil
			}

			rendered, fmtErr := format(path, source)
			if fmtErr != nil {
				logger.Warn("cstfmt: failed to format file", "path", path, "err", fmtErr)
				return nil
			}

			resultMu.Lock()
			fn(rel, rendered)
			resultMu.Unlock()
			return nil
		})
		return nil
	})
	if walkErr != nil {
		return walkErr
	}

	return g.Wait()
}
