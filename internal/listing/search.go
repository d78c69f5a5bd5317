package listing

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrEmptyQuery is returned by Search for a blank query.
var ErrEmptyQuery = errors.New("listing: empty search query")

// SearchResult holds the first matches of a search and the total count.
type SearchResult struct {
	Matches []string
	Total   int
}

// SearchOption adjusts a single Search call
type SearchOption func(*searchConfig)

type searchConfig struct {
	filesOnly bool
}

// FilesOnly restricts matching to file names; directories are still walked
func FilesOnly() SearchOption {
	return func(c *searchConfig) {
		c.filesOnly = true
	}
}

// Search walks root recursively and matches file and directory names against
// query, case-insensitively. Unreadable directories below root are skipped.
// At most limit paths are kept; limit <= 0 keeps all of them.
func (e *Engine) Search(ctx context.Context, root, query string, limit int, opts ...SearchOption) (SearchResult, error) {
	var cfg searchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return SearchResult{}, ErrEmptyQuery
	}

	dir, err := filepath.Abs(root)
	if err != nil {
		return SearchResult{}, classify(root, err)
	}
	info, err := e.fs.Stat(dir)
	if err != nil {
		return SearchResult{}, classify(dir, err)
	}
	if !info.IsDir() {
		return SearchResult{}, errNotDirectory(dir)
	}

	var result SearchResult
	if err := e.walk(ctx, dir, query, limit, cfg, &result, true); err != nil {
		return result, err
	}
	e.log.Debug("search finished",
		zap.String("root", dir),
		zap.String("query", query),
		zap.Int("total", result.Total),
	)
	return result, nil
}

func (e *Engine) walk(ctx context.Context, dir, query string, limit int, cfg searchConfig, result *SearchResult, top bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	children, err := e.fs.ReadDir(dir)
	if err != nil {
		if top {
			return classify(dir, err)
		}
		e.log.Debug("search skipped directory", zap.String("path", dir), zap.Error(err))
		return nil
	}

	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		matchable := !cfg.filesOnly || !child.IsDir()
		if matchable && strings.Contains(strings.ToLower(child.Name()), query) {
			result.Total++
			if limit <= 0 || len(result.Matches) < limit {
				result.Matches = append(result.Matches, path)
			}
		}
		// Symlinked directories are not followed.
		if child.IsDir() && child.Type()&fs.ModeSymlink == 0 {
			if err := e.walk(ctx, path, query, limit, cfg, result, false); err != nil {
				return err
			}
		}
	}
	return nil
}
