// Package scan discovers track-listing files below user-supplied paths.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// TextFiles expands roots into the list of .txt files they contain. A root
// that is itself a .txt file is taken as-is; a directory is walked
// recursively. Roots are scanned concurrently but the result keeps root
// order, then walk order within each root, with duplicates removed.
func TextFiles(ctx context.Context, roots []string) ([]string, error) {
	perRoot := make([][]string, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			files, err := textFilesUnder(ctx, root)
			if err != nil {
				return fmt.Errorf("scan %s: %w", root, err)
			}
			perRoot[i] = files
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []string
	for _, files := range perRoot {
		for _, f := range files {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	return out, nil
}

func textFilesUnder(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if isTextFile(root) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() && isTextFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func isTextFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".txt")
}
