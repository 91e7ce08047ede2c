// Package dotfiles implements the two read operations the server exposes:
// enumerating tracked files and reading a tracked file's current on-disk
// content.
package dotfiles

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"dotserve/internal/config"
	"dotserve/internal/gitrepo"
	"dotserve/internal/logging"
	"dotserve/pkg/fileops"
)

// ErrRepoUnavailable reports that git exited non-zero while listing tracked
// files, which usually means the bare repository does not exist. Callers that
// need the legacy collapsed behavior can treat it the same as an empty list;
// the error keeps the two cases distinguishable internally.
var ErrRepoUnavailable = errors.New("dotfiles repository not accessible")

// ReadStatus tags the outcome of a file read.
type ReadStatus int

const (
	ReadOK ReadStatus = iota
	ReadNotFound
	ReadFailed
)

// ReadResult is the tagged outcome of reading one tracked file. Content is
// only meaningful when Status is ReadOK; Err is only set for ReadFailed.
type ReadResult struct {
	Status  ReadStatus
	Content string
	Err     error
}

// Queries answers read-only questions about the dotfiles repository.
type Queries struct {
	runner   gitrepo.Runner
	workTree string
	logger   *logging.AppLogger
}

func NewQueries(runner gitrepo.Runner, cfg *config.Config, logger *logging.AppLogger) *Queries {
	return &Queries{
		runner:   runner,
		workTree: cfg.WorkTree,
		logger:   logger,
	}
}

// ListTracked returns the paths of all files tracked by the repository, in
// the order git produces them. Lines are trimmed and empty lines dropped.
// A non-zero git exit wraps ErrRepoUnavailable with the captured stderr.
func (q *Queries) ListTracked(ctx context.Context) ([]string, error) {
	result, err := q.runner.Run(ctx, "ls-files")
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("%w: git exited %d: %s",
			ErrRepoUnavailable, result.ExitCode, strings.TrimSpace(result.Stderr))
	}

	var files []string
	for _, line := range strings.Split(result.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		files = append(files, line)
	}

	q.logger.Debug("Listed tracked files", "count", len(files))
	return files, nil
}

// ReadFile reads a tracked file's content from the work tree. The content
// comes straight off disk, not from the git index, so uncommitted edits to a
// tracked file are visible. The path is joined against the work-tree root;
// paths that escape it are rejected as read failures.
func (q *Queries) ReadFile(path string) ReadResult {
	abs, err := fileops.ResolveUnder(q.workTree, path)
	if err != nil {
		return ReadResult{Status: ReadFailed, Err: err}
	}

	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return ReadResult{Status: ReadNotFound}
		}
		return ReadResult{Status: ReadFailed, Err: err}
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return ReadResult{Status: ReadFailed, Err: err}
	}

	if !utf8.Valid(data) {
		return ReadResult{
			Status: ReadFailed,
			Err:    fmt.Errorf("file is not valid UTF-8 text: %s", path),
		}
	}

	return ReadResult{Status: ReadOK, Content: string(data)}
}
