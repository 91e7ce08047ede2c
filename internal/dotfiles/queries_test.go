package dotfiles

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotserve/internal/config"
	"dotserve/internal/gitrepo"
	"dotserve/internal/logging"
)

// stubRunner returns a canned CommandResult or error without touching git.
type stubRunner struct {
	result gitrepo.CommandResult
	err    error
}

func (s *stubRunner) Run(ctx context.Context, args ...string) (gitrepo.CommandResult, error) {
	return s.result, s.err
}

func newTestQueries(t *testing.T, runner gitrepo.Runner, workTree string) *Queries {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	cfg := &config.Config{GitDir: filepath.Join(workTree, ".cfg"), WorkTree: workTree}
	return NewQueries(runner, cfg, logger)
}

func TestListTracked(t *testing.T) {
	tests := []struct {
		name     string
		stdout   string
		expected []string
	}{
		{
			name:     "plain listing preserves order",
			stdout:   ".bashrc\n.vimrc\n.config/git/config\n",
			expected: []string{".bashrc", ".vimrc", ".config/git/config"},
		},
		{
			name:     "whitespace trimmed and empty lines dropped",
			stdout:   "  .bashrc  \n\n\n.vimrc\t\n",
			expected: []string{".bashrc", ".vimrc"},
		},
		{
			name:     "empty output yields no files",
			stdout:   "",
			expected: nil,
		},
		{
			name:     "order is not re-sorted",
			stdout:   ".zshrc\n.bashrc\n",
			expected: []string{".zshrc", ".bashrc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &stubRunner{result: gitrepo.CommandResult{ExitCode: 0, Stdout: tt.stdout}}
			q := newTestQueries(t, runner, t.TempDir())

			files, err := q.ListTracked(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, files)
		})
	}
}

func TestListTracked_RepoUnavailable(t *testing.T) {
	runner := &stubRunner{result: gitrepo.CommandResult{
		ExitCode: 128,
		Stderr:   "fatal: not a git repository\n",
	}}
	q := newTestQueries(t, runner, t.TempDir())

	files, err := q.ListTracked(context.Background())
	require.Error(t, err)
	assert.Nil(t, files)
	assert.ErrorIs(t, err, ErrRepoUnavailable)
	assert.Contains(t, err.Error(), "not a git repository")
}

func TestListTracked_ExecErrorPassesThrough(t *testing.T) {
	execErr := &gitrepo.ExecError{Args: []string{"ls-files"}, Err: errors.New("executable file not found")}
	runner := &stubRunner{err: execErr}
	q := newTestQueries(t, runner, t.TempDir())

	_, err := q.ListTracked(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRepoUnavailable)

	var target *gitrepo.ExecError
	assert.ErrorAs(t, err, &target)
}

func TestReadFile(t *testing.T) {
	workTree := t.TempDir()
	q := newTestQueries(t, &stubRunner{}, workTree)

	require.NoError(t, os.WriteFile(filepath.Join(workTree, ".bashrc"), []byte("export X=1\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(workTree, ".config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(workTree, ".config", "binary"), []byte{0xff, 0xfe, 0x00, 0x01}, 0o644))

	t.Run("existing file returns content", func(t *testing.T) {
		res := q.ReadFile(".bashrc")
		assert.Equal(t, ReadOK, res.Status)
		assert.Equal(t, "export X=1\n", res.Content)
	})

	t.Run("repeated reads are byte identical", func(t *testing.T) {
		first := q.ReadFile(".bashrc")
		second := q.ReadFile(".bashrc")
		assert.Equal(t, first, second)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		res := q.ReadFile("nope.txt")
		assert.Equal(t, ReadNotFound, res.Status)
		assert.Empty(t, res.Content)
	})

	t.Run("directory is a read failure", func(t *testing.T) {
		res := q.ReadFile(".config")
		assert.Equal(t, ReadFailed, res.Status)
		assert.Error(t, res.Err)
	})

	t.Run("invalid utf8 is a read failure", func(t *testing.T) {
		res := q.ReadFile(".config/binary")
		assert.Equal(t, ReadFailed, res.Status)
		require.Error(t, res.Err)
		assert.Contains(t, res.Err.Error(), "UTF-8")
	})

	t.Run("traversal outside work tree is a read failure", func(t *testing.T) {
		res := q.ReadFile("../outside")
		assert.Equal(t, ReadFailed, res.Status)
		assert.Error(t, res.Err)
	})

	t.Run("absolute path is a read failure", func(t *testing.T) {
		res := q.ReadFile("/etc/passwd")
		assert.Equal(t, ReadFailed, res.Status)
		assert.Error(t, res.Err)
	})
}

func TestReadFile_UncommittedContentVisible(t *testing.T) {
	// ReadFile reads the work tree, not the index: whatever is on disk wins.
	workTree := t.TempDir()
	q := newTestQueries(t, &stubRunner{}, workTree)

	path := filepath.Join(workTree, ".vimrc")
	require.NoError(t, os.WriteFile(path, []byte("set number\n"), 0o644))

	res := q.ReadFile(".vimrc")
	require.Equal(t, ReadOK, res.Status)
	assert.Equal(t, "set number\n", res.Content)

	require.NoError(t, os.WriteFile(path, []byte("set nonumber\n"), 0o644))

	res = q.ReadFile(".vimrc")
	require.Equal(t, ReadOK, res.Status)
	assert.Equal(t, "set nonumber\n", res.Content)
}
