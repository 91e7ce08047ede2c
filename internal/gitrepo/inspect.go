package gitrepo

import (
	git "github.com/go-git/go-git/v6"

	"dotserve/internal/config"
)

// RepoInfo is a startup diagnostic of the dotfiles repository. It exists so
// "repository not accessible" shows up in the logs instead of only as an
// empty tool response later.
type RepoInfo struct {
	Accessible bool
	Head       string // HEAD commit hash, empty before the first commit
	Branch     string
	Detail     string // human-readable note when Head is unavailable
}

// Inspect opens the bare repository read-only and reports what it finds.
// It never fails: an unopenable repository is reported, not returned as an
// error, since the server serves degraded responses either way.
func Inspect(cfg *config.Config) RepoInfo {
	repo, err := git.PlainOpenWithOptions(cfg.GitDir, &git.PlainOpenOptions{})
	if err != nil {
		return RepoInfo{Accessible: false, Detail: err.Error()}
	}

	head, err := repo.Head()
	if err != nil {
		return RepoInfo{Accessible: true, Detail: "repository has no commits yet"}
	}

	return RepoInfo{
		Accessible: true,
		Head:       head.Hash().String(),
		Branch:     head.Name().Short(),
	}
}
