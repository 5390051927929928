// Package gitsource keeps a local checkout of a deck repository up to date.
package gitsource

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
)

// Sync clones url into localPath if it does not exist yet, or pulls the
// latest changes if it does.
func Sync(ctx context.Context, url, localPath string, logger *slog.Logger) error {
	_, err := os.Stat(localPath)
	switch {
	case os.IsNotExist(err):
		logger.Info("cloning deck repository", "url", url, "path", localPath)
		_, err := git.PlainCloneContext(ctx, localPath, false, &git.CloneOptions{
			URL:      url,
			Depth:    1,
			Progress: io.Discard,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to clone repo %s", url)
		}

	case err == nil:
		logger.Info("pulling deck repository", "path", localPath)
		repo, err := git.PlainOpen(localPath)
		if err != nil {
			return errors.Wrapf(err, "failed to open existing repo at %s", localPath)
		}

		worktree, err := repo.Worktree()
		if err != nil {
			return errors.Wrapf(err, "failed to get worktree for repo at %s", localPath)
		}

		err = worktree.PullContext(ctx, &git.PullOptions{
			RemoteName: "origin",
			Progress:   io.Discard,
		})
		if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return errors.Wrapf(err, "failed to pull changes for repo at %s", localPath)
		}

	default:
		return errors.Wrapf(err, "error checking path %s", localPath)
	}

	return nil
}
