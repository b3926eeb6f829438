package statusbar

import (
	"strings"

	git "github.com/go-git/go-git/v5"
)

// CurrentBranch returns the branch name for the repository containing
// dir, or the short SHA when HEAD is detached. It returns "" when dir is
// not inside a repository; that is not an error.
func CurrentBranch(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return ""
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return ""
	}

	head, err := repo.Head()
	if err != nil {
		// Fresh repository without commits.
		return ""
	}

	if head.Name().IsBranch() {
		return head.Name().Short()
	}

	hash := head.Hash().String()
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return hash
}
