package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrNoSuchPath reports a repository argument that does not exist on
	// the filesystem.
	ErrNoSuchPath = errors.New("no such path")

	// ErrNotARepository reports a path that exists but has no enclosing
	// git checkout.
	ErrNotARepository = errors.New("not a git repository")
)

// Locate resolves path to the root of its enclosing git repository by
// walking the directory and its ancestors for a .git entry. The entry may
// be a directory or, for worktrees and submodules, a file.
func Locate(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrNoSuchPath, path)
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: %s", ErrNotARepository, path)
		}
		dir = parent
	}
}

// RepoName returns the display name for a repository root: its last path
// segment. Names are not deduplicated across repositories.
func RepoName(root string) string {
	return filepath.Base(root)
}
