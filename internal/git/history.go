package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"
)

// ErrHistoryFetch reports a git log invocation that failed (non-zero exit
// or missing executable).
var ErrHistoryFetch = errors.New("history fetch failed")

// Fetcher reads commit dates out of a repository via the git executable.
type Fetcher struct {
	Author      string // restrict history to commits authored by this string
	AllBranches bool   // include commits reachable from any branch
}

// CommitDates returns the distinct calendar dates carrying at least one
// matching commit, ascending, normalized to midnight UTC. A repository with
// no matching commits yields an empty slice and no error.
func (f Fetcher) CommitDates(ctx context.Context, root string) ([]time.Time, error) {
	args := []string{"log", "--no-show-signature", "--pretty=format:%ad", "--date=short"}
	if f.AllBranches {
		args = append(args, "--all")
	}
	if f.Author != "" {
		args = append(args, "--author="+f.Author)
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	// The repository root is passed to the subprocess; the process-wide
	// working directory is never touched.
	cmd.Dir = root

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w for %s: %v (stderr: %s)",
				ErrHistoryFetch, root, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%w for %s: %v", ErrHistoryFetch, root, err)
	}

	seen := make(map[string]bool)
	var dates []time.Time
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true

		day, err := time.ParseInLocation("2006-01-02", line, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w for %s: unexpected date %q in git log output",
				ErrHistoryFetch, root, line)
		}
		dates = append(dates, day)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}
