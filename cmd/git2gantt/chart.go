package main

import (
	"context"
	"fmt"
	"os"

	"github.com/git2gantt/git2gantt/internal/chart"
	"github.com/git2gantt/git2gantt/internal/git"
	"github.com/git2gantt/git2gantt/internal/sessions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func runChart(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	author, _ := cmd.Flags().GetString("author")
	everyBranch, _ := cmd.Flags().GetBool("every-branch")

	// Flags beat config-file and environment values
	title := cfg.Title
	if cmd.Flags().Changed("title") {
		title, _ = cmd.Flags().GetString("title")
	}
	description := cfg.Description
	if cmd.Flags().Changed("description") {
		description, _ = cmd.Flags().GetString("description")
	}
	fuzz := cfg.Fuzz
	if cmd.Flags().Changed("fuzz") {
		fuzz, _ = cmd.Flags().GetInt("fuzz")
	}
	jobs := cfg.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs, _ = cmd.Flags().GetInt("jobs")
	}

	if fuzz < 0 {
		return fmt.Errorf("fuzz must be non-negative, got %d", fuzz)
	}
	if jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", jobs)
	}

	// Validate every path before any history is fetched, so a single bad
	// argument aborts the run with nothing written to stdout.
	roots := make([]string, len(args))
	for i, path := range args {
		root, err := git.Locate(path)
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{"path": path, "root": root}).Debug("located repository")
		roots[i] = root
	}

	fetcher := git.Fetcher{Author: author, AllBranches: everyBranch}
	cal := sessions.DefaultCalendar()

	// Each result lands at its input index, so section order always matches
	// the argument order no matter how many fetches run at once.
	repos := make([]chart.Repo, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			dates, err := fetcher.CommitDates(gctx, root)
			if err != nil {
				return err
			}

			repo := chart.Repo{Name: git.RepoName(root)}
			if len(dates) > 0 {
				repo.Sessions = sessions.Segment(dates, fuzz, cal)
			}
			logger.WithFields(logrus.Fields{
				"repo":     repo.Name,
				"dates":    len(dates),
				"sessions": len(repo.Sessions),
			}).Debug("segmented history")

			repos[i] = repo
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, chart.Render(title, description, repos))
	return nil
}
