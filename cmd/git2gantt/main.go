package main

import (
	"fmt"
	"os"

	"github.com/git2gantt/git2gantt/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"

	cfgFile string
	verbose bool
	logger  *logrus.Logger
	cfg     *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "git2gantt [flags] repo [repo...]",
	Short: "Render git commit history as a mermaid gantt chart",
	Long: `git2gantt reads the commit history of one or more git repositories,
groups the commit dates of each into contiguous work sessions, and prints
a mermaid gantt chart describing them to standard output.`,
	Version: Version,
	Args:    cobra.MinimumNArgs(1),
	// A failed run prints one line to stderr (from main), not usage text
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Logs go to stderr; stdout carries only the chart
		logger = logrus.New()
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.WarnLevel)
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			logger.WithError(err).Warn("Failed to load config, using defaults")
			cfg = config.Default()
		}
	},
	RunE: runChart,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .git2gantt.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")

	rootCmd.Flags().StringP("author", "a", "", "only count commits authored by STRING")
	rootCmd.Flags().StringP("description", "d", "", `label for every session bar (default "Development")`)
	rootCmd.Flags().BoolP("every-branch", "e", false, "include commits reachable from any branch")
	rootCmd.Flags().IntP("fuzz", "f", 0, "extra slack days tolerated between contiguous commit dates")
	rootCmd.Flags().StringP("title", "t", "", `chart title (default "git2gantt output")`)
	rootCmd.Flags().IntP("jobs", "j", 0, "fetch up to N repository histories in parallel (default 1)")

	// Declared before cobra's default so --version gets the -v shorthand
	rootCmd.Flags().BoolP("version", "v", false, "print version and exit")

	rootCmd.SetVersionTemplate(`git2gantt {{.Version}}
Build time: ` + BuildTime + `
Git commit: ` + GitCommit + `
`)
}
