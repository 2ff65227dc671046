package chart

import (
	"fmt"
	"strings"

	"github.com/git2gantt/git2gantt/internal/sessions"
)

// Repo pairs a repository display name with its work sessions.
type Repo struct {
	Name     string
	Sessions []sessions.Session
}

const isoDate = "2006-01-02"

// Render produces mermaid gantt source for the given repositories: a header
// block, then one section per repository with one task line per session.
// Repositories with no sessions get no section. Task ids are derived from
// the repository name and session start date, so output is deterministic.
//
// Session bars are printed as half-open ranges: the emitted end date is the
// day after the session's last commit so the chart covers the whole final
// day.
func Render(title, description string, repos []Repo) string {
	var sb strings.Builder

	sb.WriteString("gantt\n")
	sb.WriteString(fmt.Sprintf("  title %s\n", title))
	sb.WriteString("  dateFormat YYYY-MM-DD\n")

	for _, repo := range repos {
		if len(repo.Sessions) == 0 {
			continue
		}

		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  section %s\n", repo.Name))

		for _, s := range repo.Sessions {
			sb.WriteString(fmt.Sprintf("  %s: dev%s%s, %s, %s\n",
				description,
				repo.Name, s.Start.Format("20060102"),
				s.Start.Format(isoDate),
				s.End.AddDate(0, 0, 1).Format(isoDate)))
		}
	}

	return sb.String()
}
