package events

import (
	"strings"
	"time"

	"boardsync/core/erp"
)

// eventGroupPrefix marks project groups holding trade-show projects. The
// match is anchored at the start of the group name, case-folded; a group
// merely mentioning the word elsewhere does not qualify.
const eventGroupPrefix = "veranstaltung"

// maxEventAge rejects projects whose start date lies too far in the past.
const maxEventAge = 2 * 365 * 24 * time.Hour

// exclusionKeywords disqualify a project whose name or note contains any
// of them. The list covers the internal project vocabulary that lives in
// event groups without being an event itself.
var exclusionKeywords = []string{
	// manufacturing and finishing
	"lackierung", "lackieren", "pulverbeschichtung", "schlosserei",
	"schreinerei", "tischlerei", "zuschnitt", "fertigung",
	// internal fabrication
	"eigenbau", "musterbau", "prototyp", "umbau", "reparatur",
	// logistics
	"lager", "logistik", "transport", "entsorgung",
	// rentals and services
	"vermietung", "mietmöbel", "leihgabe", "service",
	// office and admin
	"verwaltung", "büro", "intern", "besprechung",
	// facilities
	"gebäude", "instandhaltung", "wartung",
	// IT
	"edv", "server", "software",
	// finance, HR, marketing
	"buchhaltung", "personal", "bewerbung", "marketing", "werbung",
}

// IsEventGroup reports whether a project group qualifies as an event
// group.
func IsEventGroup(g erp.ProjectGroup) bool {
	return strings.HasPrefix(strings.ToLower(g.Name), eventGroupPrefix)
}

// ValidateProject checks a project inside a qualifying group. It returns
// an empty string for a valid event, otherwise the first failing reason.
// Every check short-circuits.
func ValidateProject(p erp.Project, now time.Time) string {
	text := strings.ToLower(p.Name + " " + p.Note)
	for _, kw := range exclusionKeywords {
		if strings.Contains(text, kw) {
			return "excluded keyword: " + kw
		}
	}

	// Upstream denotes exhibitor sub-projects with a path separator.
	if strings.Contains(p.Name, "/") {
		return "exhibitor sub-project"
	}

	start := parseDate(p.StartDate)
	end := parseDate(p.EndDate)
	if start == nil || end == nil {
		return "missing or sentinel date"
	}
	if start.Before(now.Add(-maxEventAge)) {
		return "start date too far in the past"
	}

	return ""
}
