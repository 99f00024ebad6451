package events

import (
	"time"

	"boardsync/core/erp"
	"boardsync/core/models"
)

// locationDefinitionID tags the custom field carrying the venue city on
// upstream event projects.
const locationDefinitionID int64 = 1047

// sentinelEpoch is the upstream placeholder for "no date set".
const sentinelEpoch = "1970-01-01"

// dateLayouts are the formats upstream date strings appear in.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate normalizes an upstream date string. The sentinel epoch and
// anything unparseable map to nil.
func parseDate(raw string) *time.Time {
	if raw == "" || raw == sentinelEpoch {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			if t.Format("2006-01-02") == sentinelEpoch {
				return nil
			}
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}
	return nil
}

// Location extracts the venue from the project's tagged custom fields.
func Location(p erp.Project) string {
	for _, cf := range p.CustomFields {
		if cf.DefinitionID == locationDefinitionID {
			return cf.Value
		}
	}
	return ""
}

// ConvertEvent maps a validated upstream project to the local event shape.
func ConvertEvent(p erp.Project) *models.Event {
	return &models.Event{
		ExternalCode: p.ID,
		GroupCode:    p.GroupID,
		Name:         p.Name,
		Location:     Location(p),
		StartDate:    parseDate(p.StartDate),
		EndDate:      parseDate(p.EndDate),
	}
}
