package roster

import (
	"strings"

	"boardsync/core/erp"
	"boardsync/core/models"
)

// departmentMap translates the upstream free-text department into the
// board's department buckets. Unmapped values land in the unassigned
// bucket, which excludes the employee from absence processing.
var departmentMap = map[string]string{
	"verwaltung":        "Verwaltung",
	"buchhaltung":       "Verwaltung",
	"personal":          "Verwaltung",
	"vertrieb":          "Vertrieb",
	"projektleitung":    "Projektleitung",
	"grafik":            "Grafik",
	"werbetechnik":      "Grafik",
	"schreinerei":       "Werkstatt",
	"werkstatt":         "Werkstatt",
	"lackiererei":       "Werkstatt",
	"lager":             "Lager",
	"logistik":          "Lager",
	"montage":           "Montage",
	"messebau":          "Montage",
	"auszubildende":     "Auszubildende",
	"geschaeftsleitung": "Geschäftsleitung",
	"geschäftsleitung":  "Geschäftsleitung",
}

// Work-location keyword lists, matched against lowercased role and
// department text. Warehouse wins over field when both match.
var (
	warehouseKeywords = []string{"lager", "logistik"}
	fieldKeywords     = []string{"montage", "messebau", "bau", "fahrer"}
)

// MapDepartment resolves the upstream department to a board bucket.
func MapDepartment(raw string) string {
	if mapped, ok := departmentMap[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return mapped
	}
	return models.DepartmentUnassigned
}

// InferWorkLocation derives the work location from role and department
// text.
func InferWorkLocation(position, department string) string {
	text := strings.ToLower(position + " " + department)
	for _, kw := range warehouseKeywords {
		if strings.Contains(text, kw) {
			return models.LocationWarehouse
		}
	}
	for _, kw := range fieldKeywords {
		if strings.Contains(text, kw) {
			return models.LocationField
		}
	}
	return models.LocationOffice
}

// ConvertEmployee maps an upstream user to the local employee shape. The
// curated board flags are zero-valued here; the reconcile engine never
// writes them, so their local values are untouched on update and new rows
// start with everything off.
func ConvertEmployee(u erp.User) *models.Employee {
	return &models.Employee{
		ExternalCode: u.ID,
		Name:         u.DisplayName(),
		Department:   MapDepartment(u.Department),
		WorkLocation: InferWorkLocation(u.Position, u.Department),
		Active:       u.Active && !u.Terminated,
	}
}
