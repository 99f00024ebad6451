package roster

import (
	"testing"

	"boardsync/core/erp"
	"boardsync/core/models"

	"github.com/stretchr/testify/assert"
)

func TestMapDepartment(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Montage", "Montage"},
		{"montage", "Montage"},
		{" Lager ", "Lager"},
		{"Logistik", "Lager"},
		{"Buchhaltung", "Verwaltung"},
		{"Raumfahrt", models.DepartmentUnassigned},
		{"", models.DepartmentUnassigned},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MapDepartment(tt.raw), "department %q", tt.raw)
	}
}

func TestInferWorkLocation(t *testing.T) {
	tests := []struct {
		position   string
		department string
		want       string
	}{
		{"Lagerist", "Lager", models.LocationWarehouse},
		{"Fachkraft Logistik", "", models.LocationWarehouse},
		{"Monteur", "Montage", models.LocationField},
		{"Fahrer", "", models.LocationField},
		{"Messebauer", "Messebau", models.LocationField},
		{"Buchhalter", "Verwaltung", models.LocationOffice},
		{"", "", models.LocationOffice},
		// Warehouse keywords win when both would match.
		{"Fahrer", "Lager", models.LocationWarehouse},
	}
	for _, tt := range tests {
		got := InferWorkLocation(tt.position, tt.department)
		assert.Equal(t, tt.want, got, "position %q department %q", tt.position, tt.department)
	}
}

func TestConvertEmployee(t *testing.T) {
	emp := ConvertEmployee(erp.User{
		ID:         42,
		FirstName:  "Anna",
		LastName:   "Berg",
		Department: "Montage",
		Position:   "Monteurin",
		Active:     true,
	})

	assert.EqualValues(t, 42, emp.ExternalCode)
	assert.Equal(t, "Anna Berg", emp.Name)
	assert.Equal(t, "Montage", emp.Department)
	assert.Equal(t, models.LocationField, emp.WorkLocation)
	assert.True(t, emp.Active)
	// Curated flags start off and are not sync-owned.
	assert.False(t, emp.ShowOnBoard)
	assert.False(t, emp.MayDriveVehicles)
	assert.False(t, emp.HasKey)
}

func TestConvertEmployee_TerminatedIsInactive(t *testing.T) {
	emp := ConvertEmployee(erp.User{ID: 7, Active: true, Terminated: true})
	assert.False(t, emp.Active)
}
