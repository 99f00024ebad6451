package models

import "time"

// Employment status values. Transitions are owned by the sync services:
// roster sync may set terminated (one-way), the absence synchronizer toggles
// active <-> on_vacation and active <-> sick.
const (
	StatusActive     = "active"
	StatusOnVacation = "on_vacation"
	StatusSick       = "sick"
	StatusTerminated = "terminated"
)

// Work locations inferred from upstream role/department text.
const (
	LocationOffice    = "office"
	LocationWarehouse = "warehouse"
	LocationField     = "field"
)

// DepartmentUnassigned is the default bucket for upstream departments that
// have no mapping. Employees in this bucket are excluded from absence
// processing.
const DepartmentUnassigned = "Unzugeordnet"

// Absence kinds.
const (
	KindVacation = "vacation"
	KindSickness = "sickness"
)

// Employee is one person on the info board, reconciled from the upstream
// roster by external code.
//
// ShowOnBoard, MayDriveVehicles and HasKey are curated locally by the board
// operators and are never written by the sync engine; everything else is
// sync-owned.
type Employee struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ExternalCode     int64     `gorm:"column:external_code;uniqueIndex" json:"external_code"`
	Name             string    `gorm:"column:name" json:"name"`
	Department       string    `gorm:"column:department" json:"department"`
	WorkLocation     string    `gorm:"column:work_location" json:"work_location"`
	EmploymentStatus string    `gorm:"column:employment_status;default:active" json:"employment_status"`
	Active           bool      `gorm:"column:active" json:"active"`
	ShowOnBoard      bool      `gorm:"column:show_on_board" json:"show_on_board"`
	MayDriveVehicles bool      `gorm:"column:may_drive_vehicles" json:"may_drive_vehicles"`
	HasKey           bool      `gorm:"column:has_key" json:"has_key"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }

// PK returns the local primary key.
func (e *Employee) PK() uint { return e.ID }

// KeyColumn returns the reconciliation key column.
func (e *Employee) KeyColumn() string { return "external_code" }

// ExternalKey returns the upstream identifier.
func (e *Employee) ExternalKey() int64 { return e.ExternalCode }

// SyncValues returns the sync-owned columns. The curated flags and the
// employment status are deliberately absent.
func (e *Employee) SyncValues() map[string]any {
	return map[string]any{
		"name":          e.Name,
		"department":    e.Department,
		"work_location": e.WorkLocation,
		"active":        e.Active,
	}
}

// Vehicle is a fleet resource classified out of the upstream roster.
// Rooms are classified too but never persisted.
type Vehicle struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ExternalCode int64     `gorm:"column:external_code;uniqueIndex" json:"external_code"`
	Name         string    `gorm:"column:name" json:"name"`
	Brand        string    `gorm:"column:brand" json:"brand"`
	Model        string    `gorm:"column:model" json:"model"`
	Plate        string    `gorm:"column:plate" json:"plate"`
	Category     string    `gorm:"column:category;default:vehicle" json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Vehicle) TableName() string { return "vehicles" }

func (v *Vehicle) PK() uint           { return v.ID }
func (v *Vehicle) KeyColumn() string  { return "external_code" }
func (v *Vehicle) ExternalKey() int64 { return v.ExternalCode }

func (v *Vehicle) SyncValues() map[string]any {
	return map[string]any{
		"name":  v.Name,
		"brand": v.Brand,
		"model": v.Model,
		"plate": v.Plate,
	}
}

// Event is a trade-show project taken from a qualifying upstream project
// group, reconciled by the external project code.
type Event struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ExternalCode int64      `gorm:"column:external_code;uniqueIndex" json:"external_code"`
	GroupCode    int64      `gorm:"column:group_code" json:"group_code"`
	Name         string     `gorm:"column:name" json:"name"`
	Location     string     `gorm:"column:location" json:"location"`
	StartDate    *time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate      *time.Time `gorm:"column:end_date" json:"end_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Event) TableName() string { return "events" }

func (e *Event) PK() uint           { return e.ID }
func (e *Event) KeyColumn() string  { return "external_code" }
func (e *Event) ExternalKey() int64 { return e.ExternalCode }

func (e *Event) SyncValues() map[string]any {
	return map[string]any{
		"group_code": e.GroupCode,
		"name":       e.Name,
		"location":   e.Location,
		"start_date": e.StartDate,
		"end_date":   e.EndDate,
	}
}

// AbsenceRecord is the snapshot of one employee's currently-computed
// continuous absence span. At most one row exists per employee and kind
// overlapping today; the absence synchronizer deletes and recreates it on
// every run. No historical ledger is kept here.
type AbsenceRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"column:employee_id;index" json:"employee_id"`
	Kind       string    `gorm:"column:kind" json:"kind"`
	StartDate  time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate    time.Time `gorm:"column:end_date" json:"end_date"`
	Days       int       `gorm:"column:days" json:"days"`
	TypeCode   int       `gorm:"column:type_code" json:"type_code"`
	TypeLabel  string    `gorm:"column:type_label" json:"type_label"`
	SyncedAt   time.Time `gorm:"column:synced_at" json:"synced_at"`
}

func (AbsenceRecord) TableName() string { return "absence_records" }
