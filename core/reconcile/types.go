package reconcile

// Record is an entity that can be reconciled against the local database by
// its upstream identifier. Models implement it on their pointer type.
type Record interface {
	// PK returns the local primary key, zero before the record is stored.
	PK() uint

	// KeyColumn returns the column holding the upstream identifier.
	KeyColumn() string

	// ExternalKey returns the upstream identifier value.
	ExternalKey() int64

	// SyncValues returns the sync-owned columns and their desired values.
	// Columns absent from this map are never written on update, which is
	// how locally curated fields survive a sync.
	SyncValues() map[string]any
}

// Action describes what an upsert did to a record.
type Action string

const (
	// ActionCreated means no row existed for the external key.
	ActionCreated Action = "created"
	// ActionUpdated means at least one sync-owned column changed.
	ActionUpdated Action = "updated"
	// ActionUnchanged means the row already matched all desired values.
	ActionUnchanged Action = "unchanged"
)

// Result is the outcome of a single upsert.
type Result struct {
	// Action is what happened to the row.
	Action Action `json:"action"`

	// ID is the local primary key of the affected row.
	ID uint `json:"id"`

	// Changes is the number of columns written, zero unless updated.
	Changes int `json:"changes"`
}

// Summary aggregates upsert outcomes across one sync run.
type Summary struct {
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Skipped   int `json:"skipped"`
	Errors    int `json:"errors"`
}

// Add folds one upsert result into the summary.
func (s *Summary) Add(r Result) {
	switch r.Action {
	case ActionCreated:
		s.Created++
	case ActionUpdated:
		s.Updated++
	case ActionUnchanged:
		s.Unchanged++
	}
}

// Total returns the number of records the run looked at.
func (s *Summary) Total() int {
	return s.Created + s.Updated + s.Unchanged + s.Skipped + s.Errors
}
