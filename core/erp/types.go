package erp

// UserTypeResource is the upstream tag marking a roster entry as a bookable
// resource (vehicle or room) rather than a person.
const UserTypeResource = "RESOURCE"

// User is one upstream roster entry. Persons and resources share this shape;
// the UserType tag tells them apart.
type User struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstname"`
	LastName   string `json:"lastname"`
	UserType   string `json:"userType"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Active     bool   `json:"active"`
	Terminated bool   `json:"terminated"`
}

// DisplayName joins first and last name the way the board shows them.
func (u User) DisplayName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ProjectGroup is one upstream project group.
type ProjectGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Project is one upstream project, possibly an event.
type Project struct {
	ID           int64         `json:"id"`
	GroupID      int64         `json:"groupId"`
	Name         string        `json:"name"`
	Note         string        `json:"note"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	CustomFields []CustomField `json:"customFields"`
}

// CustomField is one tagged custom-field value on a project.
type CustomField struct {
	DefinitionID int64  `json:"definitionId"`
	Value        string `json:"value"`
}

// Absence is one upstream absence day booking (vacation or sickness).
type Absence struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"userId"`
	Date     string  `json:"date"`
	Quantity float64 `json:"quantity"`
	TypeCode int     `json:"typeCode"`
	Approved *bool   `json:"approved"`
}
