package fleet

import (
	"strings"

	"boardsync/core/erp"
)

// Kind is the classification of an upstream resource record.
type Kind int

const (
	// KindEmployee is an ordinary person, not a resource at all.
	KindEmployee Kind = iota
	// KindRoom is a bookable room; rooms are classified and discarded.
	KindRoom
	// KindVehicle is a fleet vehicle, the only persisted resource kind.
	KindVehicle
)

// Keyword lists matched against the lowercased resource name. The room
// list is checked first because the sets can overlap; anything that is a
// resource but matches neither list defaults to vehicle.
var (
	roomKeywords = []string{
		"raum", "besprechung", "meeting", "konferenz", "büro", "buero",
		"showroom", "halle", "werkstattplatz",
	}
	vehicleKeywords = []string{
		"sprinter", "transporter", "lkw", "pkw", "caddy", "crafter",
		"vito", "ducato", "anhänger", "anhaenger", "stapler",
	}
)

// Classify decides what an upstream record is. Order matters: the room
// exclusion runs before the vehicle match, and an unmatched resource is
// treated as a vehicle rather than dropped.
func Classify(u erp.User) Kind {
	if u.UserType != erp.UserTypeResource {
		return KindEmployee
	}

	name := strings.ToLower(u.DisplayName())
	for _, kw := range roomKeywords {
		if strings.Contains(name, kw) {
			return KindRoom
		}
	}
	for _, kw := range vehicleKeywords {
		if strings.Contains(name, kw) {
			return KindVehicle
		}
	}
	return KindVehicle
}
