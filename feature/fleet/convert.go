package fleet

import (
	"fmt"
	"strings"

	"boardsync/core/erp"
	"boardsync/core/models"
)

// ConvertVehicle maps a resource record to the local vehicle shape. The
// upstream display name is a composite "Model / Plate" string; the part
// after the separator becomes the license plate, with a generated
// placeholder when the separator is absent. The brand is taken as the
// first word of the model part.
func ConvertVehicle(u erp.User) *models.Vehicle {
	name := strings.TrimSpace(u.DisplayName())

	model := name
	plate := fmt.Sprintf("FZ-%d", u.ID)
	if idx := strings.Index(name, "/"); idx >= 0 {
		model = strings.TrimSpace(name[:idx])
		if p := strings.TrimSpace(name[idx+1:]); p != "" {
			plate = p
		}
	}

	brand := model
	if fields := strings.Fields(model); len(fields) > 0 {
		brand = fields[0]
	}

	return &models.Vehicle{
		ExternalCode: u.ID,
		Name:         name,
		Brand:        brand,
		Model:        model,
		Plate:        plate,
	}
}
