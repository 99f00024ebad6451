package fleet

import (
	"testing"

	"boardsync/core/erp"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		userType string
		display  string
		want     Kind
	}{
		{"ordinary employee", "", "Anna Berg", KindEmployee},
		{"room by keyword", erp.UserTypeResource, "Besprechungsraum EG", KindRoom},
		{"meeting room", erp.UserTypeResource, "Meeting Room 2", KindRoom},
		{"vehicle by keyword", erp.UserTypeResource, "Sprinter 316 / HH-AB 123", KindVehicle},
		{"forklift", erp.UserTypeResource, "Stapler Linde", KindVehicle},
		{"ambiguous resource defaults to vehicle", erp.UserTypeResource, "Maxi 3000", KindVehicle},
		// Room exclusion wins over a vehicle keyword in the same name.
		{"room wins over vehicle keyword", erp.UserTypeResource, "Konferenzraum Sprinter", KindRoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := erp.User{UserType: tt.userType, FirstName: tt.display}
			assert.Equal(t, tt.want, Classify(u))
		})
	}
}
