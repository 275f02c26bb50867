package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEventAsResponse(t *testing.T) {
	id := primitive.NewObjectID()
	doc := EventDocument{
		ID: id,
		Event: Event{
			Name:         "Launch party",
			Description:  "Product launch",
			Date:         "2026-09-01",
			VenueID:      "venue-1",
			MaxAttendees: 150,
		},
	}

	resp := doc.AsResponse()

	assert.Equal(t, id.Hex(), resp.ID)
	assert.Equal(t, doc.Event, resp.Event)
}

func TestVenueAsResponse(t *testing.T) {
	id := primitive.NewObjectID()
	doc := VenueDocument{ID: id, Venue: Venue{Name: "Hall A", Address: "1 Main St", Capacity: 50}}

	resp := doc.AsResponse()

	assert.Equal(t, id.Hex(), resp.ID)
	assert.Equal(t, "Hall A", resp.Name)
	assert.Equal(t, "1 Main St", resp.Address)
	assert.Equal(t, 50, resp.Capacity)
}

func TestEventValidation(t *testing.T) {
	valid := Event{
		Name:         "Launch party",
		Description:  "Product launch",
		Date:         "sometime next week",
		VenueID:      "venue-1",
		MaxAttendees: 1,
	}
	assert.NoError(t, Validate.Struct(&valid))

	// The date is free text: anything non-empty passes.
	valid.Date = "not a date at all"
	assert.NoError(t, Validate.Struct(&valid))

	invalid := valid
	invalid.MaxAttendees = 0
	assert.Error(t, Validate.Struct(&invalid))

	invalid = valid
	invalid.Name = ""
	assert.Error(t, Validate.Struct(&invalid))
}

func TestAttendeeValidation(t *testing.T) {
	phone := "+44 20 7946 0958"
	valid := Attendee{Name: "Ada", Email: "ada@example.com", Phone: &phone}
	assert.NoError(t, Validate.Struct(&valid))

	// Phone is optional.
	valid.Phone = nil
	assert.NoError(t, Validate.Struct(&valid))

	invalid := valid
	invalid.Email = "ada-at-example"
	err := Validate.Struct(&invalid)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "email", verrs[0].Field())
}

func TestBookingValidation(t *testing.T) {
	valid := Booking{EventID: "e1", AttendeeID: "a1", TicketType: "standard", Quantity: 2}
	assert.NoError(t, Validate.Struct(&valid))

	// References are unchecked strings: any non-empty value passes.
	valid.EventID = "definitely-not-a-real-event"
	assert.NoError(t, Validate.Struct(&valid))

	invalid := valid
	invalid.Quantity = 0
	assert.Error(t, Validate.Struct(&invalid))

	invalid = valid
	invalid.TicketType = ""
	assert.Error(t, Validate.Struct(&invalid))
}

func TestVenueValidation(t *testing.T) {
	valid := Venue{Name: "Hall A", Address: "1 Main St", Capacity: 50}
	assert.NoError(t, Validate.Struct(&valid))

	invalid := valid
	invalid.Capacity = 0
	assert.Error(t, Validate.Struct(&invalid))
}
