package helpers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"eventdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestParseObjectIDValid(t *testing.T) {
	id, err := ParseObjectID("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", id.Hex())
}

func TestParseObjectIDInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"not-an-id",
		"507f1f77bcf86cd79943901",    // 23 chars
		"507f1f77bcf86cd7994390111",  // 25 chars
		"507f1f77bcf86cd79943901g",   // non-hex
		"507F1F77BCF86CD79943901 1",  // embedded space
	} {
		_, err := ParseObjectID(in)
		assert.ErrorIs(t, err, ErrInvalidID, "input %q", in)
	}
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	err := models.Validate.Struct(&models.Attendee{Name: "", Email: "not-an-email"})
	require.Error(t, err)

	fields := map[string]string{}
	for _, fe := range FieldErrors(err) {
		fields[fe.Field] = fe.Message
	}

	assert.Equal(t, "field is required", fields["name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
}

func TestFieldErrorsQuantityBound(t *testing.T) {
	err := models.Validate.Struct(&models.Booking{
		EventID:    "e1",
		AttendeeID: "a1",
		TicketType: "vip",
		Quantity:   -2,
	})
	require.Error(t, err)

	fes := FieldErrors(err)
	require.Len(t, fes, 1)
	assert.Equal(t, "quantity", fes[0].Field)
	assert.Equal(t, "must be at least 1", fes[0].Message)
}

func TestFieldErrorsNonValidatorError(t *testing.T) {
	fes := FieldErrors(errors.New("unexpected EOF"))
	require.Len(t, fes, 1)
	assert.Equal(t, "body", fes[0].Field)
}

func TestIsStoreUnavailable(t *testing.T) {
	assert.False(t, IsStoreUnavailable(nil))
	assert.False(t, IsStoreUnavailable(errors.New("boom")))
	assert.False(t, IsStoreUnavailable(models.ErrNotFound))

	assert.True(t, IsStoreUnavailable(context.DeadlineExceeded))
	assert.True(t, IsStoreUnavailable(mongo.ErrClientDisconnected))
	assert.True(t, IsStoreUnavailable(fmt.Errorf("error finding venue: %w", context.DeadlineExceeded)))
	assert.True(t, IsStoreUnavailable(fmt.Errorf("error getting collection: %w", mongo.ErrClientDisconnected)))
}
