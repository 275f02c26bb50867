package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrInvalidID reports that a client-supplied identifier is not a canonical
// 24-hex-character ObjectID string. Handlers map it to a 400.
var ErrInvalidID = errors.New("invalid id format")

// StoreUnavailableDetail is the fixed remediation hint returned with every
// 503. It never carries driver internals.
const StoreUnavailableDetail = "Database unavailable. Check that MongoDB is running and that MONGO_URI points at it."

// ParseObjectID converts an external identifier string to the store's native
// id type. Pure: no side effects, no store access.
func ParseObjectID(s string) (primitive.ObjectID, error) {
	if !primitive.IsValidObjectID(s) {
		return primitive.NilObjectID, ErrInvalidID
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// FieldError names one offending field and why it failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors turns a validation failure into per-field diagnostics. Field
// names are the JSON names clients sent, courtesy of the validator's tag-name
// function.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must not be empty"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on %q", fe.Tag())
	}
}

// IsStoreUnavailable classifies an error as the store being unreachable, as
// opposed to a per-document outcome. Covers driver timeouts, network errors,
// a disconnected client and context deadlines hit while waiting on the store.
func IsStoreUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return true
	}
	return errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded)
}
