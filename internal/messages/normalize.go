package messages

import (
	"errors"
	"time"
)

// ErrMissingFields is returned when any required field is absent.
var ErrMissingFields = errors.New("required fields are missing")

// Default strings stored for omitted optional fields.
const (
	DefaultPhone   = "Not provided"
	DefaultCompany = "Not provided"
	DefaultBudget  = "Not specified"
)

// Normalize validates a draft and produces a persistable Message.
// Required: firstName, lastName, email, message, regarding. Optional fields
// get their default strings; createdAt is stamped with the current UTC time.
func Normalize(d Draft) (*Message, error) {
	if d.FirstName == "" || d.LastName == "" || d.Email == "" || d.Message == "" || d.Regarding == "" {
		return nil, ErrMissingFields
	}
	return &Message{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     orDefault(d.Phone, DefaultPhone),
		Company:   orDefault(d.Company, DefaultCompany),
		Budget:    orDefault(d.Budget, DefaultBudget),
		Message:   d.Message,
		Regarding: d.Regarding,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
