package request

import (
	"bytes"
	"encoding/json"
)

type CreateBookingRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Event      string `json:"event" validate:"required"`
	TicketType string `json:"ticketType"`
}

// UpdateBookingRequest is a partial update; absent fields are left unset.
// _id and createdAt are not mutable and are dropped during decoding.
type UpdateBookingRequest struct {
	Name       OptionalString `json:"name"`
	Email      OptionalString `json:"email"`
	Event      OptionalString `json:"event"`
	TicketType OptionalString `json:"ticketType"`
}

// OptionalString records whether a JSON field was sent at all, and whether
// what was sent is a string. A null or any non-string value is Set but not Valid.
type OptionalString struct {
	Set   bool
	Valid bool
	Value string
}

// Some returns a present, valid value.
func Some(s string) OptionalString {
	return OptionalString{Set: true, Valid: true, Value: s}
}

// Null returns a field that was sent as JSON null.
func Null() OptionalString {
	return OptionalString{Set: true}
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Valid = false
	o.Value = ""

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
