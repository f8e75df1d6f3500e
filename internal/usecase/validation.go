package usecase

import (
	"strings"

	"event-booking/internal/data/entity"
	"event-booking/internal/dto/request"
	"event-booking/pkg/utils"
)

var requiredFields = []string{"name", "email", "event"}

// ValidationError lists the booking fields that failed validation.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "validation failed: missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validation is the outcome of ValidateBooking: either a normalized booking
// ready to persist, or the list of missing fields.
type Validation struct {
	Booking *entity.Booking
	Missing []string
}

func (v Validation) Valid() bool {
	return len(v.Missing) == 0
}

func (v Validation) Err() error {
	if v.Valid() {
		return nil
	}
	return &ValidationError{Missing: v.Missing}
}

// ValidateBooking normalizes a create request and checks the required fields.
// Blank values count as missing.
func ValidateBooking(req request.CreateBookingRequest) Validation {
	normalized := request.CreateBookingRequest{
		Name:       entity.NormalizeName(req.Name),
		Email:      entity.NormalizeEmail(req.Email),
		Event:      entity.NormalizeEvent(req.Event),
		TicketType: normalizeTicketType(req.TicketType),
	}

	if missing := missingFields(utils.ValidateStruct(normalized)); len(missing) > 0 {
		return Validation{Missing: missing}
	}

	return Validation{Booking: &entity.Booking{
		Name:       normalized.Name,
		Email:      normalized.Email,
		Event:      normalized.Event,
		TicketType: normalized.TicketType,
	}}
}

// ValidatePatch applies the create rules to the fields present in an update.
// A required field sent as null or as a non-string counts as missing.
func ValidatePatch(req request.UpdateBookingRequest) (entity.BookingPatch, error) {
	var (
		patch   entity.BookingPatch
		check   request.CreateBookingRequest
		present []string
	)

	if req.Name.Set {
		check.Name = entity.NormalizeName(req.Name.Value)
		patch.Name = &check.Name
		present = append(present, "Name")
	}
	if req.Email.Set {
		check.Email = entity.NormalizeEmail(req.Email.Value)
		patch.Email = &check.Email
		present = append(present, "Email")
	}
	if req.Event.Set {
		check.Event = entity.NormalizeEvent(req.Event.Value)
		patch.Event = &check.Event
		present = append(present, "Event")
	}
	if req.TicketType.Set {
		ticketType := normalizeTicketType(req.TicketType.Value)
		patch.TicketType = &ticketType
	}

	if missing := missingFields(utils.ValidateStructPartial(check, present...)); len(missing) > 0 {
		return entity.BookingPatch{}, &ValidationError{Missing: missing}
	}

	return patch, nil
}

func normalizeTicketType(s string) string {
	if strings.TrimSpace(s) == "" {
		return entity.DefaultTicketType
	}
	return s
}

// missingFields returns the failed required fields in declaration order.
func missingFields(errs map[string]string) []string {
	var missing []string
	for _, field := range requiredFields {
		if _, ok := errs[field]; ok {
			missing = append(missing, field)
		}
	}
	return missing
}
