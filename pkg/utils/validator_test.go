package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Event string `json:"event" validate:"oneof=conf fest"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sample{Name: "a", Email: "a@b.co", Event: "conf"}))

	errs := ValidateStruct(sample{Email: "a@b.co", Event: "gala"})
	assert.Equal(t, map[string]string{
		"name":  "This field is required",
		"event": "Invalid event field",
	}, errs)
}

func TestValidateStructPartial(t *testing.T) {
	assert.Nil(t, ValidateStructPartial(sample{}))
	assert.Nil(t, ValidateStructPartial(sample{Email: "a@b.co"}, "Email"))

	errs := ValidateStructPartial(sample{}, "Name")
	assert.Equal(t, map[string]string{"name": "This field is required"}, errs)
}
