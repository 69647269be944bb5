package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(&sample{Name: "Acme"}))

	errs := Validate(&sample{Email: "not-an-email"})
	assert.Equal(t, map[string]string{"Name": "required", "Email": "email"}, errs)
}
