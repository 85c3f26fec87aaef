package validators

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("alice@example.com"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("alice"), ErrEmailInvalid)
	assert.ErrorIs(t, EmailValidator("Alice <alice@example.com>"), ErrEmailInvalid)
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("pw1"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("a", 73)), ErrPasswordTooLong)
}

func TestNotBlankBindingRule(t *testing.T) {
	RegisterBindingRules()
	RegisterBindingRules()

	type body struct {
		Name string `binding:"required,notblank"`
	}

	assert.NoError(t, binding.Validator.ValidateStruct(&body{Name: "Salsa"}))
	assert.Error(t, binding.Validator.ValidateStruct(&body{Name: "   "}))
}
