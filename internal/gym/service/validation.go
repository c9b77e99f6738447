package service

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Messages shared by the account and training payloads.
const (
	MsgBlank         = "This field may not be blank."
	MsgRequired      = "This field is required."
	MsgInvalidEmail  = "Enter a valid email address."
	MsgShortPassword = "Ensure this field has at least 5 characters."
	MsgLongPassword  = "Ensure this field has no more than 128 characters."
	MsgEmailTaken    = "user with this email already exists."
	MsgPasswordMatch = "Password and confirm_password does not match!"
)

// Accepted password lengths, in characters.
const (
	MinPasswordLength = 5
	MaxPasswordLength = 128
)

var (
	emailRules = []validation.Rule{
		validation.Required.Error(MsgBlank),
		validation.Length(0, 255).Error("Ensure this field has no more than 255 characters."),
		is.Email.Error(MsgInvalidEmail),
	}
	passwordRules = []validation.Rule{
		validation.Required.Error(MsgBlank),
		validation.RuneLength(MinPasswordLength, 0).Error(MsgShortPassword),
		validation.RuneLength(0, MaxPasswordLength).Error(MsgLongPassword),
	}
	usernameRules = []validation.Rule{
		validation.Required.Error(MsgBlank),
		validation.RuneLength(0, 255).Error("Ensure this field has no more than 255 characters."),
	}
)

// checkPassword validates a single password value, as used by the reset flow.
func checkPassword(field, password string) *ValidationError {
	ve := &ValidationError{}
	_ = ve.Merge(validation.Errors{field: validation.Validate(password, passwordRules...)}.Filter())
	return ve
}
