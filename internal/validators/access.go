package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-invoice-audit/models"
)

// Field names accepted by [AccessValidator.Validate] to restrict validation
// to a subset of checks.
const (
	FieldOwnerName       = "owner_name"
	FieldBusinessName    = "business_name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldRegistrationNo  = "registration_no"
	FieldLocation        = "location"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldCaptcha         = "captcha"

	// FieldPasswordMatch compares password and confirmation.
	FieldPasswordMatch = "password_match"
	// FieldPasswordLength enforces [MinPasswordLength].
	FieldPasswordLength = "password_length"
	// FieldOTP enforces [OTPLength]. It is never part of the default set:
	// the code is checked in the second step of signup and login.
	FieldOTP = "otp"
	// FieldEditable rejects profile updates that touch read-only fields.
	FieldEditable = "editable"
)

const (
	MinPasswordLength = 8
	OTPLength         = 6
)

var (
	signupDefaultFields = []string{
		FieldOwnerName, FieldBusinessName, FieldEmail, FieldPhone, FieldRegistrationNo,
		FieldLocation, FieldPassword, FieldConfirmPassword, FieldCaptcha,
		FieldPasswordMatch, FieldPasswordLength,
	}
	loginDefaultFields = []string{
		FieldRegistrationNo, FieldBusinessName, FieldPassword, FieldCaptcha,
	}
)

// AccessValidator checks the signup, login and profile forms.
type AccessValidator struct{}

// NewAccessValidator returns the form validator.
func NewAccessValidator() Validator {
	return &AccessValidator{}
}

func (v *AccessValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupForm:
		return v.validateSignup(value, fields...)
	case *models.SignupForm:
		return v.validateSignup(*value, fields...)

	case models.LoginForm:
		return v.validateLogin(value, fields...)
	case *models.LoginForm:
		return v.validateLogin(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccessValidator) validateSignup(form models.SignupForm, fields ...string) error {
	if len(fields) == 0 {
		fields = signupDefaultFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldOwnerName:
			err = required(f, form.OwnerName)
		case FieldBusinessName:
			err = required(f, form.BusinessName)
		case FieldEmail:
			err = required(f, form.Email)
		case FieldPhone:
			err = required(f, form.Phone)
		case FieldRegistrationNo:
			err = required(f, form.RegistrationNo)
		case FieldLocation:
			err = required(f, form.Location)
		case FieldPassword:
			err = required(f, form.Password)
		case FieldConfirmPassword:
			err = required(f, form.ConfirmPassword)
		case FieldCaptcha:
			err = captcha(form.CaptchaToken)
		case FieldPasswordMatch:
			if form.Password != form.ConfirmPassword {
				err = ErrPasswordMismatch
			}
		case FieldPasswordLength:
			if utf8.RuneCountInString(form.Password) < MinPasswordLength {
				err = ErrPasswordTooShort
			}
		case FieldOTP:
			err = otp(form.OTP)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *AccessValidator) validateLogin(form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = loginDefaultFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldRegistrationNo:
			err = required(f, form.RegistrationNo)
		case FieldBusinessName:
			err = required(f, form.BusinessName)
		case FieldPassword:
			err = required(f, form.Password)
		case FieldCaptcha:
			err = captcha(form.CaptchaToken)
		case FieldOTP:
			err = otp(form.OTP)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *AccessValidator) validateProfileUpdate(update models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEditable}
	}

	for _, f := range fields {
		switch f {
		case FieldEditable:
			if update.BusinessName != nil {
				return fmt.Errorf("%w: %s", ErrReadOnlyField, FieldBusinessName)
			}
			if update.RegistrationNo != nil {
				return fmt.Errorf("%w: %s", ErrReadOnlyField, FieldRegistrationNo)
			}
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrIncompleteForm, field)
	}
	return nil
}

func captcha(token string) error {
	if token == "" {
		return fmt.Errorf("%w: %s is required", ErrIncompleteForm, FieldCaptcha)
	}
	return nil
}

func otp(code string) error {
	if utf8.RuneCountInString(code) != OTPLength {
		return ErrInvalidOTP
	}
	return nil
}
