package payload

import (
	"net/url"

	"github.com/jellydator/validation"
	"github.com/sanyco86/sample-app/internal/core"
)

const (
	NameMaxLength     = 50
	EmailMaxLength    = 255
	PasswordMinLength = 6
)

type SignupRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (s *SignupRequest) BindForm(values url.Values) {
	s.Name = formValue(values, "user[name]")
	s.Email = formValue(values, "user[email]")
	s.Password = values.Get("user[password]")
	s.PasswordConfirmation = values.Get("user[password_confirmation]")
}

func (s SignupRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name,
			validation.Required.Error(msgBlank),
			validation.RuneLength(0, NameMaxLength).Error(tooLong(NameMaxLength))),
		validation.Field(&s.Email,
			validation.Required.Error(msgBlank),
			validation.RuneLength(0, EmailMaxLength).Error(tooLong(EmailMaxLength)),
			validation.Match(emailRegex).Error(msgInvalid)),
		validation.Field(&s.Password,
			validation.Required.Error(msgBlank),
			validation.RuneLength(PasswordMinLength, 0).Error(tooShort(PasswordMinLength))),
		validation.Field(&s.PasswordConfirmation,
			validation.By(matches(s.Password))),
	)
}

func (s SignupRequest) ToCoreSignupMessage() core.SignupMessage {
	return core.SignupMessage{
		Name:     s.Name,
		Email:    s.Email,
		Password: s.Password,
	}
}
