package payload

import (
	"net/url"

	"github.com/jellydator/validation"
	"github.com/sanyco86/sample-app/internal/core"
)

// ProfileRequest is the edit form. It has no admin attribute, so a submitted
// user[admin] value is never bound.
type ProfileRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (p *ProfileRequest) BindForm(values url.Values) {
	p.Name = formValue(values, "user[name]")
	p.Email = formValue(values, "user[email]")
	p.Password = values.Get("user[password]")
	p.PasswordConfirmation = values.Get("user[password_confirmation]")
}

// Validate allows a blank password, which keeps the current one.
func (p ProfileRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name,
			validation.Required.Error(msgBlank),
			validation.RuneLength(0, NameMaxLength).Error(tooLong(NameMaxLength))),
		validation.Field(&p.Email,
			validation.Required.Error(msgBlank),
			validation.RuneLength(0, EmailMaxLength).Error(tooLong(EmailMaxLength)),
			validation.Match(emailRegex).Error(msgInvalid)),
		validation.Field(&p.Password,
			validation.RuneLength(PasswordMinLength, 0).Error(tooShort(PasswordMinLength))),
		validation.Field(&p.PasswordConfirmation,
			validation.By(matches(p.Password))),
	)
}

func (p ProfileRequest) ToCoreProfileUpdate() core.ProfileUpdate {
	return core.ProfileUpdate{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
	}
}
