package payload

import (
	"net/url"

	"github.com/jellydator/validation"
	"github.com/sanyco86/sample-app/internal/core"
)

type SessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *SessionRequest) BindForm(values url.Values) {
	s.Email = formValue(values, "session[email]")
	s.Password = values.Get("session[password]")
}

func (s SessionRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Email, validation.Required.Error(msgBlank)),
		validation.Field(&s.Password, validation.Required.Error(msgBlank)),
	)
}

func (s SessionRequest) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Email:    s.Email,
		Password: s.Password,
	}
}
