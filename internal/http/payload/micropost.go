package payload

import (
	"net/url"

	"github.com/jellydator/validation"
)

const ContentMaxLength = 140

type MicropostRequest struct {
	Content string `json:"content"`
}

func (m *MicropostRequest) BindForm(values url.Values) {
	m.Content = formValue(values, "micropost[content]")
}

func (m MicropostRequest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Content,
			validation.Required.Error(msgBlank),
			validation.RuneLength(0, ContentMaxLength).Error(tooLong(ContentMaxLength))),
	)
}
