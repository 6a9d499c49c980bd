package payload

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// FormBinder is implemented by requests that are filled from form values.
type FormBinder interface {
	BindForm(values url.Values)
}

func DecodeForm(r *http.Request, object FormBinder) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form: %w", err)
	}

	object.BindForm(r.PostForm)
	return nil
}

func formValue(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}
