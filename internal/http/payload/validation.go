package payload

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/jellydator/validation"
)

var emailRegex = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-]+(\.[a-z\d\-]+)*\.[a-z]+$`)

const (
	msgBlank    = "can't be blank"
	msgInvalid  = "is invalid"
	msgMismatch = "doesn't match Password"
)

type DecodeValidator struct{}

func (dv DecodeValidator) DecodeAndValidateForm(r *http.Request, object FormBinder) error {
	if err := DecodeForm(r, object); err != nil {
		return err
	}
	return dv.validatePayload(object)
}

func (dv *DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

// Messages turns a validation failure into full sentences such as
// "Name can't be blank", ordered by field.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	keys := make([]string, 0, len(fieldErrs))
	for key := range fieldErrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, key := range keys {
		msgs = append(msgs, humanize(key)+" "+fieldErrs[key].Error())
	}
	return msgs
}

func humanize(key string) string {
	words := strings.ReplaceAll(key, "_", " ")
	if words == "" {
		return words
	}
	return strings.ToUpper(words[:1]) + words[1:]
}

func tooLong(max int) string {
	return fmt.Sprintf("is too long (maximum is %d characters)", max)
}

func tooShort(min int) string {
	return fmt.Sprintf("is too short (minimum is %d characters)", min)
}

func matches(password string) validation.RuleFunc {
	return func(value interface{}) error {
		confirmation, _ := value.(string)
		if confirmation != password {
			return errors.New(msgMismatch)
		}
		return nil
	}
}
