package payload_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sanyco86/sample-app/internal/http/payload"
)

func formRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

var _ = Describe("DecodeValidator", func() {
	var (
		decoder payload.DecodeValidator
		values  url.Values
	)

	BeforeEach(func() {
		values = url.Values{
			"user[name]":                  {"Example User"},
			"user[email]":                 {" user@example.com "},
			"user[password]":              {"foobar"},
			"user[password_confirmation]": {"foobar"},
		}
	})

	Describe("signup", func() {
		var (
			req payload.SignupRequest
			err error
		)

		JustBeforeEach(func() {
			req = payload.SignupRequest{}
			err = decoder.DecodeAndValidateForm(formRequest(values), &req)
		})

		When("the form is valid", func() {
			It("should bind every field", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(req.ToCoreSignupMessage().Name).To(Equal("Example User"))
				Expect(req.Email).To(Equal("user@example.com"))
				Expect(req.PasswordConfirmation).To(Equal("foobar"))
			})
		})

		When("every field is invalid", func() {
			BeforeEach(func() {
				values = url.Values{
					"user[name]":                  {""},
					"user[email]":                 {"user@invalid"},
					"user[password]":              {"foo"},
					"user[password_confirmation]": {"bar"},
				}
			})

			It("should report one message per field", func() {
				Expect(err).To(HaveOccurred())
				Expect(payload.Messages(err)).To(Equal([]string{
					"Email is invalid",
					"Name can't be blank",
					"Password is too short (minimum is 6 characters)",
					"Password confirmation doesn't match Password",
				}))
			})
		})

		When("the name is too long", func() {
			BeforeEach(func() {
				values.Set("user[name]", strings.Repeat("a", 51))
			})

			It("should reject it", func() {
				Expect(payload.Messages(err)).To(ConsistOf("Name is too long (maximum is 50 characters)"))
			})
		})

		DescribeTable("email addresses",
			func(email string, valid bool) {
				values.Set("user[email]", email)
				req := payload.SignupRequest{}
				err := decoder.DecodeAndValidateForm(formRequest(values), &req)
				if valid {
					Expect(err).NotTo(HaveOccurred())
				} else {
					Expect(payload.Messages(err)).To(ContainElement("Email is invalid"))
				}
			},
			Entry("plain", "user@example.com", true),
			Entry("upper case", "USER@foo.COM", true),
			Entry("underscores and dots", "A_US-ER@foo.bar.org", true),
			Entry("plus sign", "alice+bob@baz.cn", true),
			Entry("comma", "user@example,com", false),
			Entry("no at sign", "user_at_foo.org", false),
			Entry("no tld", "user.name@example.", false),
			Entry("underscore in domain", "foo@bar_baz.com", false),
			Entry("plus in domain", "foo@bar+baz.com", false),
		)
	})

	Describe("profile", func() {
		var (
			req payload.ProfileRequest
			err error
		)

		JustBeforeEach(func() {
			req = payload.ProfileRequest{}
			err = decoder.DecodeAndValidateForm(formRequest(values), &req)
		})

		When("the password is left blank", func() {
			BeforeEach(func() {
				values.Set("user[password]", "")
				values.Set("user[password_confirmation]", "")
			})

			It("should be valid", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(req.ToCoreProfileUpdate().Password).To(BeEmpty())
			})
		})

		When("an admin attribute is submitted", func() {
			BeforeEach(func() {
				values.Set("user[admin]", "1")
			})

			It("should not carry it into the update", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(req.ToCoreProfileUpdate()).To(Equal(payload.ProfileRequest{
					Name:     "Example User",
					Email:    "user@example.com",
					Password: "foobar",
				}.ToCoreProfileUpdate()))
			})
		})

		When("the email is blank", func() {
			BeforeEach(func() {
				values.Set("user[email]", "")
			})

			It("should be invalid", func() {
				Expect(payload.Messages(err)).To(ConsistOf("Email can't be blank"))
			})
		})
	})

	Describe("session", func() {
		It("should bind the credentials", func() {
			req := payload.SessionRequest{}
			err := decoder.DecodeAndValidateForm(formRequest(url.Values{
				"session[email]":    {"user@example.com"},
				"session[password]": {"foobar"},
			}), &req)
			Expect(err).NotTo(HaveOccurred())
			Expect(req.ToCoreAuthMessage().Email).To(Equal("user@example.com"))
		})

		It("should require both fields", func() {
			req := payload.SessionRequest{}
			err := decoder.DecodeAndValidateForm(formRequest(url.Values{}), &req)
			Expect(payload.Messages(err)).To(HaveLen(2))
		})
	})

	Describe("micropost", func() {
		DescribeTable("content length",
			func(content string, valid bool) {
				req := payload.MicropostRequest{}
				err := decoder.DecodeAndValidateForm(formRequest(url.Values{"micropost[content]": {content}}), &req)
				Expect(err == nil).To(Equal(valid))
			},
			Entry("blank", "   ", false),
			Entry("one character", "a", true),
			Entry("140 characters", strings.Repeat("a", 140), true),
			Entry("141 characters", strings.Repeat("a", 141), false),
			Entry("140 multibyte characters", strings.Repeat("é", 140), true),
		)
	})
})

var _ = Describe("Messages", func() {
	It("should be empty without an error", func() {
		Expect(payload.Messages(nil)).To(BeEmpty())
	})
})
