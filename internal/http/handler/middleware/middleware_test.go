package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sanyco86/sample-app/internal/core"
	"github.com/sanyco86/sample-app/internal/http/handler/middleware"
	"github.com/sanyco86/sample-app/internal/http/handler/middleware/fake"
	"github.com/sanyco86/sample-app/pkg/jwt"
	"go.uber.org/zap"
)

var _ = Describe("RequestID", func() {
	var (
		seen string
		next http.Handler
		rec  *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		seen = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.RequestIDFromContext(r.Context())
		})
		rec = httptest.NewRecorder()
	})

	It("should generate an id", func() {
		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(seen).NotTo(BeEmpty())
		Expect(rec.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
	})

	It("should keep an incoming id", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc")
		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(rec, req)
		Expect(seen).To(Equal("abc"))
	})
})

var _ = Describe("Logging", func() {
	It("should pass the response through", func() {
		rec := httptest.NewRecorder()
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
		middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(rec.Code).To(Equal(http.StatusTeapot))
	})
})

var _ = Describe("MethodOverride", func() {
	var method string

	serve := func(req *http.Request) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
		})
		middleware.NewMethodOverrideMiddleware().MethodOverride(next).ServeHTTP(httptest.NewRecorder(), req)
	}

	form := func(values url.Values) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/users/1", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	DescribeTable("overrides",
		func(field, expected string) {
			serve(form(url.Values{"_method": {field}}))
			Expect(method).To(Equal(expected))
		},
		Entry("patch", "patch", http.MethodPatch),
		Entry("delete", "DELETE", http.MethodDelete),
		Entry("put", "put", http.MethodPut),
		Entry("unsupported", "get", http.MethodPost),
		Entry("missing", "", http.MethodPost),
	)

	It("should leave GET requests alone", func() {
		serve(httptest.NewRequest(http.MethodGet, "/users/1?_method=delete", nil))
		Expect(method).To(Equal(http.MethodGet))
	})
})

var _ = Describe("Session", func() {
	var (
		fakeResolver *fake.SessionResolver
		rec          *httptest.ResponseRecorder
		req          *http.Request
		user         core.UserRecord
		signedIn     bool
	)

	BeforeEach(func() {
		fakeResolver = new(fake.SessionResolver)
		rec = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/", nil)
		user, signedIn = core.UserRecord{}, false
	})

	JustBeforeEach(func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, signedIn = middleware.CurrentUser(r.Context())
		})
		middleware.NewSessionMiddleware(zap.NewNop().Sugar(), fakeResolver).Session(next).ServeHTTP(rec, req)
	})

	When("there is no cookie", func() {
		It("should continue anonymously", func() {
			Expect(signedIn).To(BeFalse())
			Expect(fakeResolver.CurrentUserCallCount()).To(BeZero())
		})
	})

	When("the cookie resolves", func() {
		BeforeEach(func() {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "token"})
			fakeResolver.CurrentUserReturns(core.UserRecord{ID: "user-1", Name: "Michael"}, nil)
		})

		It("should load the current user", func() {
			Expect(signedIn).To(BeTrue())
			Expect(user.ID).To(Equal("user-1"))
			_, token := fakeResolver.CurrentUserArgsForCall(0)
			Expect(token).To(Equal("token"))
		})
	})

	expectCleared := func() {
		Expect(signedIn).To(BeFalse())
		cookies := rec.Result().Cookies()
		Expect(cookies).To(HaveLen(1))
		Expect(cookies[0].Name).To(Equal(middleware.SessionCookie))
		Expect(cookies[0].MaxAge).To(BeNumerically("<", 0))
	}

	When("the token expired", func() {
		BeforeEach(func() {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "expired"})
			fakeResolver.CurrentUserReturns(core.UserRecord{}, fmt.Errorf("validate jwt token: %w", jwt.ErrTokenExpired))
		})

		It("should clear the cookie and continue anonymously", expectCleared)
	})

	When("the token is not valid", func() {
		BeforeEach(func() {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "forged"})
			fakeResolver.CurrentUserReturns(core.UserRecord{}, fmt.Errorf("validate jwt token: %w", jwt.ErrTokenNotValid))
		})

		It("should clear the cookie and continue anonymously", expectCleared)
	})

	When("the user was deleted", func() {
		BeforeEach(func() {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "token"})
			fakeResolver.CurrentUserReturns(core.UserRecord{}, core.ErrUserNotFound)
		})

		It("should clear the cookie and continue anonymously", expectCleared)
	})

	When("the user can not be loaded right now", func() {
		BeforeEach(func() {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "token"})
			fakeResolver.CurrentUserReturns(core.UserRecord{}, fmt.Errorf("get user by id: %w", errors.New("connection refused")))
		})

		It("should continue anonymously and keep the cookie", func() {
			Expect(signedIn).To(BeFalse())
			Expect(rec.Result().Cookies()).To(BeEmpty())
		})
	})
})

var _ = Describe("SetSessionCookie", func() {
	It("should set an http only lax cookie", func() {
		rec := httptest.NewRecorder()
		middleware.SetSessionCookie(rec, "token", 3600)

		cookies := rec.Result().Cookies()
		Expect(cookies).To(HaveLen(1))
		Expect(cookies[0].Value).To(Equal("token"))
		Expect(cookies[0].HttpOnly).To(BeTrue())
		Expect(cookies[0].SameSite).To(Equal(http.SameSiteLaxMode))
		Expect(cookies[0].MaxAge).To(Equal(3600))
	})
})
