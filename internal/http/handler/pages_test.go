package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sanyco86/sample-app/internal/core"
	"github.com/sanyco86/sample-app/internal/http/handler"
	"github.com/sanyco86/sample-app/internal/http/handler/fake"
	"github.com/sanyco86/sample-app/internal/http/handler/middleware"
	"github.com/sanyco86/sample-app/internal/http/payload"
	"github.com/sanyco86/sample-app/internal/http/view"
	"github.com/sanyco86/sample-app/internal/pagination"
	"go.uber.org/zap"
)

var _ = Describe("PageHandler", func() {
	var (
		fakeService   *fake.UserService
		fakeValidator *fake.RequestValidator
		app           http.Handler
		w             *httptest.ResponseRecorder
		req           *http.Request
		currentUser   *core.UserRecord
		admin         core.UserRecord
		michael       core.UserRecord
		archer        core.UserRecord
		fakeErr       error
	)

	form := func(method, target string, values url.Values) *http.Request {
		r := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return r
	}

	cookie := func(name string) *http.Cookie {
		for _, c := range w.Result().Cookies() {
			if c.Name == name {
				return c
			}
		}
		return nil
	}

	body := func() string {
		b, err := io.ReadAll(w.Result().Body)
		Expect(err).NotTo(HaveOccurred())
		return string(b)
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.UserService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeAndValidateFormStub = payload.DecodeValidator{}.DecodeAndValidateForm

		renderer, err := view.NewRenderer()
		Expect(err).NotTo(HaveOccurred())

		mux := http.NewServeMux()
		handler.NewPageHandler(zap.NewNop().Sugar(), fakeValidator, fakeService, renderer, 720*time.Hour).Register(mux)
		app = middleware.NewMethodOverrideMiddleware().MethodOverride(mux)

		admin = core.UserRecord{ID: "admin", Name: "Admin", Email: "admin@example.com", Admin: true}
		michael = core.UserRecord{ID: "michael", Name: "Michael Example", Email: "michael@example.com"}
		archer = core.UserRecord{ID: "archer", Name: "Sterling Archer", Email: "duchess@example.gov"}
		currentUser = nil
		w = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		if currentUser != nil {
			req = req.WithContext(middleware.WithCurrentUser(req.Context(), *currentUser))
		}
		app.ServeHTTP(w, req)
	})

	Describe("GET /signup", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/signup", nil)
		})

		It("should render the signup page", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(body()).To(And(
				ContainSubstring("<title>Sample App | Sign up</title>"),
				ContainSubstring("<h1>Sign up</h1>"),
			))
		})

		When("a user is signed in", func() {
			BeforeEach(func() {
				currentUser = &michael
			})

			It("should redirect home", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})
	})

	Describe("POST /users", func() {
		var values url.Values

		BeforeEach(func() {
			values = url.Values{
				"user[name]":                  {"Example User"},
				"user[email]":                 {"user@example.com"},
				"user[password]":              {"password"},
				"user[password_confirmation]": {"password"},
			}
			fakeService.SignUpReturns(core.Session{Token: "signed.token", User: core.UserRecord{ID: "new-user"}}, nil)
		})

		When("the submission is invalid", func() {
			BeforeEach(func() {
				values.Set("user[name]", "")
				values.Set("user[email]", "user@invalid")
				values.Set("user[password]", "foo")
				values.Set("user[password_confirmation]", "bar")
				req = form(http.MethodPost, "/users", values)
			})

			It("should re-render the form without creating a user", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.SignUpCallCount()).To(BeZero())
				html := body()
				Expect(html).To(ContainSubstring("error"))
				Expect(html).To(ContainSubstring("The form contains 4 errors."))
				Expect(html).To(ContainSubstring("<h1>Sign up</h1>"))
			})
		})

		When("the submission is valid", func() {
			BeforeEach(func() {
				req = form(http.MethodPost, "/users", values)
			})

			It("should create the user, sign them in and redirect to the profile", func() {
				Expect(fakeService.SignUpCallCount()).To(Equal(1))
				_, msg := fakeService.SignUpArgsForCall(0)
				Expect(msg).To(Equal(core.SignupMessage{Name: "Example User", Email: "user@example.com", Password: "password"}))

				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/users/new-user"))

				session := cookie(middleware.SessionCookie)
				Expect(session).NotTo(BeNil())
				Expect(session.Value).To(Equal("signed.token"))
				Expect(session.HttpOnly).To(BeTrue())
				Expect(cookie("flash")).NotTo(BeNil())
			})
		})

		When("the email is taken", func() {
			BeforeEach(func() {
				fakeService.SignUpReturns(core.Session{}, core.ErrEmailTaken)
				req = form(http.MethodPost, "/users", values)
			})

			It("should show the error", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(body()).To(ContainSubstring("Email has already been taken"))
				Expect(cookie(middleware.SessionCookie)).To(BeNil())
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.SignUpReturns(core.Session{}, fakeErr)
				req = form(http.MethodPost, "/users", values)
			})

			It("should render the error page", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(body()).To(ContainSubstring("Oops! Something went wrong."))
			})
		})
	})

	Describe("POST /sessions", func() {
		var values url.Values

		BeforeEach(func() {
			values = url.Values{
				"session[email]":    {"michael@example.com"},
				"session[password]": {"password"},
			}
		})

		When("the credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.Session{}, core.ErrIncorrectPassword)
				req = form(http.MethodPost, "/sessions", values)
			})

			It("should re-render the sign in form with a flash", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				html := body()
				Expect(html).To(ContainSubstring("Invalid email/password combination"))
				Expect(html).To(ContainSubstring(`value="michael@example.com"`))
				Expect(cookie(middleware.SessionCookie)).To(BeNil())
			})
		})

		When("the form is empty", func() {
			BeforeEach(func() {
				req = form(http.MethodPost, "/sessions", url.Values{})
			})

			It("should not try to authenticate", func() {
				Expect(fakeService.AuthenticateCallCount()).To(BeZero())
				Expect(body()).To(ContainSubstring("Invalid email/password combination"))
			})
		})

		When("the credentials are valid", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.Session{Token: "signed.token", User: michael}, nil)
				req = form(http.MethodPost, "/sessions", values)
			})

			It("should start a session and go to the profile", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/users/michael"))
				Expect(cookie(middleware.SessionCookie).Value).To(Equal("signed.token"))
			})

			When("a location was stored before signing in", func() {
				BeforeEach(func() {
					req.AddCookie(&http.Cookie{Name: "forwarding_url", Value: "/users/michael/edit"})
				})

				It("should forward there", func() {
					Expect(w.Header().Get("Location")).To(Equal("/users/michael/edit"))
				})
			})

			When("the stored location is not local", func() {
				BeforeEach(func() {
					req.AddCookie(&http.Cookie{Name: "forwarding_url", Value: "//evil.example.com"})
				})

				It("should ignore it", func() {
					Expect(w.Header().Get("Location")).To(Equal("/users/michael"))
				})
			})
		})
	})

	Describe("DELETE /signout", func() {
		BeforeEach(func() {
			currentUser = &michael
			req = form(http.MethodPost, "/signout", url.Values{"_method": {"delete"}})
		})

		It("should clear the session and go home", func() {
			Expect(w.Code).To(Equal(http.StatusSeeOther))
			Expect(w.Header().Get("Location")).To(Equal("/"))
			Expect(cookie(middleware.SessionCookie).MaxAge).To(BeNumerically("<", 0))
		})
	})

	Describe("GET /users", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/users?page=2", nil)
			fakeService.ListUsersStub = func(_ context.Context, page pagination.Page) (core.UserList, error) {
				return core.UserList{Users: []core.UserRecord{admin, michael, archer}, Total: 33, Page: page}, nil
			}
		})

		When("nobody is signed in", func() {
			It("should ask to sign in and remember the location", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/signin"))
				Expect(cookie("forwarding_url").Value).To(Equal("/users?page=2"))
				Expect(cookie("flash")).NotTo(BeNil())
				Expect(fakeService.ListUsersCallCount()).To(BeZero())
			})
		})

		When("an admin is signed in", func() {
			BeforeEach(func() {
				currentUser = &admin
			})

			It("should list the requested page with delete links", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, page := fakeService.ListUsersArgsForCall(0)
				Expect(page).To(Equal(pagination.New(2, pagination.DefaultSize)))

				html := body()
				Expect(html).To(ContainSubstring("<title>Sample App | All users</title>"))
				Expect(html).To(ContainSubstring(`action="/users/michael" method="post" class="inline delete_user"`))
				Expect(html).To(ContainSubstring(`action="/users/archer" method="post" class="inline delete_user"`))
				Expect(html).NotTo(ContainSubstring(`action="/users/admin" method="post" class="inline delete_user"`))
				Expect(html).To(ContainSubstring(`href="/users?page=1"`))
			})
		})

		When("a regular user is signed in", func() {
			BeforeEach(func() {
				currentUser = &michael
			})

			It("should not show delete links", func() {
				Expect(body()).NotTo(ContainSubstring("delete_user"))
			})
		})
	})

	Describe("GET /users/{id}", func() {
		var profile core.Profile

		BeforeEach(func() {
			profile = core.Profile{
				User:  archer,
				Stats: core.Stats{Microposts: 0, Following: 1, Followers: 2},
				Page:  pagination.New(1, pagination.DefaultSize),
			}
			fakeService.GetProfileReturns(profile, nil)
			req = httptest.NewRequest(http.MethodGet, "/users/archer", nil)
			currentUser = &michael
		})

		It("should render the profile with a follow button", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, viewerID, userID, _ := fakeService.GetProfileArgsForCall(0)
			Expect(viewerID).To(Equal("michael"))
			Expect(userID).To(Equal("archer"))

			html := body()
			Expect(html).To(ContainSubstring("<title>Sample App | Sterling Archer</title>"))
			Expect(html).To(ContainSubstring(`value="Follow"`))
		})

		When("the viewer already follows the user", func() {
			BeforeEach(func() {
				profile.Following = true
				fakeService.GetProfileReturns(profile, nil)
			})

			It("should render an unfollow button", func() {
				Expect(body()).To(ContainSubstring(`value="Unfollow"`))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.GetProfileReturns(core.Profile{}, core.ErrUserNotFound)
			})

			It("should render not found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("GET /users/{id}/edit", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/users/michael/edit", nil)
		})

		When("the user edits themselves", func() {
			BeforeEach(func() {
				currentUser = &michael
			})

			It("should render the edit form", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				html := body()
				Expect(html).To(ContainSubstring("<title>Sample App | Edit user</title>"))
				Expect(html).To(ContainSubstring(`value="michael@example.com"`))
			})
		})

		When("another user tries to edit", func() {
			BeforeEach(func() {
				currentUser = &archer
			})

			It("should redirect home", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})

		When("nobody is signed in", func() {
			It("should redirect to sign in", func() {
				Expect(w.Header().Get("Location")).To(Equal("/signin"))
				Expect(cookie("forwarding_url").Value).To(Equal("/users/michael/edit"))
			})
		})
	})

	Describe("PATCH /users/{id}", func() {
		var values url.Values

		BeforeEach(func() {
			currentUser = &michael
			values = url.Values{
				"_method":                     {"patch"},
				"user[name]":                  {"Foo Bar"},
				"user[email]":                 {"foo@bar.com"},
				"user[password]":              {""},
				"user[password_confirmation]": {""},
				"user[admin]":                 {"true"},
			}
			fakeService.UpdateProfileReturns(michael, nil)
		})

		When("the update is valid", func() {
			BeforeEach(func() {
				req = form(http.MethodPost, "/users/michael", values)
			})

			It("should update the profile without the admin flag", func() {
				Expect(fakeService.UpdateProfileCallCount()).To(Equal(1))
				_, actorID, userID, update := fakeService.UpdateProfileArgsForCall(0)
				Expect(actorID).To(Equal("michael"))
				Expect(userID).To(Equal("michael"))
				Expect(update).To(Equal(core.ProfileUpdate{Name: "Foo Bar", Email: "foo@bar.com"}))

				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/users/michael"))
				Expect(cookie("flash")).NotTo(BeNil())
			})
		})

		When("the update is invalid", func() {
			BeforeEach(func() {
				values.Set("user[email]", "foo@invalid")
				values.Set("user[password]", "foo")
				values.Set("user[password_confirmation]", "bar")
				req = form(http.MethodPost, "/users/michael", values)
			})

			It("should re-render the edit form", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.UpdateProfileCallCount()).To(BeZero())
				Expect(body()).To(ContainSubstring("The form contains 3 errors."))
			})
		})

		When("another user submits the update", func() {
			BeforeEach(func() {
				currentUser = &archer
				req = form(http.MethodPost, "/users/michael", values)
			})

			It("should redirect home", func() {
				Expect(w.Header().Get("Location")).To(Equal("/"))
				Expect(fakeService.UpdateProfileCallCount()).To(BeZero())
			})
		})
	})

	Describe("DELETE /users/{id}", func() {
		BeforeEach(func() {
			currentUser = &admin
			req = form(http.MethodPost, "/users/michael", url.Values{"_method": {"delete"}})
		})

		It("should delete the user as the admin", func() {
			_, actorID, userID := fakeService.DeleteUserArgsForCall(0)
			Expect(actorID).To(Equal("admin"))
			Expect(userID).To(Equal("michael"))
			Expect(w.Header().Get("Location")).To(Equal("/users"))
		})

		When("the service forbids it", func() {
			BeforeEach(func() {
				currentUser = &archer
				fakeService.DeleteUserReturns(core.ErrForbidden)
			})

			It("should redirect home", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})

		When("nobody is signed in", func() {
			BeforeEach(func() {
				currentUser = nil
			})

			It("should redirect to sign in without remembering the location", func() {
				Expect(w.Header().Get("Location")).To(Equal("/signin"))
				Expect(cookie("forwarding_url")).To(BeNil())
				Expect(fakeService.DeleteUserCallCount()).To(BeZero())
			})
		})
	})

	Describe("relationships", func() {
		BeforeEach(func() {
			currentUser = &michael
		})

		When("following a user", func() {
			BeforeEach(func() {
				req = form(http.MethodPost, "/relationships", url.Values{"followed_id": {"archer"}})
			})

			It("should follow and return to the profile", func() {
				_, followerID, followedID := fakeService.FollowArgsForCall(0)
				Expect(followerID).To(Equal("michael"))
				Expect(followedID).To(Equal("archer"))
				Expect(w.Header().Get("Location")).To(Equal("/users/archer"))
			})
		})

		When("following an already followed user", func() {
			BeforeEach(func() {
				fakeService.FollowReturns(core.ErrAlreadyFollowing)
				req = form(http.MethodPost, "/relationships", url.Values{"followed_id": {"archer"}})
			})

			It("should still return to the profile", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/users/archer"))
			})
		})

		When("unfollowing a user", func() {
			BeforeEach(func() {
				req = form(http.MethodPost, "/relationships/archer", url.Values{"_method": {"delete"}})
			})

			It("should unfollow and return to the profile", func() {
				_, followerID, followedID := fakeService.UnfollowArgsForCall(0)
				Expect(followerID).To(Equal("michael"))
				Expect(followedID).To(Equal("archer"))
				Expect(w.Header().Get("Location")).To(Equal("/users/archer"))
			})
		})

		When("listing following", func() {
			BeforeEach(func() {
				fakeService.FollowingReturns(core.FollowList{
					User:  michael,
					Users: []core.UserRecord{archer},
					Total: 1,
					Page:  pagination.New(1, pagination.DefaultSize),
				}, nil)
				req = httptest.NewRequest(http.MethodGet, "/users/michael/following", nil)
			})

			It("should render the followed users", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				html := body()
				Expect(html).To(ContainSubstring("<title>Sample App | Following</title>"))
				Expect(html).To(ContainSubstring(`<a href="/users/archer">Sterling Archer</a>`))
			})
		})

		When("listing followers of a missing user", func() {
			BeforeEach(func() {
				fakeService.FollowersReturns(core.FollowList{}, core.ErrUserNotFound)
				req = httptest.NewRequest(http.MethodGet, "/users/nobody/followers", nil)
			})

			It("should render not found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("microposts", func() {
		BeforeEach(func() {
			currentUser = &michael
		})

		When("the content is blank", func() {
			BeforeEach(func() {
				req = form(http.MethodPost, "/microposts", url.Values{"micropost[content]": {""}})
			})

			It("should re-render home with the error", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.PostMicropostCallCount()).To(BeZero())
				Expect(body()).To(ContainSubstring("Content can&#39;t be blank"))
			})
		})

		When("the content is valid", func() {
			BeforeEach(func() {
				req = form(http.MethodPost, "/microposts", url.Values{"micropost[content]": {"Lorem ipsum"}})
			})

			It("should post and go home", func() {
				_, userID, content := fakeService.PostMicropostArgsForCall(0)
				Expect(userID).To(Equal("michael"))
				Expect(content).To(Equal("Lorem ipsum"))
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})

		When("deleting someone else's micropost", func() {
			BeforeEach(func() {
				fakeService.DeleteMicropostReturns(core.ErrForbidden)
				req = form(http.MethodPost, "/microposts/p1", url.Values{"_method": {"delete"}})
			})

			It("should redirect home", func() {
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})

		When("deleting from the profile page", func() {
			BeforeEach(func() {
				req = form(http.MethodPost, "/microposts/p1", url.Values{"_method": {"delete"}})
				req.Header.Set("Referer", "http://example.com/users/michael?page=2")
			})

			It("should return to the referring page", func() {
				_, actorID, micropostID := fakeService.DeleteMicropostArgsForCall(0)
				Expect(actorID).To(Equal("michael"))
				Expect(micropostID).To(Equal("p1"))
				Expect(w.Header().Get("Location")).To(Equal("/users/michael?page=2"))
			})
		})
	})

	Describe("GET /", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/", nil)
		})

		It("should render the welcome page", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(body()).To(ContainSubstring("<title>Sample App</title>"))
			Expect(fakeService.FeedCallCount()).To(BeZero())
		})

		When("a user is signed in", func() {
			BeforeEach(func() {
				currentUser = &michael
				req.AddCookie(&http.Cookie{Name: "flash", Value: "c3VjY2Vzc3xXZWxjb21lIHRvIHRoZSBTYW1wbGUgQXBwIQ"})
				fakeService.FeedReturns(core.Feed{
					Items: []core.MicropostRecord{{ID: "p1", Content: "from archer", Author: archer}},
					Total: 1,
					Page:  pagination.New(1, pagination.DefaultSize),
				}, nil)
			})

			It("should render the feed and consume the flash", func() {
				html := body()
				Expect(html).To(ContainSubstring("from archer"))
				Expect(html).To(ContainSubstring("Welcome to the Sample App!"))
				Expect(cookie("flash").MaxAge).To(BeNumerically("<", 0))
			})
		})
	})

	Describe("unknown paths", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/nowhere", nil)
		})

		It("should render not found", func() {
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(body()).To(ContainSubstring("Page not found"))
		})
	})

	Describe("GET /healthz", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
		})

		It("should report ok", func() {
			var resp handler.Response
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Message).To(Equal("ok"))
		})
	})
})
