package handler

import (
	"errors"
	"net/http"

	"github.com/sanyco86/sample-app/internal/core"
	"github.com/sanyco86/sample-app/internal/http/handler/middleware"
	"github.com/sanyco86/sample-app/internal/http/payload"
	"github.com/sanyco86/sample-app/internal/http/view"
	"github.com/sanyco86/sample-app/internal/pagination"
)

func (h *PageHandler) HandleSignupForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.CurrentUser(r.Context()); ok {
		h.redirect(w, r, "/")
		return
	}

	h.render(w, r, http.StatusOK, "signup", h.newPage(w, r, "Sign up"))
}

func (h *PageHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.CurrentUser(r.Context()); ok {
		h.redirect(w, r, "/")
		return
	}

	var payload payload.SignupRequest
	err := h.requestValidator.DecodeAndValidateForm(r, &payload)
	if err != nil {
		h.renderSignupErrors(w, r, payload, formErrors(err))
		return
	}

	session, err := h.users.SignUp(r.Context(), payload.ToCoreSignupMessage())
	if err != nil {
		if errors.Is(err, core.ErrEmailTaken) {
			h.renderSignupErrors(w, r, payload, []string{msgEmailTaken})
			return
		}
		h.fail(w, r, err, CreateUser)
		return
	}

	h.logs.Infow("user signed up",
		"user_id", session.User.ID,
		"handler", CreateUser,
		"request_id", middleware.RequestIDFromContext(r.Context()))

	h.startSession(w, session)
	setFlash(w, flashSuccess, msgWelcome)
	h.redirect(w, r, userPath(session.User.ID))
}

func (h *PageHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSignedIn(w, r); !ok {
		return
	}

	list, err := h.users.ListUsers(r.Context(), pagination.Parse(r.URL.Query().Get("page")))
	if err != nil {
		h.fail(w, r, err, ListUsers)
		return
	}

	page := h.newPage(w, r, "All users")
	page.Data = view.IndexData{
		Users: list.Users,
		Pager: view.NewPager("/users", list.Page, list.Total),
	}
	h.render(w, r, http.StatusOK, "index", page)
}

func (h *PageHandler) HandleShowUser(w http.ResponseWriter, r *http.Request) {
	viewerID := ""
	if viewer, ok := middleware.CurrentUser(r.Context()); ok {
		viewerID = viewer.ID
	}

	userID := r.PathValue("id")
	profile, err := h.users.GetProfile(r.Context(), viewerID, userID, pagination.Parse(r.URL.Query().Get("page")))
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.notFound(w, r)
			return
		}
		h.fail(w, r, err, ShowUser)
		return
	}

	page := h.newPage(w, r, profile.User.Name)
	page.Data = view.ProfileData{
		Profile: profile,
		Pager:   view.NewPager(userPath(userID), profile.Page, profile.Stats.Microposts),
	}
	h.render(w, r, http.StatusOK, "show", page)
}

func (h *PageHandler) HandleEditUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireCorrectUser(w, r)
	if !ok {
		return
	}

	page := h.newPage(w, r, "Edit user")
	page.Form = view.FormValues{Name: user.Name, Email: user.Email}
	page.Data = view.EditData{UserID: user.ID}
	h.render(w, r, http.StatusOK, "edit", page)
}

func (h *PageHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireCorrectUser(w, r)
	if !ok {
		return
	}

	var payload payload.ProfileRequest
	err := h.requestValidator.DecodeAndValidateForm(r, &payload)
	if err != nil {
		h.renderEditErrors(w, r, user.ID, payload, formErrors(err))
		return
	}

	_, err = h.users.UpdateProfile(r.Context(), user.ID, user.ID, payload.ToCoreProfileUpdate())
	if err != nil {
		switch {
		case errors.Is(err, core.ErrEmailTaken):
			h.renderEditErrors(w, r, user.ID, payload, []string{msgEmailTaken})
		case errors.Is(err, core.ErrForbidden):
			h.redirect(w, r, "/")
		case errors.Is(err, core.ErrUserNotFound):
			h.notFound(w, r)
		default:
			h.fail(w, r, err, UpdateUser)
		}
		return
	}

	setFlash(w, flashSuccess, msgProfileUpdated)
	h.redirect(w, r, userPath(user.ID))
}

func (h *PageHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireSignedIn(w, r)
	if !ok {
		return
	}

	err := h.users.DeleteUser(r.Context(), actor.ID, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, core.ErrForbidden):
			h.redirect(w, r, "/")
		case errors.Is(err, core.ErrUserNotFound):
			h.notFound(w, r)
		default:
			h.fail(w, r, err, DeleteUser)
		}
		return
	}

	setFlash(w, flashSuccess, msgUserDeleted)
	h.redirect(w, r, "/users")
}

// requireCorrectUser only lets the signed in user act on their own {id}.
// Anyone else is sent home.
func (h *PageHandler) requireCorrectUser(w http.ResponseWriter, r *http.Request) (core.UserRecord, bool) {
	user, ok := h.requireSignedIn(w, r)
	if !ok {
		return core.UserRecord{}, false
	}

	if user.ID != r.PathValue("id") {
		h.redirect(w, r, "/")
		return core.UserRecord{}, false
	}

	return user, true
}

func (h *PageHandler) renderSignupErrors(w http.ResponseWriter, r *http.Request, form payload.SignupRequest, errs []string) {
	page := h.newPage(w, r, "Sign up")
	page.Errors = errs
	page.Form = view.FormValues{Name: form.Name, Email: form.Email}
	h.render(w, r, http.StatusOK, "signup", page)
}

func (h *PageHandler) renderEditErrors(w http.ResponseWriter, r *http.Request, userID string, form payload.ProfileRequest, errs []string) {
	page := h.newPage(w, r, "Edit user")
	page.Errors = errs
	page.Form = view.FormValues{Name: form.Name, Email: form.Email}
	page.Data = view.EditData{UserID: userID}
	h.render(w, r, http.StatusOK, "edit", page)
}

func formErrors(err error) []string {
	return payload.Messages(err)
}
