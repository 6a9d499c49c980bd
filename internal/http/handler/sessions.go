package handler

import (
	"errors"
	"net/http"

	"github.com/sanyco86/sample-app/internal/core"
	"github.com/sanyco86/sample-app/internal/http/handler/middleware"
	"github.com/sanyco86/sample-app/internal/http/payload"
	"github.com/sanyco86/sample-app/internal/http/view"
)

func (h *PageHandler) HandleSigninForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "signin", h.newPage(w, r, "Sign in"))
}

func (h *PageHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var payload payload.SessionRequest
	err := h.requestValidator.DecodeAndValidateForm(r, &payload)
	if err != nil {
		h.logs.Infow("invalid sign in form",
			"error", err,
			"handler", CreateSession,
			"request_id", requestId)
		h.renderSigninFailure(w, r, payload.Email)
		return
	}

	session, err := h.users.Authenticate(r.Context(), payload.ToCoreAuthMessage())
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			h.logs.Infow("sign in rejected",
				"error", err,
				"handler", CreateSession,
				"request_id", requestId)
			h.renderSigninFailure(w, r, payload.Email)
			return
		}
		h.fail(w, r, err, CreateSession)
		return
	}

	h.startSession(w, session)
	h.redirect(w, r, popLocation(w, r, userPath(session.User.ID)))
}

func (h *PageHandler) HandleDestroySession(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	h.redirect(w, r, "/")
}

func (h *PageHandler) renderSigninFailure(w http.ResponseWriter, r *http.Request, email string) {
	page := h.newPage(w, r, "Sign in")
	page.Flash = &view.Flash{Kind: flashDanger, Message: msgInvalidLogin}
	page.Form = view.FormValues{Email: email}
	h.render(w, r, http.StatusOK, "signin", page)
}

func (h *PageHandler) startSession(w http.ResponseWriter, session core.Session) {
	middleware.SetSessionCookie(w, session.Token, int(h.sessionTTL.Seconds()))
}
