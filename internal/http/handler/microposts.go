package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/sanyco86/sample-app/internal/core"
	"github.com/sanyco86/sample-app/internal/http/payload"
	"github.com/sanyco86/sample-app/internal/http/view"
)

func (h *PageHandler) HandleCreateMicropost(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireSignedIn(w, r)
	if !ok {
		return
	}

	var payload payload.MicropostRequest
	err := h.requestValidator.DecodeAndValidateForm(r, &payload)
	if err != nil {
		data, dataErr := h.homeData(r, user)
		if dataErr != nil {
			h.fail(w, r, dataErr, CreateMicropost)
			return
		}

		page := h.newPage(w, r, "")
		page.Errors = formErrors(err)
		page.Form = view.FormValues{Content: payload.Content}
		page.Data = data
		h.render(w, r, http.StatusOK, "home", page)
		return
	}

	_, err = h.users.PostMicropost(r.Context(), user.ID, payload.Content)
	if err != nil {
		h.fail(w, r, err, CreateMicropost)
		return
	}

	setFlash(w, flashSuccess, msgMicropostCreated)
	h.redirect(w, r, "/")
}

func (h *PageHandler) HandleDeleteMicropost(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireSignedIn(w, r)
	if !ok {
		return
	}

	err := h.users.DeleteMicropost(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, core.ErrForbidden):
			h.redirect(w, r, "/")
		case errors.Is(err, core.ErrMicropostNotFound):
			h.notFound(w, r)
		default:
			h.fail(w, r, err, DeleteMicropost)
		}
		return
	}

	setFlash(w, flashSuccess, msgMicropostDeleted)
	h.redirect(w, r, backTo(r, "/"))
}

// backTo returns the local referring path, or fallback.
func backTo(r *http.Request, fallback string) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return fallback
	}
	return ref.RequestURI()
}
