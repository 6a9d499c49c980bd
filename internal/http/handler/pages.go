package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sanyco86/sample-app/internal/core"
	"github.com/sanyco86/sample-app/internal/http/handler/middleware"
	"github.com/sanyco86/sample-app/internal/http/view"
	"github.com/sanyco86/sample-app/internal/pagination"
	"go.uber.org/zap"
)

var (
	Home            = "GET /{$}"
	Health          = "GET /healthz"
	SignupForm      = "GET /signup"
	CreateUser      = "POST /users"
	SigninForm      = "GET /signin"
	CreateSession   = "POST /sessions"
	DestroySession  = "DELETE /signout"
	ListUsers       = "GET /users"
	ShowUser        = "GET /users/{id}"
	EditUser        = "GET /users/{id}/edit"
	UpdateUser      = "PATCH /users/{id}"
	DeleteUser      = "DELETE /users/{id}"
	Following       = "GET /users/{id}/following"
	Followers       = "GET /users/{id}/followers"
	Follow          = "POST /relationships"
	Unfollow        = "DELETE /relationships/{id}"
	CreateMicropost = "POST /microposts"
	DeleteMicropost = "DELETE /microposts/{id}"
)

type PageHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	users            UserService
	views            Renderer
	sessionTTL       time.Duration
}

func NewPageHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, userService UserService, renderer Renderer, sessionTTL time.Duration) *PageHandler {
	return &PageHandler{
		logs:             logger,
		requestValidator: requestValidator,
		users:            userService,
		views:            renderer,
		sessionTTL:       sessionTTL,
	}
}

func (h *PageHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Home, h.HandleHome)
	mux.HandleFunc(Health, h.HandleHealth)
	mux.HandleFunc(SignupForm, h.HandleSignupForm)
	mux.HandleFunc(CreateUser, h.HandleCreateUser)
	mux.HandleFunc(SigninForm, h.HandleSigninForm)
	mux.HandleFunc(CreateSession, h.HandleCreateSession)
	mux.HandleFunc(DestroySession, h.HandleDestroySession)
	mux.HandleFunc(ListUsers, h.HandleListUsers)
	mux.HandleFunc(ShowUser, h.HandleShowUser)
	mux.HandleFunc(EditUser, h.HandleEditUser)
	mux.HandleFunc(UpdateUser, h.HandleUpdateUser)
	mux.HandleFunc(DeleteUser, h.HandleDeleteUser)
	mux.HandleFunc(Following, h.HandleFollowing)
	mux.HandleFunc(Followers, h.HandleFollowers)
	mux.HandleFunc(Follow, h.HandleFollow)
	mux.HandleFunc(Unfollow, h.HandleUnfollow)
	mux.HandleFunc(CreateMicropost, h.HandleCreateMicropost)
	mux.HandleFunc(DeleteMicropost, h.HandleDeleteMicropost)
	mux.HandleFunc("/", h.HandleNotFound)
}

func (h *PageHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(w, r, "")
	if page.CurrentUser != nil {
		data, err := h.homeData(r, *page.CurrentUser)
		if err != nil {
			h.fail(w, r, err, Home)
			return
		}
		page.Data = data
	}

	h.render(w, r, http.StatusOK, "home", page)
}

func (h *PageHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{Message: "ok"}, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *PageHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}

func (h *PageHandler) homeData(r *http.Request, user core.UserRecord) (view.HomeData, error) {
	page := pagination.Parse(r.URL.Query().Get("page"))

	feed, err := h.users.Feed(r.Context(), user.ID, page)
	if err != nil {
		return view.HomeData{}, err
	}

	stats, err := h.users.Stats(r.Context(), user.ID)
	if err != nil {
		return view.HomeData{}, err
	}

	return view.HomeData{
		User:  user,
		Stats: stats,
		Feed:  feed,
		Pager: view.NewPager("/", page, feed.Total),
	}, nil
}

func (h *PageHandler) newPage(w http.ResponseWriter, r *http.Request, title string) view.Page {
	page := view.Page{
		Title: title,
		Flash: popFlash(w, r),
	}
	if user, ok := middleware.CurrentUser(r.Context()); ok {
		page.CurrentUser = &user
	}
	return page
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, page view.Page) {
	if err := h.views.Render(w, status, name, page); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to render page",
			"error", err,
			"page", name,
			"request_id", middleware.RequestIDFromContext(r.Context()))
	}
}

func (h *PageHandler) redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func (h *PageHandler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "not_found", h.newPage(w, r, "Not found"))
}

func (h *PageHandler) fail(w http.ResponseWriter, r *http.Request, err error, handlerName string) {
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handlerName,
		"request_id", middleware.RequestIDFromContext(r.Context()))

	page := h.newPage(w, r, "Error")
	page.Data = oopsErr
	h.render(w, r, http.StatusInternalServerError, "error", page)
}

// requireSignedIn sends anonymous visitors to the sign in page, remembering
// where they were going.
func (h *PageHandler) requireSignedIn(w http.ResponseWriter, r *http.Request) (core.UserRecord, bool) {
	user, ok := middleware.CurrentUser(r.Context())
	if ok {
		return user, true
	}

	storeLocation(w, r)
	setFlash(w, flashDanger, msgPleaseSignIn)
	h.redirect(w, r, "/signin")
	return core.UserRecord{}, false
}

func (h *PageHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func userPath(id string) string {
	return "/users/" + id
}
