package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/sanyco86/sample-app/internal/core"
	"github.com/sanyco86/sample-app/internal/http/handler/middleware"
	"github.com/sanyco86/sample-app/internal/http/view"
	"github.com/sanyco86/sample-app/internal/pagination"
)

func (h *PageHandler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	h.showFollow(w, r, "Following", h.users.Following, Following)
}

func (h *PageHandler) HandleFollowers(w http.ResponseWriter, r *http.Request) {
	h.showFollow(w, r, "Followers", h.users.Followers, Followers)
}

type followListFunc func(ctx context.Context, userID string, page pagination.Page) (core.FollowList, error)

func (h *PageHandler) showFollow(w http.ResponseWriter, r *http.Request, title string, list followListFunc, handlerName string) {
	if _, ok := h.requireSignedIn(w, r); !ok {
		return
	}

	userID := r.PathValue("id")
	follows, err := list(r.Context(), userID, pagination.Parse(r.URL.Query().Get("page")))
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.notFound(w, r)
			return
		}
		h.fail(w, r, err, handlerName)
		return
	}

	page := h.newPage(w, r, title)
	page.Data = view.FollowData{
		FollowList: follows,
		Heading:    title,
		Pager:      view.NewPager(r.URL.Path, follows.Page, follows.Total),
	}
	h.render(w, r, http.StatusOK, "show_follow", page)
}

func (h *PageHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	follower, ok := h.requireSignedIn(w, r)
	if !ok {
		return
	}

	followedID := r.PostFormValue("followed_id")
	err := h.users.Follow(r.Context(), follower.ID, followedID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUserNotFound):
			h.notFound(w, r)
			return
		case errors.Is(err, core.ErrAlreadyFollowing), errors.Is(err, core.ErrSelfFollow):
			h.logs.Infow("follow ignored",
				"error", err,
				"handler", Follow,
				"request_id", middleware.RequestIDFromContext(r.Context()))
		default:
			h.fail(w, r, err, Follow)
			return
		}
	}

	h.redirect(w, r, userPath(followedID))
}

func (h *PageHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	follower, ok := h.requireSignedIn(w, r)
	if !ok {
		return
	}

	followedID := r.PathValue("id")
	err := h.users.Unfollow(r.Context(), follower.ID, followedID)
	if err != nil {
		if !errors.Is(err, core.ErrNotFollowing) {
			h.fail(w, r, err, Unfollow)
			return
		}
		h.logs.Infow("unfollow ignored",
			"error", err,
			"handler", Unfollow,
			"request_id", middleware.RequestIDFromContext(r.Context()))
	}

	h.redirect(w, r, userPath(followedID))
}
