package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sanyco86/sample-app/internal/events"
	"github.com/sanyco86/sample-app/internal/pagination"
	"github.com/sanyco86/sample-app/internal/repository"
)

func (s *UserService) PostMicropost(ctx context.Context, userID, content string) (MicropostRecord, error) {
	author, err := s.getUser(ctx, userID)
	if err != nil {
		return MicropostRecord{}, err
	}

	micropost, err := s.repo.CreateMicropost(ctx, repository.Micropost{
		UserID:  author.ID,
		Content: strings.TrimSpace(content),
	})
	if err != nil {
		return MicropostRecord{}, fmt.Errorf("create micropost: %w", err)
	}

	s.logs.Infow("micropost created", "userId", userID, "micropostId", micropost.ID)
	s.publish(ctx, events.PostCreated, userID, micropost.ID)

	return toMicropostRecord(micropost, toUserRecord(author)), nil
}

// DeleteMicropost removes a micropost owned by actorID.
func (s *UserService) DeleteMicropost(ctx context.Context, actorID, micropostID string) error {
	micropost, err := s.repo.GetMicropost(ctx, micropostID)
	if err != nil {
		if errors.Is(err, repository.ErrMicropostNotFound) {
			return ErrMicropostNotFound
		}
		return fmt.Errorf("get micropost: %w", err)
	}

	if micropost.UserID != actorID {
		return ErrForbidden
	}

	err = s.repo.DeleteMicropost(ctx, micropostID)
	if err != nil {
		if errors.Is(err, repository.ErrMicropostNotFound) {
			return ErrMicropostNotFound
		}
		return fmt.Errorf("delete micropost: %w", err)
	}

	s.logs.Infow("micropost deleted", "userId", actorID, "micropostId", micropostID)
	s.publish(ctx, events.PostDeleted, actorID, micropostID)

	return nil
}

// Feed returns the microposts of userID and the users they follow, newest first.
func (s *UserService) Feed(ctx context.Context, userID string, page pagination.Page) (Feed, error) {
	microposts, err := s.repo.Feed(ctx, userID, page)
	if err != nil {
		return Feed{}, fmt.Errorf("get feed: %w", err)
	}

	total, err := s.repo.CountFeed(ctx, userID)
	if err != nil {
		return Feed{}, fmt.Errorf("count feed: %w", err)
	}

	authorIDs := make([]string, 0, len(microposts))
	seen := make(map[string]struct{})
	for _, m := range microposts {
		if _, ok := seen[m.UserID]; !ok {
			seen[m.UserID] = struct{}{}
			authorIDs = append(authorIDs, m.UserID)
		}
	}

	authors, err := s.repo.GetUsersByIDs(ctx, authorIDs)
	if err != nil {
		return Feed{}, fmt.Errorf("get feed authors: %w", err)
	}

	authorsByID := make(map[string]UserRecord, len(authors))
	for _, a := range authors {
		authorsByID[a.ID] = toUserRecord(a)
	}

	items := make([]MicropostRecord, len(microposts))
	for i, m := range microposts {
		items[i] = toMicropostRecord(m, authorsByID[m.UserID])
	}

	return Feed{
		Items: items,
		Total: int(total),
		Page:  page,
	}, nil
}
