package events

import "time"

type Type string

const (
	UserSignedUp   Type = "user.signed_up"
	UserUpdated    Type = "user.updated"
	UserDeleted    Type = "user.deleted"
	UserFollowed   Type = "relationship.followed"
	UserUnfollowed Type = "relationship.unfollowed"
	PostCreated    Type = "micropost.created"
	PostDeleted    Type = "micropost.deleted"
)

// Event is a single activity record published to the broker.
type Event struct {
	Type       Type      `json:"type"`
	ActorID    string    `json:"actor_id"`
	SubjectID  string    `json:"subject_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
