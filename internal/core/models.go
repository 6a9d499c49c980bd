package core

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/sanyco86/sample-app/internal/pagination"
	"github.com/sanyco86/sample-app/internal/repository"
)

type UserRecord struct {
	ID        string
	Name      string
	Email     string
	Admin     bool
	CreatedAt time.Time
}

// GravatarURL returns the avatar for the user's email at the given pixel size.
func (u UserRecord) GravatarURL(size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(u.Email))))
	return fmt.Sprintf("https://secure.gravatar.com/avatar/%s?s=%d", hex.EncodeToString(sum[:]), size)
}

type MicropostRecord struct {
	ID        string
	Content   string
	CreatedAt time.Time
	Author    UserRecord
}

type SignupMessage struct {
	Name     string
	Email    string
	Password string
}

type AuthMessage struct {
	Email    string
	Password string
}

// ProfileUpdate lists the attributes a user may change on their own profile.
// An empty Password keeps the current one.
type ProfileUpdate struct {
	Name     string
	Email    string
	Password string
}

type Session struct {
	Token string
	User  UserRecord
}

type Stats struct {
	Microposts int
	Following  int
	Followers  int
}

type Profile struct {
	User       UserRecord
	Stats      Stats
	Microposts []MicropostRecord
	Page       pagination.Page
	// Following reports whether the viewer follows User.
	Following bool
}

type UserList struct {
	Users []UserRecord
	Total int
	Page  pagination.Page
}

type FollowList struct {
	User  UserRecord
	Stats Stats
	Users []UserRecord
	Total int
	Page  pagination.Page
}

type Feed struct {
	Items []MicropostRecord
	Total int
	Page  pagination.Page
}

func toUserRecord(u repository.User) UserRecord {
	return UserRecord{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Admin:     u.Admin,
		CreatedAt: u.CreatedAt,
	}
}

func toUserRecords(users []repository.User) []UserRecord {
	records := make([]UserRecord, len(users))
	for i, u := range users {
		records[i] = toUserRecord(u)
	}
	return records
}

func toMicropostRecord(m repository.Micropost, author UserRecord) MicropostRecord {
	return MicropostRecord{
		ID:        m.ID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		Author:    author,
	}
}
