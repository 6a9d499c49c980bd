package view

import "github.com/sanyco86/sample-app/internal/core"

type HomeData struct {
	User  core.UserRecord
	Stats core.Stats
	Feed  core.Feed
	Pager Pager
}

type IndexData struct {
	Users []core.UserRecord
	Pager Pager
}

type ProfileData struct {
	core.Profile
	Pager Pager
}

type FollowData struct {
	core.FollowList
	Heading string
	Pager   Pager
}

type EditData struct {
	UserID string
}
