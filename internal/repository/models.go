package repository

import "time"

type User struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	Name           string    `gorm:"type:varchar(50);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordDigest string    `gorm:"not null"`
	Admin          bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

type Micropost struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"type:varchar(36);not null;index:idx_microposts_user_created,priority:1"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_microposts_user_created,priority:2"`
}

// Relationship is a directed follow edge; the pair is unique.
type Relationship struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	FollowerID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_relationships_pair,priority:1"`
	FollowedID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_relationships_pair,priority:2;index"`
	CreatedAt  time.Time
}
