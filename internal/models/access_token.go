package models

import "time"

// AccessToken is a persisted bearer token. Only the SHA-256 digest of the
// issued plaintext is stored; the plaintext is returned to the client once
// and cannot be recovered afterwards.
type AccessToken struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
