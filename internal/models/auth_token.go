package models

import "time"

// AuthToken is the opaque bearer credential issued when an account is
// created. One active token per user.
type AuthToken struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Key    string `gorm:"size:64;uniqueIndex;not null" json:"key"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
