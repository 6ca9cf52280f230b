package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/allanebarua/Tenant-Management-System/internal/validators"
)

type Contact struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	ContactType  ContactType `gorm:"size:20;not null" json:"contact_type"`
	ContactValue string      `gorm:"size:256;not null" json:"contact_value"`
	IsActive     bool        `json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave re-normalizes the value on every write. Handlers already
// normalize on the way in; running the same rule here is idempotent.
func (c *Contact) BeforeSave(tx *gorm.DB) error {
	switch c.ContactType {
	case ContactTypePhone:
		normalized, err := validators.NormalizePhone(c.ContactValue, validators.DefaultPhoneRegion)
		if err != nil {
			return err
		}
		c.ContactValue = normalized
	case ContactTypeEmail:
		if err := validators.ValidateEmail("contact_value", c.ContactValue); err != nil {
			return err
		}
	}
	return nil
}
