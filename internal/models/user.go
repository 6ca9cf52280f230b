package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Username string   `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Password string   `gorm:"size:255;not null" json:"-"`
	UserType UserType `gorm:"size:20;not null" json:"user_type"`

	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Email     string `gorm:"size:100" json:"email"`

	DOB        *time.Time `json:"dob,omitempty"`
	NationalID *int64     `gorm:"uniqueIndex" json:"national_id,omitempty"`

	IsActive bool `gorm:"default:true" json:"is_active"`
	IsStaff  bool `json:"-"`

	// Only tenant accounts point at a landlord.
	LandlordID *uint `json:"-"`
	Landlord   *User `gorm:"foreignKey:LandlordID" json:"-"`

	Contacts []Contact `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"user_contacts"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave keeps the role invariants on every write: admins and
// landlords never carry a landlord link, and the staff flag is derived
// from the role rather than stored independently.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.UserType != UserTypeTenant {
		u.LandlordID = nil
		u.Landlord = nil
	}
	u.IsStaff = u.UserType == UserTypeAdmin
	return nil
}
