// Package filters parses the optional list-endpoint query parameters
// and applies them on top of whatever scope the access policy already
// imposed.
package filters

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
)

type UserFilter struct {
	IsActive *bool
	UserType string
	Landlord string
	Username string
}

func ParseUserFilter(c *gin.Context) (UserFilter, error) {
	var f UserFilter

	active, err := parseBool(c, "is_active")
	if err != nil {
		return f, err
	}
	f.IsActive = active
	f.UserType = c.Query("user_type")
	f.Landlord = c.Query("landlord")
	f.Username = c.Query("username")
	return f, nil
}

func (f UserFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.IsActive != nil {
		q = q.Where("users.is_active = ?", *f.IsActive)
	}
	if f.UserType != "" {
		q = q.Where("users.user_type = ?", f.UserType)
	}
	if f.Landlord != "" {
		// Landlord is filtered by username, not id.
		q = q.Joins("JOIN users AS landlords ON landlords.id = users.landlord_id").
			Where("landlords.username = ?", f.Landlord)
	}
	if f.Username != "" {
		q = q.Where("LOWER(users.username) = LOWER(?)", f.Username)
	}
	return q
}

type ContactFilter struct {
	ContactType   string
	ContactTypeIn []string
	IsActive      *bool
	ContactValue  string
}

func ParseContactFilter(c *gin.Context) (ContactFilter, error) {
	var f ContactFilter

	active, err := parseBool(c, "is_active")
	if err != nil {
		return f, err
	}
	f.IsActive = active
	f.ContactType = c.Query("contact_type")
	f.ContactValue = c.Query("contact_value")

	if raw := c.Query("contact_type__in"); raw != "" {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				f.ContactTypeIn = append(f.ContactTypeIn, v)
			}
		}
	}
	return f, nil
}

func (f ContactFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.ContactType != "" {
		q = q.Where("contacts.contact_type = ?", f.ContactType)
	}
	if len(f.ContactTypeIn) > 0 {
		q = q.Where("contacts.contact_type IN ?", f.ContactTypeIn)
	}
	if f.IsActive != nil {
		q = q.Where("contacts.is_active = ?", *f.IsActive)
	}
	if f.ContactValue != "" {
		q = q.Where("contacts.contact_value = ?", f.ContactValue)
	}
	return q
}

func parseBool(c *gin.Context, param string) (*bool, error) {
	raw, ok := c.GetQuery(param)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return nil, httperr.Invalid(param, "Must be a valid boolean.")
	}
	return &v, nil
}
