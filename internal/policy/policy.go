// Package policy decides row visibility and object-level permissions
// for users and contacts. Decisions are pure values; the repository
// layer translates scopes into queries, which keeps the rules testable
// without a database.
package policy

import (
	"fmt"

	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
)

// UserScope is the abstract visibility predicate for user rows:
// every row, or the principal's own row, optionally together with rows
// whose landlord link points at the principal.
type UserScope struct {
	All        bool
	SelfID     uint
	LandlordID uint
}

// ContactScope is the equivalent predicate for contact rows, keyed by
// owner. OwnerLandlordID widens the scope to contacts whose owner is a
// tenant of the principal.
type ContactScope struct {
	All             bool
	OwnerID         uint
	OwnerLandlordID uint
}

// ScopeUsers computes which user rows the principal may list.
func ScopeUsers(principal *models.User) UserScope {
	switch principal.UserType {
	case models.UserTypeAdmin:
		return UserScope{All: true}
	case models.UserTypeLandlord:
		return UserScope{SelfID: principal.ID, LandlordID: principal.ID}
	default:
		return UserScope{SelfID: principal.ID}
	}
}

// ScopeContacts computes which contact rows the principal may list.
func ScopeContacts(principal *models.User) ContactScope {
	switch principal.UserType {
	case models.UserTypeAdmin:
		return ContactScope{All: true}
	case models.UserTypeLandlord:
		return ContactScope{OwnerID: principal.ID, OwnerLandlordID: principal.ID}
	default:
		return ContactScope{OwnerID: principal.ID}
	}
}

// CanViewUser permits admins, the user themself, and the user's
// landlord.
func CanViewUser(principal, obj *models.User) error {
	if principal.IsStaff || principal.ID == obj.ID {
		return nil
	}
	if obj.LandlordID != nil && *obj.LandlordID == principal.ID {
		return nil
	}
	return httperr.ErrForbidden(
		fmt.Sprintf("user %d cannot retrieve user %d", principal.ID, obj.ID))
}

// CanUpdateUser permits admins and self-updates only.
func CanUpdateUser(principal, obj *models.User) error {
	if principal.IsStaff || principal.ID == obj.ID {
		return nil
	}
	return httperr.ErrForbidden(
		fmt.Sprintf("user %d cannot update user %d", principal.ID, obj.ID))
}

// CanDeleteUsers permits admins only.
func CanDeleteUsers(principal *models.User) error {
	if principal.IsStaff {
		return nil
	}
	return httperr.ErrForbidden("")
}

// CanViewContact permits admins, the owner, and the owner's landlord.
// The contact's Owner association must be loaded.
func CanViewContact(principal *models.User, obj *models.Contact) error {
	if principal.IsStaff || principal.ID == obj.OwnerID {
		return nil
	}
	if obj.Owner.LandlordID != nil && *obj.Owner.LandlordID == principal.ID {
		return nil
	}
	return httperr.ErrForbidden("")
}

// CanUpdateContact permits admins and the owner only.
func CanUpdateContact(principal *models.User, obj *models.Contact) error {
	if principal.IsStaff || principal.ID == obj.OwnerID {
		return nil
	}
	return httperr.ErrForbidden("")
}
