package policy

import (
	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
)

// ValidateUserCreation enforces the role-creation rules: which account
// types a creator may mint, and the landlord email requirement.
func ValidateUserCreation(creator *models.User, newType models.UserType, email string) error {
	if newType == models.UserTypeLandlord && email == "" {
		return httperr.Invalid("email", "A Landlord should have an email address.")
	}

	switch creator.UserType {
	case models.UserTypeLandlord:
		if newType != models.UserTypeTenant {
			return httperr.Invalid("non_field_errors",
				"A Landlord can only create tenant user accounts.")
		}
	case models.UserTypeAdmin:
		if newType == models.UserTypeTenant {
			return httperr.Invalid("non_field_errors",
				"An Admin cannot create tenant user accounts.")
		}
	}

	return nil
}
