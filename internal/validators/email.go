package validators

import (
	"net/mail"
	"strings"

	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
)

// ValidateEmail syntax-checks an email address. The field name keys the
// resulting validation error ("email" for users, "contact_value" for
// contacts).
func ValidateEmail(field, value string) error {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(value, "@") {
		return httperr.Invalid(field, "Enter a valid email address.")
	}
	return nil
}
