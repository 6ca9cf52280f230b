package validators

import (
	"github.com/nyaruka/phonenumbers"

	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
)

// DefaultPhoneRegion is the region used to parse numbers supplied
// without a country prefix. Overridden from config at startup.
var DefaultPhoneRegion = "KE"

const invalidPhoneMessage = "Invalid phone number supplied."

// NormalizePhone parses a phone number against the given default region
// and reformats it to international E.164. Already-normalized values
// pass through unchanged. Any parse or validity failure yields the same
// validation error.
func NormalizePhone(value, region string) (string, error) {
	parsed, err := phonenumbers.Parse(value, region)
	if err != nil {
		return "", httperr.Invalid("contact_value", invalidPhoneMessage)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", httperr.Invalid("contact_value", invalidPhoneMessage)
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
