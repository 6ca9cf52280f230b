package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
)

func TestNormalizePhone(t *testing.T) {
	got, err := NormalizePhone("0790830848", "KE")
	require.NoError(t, err)
	assert.Equal(t, "+254790830848", got)
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	first, err := NormalizePhone("0790830848", "KE")
	require.NoError(t, err)

	second, err := NormalizePhone(first, "KE")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizePhoneInternationalInput(t *testing.T) {
	// A prefixed number ignores the default region.
	got, err := NormalizePhone("+254 790 830 848", "US")
	require.NoError(t, err)
	assert.Equal(t, "+254790830848", got)
}

func TestNormalizePhoneFailures(t *testing.T) {
	for _, input := range []string{"", "not-a-number", "12", "+999999"} {
		_, err := NormalizePhone(input, "KE")
		require.Error(t, err, "input %q", input)

		var ve httperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Invalid phone number supplied.", ve["contact_value"])
	}
}
