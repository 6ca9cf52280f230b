package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
)

func admin() *models.User {
	return &models.User{ID: 1, UserType: models.UserTypeAdmin, IsStaff: true}
}

func landlord(id uint) *models.User {
	return &models.User{ID: id, UserType: models.UserTypeLandlord}
}

func tenant(id uint, landlordID uint) *models.User {
	return &models.User{ID: id, UserType: models.UserTypeTenant, LandlordID: &landlordID}
}

func TestScopeUsers(t *testing.T) {
	assert.Equal(t, UserScope{All: true}, ScopeUsers(admin()))
	assert.Equal(t, UserScope{SelfID: 2, LandlordID: 2}, ScopeUsers(landlord(2)))
	assert.Equal(t, UserScope{SelfID: 3}, ScopeUsers(tenant(3, 2)))
}

func TestScopeContacts(t *testing.T) {
	assert.Equal(t, ContactScope{All: true}, ScopeContacts(admin()))
	assert.Equal(t, ContactScope{OwnerID: 2, OwnerLandlordID: 2}, ScopeContacts(landlord(2)))
	assert.Equal(t, ContactScope{OwnerID: 3}, ScopeContacts(tenant(3, 2)))
}

func TestCanViewUser(t *testing.T) {
	ll := landlord(2)
	tn := tenant(3, 2)

	assert.NoError(t, CanViewUser(admin(), tn))
	assert.NoError(t, CanViewUser(tn, tn))
	assert.NoError(t, CanViewUser(ll, tn))

	err := CanViewUser(tn, ll)
	require.Error(t, err)
	assert.Equal(t, "user 3 cannot retrieve user 2", err.Error())

	// Another landlord's tenant is out of reach.
	err = CanViewUser(landlord(9), tn)
	require.Error(t, err)
}

func TestCanUpdateUser(t *testing.T) {
	ll := landlord(2)
	tn := tenant(3, 2)

	assert.NoError(t, CanUpdateUser(admin(), tn))
	assert.NoError(t, CanUpdateUser(tn, tn))

	// The landlord link grants view, not update.
	err := CanUpdateUser(ll, tn)
	require.Error(t, err)
	assert.Equal(t, "user 2 cannot update user 3", err.Error())
}

func TestCanDeleteUsers(t *testing.T) {
	assert.NoError(t, CanDeleteUsers(admin()))

	err := CanDeleteUsers(landlord(2))
	require.Error(t, err)
	assert.Equal(t, httperr.DefaultDenial, err.Error())
	require.Error(t, CanDeleteUsers(tenant(3, 2)))
}

func TestContactObjectChecks(t *testing.T) {
	ll := landlord(2)
	tn := tenant(3, 2)
	contact := &models.Contact{ID: 10, OwnerID: tn.ID, Owner: *tn}

	assert.NoError(t, CanViewContact(admin(), contact))
	assert.NoError(t, CanViewContact(tn, contact))
	assert.NoError(t, CanViewContact(ll, contact))
	assert.Error(t, CanViewContact(landlord(9), contact))

	assert.NoError(t, CanUpdateContact(admin(), contact))
	assert.NoError(t, CanUpdateContact(tn, contact))
	assert.Error(t, CanUpdateContact(ll, contact))
}

func TestValidateUserCreation(t *testing.T) {
	tests := []struct {
		name    string
		creator *models.User
		newType models.UserType
		email   string
		wantKey string
		wantMsg string
	}{
		{
			name:    "admin creates landlord",
			creator: admin(),
			newType: models.UserTypeLandlord,
			email:   "landlord1@gmail.com",
		},
		{
			name:    "landlord creates tenant",
			creator: landlord(2),
			newType: models.UserTypeTenant,
		},
		{
			name:    "landlord creates landlord",
			creator: landlord(2),
			newType: models.UserTypeLandlord,
			email:   "landlord2@gmail.com",
			wantKey: "non_field_errors",
			wantMsg: "A Landlord can only create tenant user accounts.",
		},
		{
			name:    "admin creates tenant",
			creator: admin(),
			newType: models.UserTypeTenant,
			wantKey: "non_field_errors",
			wantMsg: "An Admin cannot create tenant user accounts.",
		},
		{
			name:    "landlord without email",
			creator: admin(),
			newType: models.UserTypeLandlord,
			wantKey: "email",
			wantMsg: "A Landlord should have an email address.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUserCreation(tt.creator, tt.newType, tt.email)
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}

			var ve httperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantMsg, ve[tt.wantKey])
		})
	}
}
