package models

// UserType classifies system accounts. The set is closed: the access
// policy switches exhaustively over it.
type UserType string

const (
	UserTypeAdmin    UserType = "ADMIN"
	UserTypeLandlord UserType = "LANDLORD"
	UserTypeTenant   UserType = "TENANT"
)

func ParseUserType(s string) (UserType, bool) {
	switch UserType(s) {
	case UserTypeAdmin, UserTypeLandlord, UserTypeTenant:
		return UserType(s), true
	}
	return "", false
}

type ContactType string

const (
	ContactTypePhone ContactType = "PHONE"
	ContactTypeEmail ContactType = "EMAIL"
)

func ParseContactType(s string) (ContactType, bool) {
	switch ContactType(s) {
	case ContactTypePhone, ContactTypeEmail:
		return ContactType(s), true
	}
	return "", false
}
