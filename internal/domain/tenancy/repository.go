package tenancy

import (
	"context"

	"github.com/allanebarua/Tenant-Management-System/internal/filters"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
	"github.com/allanebarua/Tenant-Management-System/internal/policy"
)

// Repository is the persistence boundary for users, their contacts and
// their bearer tokens. List methods take the policy scope plus the
// caller's optional filters; translating both into queries is the
// implementation's job.
type Repository interface {
	// -------- Users --------
	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUserByUsername(
		ctx context.Context,
		username string,
	) (*models.User, error)

	ListUsers(
		ctx context.Context,
		scope policy.UserScope,
		filter filters.UserFilter,
	) ([]models.User, error)

	UpdateUser(
		ctx context.Context,
		user *models.User,
	) error

	DeleteUser(
		ctx context.Context,
		user *models.User,
	) error

	CountUsers(
		ctx context.Context,
	) (int64, error)

	// -------- Contacts --------
	CreateContact(
		ctx context.Context,
		contact *models.Contact,
	) error

	GetContactByID(
		ctx context.Context,
		id uint,
	) (*models.Contact, error)

	ListContacts(
		ctx context.Context,
		scope policy.ContactScope,
		filter filters.ContactFilter,
	) ([]models.Contact, error)

	UpdateContact(
		ctx context.Context,
		contact *models.Contact,
	) error

	// -------- Tokens --------
	CreateToken(
		ctx context.Context,
		token *models.AuthToken,
	) error

	GetUserByTokenKey(
		ctx context.Context,
		key string,
	) (*models.User, error)

	GetTokenForUser(
		ctx context.Context,
		userID uint,
	) (*models.AuthToken, error)
}
