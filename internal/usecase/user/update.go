package user

import (
	"context"

	"github.com/allanebarua/Tenant-Management-System/internal/audit"
	"github.com/allanebarua/Tenant-Management-System/internal/auth"
	domain "github.com/allanebarua/Tenant-Management-System/internal/domain/tenancy"
	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
	"github.com/allanebarua/Tenant-Management-System/internal/policy"
	"github.com/allanebarua/Tenant-Management-System/internal/validators"
)

// UpdateUserInput carries the patchable fields; nil means "leave as
// is". A non-nil Password is an explicit reset and gets re-hashed.
type UpdateUserInput struct {
	Username  *string
	FirstName *string
	LastName  *string
	Email     *string
	IsActive  *bool
	Password  *string
}

type UpdateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateUser {
	return &UpdateUser{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	principal *models.User,
	id uint,
	in UpdateUserInput,
) (*models.User, error) {

	user, err := uc.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.CanUpdateUser(principal, user); err != nil {
		return nil, err
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if user.Email != "" {
		if err := validators.ValidateEmail("email", user.Email); err != nil {
			return nil, err
		}
	}
	if user.UserType == models.UserTypeLandlord && user.Email == "" {
		return nil, httperr.Invalid("email", "A Landlord should have an email address.")
	}

	if in.Password != nil {
		hashed, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := uc.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &principal.ID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
