package user

import (
	"context"
	"time"

	"github.com/allanebarua/Tenant-Management-System/internal/audit"
	"github.com/allanebarua/Tenant-Management-System/internal/auth"
	domain "github.com/allanebarua/Tenant-Management-System/internal/domain/tenancy"
	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
	"github.com/allanebarua/Tenant-Management-System/internal/policy"
	"github.com/allanebarua/Tenant-Management-System/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateUserInput struct {
	Username   string
	Password   string
	UserType   string
	FirstName  string
	LastName   string
	Email      string
	DOB        string // YYYY-MM-DD, optional
	NationalID *int64
	IsActive   *bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateUser {
	return &CreateUser{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateUser) Execute(
	ctx context.Context,
	creator *models.User,
	in CreateUserInput,
) (*models.User, error) {

	if err := requireFields(map[string]string{
		"username":  in.Username,
		"password":  in.Password,
		"user_type": in.UserType,
	}); err != nil {
		return nil, err
	}

	userType, ok := models.ParseUserType(in.UserType)
	if !ok {
		return nil, httperr.Invalid("user_type", "Invalid user type.")
	}

	// Role-creation rules (who may mint what).
	if err := policy.ValidateUserCreation(creator, userType, in.Email); err != nil {
		return nil, err
	}

	if in.Email != "" {
		if err := validators.ValidateEmail("email", in.Email); err != nil {
			return nil, err
		}
	}

	var dob *time.Time
	if in.DOB != "" {
		parsed, err := time.Parse("2006-01-02", in.DOB)
		if err != nil {
			return nil, httperr.Invalid("dob", "Date has wrong format. Use YYYY-MM-DD.")
		}
		dob = &parsed
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:   in.Username,
		Password:   hashed,
		UserType:   userType,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		DOB:        dob,
		NationalID: in.NationalID,
		IsActive:   true,
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	// New tenants belong to their creator.
	if userType == models.UserTypeTenant {
		user.LandlordID = &creator.ID
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if user.LandlordID != nil {
		user.Landlord = creator
	}

	// Token issuance is an explicit post-create step, not a side
	// effect of the save.
	token := &models.AuthToken{
		Key:    auth.NewTokenKey(),
		UserID: user.ID,
	}
	if err := uc.repo.CreateToken(ctx, token); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &creator.ID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}

func requireFields(fields map[string]string) error {
	missing := httperr.ValidationError{}
	for name, value := range fields {
		if value == "" {
			missing[name] = "This field is required."
		}
	}
	if len(missing) > 0 {
		return missing
	}
	return nil
}
