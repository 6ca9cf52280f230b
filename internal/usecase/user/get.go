package user

import (
	"context"

	domain "github.com/allanebarua/Tenant-Management-System/internal/domain/tenancy"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
	"github.com/allanebarua/Tenant-Management-System/internal/policy"
)

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(
	ctx context.Context,
	principal *models.User,
	id uint,
) (*models.User, error) {

	user, err := uc.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.CanViewUser(principal, user); err != nil {
		return nil, err
	}

	return user, nil
}
