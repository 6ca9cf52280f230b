package user

import (
	"context"

	"github.com/allanebarua/Tenant-Management-System/internal/audit"
	"github.com/allanebarua/Tenant-Management-System/internal/cache"
	domain "github.com/allanebarua/Tenant-Management-System/internal/domain/tenancy"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
	"github.com/allanebarua/Tenant-Management-System/internal/policy"
)

type DeleteUser struct {
	repo   domain.Repository
	tokens *cache.TokenCache
	audit  *audit.Dispatcher
}

func NewDeleteUser(
	repo domain.Repository,
	tokens *cache.TokenCache,
	audit *audit.Dispatcher,
) *DeleteUser {
	return &DeleteUser{
		repo:   repo,
		tokens: tokens,
		audit:  audit,
	}
}

func (uc *DeleteUser) Execute(
	ctx context.Context,
	principal *models.User,
	id uint,
) error {

	if err := policy.CanDeleteUsers(principal); err != nil {
		return err
	}

	user, err := uc.repo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	// Capture the token key before the row goes away so the cache
	// entry can be dropped too.
	var tokenKey string
	if token, err := uc.repo.GetTokenForUser(ctx, user.ID); err == nil {
		tokenKey = token.Key
	}

	if err := uc.repo.DeleteUser(ctx, user); err != nil {
		return err
	}

	if tokenKey != "" {
		uc.tokens.Invalidate(ctx, tokenKey)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &principal.ID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return nil
}
