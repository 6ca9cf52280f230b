package middleware

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/allanebarua/Tenant-Management-System/internal/auth"
	"github.com/allanebarua/Tenant-Management-System/internal/cache"
	domain "github.com/allanebarua/Tenant-Management-System/internal/domain/tenancy"
	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
)

const ContextUser = "authUser"

// AuthMiddleware authenticates the request with one of two parallel
// schemes: Basic (username:password against the stored bcrypt hash) or
// Bearer (opaque token looked up in the token store, redis cache
// first). The full principal is stored in the context on success.
func AuthMiddleware(repo domain.Repository, tokens *cache.TokenCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authentication credentials were not provided.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 {
			abortUnauthorized(c, "Invalid authorization header.")
			return
		}

		var (
			user *models.User
			ok   bool
		)
		switch {
		case strings.EqualFold(parts[0], "Basic"):
			user, ok = authenticatePassword(c, repo, parts[1])
		case strings.EqualFold(parts[0], "Bearer"):
			user, ok = authenticateToken(c, repo, tokens, parts[1])
		default:
			abortUnauthorized(c, "Invalid authorization header.")
			return
		}
		if !ok {
			return
		}

		if !user.IsActive {
			abortUnauthorized(c, "User is inactive or deleted.")
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// Principal returns the authenticated user set by AuthMiddleware.
func Principal(c *gin.Context) *models.User {
	return c.MustGet(ContextUser).(*models.User)
}

func authenticatePassword(
	c *gin.Context,
	repo domain.Repository,
	encoded string,
) (*models.User, bool) {

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		abortUnauthorized(c, "Invalid username/password.")
		return nil, false
	}

	username, password, found := strings.Cut(string(raw), ":")
	if !found {
		abortUnauthorized(c, "Invalid username/password.")
		return nil, false
	}

	user, err := repo.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		abortUnauthorized(c, "Invalid username/password.")
		return nil, false
	}

	// The inactive check runs before password verification so the
	// distinct message is returned even on a correct password.
	if !user.IsActive {
		abortUnauthorized(c, "User is inactive or deleted.")
		return nil, false
	}

	if !auth.CheckPassword(user.Password, password) {
		abortUnauthorized(c, "Invalid username/password.")
		return nil, false
	}

	return user, true
}

func authenticateToken(
	c *gin.Context,
	repo domain.Repository,
	tokens *cache.TokenCache,
	key string,
) (*models.User, bool) {

	ctx := c.Request.Context()

	if userID, hit := tokens.GetUserID(ctx, key); hit {
		user, err := repo.GetUserByID(ctx, userID)
		if err == nil {
			return user, true
		}
		// Stale entry, fall through to the store.
		tokens.Invalidate(ctx, key)
	}

	user, err := repo.GetUserByTokenKey(ctx, key)
	if err != nil {
		abortUnauthorized(c, "Invalid token.")
		return nil, false
	}

	tokens.Put(ctx, key, user.ID)
	return user, true
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.Abort()
	httperr.Unauthorized(c, detail)
}
