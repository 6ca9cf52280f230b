package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Detail is the body shape for authentication, permission and not-found
// failures.
type Detail struct {
	Detail string `json:"detail"`
}

func Write(c *gin.Context, status int, detail string) {
	c.JSON(status, Detail{Detail: detail})
}

func Unauthorized(c *gin.Context, detail string) {
	Write(c, http.StatusUnauthorized, detail)
}

func Forbidden(c *gin.Context, detail string) {
	Write(c, http.StatusForbidden, detail)
}

func NotFound(c *gin.Context, detail string) {
	Write(c, http.StatusNotFound, detail)
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, "Internal server error.")
}
