package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allanebarua/Tenant-Management-System/internal/dto"
	"github.com/allanebarua/Tenant-Management-System/internal/filters"
	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
	"github.com/allanebarua/Tenant-Management-System/internal/httpresp"
	"github.com/allanebarua/Tenant-Management-System/internal/middleware"
	ucUser "github.com/allanebarua/Tenant-Management-System/internal/usecase/user"
)

type UserHandler struct {
	createUC *ucUser.CreateUser
	listUC   *ucUser.ListUsers
	getUC    *ucUser.GetUser
	updateUC *ucUser.UpdateUser
	deleteUC *ucUser.DeleteUser
}

func NewUserHandler(
	createUC *ucUser.CreateUser,
	listUC *ucUser.ListUsers,
	getUC *ucUser.GetUser,
	updateUC *ucUser.UpdateUser,
	deleteUC *ucUser.DeleteUser,
) *UserHandler {
	return &UserHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	UserType   string `json:"user_type"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	DOB        string `json:"dob"`
	NationalID *int64 `json:"national_id"`
	IsActive   *bool  `json:"is_active"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	IsActive  *bool   `json:"is_active"`
	Password  *string `json:"password"`
}

// --------- Handlers ---------

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, httperr.Invalid("non_field_errors", "Malformed request body."))
		return
	}

	principal := middleware.Principal(c)

	user, err := h.createUC.Execute(c.Request.Context(), principal, ucUser.CreateUserInput{
		Username:   req.Username,
		Password:   req.Password,
		UserType:   req.UserType,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		DOB:        req.DOB,
		NationalID: req.NationalID,
		IsActive:   req.IsActive,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewUserResponse(user))
}

func (h *UserHandler) List(c *gin.Context) {
	filter, err := filters.ParseUserFilter(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	principal := middleware.Principal(c)

	users, err := h.listUC.Execute(c.Request.Context(), principal, filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewUserResponses(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	principal := middleware.Principal(c)

	user, err := h.getUC.Execute(c.Request.Context(), principal, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewUserResponse(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, httperr.Invalid("non_field_errors", "Malformed request body."))
		return
	}

	principal := middleware.Principal(c)

	user, err := h.updateUC.Execute(c.Request.Context(), principal, id, ucUser.UpdateUserInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsActive:  req.IsActive,
		Password:  req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewUserResponse(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	principal := middleware.Principal(c)

	if err := h.deleteUC.Execute(c.Request.Context(), principal, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

func userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, fmt.Sprintf("User with id %s not found", c.Param("id")))
		return 0, false
	}
	return uint(id), true
}
