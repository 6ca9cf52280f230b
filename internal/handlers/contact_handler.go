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
	ucContact "github.com/allanebarua/Tenant-Management-System/internal/usecase/contact"
)

type ContactHandler struct {
	createUC *ucContact.CreateContact
	listUC   *ucContact.ListContacts
	getUC    *ucContact.GetContact
	updateUC *ucContact.UpdateContact
}

func NewContactHandler(
	createUC *ucContact.CreateContact,
	listUC *ucContact.ListContacts,
	getUC *ucContact.GetContact,
	updateUC *ucContact.UpdateContact,
) *ContactHandler {
	return &ContactHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
	}
}

// --------- Requests ---------

type CreateContactRequest struct {
	ContactType  string `json:"contact_type"`
	ContactValue string `json:"contact_value"`
	IsActive     *bool  `json:"is_active"`
}

type UpdateContactRequest struct {
	ContactValue *string `json:"contact_value"`
	IsActive     *bool   `json:"is_active"`
}

// --------- Handlers ---------

func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, httperr.Invalid("non_field_errors", "Malformed request body."))
		return
	}

	principal := middleware.Principal(c)

	contact, err := h.createUC.Execute(c.Request.Context(), principal, ucContact.CreateContactInput{
		ContactType:  req.ContactType,
		ContactValue: req.ContactValue,
		IsActive:     req.IsActive,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewContactResponse(contact, contact.Owner.Username))
}

func (h *ContactHandler) List(c *gin.Context) {
	filter, err := filters.ParseContactFilter(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	principal := middleware.Principal(c)

	contacts, err := h.listUC.Execute(c.Request.Context(), principal, filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewContactResponses(contacts))
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	principal := middleware.Principal(c)

	contact, err := h.getUC.Execute(c.Request.Context(), principal, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewContactResponse(contact, contact.Owner.Username))
}

func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, httperr.Invalid("non_field_errors", "Malformed request body."))
		return
	}

	principal := middleware.Principal(c)

	contact, err := h.updateUC.Execute(c.Request.Context(), principal, id, ucContact.UpdateContactInput{
		ContactValue: req.ContactValue,
		IsActive:     req.IsActive,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewContactResponse(contact, contact.Owner.Username))
}

func contactID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, fmt.Sprintf("Contact with id %s not found", c.Param("id")))
		return 0, false
	}
	return uint(id), true
}
