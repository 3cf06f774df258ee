package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactapp/backend/internal/domain"
	"github.com/contactapp/backend/internal/pkg/dbctx"
	"github.com/contactapp/backend/internal/pkg/logger"
	"github.com/contactapp/backend/internal/platform/apierr"
	"github.com/contactapp/backend/internal/services"
)

type ContactHandler struct {
	log            *logger.Logger
	contactService services.ContactService
}

func NewContactHandler(log *logger.Logger, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		log:            log.With("handler", "ContactHandler"),
		contactService: contactService,
	}
}

type contactRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type contactResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func toContactResponse(contact *domain.Contact) contactResponse {
	return contactResponse{
		ID:        contact.ID(),
		FirstName: contact.FirstName(),
		LastName:  contact.LastName(),
		Phone:     contact.Phone(),
		Address:   contact.Address(),
	}
}

// POST /api/v1/contacts
func (ch *ContactHandler) Create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apierr.CodeInvalidRequest, "detail": err.Error()})
		return
	}

	contact, err := domain.NewContact(req.ID, req.FirstName, req.LastName, req.Phone, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := ch.contactService.Add(dbctx.Context{Ctx: c.Request.Context()}, contact)
	if err != nil {
		respondError(c, err)
		return
	}
	if !added {
		c.JSON(http.StatusConflict, gin.H{"error": apierr.CodeDuplicateID, "detail": "contact with id '" + contact.ID() + "' already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"contact": toContactResponse(contact)})
}

// GET /api/v1/contacts
func (ch *ContactHandler) List(c *gin.Context) {
	contacts, err := ch.contactService.GetAll(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]contactResponse, 0, len(contacts))
	for _, contact := range contacts {
		responses = append(responses, toContactResponse(contact))
	}
	c.JSON(http.StatusOK, gin.H{"contacts": responses})
}

// GET /api/v1/contacts/:id
func (ch *ContactHandler) Get(c *gin.Context) {
	contact, err := ch.contactService.GetByID(dbctx.Context{Ctx: c.Request.Context()}, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if contact == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": apierr.CodeNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": toContactResponse(contact)})
}

// PUT /api/v1/contacts/:id
func (ch *ContactHandler) Update(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apierr.CodeInvalidRequest, "detail": err.Error()})
		return
	}

	dbc := dbctx.Context{Ctx: c.Request.Context()}
	updated, err := ch.contactService.Update(dbc, c.Param("id"), req.FirstName, req.LastName, req.Phone, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": apierr.CodeNotFound})
		return
	}

	contact, err := ch.contactService.GetByID(dbc, c.Param("id"))
	if err != nil || contact == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": toContactResponse(contact)})
}

// DELETE /api/v1/contacts/:id
func (ch *ContactHandler) Delete(c *gin.Context) {
	deleted, err := ch.contactService.Delete(dbctx.Context{Ctx: c.Request.Context()}, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": apierr.CodeNotFound})
		return
	}
	c.Status(http.StatusNoContent)
}
