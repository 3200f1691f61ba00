package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/billing-admin-service/internal/models"
)

// ListContacts obtiene el listado paginado de contactos
func (api *API) ListContacts(c *gin.Context) {
	page, limit := parsePagination(c)
	params := models.ContactSearchParams{
		Status:      c.Query("status"),
		SearchField: c.Query("searchField"),
		SearchValue: c.Query("searchValue"),
		Page:        page,
		Limit:       limit,
	}

	response, err := api.contactService.List(params)
	if err != nil {
		api.respondServiceError(c, err, "Error listing contacts")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetContact obtiene un contacto por ID con los datos del socio
func (api *API) GetContact(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	contact, err := api.contactService.GetByID(id)
	if err != nil {
		api.respondServiceError(c, err, "Error getting contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// CreateContact registra un nuevo contacto para un socio
func (api *API) CreateContact(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding create contact request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	id, err := api.contactService.Create(&req)
	if err != nil {
		api.respondServiceError(c, err, "Error creating contact")
		return
	}

	c.JSON(http.StatusCreated, models.ContactMutationResponse{
		Message:   "contact created",
		ContactID: id,
	})
}

// UpdateContact modifica un contacto existente. El ID puede venir en la ruta
// o en el cuerpo del request.
func (api *API) UpdateContact(c *gin.Context) {
	var req models.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding update contact request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	id := req.ID
	if c.Param("id") != "" {
		pathID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		id = pathID
	}
	if id <= 0 {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Contact id is required", []models.ErrorDetail{
			{Field: "id", Issue: "Must be a positive integer"},
		}))
		return
	}

	if err := api.contactService.Update(id, &req); err != nil {
		api.respondServiceError(c, err, "Error updating contact")
		return
	}

	c.JSON(http.StatusOK, models.ContactMutationResponse{
		Message:   "contact updated",
		ContactID: id,
	})
}

// BulkUpdateContactStatus aplica un estado a un lote de contactos
func (api *API) BulkUpdateContactStatus(c *gin.Context) {
	var req models.BulkContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding bulk contact status request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	response, err := api.contactService.BulkUpdateStatus(&req)
	if err != nil {
		api.respondServiceError(c, err, "Error updating contact statuses")
		return
	}

	c.JSON(http.StatusOK, response)
}
