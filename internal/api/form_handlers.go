package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/billing-admin-service/internal/models"
)

// ListVendorForms obtiene el listado paginado de plantillas de factura
func (api *API) ListVendorForms(c *gin.Context) {
	page, limit := parsePagination(c)

	response, err := api.formService.List(c.Query("searchField"), c.Query("searchValue"), page, limit)
	if err != nil {
		api.respondServiceError(c, err, "Error listing vendor forms")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetVendorForm obtiene una plantilla por ID
func (api *API) GetVendorForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := api.formService.GetByID(id)
	if err != nil {
		api.respondServiceError(c, err, "Error getting vendor form")
		return
	}

	c.JSON(http.StatusOK, form)
}

// CreateVendorForm registra una nueva plantilla de factura
func (api *API) CreateVendorForm(c *gin.Context) {
	var req models.CreateVendorFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding create vendor form request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	id, err := api.formService.Create(&req)
	if err != nil {
		api.respondServiceError(c, err, "Error creating vendor form")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateVendorForm modifica una plantilla existente
func (api *API) UpdateVendorForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateVendorFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding update vendor form request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	if err := api.formService.Update(id, &req); err != nil {
		api.respondServiceError(c, err, "Error updating vendor form")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GetSupplierInfo obtiene los datos del proveedor emisor
func (api *API) GetSupplierInfo(c *gin.Context) {
	info, err := api.supplierService.Get()
	if err != nil {
		api.respondServiceError(c, err, "Error getting supplier info")
		return
	}

	c.JSON(http.StatusOK, info)
}

// SaveSupplierInfo guarda los datos del proveedor emisor
func (api *API) SaveSupplierInfo(c *gin.Context) {
	var req models.SaveSupplierInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding supplier info request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	info, err := api.supplierService.Save(&req)
	if err != nil {
		api.respondServiceError(c, err, "Error saving supplier info")
		return
	}

	c.JSON(http.StatusOK, info)
}
