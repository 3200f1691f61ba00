package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/billing-admin-service/internal/models"
)

// Límite por defecto del diálogo de búsqueda de socios
const defaultSearchLimit = 10

// ListVendors obtiene el listado paginado de socios
func (api *API) ListVendors(c *gin.Context) {
	page, limit := parsePagination(c)
	params := models.VendorSearchParams{
		SearchField:   c.Query("searchField"),
		SearchValue:   c.Query("searchValue"),
		InvoiceStatus: c.Query("invoiceStatus"),
		Page:          page,
		Limit:         limit,
	}

	response, err := api.vendorService.List(params)
	if err != nil {
		api.respondServiceError(c, err, "Error listing vendors")
		return
	}

	c.JSON(http.StatusOK, response)
}

// SearchVendors busca socios activos para el diálogo de selección
func (api *API) SearchVendors(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSearchLimit)))

	params := models.VendorSearchParams{
		SearchField: c.Query("searchField"),
		SearchValue: c.Query("searchValue"),
		Page:        page,
		Limit:       limit,
	}

	response, err := api.vendorService.Search(params)
	if err != nil {
		api.respondServiceError(c, err, "Error searching vendors")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetVendor obtiene un socio por ID
func (api *API) GetVendor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vendor, err := api.vendorService.GetByID(id)
	if err != nil {
		api.respondServiceError(c, err, "Error getting vendor")
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// CreateVendor registra un nuevo socio comercial
func (api *API) CreateVendor(c *gin.Context) {
	var req models.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding create vendor request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	vendor, err := api.vendorService.Create(&req)
	if err != nil {
		api.respondServiceError(c, err, "Error creating vendor")
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// UpdateVendor modifica un socio existente
func (api *API) UpdateVendor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding update vendor request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	vendor, err := api.vendorService.Update(id, &req)
	if err != nil {
		api.respondServiceError(c, err, "Error updating vendor")
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// BulkUpdateVendorStatus aplica un estado de facturación a un lote de socios
func (api *API) BulkUpdateVendorStatus(c *gin.Context) {
	var req models.BulkInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding bulk vendor status request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	response, err := api.vendorService.BulkUpdateInvoiceStatus(&req)
	if err != nil {
		api.respondServiceError(c, err, "Error updating vendor statuses")
		return
	}

	c.JSON(http.StatusOK, response)
}
