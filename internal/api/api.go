package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/hypernova-labs/billing-admin-service/internal/services"
	"github.com/sirupsen/logrus"
)

// API maneja todos los endpoints de la API
type API struct {
	vendorService   *services.VendorService
	contactService  *services.ContactService
	formService     *services.VendorFormService
	supplierService *services.SupplierService
	billingService  *services.BillingService
	logger          *logrus.Logger
}

// NewAPI crea una nueva instancia de la API
func NewAPI(
	vendorService *services.VendorService,
	contactService *services.ContactService,
	formService *services.VendorFormService,
	supplierService *services.SupplierService,
	billingService *services.BillingService,
	logger *logrus.Logger,
) *API {
	return &API{
		vendorService:   vendorService,
		contactService:  contactService,
		formService:     formService,
		supplierService: supplierService,
		billingService:  billingService,
		logger:          logger,
	}
}

// parseIDParam parsea un parámetro de ruta numérico
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid "+name, []models.ErrorDetail{
			{Field: name, Issue: "Must be a positive integer"},
		}))
		return 0, false
	}

	return id, true
}

// parsePagination parsea los parámetros de paginación del query string
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return page, limit
}

// respondServiceError mapea un error de servicio al código HTTP correspondiente
func (api *API) respondServiceError(c *gin.Context, err error, internalMessage string) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "validation error"):
		c.JSON(http.StatusBadRequest, models.NewValidationError(msg, nil))
	case strings.Contains(msg, "not found"):
		c.JSON(http.StatusNotFound, models.NewNotFoundError(msg))
	case strings.Contains(msg, "already exists"):
		c.JSON(http.StatusConflict, models.NewConflictError(msg))
	default:
		api.logger.WithError(err).Error(internalMessage)
		c.JSON(http.StatusInternalServerError, models.NewInternalError(internalMessage))
	}
}
