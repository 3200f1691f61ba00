package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/billing-admin-service/internal/models"
)

// Tamaño máximo de un archivo adjunto (10 MB)
const maxAttachmentSize = 10 << 20

// ListBillingInvoices obtiene el listado paginado de facturas
func (api *API) ListBillingInvoices(c *gin.Context) {
	page, limit := parsePagination(c)
	params := models.BillingSearchParams{
		FromDate:    c.Query("fromDate"),
		ToDate:      c.Query("toDate"),
		SearchField: c.Query("searchField"),
		SearchValue: c.Query("searchValue"),
		Status:      c.Query("status"),
		Page:        page,
		Limit:       limit,
	}

	response, err := api.billingService.List(params)
	if err != nil {
		api.respondServiceError(c, err, "Error listing billing invoices")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetBillingInvoice obtiene una factura por ID
func (api *API) GetBillingInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := api.billingService.GetByID(id)
	if err != nil {
		api.respondServiceError(c, err, "Error getting billing invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// CreateBillingInvoice registra una nueva factura
func (api *API) CreateBillingInvoice(c *gin.Context) {
	var req models.CreateBillingInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding create billing invoice request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	id, err := api.billingService.Create(&req)
	if err != nil {
		api.respondServiceError(c, err, "Error creating billing invoice")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// SendBillingInvoice genera y envía la factura al contacto por email
func (api *API) SendBillingInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.SendBillingInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding send billing invoice request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	response, err := api.billingService.Send(c.Request.Context(), id, req.RequestedBy)
	if err != nil {
		api.respondServiceError(c, err, "Error sending billing invoice")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetBillingLogs obtiene el historial de envíos de una factura
func (api *API) GetBillingLogs(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	logs, err := api.billingService.Logs(id)
	if err != nil {
		api.respondServiceError(c, err, "Error getting billing logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs, "total": len(logs)})
}

// ListInvoiceFiles obtiene los archivos asociados a una factura
func (api *API) ListInvoiceFiles(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	response, err := api.billingService.ListFiles(id)
	if err != nil {
		api.respondServiceError(c, err, "Error listing invoice files")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UploadInvoiceFile sube un archivo adjunto a una factura
func (api *API) UploadInvoiceFile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("File is required", []models.ErrorDetail{
			{Field: "file", Issue: "Must include a multipart file field"},
		}))
		return
	}
	if fileHeader.Size > maxAttachmentSize {
		c.JSON(http.StatusBadRequest, models.NewValidationError("File too large", []models.ErrorDetail{
			{Field: "file", Issue: "Must not exceed 10 MB"},
		}))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		api.logger.WithError(err).Error("Error opening uploaded file")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error reading uploaded file"))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		api.logger.WithError(err).Error("Error reading uploaded file")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error reading uploaded file"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	file, err := api.billingService.UploadAttachment(c.Request.Context(), id, fileHeader.Filename, contentType, data)
	if err != nil {
		api.respondServiceError(c, err, "Error uploading invoice file")
		return
	}

	c.JSON(http.StatusCreated, file)
}

// DownloadInvoiceFile descarga un archivo por ID
func (api *API) DownloadInvoiceFile(c *gin.Context) {
	fileID, ok := parseIDParam(c, "fileId")
	if !ok {
		return
	}

	data, file, err := api.billingService.DownloadFile(c.Request.Context(), fileID)
	if err != nil {
		api.respondServiceError(c, err, "Error downloading invoice file")
		return
	}

	contentType := "application/octet-stream"
	if file.MimeType != nil && *file.MimeType != "" {
		contentType = *file.MimeType
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.FileName))
	c.Header("Content-Length", fmt.Sprintf("%d", len(data)))
	c.Data(http.StatusOK, contentType, data)
}
