package services

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hypernova-labs/billing-admin-service/internal/database"
	"github.com/hypernova-labs/billing-admin-service/internal/email"
	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/hypernova-labs/billing-admin-service/internal/workflows"
	"github.com/sirupsen/logrus"
)

// Formato del mes de facturación (YYYY.MM)
var billingMonthPattern = regexp.MustCompile(`^\d{4}\.(0[1-9]|1[0-2])$`)

// Formato de fecha de los filtros de rango
const searchDateLayout = "2006-01-02"

// BillingService maneja la lógica de negocio para BillingInvoice
type BillingService struct {
	billingRepo  *database.BillingRepository
	vendorRepo   *database.VendorRepository
	formRepo     *database.VendorFormRepository
	filesRepo    *database.InvoiceFilesRepository
	supplierRepo *database.SupplierRepository
	storage      *database.StorageClient
	emailService *email.ResendService
	inngest      *workflows.InngestClient
	docGen       *DocumentGenerator
	logger       *logrus.Logger
}

// NewBillingService crea una nueva instancia del servicio. Los clientes de
// almacenamiento, email e Inngest pueden ser nil si no están configurados.
func NewBillingService(
	db *database.DB,
	storage *database.StorageClient,
	emailService *email.ResendService,
	inngest *workflows.InngestClient,
	logger *logrus.Logger,
) *BillingService {
	return &BillingService{
		billingRepo:  database.NewBillingRepository(db, logger),
		vendorRepo:   database.NewVendorRepository(db, logger),
		formRepo:     database.NewVendorFormRepository(db, logger),
		filesRepo:    database.NewInvoiceFilesRepository(db, logger),
		supplierRepo: database.NewSupplierRepository(db, logger),
		storage:      storage,
		emailService: emailService,
		inngest:      inngest,
		docGen:       NewDocumentGenerator(logger),
		logger:       logger,
	}
}

// List obtiene el listado paginado de facturas según los filtros
func (s *BillingService) List(params models.BillingSearchParams) (*models.BillingListResponse, error) {
	if err := validateBillingSearch(params); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	predicate := database.BuildBillingPredicate(
		params.FromDate, params.ToDate, params.SearchField, params.SearchValue, params.Status,
	)
	pagination := database.Paginate(params.Page, params.Limit)

	invoices, total, err := s.billingRepo.List(predicate, pagination)
	if err != nil {
		return nil, fmt.Errorf("error listing billing invoices: %w", err)
	}

	return &models.BillingListResponse{
		Data:  invoices,
		Total: total,
		Page:  pagination.Page,
		Limit: pagination.Limit,
	}, nil
}

// GetByID obtiene una factura por ID
func (s *BillingService) GetByID(id int64) (*models.BillingInvoiceWithVendor, error) {
	invoice, err := s.billingRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error getting billing invoice: %w", err)
	}

	return invoice, nil
}

// Create registra una nueva factura. El snapshot de la plantilla se captura
// al momento de creación: cambios posteriores en la plantilla no afectan
// facturas ya generadas.
func (s *BillingService) Create(req *models.CreateBillingInvoiceRequest) (int64, error) {
	if err := validateBillingCreate(req); err != nil {
		return 0, fmt.Errorf("validation error: %w", err)
	}

	if _, err := s.vendorRepo.GetByID(req.VendorID); err != nil {
		return 0, err
	}

	form, err := s.formRepo.GetByID(req.FormID)
	if err != nil {
		return 0, err
	}
	if form.VendorID != req.VendorID {
		return 0, fmt.Errorf("validation error: form %d does not belong to vendor %d", req.FormID, req.VendorID)
	}

	id, err := s.billingRepo.Create(req, form.InvoiceItems)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"invoice_id":    id,
		"vendor_id":     req.VendorID,
		"billing_month": req.BillingMonth,
		"created_by":    req.CreatedBy,
	}).Info("Billing invoice created successfully")

	return id, nil
}

// Send genera el PDF de la factura, lo sube al almacenamiento, envía el
// correo al contacto y registra el resultado en el historial. Un fallo de
// envío no es un error de la operación: queda registrado como estado fail.
func (s *BillingService) Send(ctx context.Context, id int64, requestedBy string) (*models.SendBillingInvoiceResponse, error) {
	if strings.TrimSpace(requestedBy) == "" {
		return nil, fmt.Errorf("validation error: requested by is required")
	}

	invoice, err := s.billingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// El emisor es opcional en el PDF
	supplier, err := s.supplierRepo.Get()
	if err != nil {
		supplier = nil
	}

	sentAt := time.Now()
	status := models.BillingStatusSuccess
	var sendErr error

	pdfData, err := s.docGen.GenerateBillingPDF(invoice, supplier)
	if err != nil {
		status = models.BillingStatusFail
		sendErr = err
	}

	if sendErr == nil && s.storage != nil {
		key := fmt.Sprintf("invoices/%d/%s.pdf", invoice.ID, uuid.New().String())
		if err := s.storage.UploadFile(ctx, key, pdfData, "application/pdf"); err != nil {
			s.logger.WithError(err).Warn("Error uploading billing PDF to storage")
		} else {
			mimeType := "application/pdf"
			file := &models.InvoiceFile{
				InvoiceID: invoice.ID,
				FileType:  models.FileTypeAttachment,
				FileName:  fmt.Sprintf("invoice_%s.pdf", invoice.BillingMonth),
				Path:      key,
				Size:      int64(len(pdfData)),
				MimeType:  &mimeType,
			}
			if _, err := s.filesRepo.Create(file); err != nil {
				s.logger.WithError(err).Warn("Error saving billing PDF metadata")
			}
		}
	}

	if sendErr == nil {
		if s.emailService == nil {
			status = models.BillingStatusFail
			sendErr = fmt.Errorf("email service not configured")
		} else if err := s.emailService.SendBillingEmail(invoice); err != nil {
			status = models.BillingStatusFail
			sendErr = err
		}
	}

	var errorMessage *string
	message := "invoice sent successfully"
	if sendErr != nil {
		msg := sendErr.Error()
		errorMessage = &msg
		message = "invoice send failed"
		s.logger.WithError(sendErr).WithField("invoice_id", id).Error("Error sending billing invoice")
	}

	if err := s.billingRepo.InsertLog(id, status, sentAt, errorMessage); err != nil {
		return nil, fmt.Errorf("error recording billing log: %w", err)
	}
	if err := s.billingRepo.UpdateSendResult(id, status, sentAt, requestedBy); err != nil {
		return nil, fmt.Errorf("error updating billing invoice: %w", err)
	}

	// El evento alimenta workflows posteriores; su fallo no afecta el envío
	if s.inngest != nil {
		if err := s.inngest.SendInvoiceSentEvent(ctx, id, invoice.VendorID, status); err != nil {
			s.logger.WithError(err).Warn("Error dispatching invoice sent event")
		}
	}

	return &models.SendBillingInvoiceResponse{
		InvoiceID: id,
		Status:    status,
		SentAt:    sentAt,
		Message:   message,
	}, nil
}

// Logs obtiene el historial de envíos de una factura
func (s *BillingService) Logs(invoiceID int64) ([]models.BillingLog, error) {
	if _, err := s.billingRepo.GetByID(invoiceID); err != nil {
		return nil, err
	}

	logs, err := s.billingRepo.ListLogs(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("error listing billing logs: %w", err)
	}

	return logs, nil
}

// ListFiles obtiene los archivos asociados a una factura
func (s *BillingService) ListFiles(invoiceID int64) (*models.InvoiceFileListResponse, error) {
	if _, err := s.billingRepo.GetByID(invoiceID); err != nil {
		return nil, err
	}

	files, err := s.filesRepo.ListByInvoiceID(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("error listing invoice files: %w", err)
	}

	return &models.InvoiceFileListResponse{
		Data:  files,
		Total: len(files),
	}, nil
}

// UploadAttachment sube un archivo adjunto al almacenamiento y registra
// sus metadatos
func (s *BillingService) UploadAttachment(ctx context.Context, invoiceID int64, fileName, contentType string, data []byte) (*models.InvoiceFile, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("storage service not configured")
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, fmt.Errorf("validation error: file name is required")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("validation error: file is empty")
	}

	if _, err := s.billingRepo.GetByID(invoiceID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	fileType := models.FileTypeAttachment
	switch ext {
	case ".html", ".htm":
		fileType = models.FileTypeHTML
	case ".xls", ".xlsx":
		fileType = models.FileTypeExcel
	}

	key := fmt.Sprintf("invoices/%d/%s%s", invoiceID, uuid.New().String(), ext)
	if err := s.storage.UploadFile(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("error uploading attachment: %w", err)
	}

	file := &models.InvoiceFile{
		InvoiceID: invoiceID,
		FileType:  fileType,
		FileName:  fileName,
		Path:      key,
		Size:      int64(len(data)),
	}
	if contentType != "" {
		file.MimeType = &contentType
	}

	id, err := s.filesRepo.Create(file)
	if err != nil {
		// Limpiar el objeto subido si el registro de metadatos falla
		if delErr := s.storage.DeleteFile(ctx, key); delErr != nil {
			s.logger.WithError(delErr).Warn("Error cleaning up uploaded attachment")
		}
		return nil, err
	}
	file.ID = id

	s.logger.WithFields(logrus.Fields{
		"invoice_id": invoiceID,
		"file_id":    id,
		"file_name":  fileName,
		"file_type":  fileType,
	}).Info("Invoice attachment uploaded")

	return file, nil
}

// DownloadFile descarga un archivo adjunto desde el almacenamiento
func (s *BillingService) DownloadFile(ctx context.Context, fileID int64) ([]byte, *models.InvoiceFile, error) {
	if s.storage == nil {
		return nil, nil, fmt.Errorf("storage service not configured")
	}

	file, err := s.filesRepo.GetByID(fileID)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.storage.DownloadFile(ctx, file.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("error downloading invoice file: %w", err)
	}

	return data, file, nil
}

// validateBillingCreate valida los datos de registro de una factura
func validateBillingCreate(req *models.CreateBillingInvoiceRequest) error {
	if req.VendorID <= 0 {
		return fmt.Errorf("vendor id is required")
	}
	if req.FormID <= 0 {
		return fmt.Errorf("form id is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !isValidEmail(req.Email) {
		return fmt.Errorf("invalid email format")
	}
	if !billingMonthPattern.MatchString(req.BillingMonth) {
		return fmt.Errorf("invalid billing month (expected YYYY.MM): %s", req.BillingMonth)
	}
	if strings.TrimSpace(req.CreatedBy) == "" {
		return fmt.Errorf("created by is required")
	}

	return nil
}

// validateBillingSearch valida los filtros del listado de facturas
func validateBillingSearch(params models.BillingSearchParams) error {
	if params.FromDate != "" {
		if _, err := time.Parse(searchDateLayout, params.FromDate); err != nil {
			return fmt.Errorf("invalid from date (expected YYYY-MM-DD): %s", params.FromDate)
		}
	}
	if params.ToDate != "" {
		if _, err := time.Parse(searchDateLayout, params.ToDate); err != nil {
			return fmt.Errorf("invalid to date (expected YYYY-MM-DD): %s", params.ToDate)
		}
	}
	if params.Status != "" && params.Status != "all" && !models.BillingStatus(params.Status).IsValid() {
		return fmt.Errorf("invalid billing status: %s", params.Status)
	}

	return nil
}
