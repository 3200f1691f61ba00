package services

import (
	"fmt"
	"strings"

	"github.com/hypernova-labs/billing-admin-service/internal/database"
	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/sirupsen/logrus"
)

// Límite de caracteres del texto de guía de pago
const maxPaymentDescriptionLength = 300

// VendorFormService maneja la lógica de negocio para VendorForm
type VendorFormService struct {
	formRepo   *database.VendorFormRepository
	vendorRepo *database.VendorRepository
	logger     *logrus.Logger
}

// NewVendorFormService crea una nueva instancia del servicio
func NewVendorFormService(db *database.DB, logger *logrus.Logger) *VendorFormService {
	return &VendorFormService{
		formRepo:   database.NewVendorFormRepository(db, logger),
		vendorRepo: database.NewVendorRepository(db, logger),
		logger:     logger,
	}
}

// List obtiene el listado paginado de plantillas según los filtros
func (s *VendorFormService) List(searchField, searchValue string, page, limit int) (*models.VendorFormListResponse, error) {
	predicate := database.BuildVendorFormPredicate(searchField, searchValue)
	pagination := database.Paginate(page, limit)

	forms, total, err := s.formRepo.List(predicate, pagination)
	if err != nil {
		return nil, fmt.Errorf("error listing vendor forms: %w", err)
	}

	return &models.VendorFormListResponse{
		Data:  forms,
		Total: total,
		Page:  pagination.Page,
		Limit: pagination.Limit,
	}, nil
}

// GetByID obtiene una plantilla por ID
func (s *VendorFormService) GetByID(id int64) (*models.VendorFormWithVendor, error) {
	form, err := s.formRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error getting vendor form: %w", err)
	}

	return form, nil
}

// Create registra una nueva plantilla de factura para un socio
func (s *VendorFormService) Create(req *models.CreateVendorFormRequest) (int64, error) {
	if err := validateVendorFormCreate(req); err != nil {
		return 0, fmt.Errorf("validation error: %w", err)
	}

	// El socio referenciado debe existir
	if _, err := s.vendorRepo.GetByID(req.VendorID); err != nil {
		return 0, err
	}

	id, err := s.formRepo.Create(req)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"form_id":    id,
		"vendor_id":  req.VendorID,
		"created_by": req.CreatedBy,
	}).Info("Vendor form created successfully")

	return id, nil
}

// Update modifica una plantilla existente
func (s *VendorFormService) Update(id int64, req *models.UpdateVendorFormRequest) error {
	if err := validateVendorFormUpdate(req); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if err := s.formRepo.Update(id, req); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"form_id":    id,
		"updated_by": req.UpdatedBy,
	}).Info("Vendor form updated successfully")

	return nil
}

// validateVendorFormCreate valida los datos de registro de una plantilla
func validateVendorFormCreate(req *models.CreateVendorFormRequest) error {
	if req.VendorID <= 0 {
		return fmt.Errorf("vendor id is required")
	}
	if strings.TrimSpace(req.CreatedBy) == "" {
		return fmt.Errorf("created by is required")
	}
	if req.PaymentDescription != nil && len(*req.PaymentDescription) > maxPaymentDescriptionLength {
		return fmt.Errorf("payment description too long (max %d characters)", maxPaymentDescriptionLength)
	}

	return nil
}

// validateVendorFormUpdate valida los datos de modificación de una plantilla
func validateVendorFormUpdate(req *models.UpdateVendorFormRequest) error {
	if strings.TrimSpace(req.UpdatedBy) == "" {
		return fmt.Errorf("updated by is required")
	}
	if req.PaymentDescription != nil && len(*req.PaymentDescription) > maxPaymentDescriptionLength {
		return fmt.Errorf("payment description too long (max %d characters)", maxPaymentDescriptionLength)
	}

	return nil
}
