package services

import (
	"fmt"
	"strings"

	"github.com/hypernova-labs/billing-admin-service/internal/database"
	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ContactService maneja la lógica de negocio para VendorContact
type ContactService struct {
	contactRepo *database.ContactRepository
	vendorRepo  *database.VendorRepository
	logger      *logrus.Logger
}

// NewContactService crea una nueva instancia del servicio
func NewContactService(db *database.DB, logger *logrus.Logger) *ContactService {
	return &ContactService{
		contactRepo: database.NewContactRepository(db, logger),
		vendorRepo:  database.NewVendorRepository(db, logger),
		logger:      logger,
	}
}

// List obtiene el listado paginado de contactos según los filtros
func (s *ContactService) List(params models.ContactSearchParams) (*models.ContactListResponse, error) {
	predicate := database.BuildContactPredicate(params.Status, params.SearchField, params.SearchValue)
	pagination := database.Paginate(params.Page, params.Limit)

	contacts, total, err := s.contactRepo.List(predicate, pagination)
	if err != nil {
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}

	return &models.ContactListResponse{
		Data:  contacts,
		Total: total,
		Page:  pagination.Page,
		Limit: pagination.Limit,
	}, nil
}

// GetByID obtiene un contacto por ID con los datos del socio
func (s *ContactService) GetByID(id int64) (*models.ContactWithVendor, error) {
	contact, err := s.contactRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error getting contact: %w", err)
	}

	return contact, nil
}

// Create registra un nuevo contacto para un socio
func (s *ContactService) Create(req *models.CreateContactRequest) (int64, error) {
	if req.Status == "" {
		req.Status = models.ContactStatusActive
	}

	if err := validateContactCreate(req); err != nil {
		return 0, fmt.Errorf("validation error: %w", err)
	}

	// El socio referenciado debe existir
	if _, err := s.vendorRepo.GetByID(req.VendorID); err != nil {
		return 0, err
	}

	// Verificación previa de unicidad del email; la restricción única de
	// la base de datos es el respaldo definitivo
	exists, err := s.contactRepo.EmailExists(req.Email, 0)
	if err != nil {
		return 0, fmt.Errorf("error checking contact email: %w", err)
	}
	if exists {
		return 0, fmt.Errorf("contact email already exists: %s", req.Email)
	}

	id, err := s.contactRepo.Create(req)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"contact_id": id,
		"vendor_id":  req.VendorID,
		"email":      req.Email,
		"created_by": req.CreatedBy,
	}).Info("Contact created successfully")

	return id, nil
}

// Update modifica un contacto existente. Actualizar un contacto con su
// propio email actual no es conflicto.
func (s *ContactService) Update(id int64, req *models.UpdateContactRequest) error {
	if err := validateContactUpdate(req); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	exists, err := s.contactRepo.EmailExists(req.Email, id)
	if err != nil {
		return fmt.Errorf("error checking contact email: %w", err)
	}
	if exists {
		return fmt.Errorf("contact email already exists: %s", req.Email)
	}

	if err := s.contactRepo.Update(id, req); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"contact_id": id,
		"email":      req.Email,
		"updated_by": req.UpdatedBy,
	}).Info("Contact updated successfully")

	return nil
}

// BulkUpdateStatus aplica un estado a un lote de contactos
func (s *ContactService) BulkUpdateStatus(req *models.BulkContactStatusRequest) (*models.BulkUpdateResponse, error) {
	if err := validateContactBulkStatus(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	count, err := s.contactRepo.BulkUpdateStatus(req.ContactIDs, req.Status, req.UpdatedBy)
	if err != nil {
		return nil, fmt.Errorf("error updating contact statuses: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"contact_ids": req.ContactIDs,
		"status":      req.Status,
		"updated_by":  req.UpdatedBy,
	}).Info("Contact statuses updated in bulk")

	return &models.BulkUpdateResponse{
		Message:      fmt.Sprintf("%d contacts updated", count),
		UpdatedCount: count,
	}, nil
}

// validateContactCreate valida los datos de registro de un contacto
func validateContactCreate(req *models.CreateContactRequest) error {
	if req.VendorID <= 0 {
		return fmt.Errorf("vendor id is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(req.CreatedBy) == "" {
		return fmt.Errorf("created by is required")
	}
	if !req.Status.IsValid() {
		return fmt.Errorf("invalid contact status: %s", req.Status)
	}
	if !isValidEmail(req.Email) {
		return fmt.Errorf("invalid email format")
	}
	if len(req.Email) > 100 {
		return fmt.Errorf("email too long (max 100 characters)")
	}
	if req.Branch != nil && len(*req.Branch) > 30 {
		return fmt.Errorf("branch too long (max 30 characters)")
	}
	if len(req.CreatedBy) > 50 {
		return fmt.Errorf("created by too long (max 50 characters)")
	}

	return nil
}

// validateContactUpdate valida los datos de modificación de un contacto
func validateContactUpdate(req *models.UpdateContactRequest) error {
	if req.VendorID <= 0 {
		return fmt.Errorf("vendor id is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(req.UpdatedBy) == "" {
		return fmt.Errorf("updated by is required")
	}
	if !req.Status.IsValid() {
		return fmt.Errorf("invalid contact status: %s", req.Status)
	}
	if !isValidEmail(req.Email) {
		return fmt.Errorf("invalid email format")
	}
	if len(req.Email) > 100 {
		return fmt.Errorf("email too long (max 100 characters)")
	}
	if req.Branch != nil && len(*req.Branch) > 30 {
		return fmt.Errorf("branch too long (max 30 characters)")
	}

	return nil
}

// validateContactBulkStatus valida el cambio de estado en lote
func validateContactBulkStatus(req *models.BulkContactStatusRequest) error {
	if len(req.ContactIDs) == 0 {
		return fmt.Errorf("contact ids are required")
	}
	if !req.Status.IsValid() {
		return fmt.Errorf("invalid contact status: %s", req.Status)
	}

	return nil
}

// isValidEmail valida el formato básico del email
func isValidEmail(email string) bool {
	if !strings.Contains(email, "@") {
		return false
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}

	if len(parts[0]) == 0 || len(parts[1]) == 0 {
		return false
	}

	if !strings.Contains(parts[1], ".") {
		return false
	}

	return true
}
