package services

import (
	"fmt"
	"strings"

	"github.com/hypernova-labs/billing-admin-service/internal/database"
	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/sirupsen/logrus"
)

// SupplierService maneja la lógica de negocio para SupplierInfo
type SupplierService struct {
	supplierRepo *database.SupplierRepository
	logger       *logrus.Logger
}

// NewSupplierService crea una nueva instancia del servicio
func NewSupplierService(db *database.DB, logger *logrus.Logger) *SupplierService {
	return &SupplierService{
		supplierRepo: database.NewSupplierRepository(db, logger),
		logger:       logger,
	}
}

// Get obtiene los datos del proveedor emisor
func (s *SupplierService) Get() (*models.SupplierInfo, error) {
	info, err := s.supplierRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("error getting supplier info: %w", err)
	}

	return info, nil
}

// Save guarda los datos del proveedor emisor (fila única)
func (s *SupplierService) Save(req *models.SaveSupplierInfoRequest) (*models.SupplierInfo, error) {
	if err := validateSupplierInfo(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	info, err := s.supplierRepo.Save(req)
	if err != nil {
		return nil, fmt.Errorf("error saving supplier info: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"company_name": info.CompanyName,
		"updated_by":   info.UpdatedBy,
	}).Info("Supplier info saved successfully")

	return info, nil
}

// validateSupplierInfo valida los datos del proveedor emisor
func validateSupplierInfo(req *models.SaveSupplierInfoRequest) error {
	if strings.TrimSpace(req.BusinessNumber) == "" {
		return fmt.Errorf("business number is required")
	}
	if strings.TrimSpace(req.CompanyName) == "" {
		return fmt.Errorf("company name is required")
	}
	if strings.TrimSpace(req.CEO) == "" {
		return fmt.Errorf("ceo is required")
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("address is required")
	}
	if strings.TrimSpace(req.BusinessType) == "" {
		return fmt.Errorf("business type is required")
	}
	if strings.TrimSpace(req.Item) == "" {
		return fmt.Errorf("item is required")
	}
	if strings.TrimSpace(req.UpdatedBy) == "" {
		return fmt.Errorf("updated by is required")
	}
	if len(req.BusinessNumber) > 20 {
		return fmt.Errorf("business number too long (max 20 characters)")
	}
	if len(req.CompanyName) > 100 {
		return fmt.Errorf("company name too long (max 100 characters)")
	}

	return nil
}
