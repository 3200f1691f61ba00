package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hypernova-labs/billing-admin-service/internal/database"
	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/sirupsen/logrus"
)

// Clave del contador de versión del cache de búsqueda de socios
const vendorSearchVersionKey = "vendors:version"

// VendorService maneja la lógica de negocio para Vendor
type VendorService struct {
	vendorRepo *database.VendorRepository
	redis      *database.Redis
	cacheTTL   time.Duration
	logger     *logrus.Logger
}

// NewVendorService crea una nueva instancia del servicio. El cliente de
// Redis puede ser nil: el cache de búsqueda se degrada a consultas directas.
func NewVendorService(db *database.DB, redis *database.Redis, cacheTTL time.Duration, logger *logrus.Logger) *VendorService {
	return &VendorService{
		vendorRepo: database.NewVendorRepository(db, logger),
		redis:      redis,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// List obtiene el listado paginado de socios según los filtros
func (s *VendorService) List(params models.VendorSearchParams) (*models.VendorListResponse, error) {
	predicate := database.BuildVendorPredicate(params.SearchField, params.SearchValue, params.InvoiceStatus)
	pagination := database.Paginate(params.Page, params.Limit)

	vendors, total, err := s.vendorRepo.List(predicate, pagination)
	if err != nil {
		return nil, fmt.Errorf("error listing vendors: %w", err)
	}

	return &models.VendorListResponse{
		Data:  vendors,
		Total: total,
		Page:  pagination.Page,
		Limit: pagination.Limit,
	}, nil
}

// Search busca socios activos para el diálogo de selección. El campo y el
// valor de búsqueda son obligatorios; solo retorna socios en uso.
func (s *VendorService) Search(params models.VendorSearchParams) (*models.VendorListResponse, error) {
	if params.SearchField == "" || params.SearchValue == "" {
		return nil, fmt.Errorf("validation error: search field and value are required")
	}

	cacheKey := s.searchCacheKey(params)
	if cached := s.getCachedSearch(cacheKey); cached != nil {
		return cached, nil
	}

	predicate := database.BuildVendorSearchPredicate(params.SearchField, params.SearchValue)
	pagination := database.Paginate(params.Page, params.Limit)

	vendors, total, err := s.vendorRepo.List(predicate, pagination)
	if err != nil {
		return nil, fmt.Errorf("error searching vendors: %w", err)
	}

	response := &models.VendorListResponse{
		Data:  vendors,
		Total: total,
		Page:  pagination.Page,
		Limit: pagination.Limit,
	}

	s.cacheSearch(cacheKey, response)

	return response, nil
}

// GetByID obtiene un socio por ID
func (s *VendorService) GetByID(id int64) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error getting vendor: %w", err)
	}

	return vendor, nil
}

// Create registra un nuevo socio comercial
func (s *VendorService) Create(req *models.CreateVendorRequest) (*models.Vendor, error) {
	if req.InvoiceStatus == "" {
		req.InvoiceStatus = models.InvoiceStatusActive
	}

	if err := validateVendorCreate(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	// Verificación previa de unicidad; la restricción única de la base
	// de datos es el respaldo definitivo ante escrituras concurrentes
	exists, err := s.vendorRepo.CodeExists(req.Code, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking vendor code: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("vendor code already exists: %s", req.Code)
	}

	vendor, err := s.vendorRepo.Create(req)
	if err != nil {
		return nil, err
	}

	s.bumpSearchVersion()

	s.logger.WithFields(logrus.Fields{
		"vendor_id": vendor.ID,
		"code":      vendor.Code,
		"name":      vendor.Name,
		"modifier":  vendor.Modifier,
	}).Info("Vendor created successfully")

	return vendor, nil
}

// Update modifica un socio existente. El código de negocio es inmutable.
func (s *VendorService) Update(id int64, req *models.UpdateVendorRequest) (*models.Vendor, error) {
	if err := validateVendorUpdate(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	vendor, err := s.vendorRepo.Update(id, req)
	if err != nil {
		return nil, err
	}

	s.bumpSearchVersion()

	s.logger.WithFields(logrus.Fields{
		"vendor_id": vendor.ID,
		"modifier":  vendor.Modifier,
	}).Info("Vendor updated successfully")

	return vendor, nil
}

// BulkUpdateInvoiceStatus aplica un estado de facturación a un lote de socios
func (s *VendorService) BulkUpdateInvoiceStatus(req *models.BulkInvoiceStatusRequest) (*models.BulkUpdateResponse, error) {
	if err := validateVendorBulkStatus(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	count, err := s.vendorRepo.BulkUpdateInvoiceStatus(req.VendorIDs, req.InvoiceStatus, req.Modifier)
	if err != nil {
		return nil, fmt.Errorf("error updating vendor statuses: %w", err)
	}

	s.bumpSearchVersion()

	s.logger.WithFields(logrus.Fields{
		"vendor_ids": req.VendorIDs,
		"status":     req.InvoiceStatus,
		"modifier":   req.Modifier,
	}).Info("Vendor statuses updated in bulk")

	return &models.BulkUpdateResponse{UpdatedCount: count}, nil
}

// searchCacheKey construye la clave de cache incluyendo la versión vigente
func (s *VendorService) searchCacheKey(params models.VendorSearchParams) string {
	version := "0"
	if s.redis != nil {
		if v, err := s.redis.Get(vendorSearchVersionKey); err == nil {
			version = v
		}
	}

	return fmt.Sprintf("vendors:search:v%s:%s:%s:%d:%d",
		version, params.SearchField, params.SearchValue, params.Page, params.Limit)
}

func (s *VendorService) getCachedSearch(key string) *models.VendorListResponse {
	if s.redis == nil {
		return nil
	}

	raw, err := s.redis.Get(key)
	if err != nil {
		return nil
	}

	var response models.VendorListResponse
	if err := json.Unmarshal([]byte(raw), &response); err != nil {
		return nil
	}

	s.logger.WithField("cache_key", key).Debug("Vendor search cache hit")
	return &response
}

func (s *VendorService) cacheSearch(key string, response *models.VendorListResponse) {
	if s.redis == nil {
		return
	}

	raw, err := json.Marshal(response)
	if err != nil {
		return
	}

	if err := s.redis.SetWithTTL(key, raw, s.cacheTTL); err != nil {
		s.logger.WithError(err).Warn("Error caching vendor search response")
	}
}

// bumpSearchVersion invalida el cache de búsqueda incrementando la versión
func (s *VendorService) bumpSearchVersion() {
	if s.redis == nil {
		return
	}

	if _, err := s.redis.Incr(vendorSearchVersionKey); err != nil {
		s.logger.WithError(err).Warn("Error bumping vendor search cache version")
	}
}

// validateVendorCreate valida los datos de registro de un socio
func validateVendorCreate(req *models.CreateVendorRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(req.Code) == "" {
		return fmt.Errorf("code is required")
	}
	if strings.TrimSpace(req.Modifier) == "" {
		return fmt.Errorf("modifier is required")
	}
	if !req.InvoiceStatus.IsValid() {
		return fmt.Errorf("invalid invoice status: %s", req.InvoiceStatus)
	}

	if len(req.Name) > 100 {
		return fmt.Errorf("name too long (max 100 characters)")
	}
	if len(req.Code) > 20 {
		return fmt.Errorf("code too long (max 20 characters)")
	}
	if req.CEO != nil && len(*req.CEO) > 100 {
		return fmt.Errorf("ceo too long (max 100 characters)")
	}
	if req.BusinessType != nil && len(*req.BusinessType) > 100 {
		return fmt.Errorf("business type too long (max 100 characters)")
	}
	if req.Item != nil && len(*req.Item) > 100 {
		return fmt.Errorf("item too long (max 100 characters)")
	}
	if len(req.Modifier) > 50 {
		return fmt.Errorf("modifier too long (max 50 characters)")
	}

	return nil
}

// validateVendorUpdate valida los datos de modificación de un socio
func validateVendorUpdate(req *models.UpdateVendorRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(req.Modifier) == "" {
		return fmt.Errorf("modifier is required")
	}
	if !req.InvoiceStatus.IsValid() {
		return fmt.Errorf("invalid invoice status: %s", req.InvoiceStatus)
	}

	if len(req.Name) > 100 {
		return fmt.Errorf("name too long (max 100 characters)")
	}
	if req.CEO != nil && len(*req.CEO) > 100 {
		return fmt.Errorf("ceo too long (max 100 characters)")
	}
	if len(req.Modifier) > 50 {
		return fmt.Errorf("modifier too long (max 50 characters)")
	}

	return nil
}

// validateVendorBulkStatus valida el cambio de estado en lote
func validateVendorBulkStatus(req *models.BulkInvoiceStatusRequest) error {
	if len(req.VendorIDs) == 0 {
		return fmt.Errorf("vendor ids are required")
	}
	if !req.InvoiceStatus.IsValid() {
		return fmt.Errorf("invalid invoice status: %s", req.InvoiceStatus)
	}
	if strings.TrimSpace(req.Modifier) == "" {
		return fmt.Errorf("modifier is required")
	}

	return nil
}
