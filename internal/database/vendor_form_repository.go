package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/sirupsen/logrus"
)

// VendorFormRepository maneja las operaciones de base de datos para VendorForm
type VendorFormRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewVendorFormRepository crea una nueva instancia del repositorio
func NewVendorFormRepository(db *DB, logger *logrus.Logger) *VendorFormRepository {
	return &VendorFormRepository{
		db:     db,
		logger: logger,
	}
}

// List aplica el predicado y la paginación sobre las plantillas, unidas
// por LEFT JOIN a los socios
func (r *VendorFormRepository) List(p *Predicate, pg Pagination) ([]models.VendorFormWithVendor, int, error) {
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM vendor_forms f
		LEFT JOIN vendors v ON f.vendor_id = v.id
		%s`, p.Where())

	var total int
	if err := r.db.QueryRowWithTimeout(countQuery, p.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting vendor forms: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT f.id, f.vendor_id, f.invoice_items, f.callcenter_info, f.payment_description,
		       f.created_by, f.created_at, f.updated_by, f.updated_at,
		       v.name, v.code, v.ceo
		FROM vendor_forms f
		LEFT JOIN vendors v ON f.vendor_id = v.id
		%s
		ORDER BY f.id DESC
		LIMIT $%d OFFSET $%d`,
		p.Where(), p.ArgCount()+1, p.ArgCount()+2,
	)
	args := append(p.Args(), pg.Limit, pg.Offset)

	rows, err := r.db.QueryWithTimeout(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying vendor forms: %w", err)
	}
	defer rows.Close()

	forms := []models.VendorFormWithVendor{}
	for rows.Next() {
		var f models.VendorFormWithVendor
		var items []byte
		err := rows.Scan(
			&f.ID, &f.VendorID, &items, &f.CallCenterInfo, &f.PaymentDescription,
			&f.CreatedBy, &f.CreatedAt, &f.UpdatedBy, &f.UpdatedAt,
			&f.VendorName, &f.VendorCode, &f.VendorCEO,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning vendor form: %w", err)
		}
		if err := json.Unmarshal(items, &f.InvoiceItems); err != nil {
			return nil, 0, fmt.Errorf("error decoding invoice items: %w", err)
		}
		forms = append(forms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating vendor forms: %w", err)
	}

	return forms, total, nil
}

// GetByID obtiene una plantilla por ID con los datos del socio unidos
func (r *VendorFormRepository) GetByID(id int64) (*models.VendorFormWithVendor, error) {
	query := `
		SELECT f.id, f.vendor_id, f.invoice_items, f.callcenter_info, f.payment_description,
		       f.created_by, f.created_at, f.updated_by, f.updated_at,
		       v.name, v.code, v.ceo
		FROM vendor_forms f
		LEFT JOIN vendors v ON f.vendor_id = v.id
		WHERE f.id = $1`

	var f models.VendorFormWithVendor
	var items []byte
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&f.ID, &f.VendorID, &items, &f.CallCenterInfo, &f.PaymentDescription,
		&f.CreatedBy, &f.CreatedAt, &f.UpdatedBy, &f.UpdatedAt,
		&f.VendorName, &f.VendorCode, &f.VendorCEO,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("vendor form not found: %d", id)
		}
		return nil, fmt.Errorf("error querying vendor form: %w", err)
	}
	if err := json.Unmarshal(items, &f.InvoiceItems); err != nil {
		return nil, fmt.Errorf("error decoding invoice items: %w", err)
	}

	return &f, nil
}

// Create registra una nueva plantilla de factura
func (r *VendorFormRepository) Create(req *models.CreateVendorFormRequest) (int64, error) {
	items, err := json.Marshal(req.InvoiceItems)
	if err != nil {
		return 0, fmt.Errorf("error encoding invoice items: %w", err)
	}

	query := `
		INSERT INTO vendor_forms (vendor_id, invoice_items, callcenter_info, payment_description, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRowWithTimeout(query,
		req.VendorID, items, req.CallCenterInfo, req.PaymentDescription, req.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating vendor form: %w", err)
	}

	return id, nil
}

// Update modifica una plantilla existente
func (r *VendorFormRepository) Update(id int64, req *models.UpdateVendorFormRequest) error {
	items, err := json.Marshal(req.InvoiceItems)
	if err != nil {
		return fmt.Errorf("error encoding invoice items: %w", err)
	}

	query := `
		UPDATE vendor_forms
		SET invoice_items = $1, callcenter_info = $2, payment_description = $3,
		    updated_by = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecWithTimeout(query,
		items, req.CallCenterInfo, req.PaymentDescription, req.UpdatedBy, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("error updating vendor form: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("vendor form not found: %d", id)
	}

	return nil
}
