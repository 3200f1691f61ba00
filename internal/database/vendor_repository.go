package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// VendorRepository maneja las operaciones de base de datos para Vendor
type VendorRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewVendorRepository crea una nueva instancia del repositorio
func NewVendorRepository(db *DB, logger *logrus.Logger) *VendorRepository {
	return &VendorRepository{
		db:     db,
		logger: logger,
	}
}

const vendorColumns = `id, name, code, ceo, address, business_type, item, invoice_status, modifier, modified_at, created_at`

func scanVendor(row interface{ Scan(...interface{}) error }, v *models.Vendor) error {
	return row.Scan(
		&v.ID, &v.Name, &v.Code, &v.CEO, &v.Address, &v.BusinessType,
		&v.Item, &v.InvoiceStatus, &v.Modifier, &v.ModifiedAt, &v.CreatedAt,
	)
}

// List aplica el predicado y la paginación sobre los socios. El total
// refleja las filas que cumplen el predicado antes de paginar.
func (r *VendorRepository) List(p *Predicate, pg Pagination) ([]models.Vendor, int, error) {
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM vendors %s", p.Where())

	var total int
	if err := r.db.QueryRowWithTimeout(countQuery, p.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting vendors: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM vendors %s ORDER BY id DESC LIMIT $%d OFFSET $%d",
		vendorColumns, p.Where(), p.ArgCount()+1, p.ArgCount()+2,
	)
	args := append(p.Args(), pg.Limit, pg.Offset)

	rows, err := r.db.QueryWithTimeout(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying vendors: %w", err)
	}
	defer rows.Close()

	vendors := []models.Vendor{}
	for rows.Next() {
		var v models.Vendor
		if err := scanVendor(rows, &v); err != nil {
			return nil, 0, fmt.Errorf("error scanning vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating vendors: %w", err)
	}

	return vendors, total, nil
}

// GetByID obtiene un socio por ID
func (r *VendorRepository) GetByID(id int64) (*models.Vendor, error) {
	query := fmt.Sprintf("SELECT %s FROM vendors WHERE id = $1", vendorColumns)

	var v models.Vendor
	if err := scanVendor(r.db.QueryRowWithTimeout(query, id), &v); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("vendor not found: %d", id)
		}
		return nil, fmt.Errorf("error querying vendor: %w", err)
	}

	return &v, nil
}

// CodeExists verifica si el código de negocio ya está registrado.
// La comparación es exacta, a diferencia de la búsqueda por subcadena.
// Con excludeID > 0 se excluye el propio registro (actualización idempotente).
func (r *VendorRepository) CodeExists(code string, excludeID int64) (bool, error) {
	query := "SELECT id FROM vendors WHERE code = $1"
	args := []interface{}{code}

	if excludeID > 0 {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}

	var id int64
	err := r.db.QueryRowWithTimeout(query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking vendor code: %w", err)
	}

	return true, nil
}

// Create registra un nuevo socio comercial. La restricción única de la
// base de datos respalda la verificación previa de unicidad del código.
func (r *VendorRepository) Create(req *models.CreateVendorRequest) (*models.Vendor, error) {
	query := fmt.Sprintf(`
		INSERT INTO vendors (name, code, ceo, address, business_type, item, invoice_status, modifier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, vendorColumns)

	var v models.Vendor
	err := scanVendor(r.db.QueryRowWithTimeout(query,
		req.Name, req.Code, req.CEO, req.Address, req.BusinessType,
		req.Item, req.InvoiceStatus, req.Modifier,
	), &v)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, fmt.Errorf("vendor code already exists: %s", req.Code)
		}
		return nil, fmt.Errorf("error creating vendor: %w", err)
	}

	return &v, nil
}

// Update modifica un socio existente. El código de negocio no se toca.
func (r *VendorRepository) Update(id int64, req *models.UpdateVendorRequest) (*models.Vendor, error) {
	query := `
		UPDATE vendors
		SET name = $1, ceo = $2, address = $3, business_type = $4, item = $5,
		    invoice_status = $6, modifier = $7, modified_at = $8
		WHERE id = $9
	`

	result, err := r.db.ExecWithTimeout(query,
		req.Name, req.CEO, req.Address, req.BusinessType, req.Item,
		req.InvoiceStatus, req.Modifier, time.Now(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating vendor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, fmt.Errorf("vendor not found: %d", id)
	}

	return r.GetByID(id)
}

// BulkUpdateInvoiceStatus aplica un mismo estado a todos los socios
// indicados en una sola sentencia. Los IDs inexistentes se omiten en
// silencio; el conteo reportado es la cantidad de IDs solicitados.
func (r *VendorRepository) BulkUpdateInvoiceStatus(ids []int64, status models.InvoiceStatus, modifier string) (int, error) {
	query := `
		UPDATE vendors
		SET invoice_status = $1, modifier = $2, modified_at = $3
		WHERE id = ANY($4)
	`

	if _, err := r.db.ExecWithTimeout(query, status, modifier, time.Now(), pq.Array(ids)); err != nil {
		return 0, fmt.Errorf("error updating vendor statuses: %w", err)
	}

	return len(ids), nil
}
