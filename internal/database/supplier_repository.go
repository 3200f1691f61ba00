package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/sirupsen/logrus"
)

// SupplierRepository maneja las operaciones de base de datos para SupplierInfo
type SupplierRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewSupplierRepository crea una nueva instancia del repositorio
func NewSupplierRepository(db *DB, logger *logrus.Logger) *SupplierRepository {
	return &SupplierRepository{
		db:     db,
		logger: logger,
	}
}

const supplierColumns = `id, business_number, company_name, ceo, address, business_type, item, seal_image_path, updated_by, updated_at, created_at`

// Get obtiene los datos del proveedor emisor. La tabla es de fila única.
func (r *SupplierRepository) Get() (*models.SupplierInfo, error) {
	query := fmt.Sprintf("SELECT %s FROM supplier_info ORDER BY id LIMIT 1", supplierColumns)

	var s models.SupplierInfo
	err := r.db.QueryRowWithTimeout(query).Scan(
		&s.ID, &s.BusinessNumber, &s.CompanyName, &s.CEO, &s.Address,
		&s.BusinessType, &s.Item, &s.SealImagePath, &s.UpdatedBy,
		&s.UpdatedAt, &s.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("supplier info not found")
		}
		return nil, fmt.Errorf("error querying supplier info: %w", err)
	}

	return &s, nil
}

// Save inserta o actualiza la fila única del proveedor emisor. La lectura y
// la escritura van en una transacción para que escrituras concurrentes no
// dupliquen la fila.
func (r *SupplierRepository) Save(req *models.SaveSupplierInfoRequest) (*models.SupplierInfo, error) {
	err := r.db.WithTransaction(func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRow("SELECT id FROM supplier_info ORDER BY id LIMIT 1 FOR UPDATE").Scan(&id)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("error querying supplier info: %w", err)
		}

		if err == sql.ErrNoRows {
			insert := `
				INSERT INTO supplier_info (business_number, company_name, ceo, address, business_type, item, seal_image_path, updated_by)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`
			if _, err := tx.Exec(insert,
				req.BusinessNumber, req.CompanyName, req.CEO, req.Address,
				req.BusinessType, req.Item, req.SealImagePath, req.UpdatedBy,
			); err != nil {
				return fmt.Errorf("error creating supplier info: %w", err)
			}
			return nil
		}

		update := `
			UPDATE supplier_info
			SET business_number = $1, company_name = $2, ceo = $3, address = $4,
			    business_type = $5, item = $6, seal_image_path = $7,
			    updated_by = $8, updated_at = $9
			WHERE id = $10
		`
		if _, err := tx.Exec(update,
			req.BusinessNumber, req.CompanyName, req.CEO, req.Address,
			req.BusinessType, req.Item, req.SealImagePath,
			req.UpdatedBy, time.Now(), id,
		); err != nil {
			return fmt.Errorf("error updating supplier info: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.Get()
}
