package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// ContactRepository maneja las operaciones de base de datos para VendorContact
type ContactRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewContactRepository crea una nueva instancia del repositorio
func NewContactRepository(db *DB, logger *logrus.Logger) *ContactRepository {
	return &ContactRepository{
		db:     db,
		logger: logger,
	}
}

const contactJoinColumns = `
	c.id, c.vendor_id, c.branch, c.email, c.status,
	c.created_by, c.created_at, c.updated_by, c.updated_at,
	v.name, v.code`

func scanContactWithVendor(row interface{ Scan(...interface{}) error }, c *models.ContactWithVendor) error {
	return row.Scan(
		&c.ID, &c.VendorID, &c.Branch, &c.Email, &c.Status,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedBy, &c.UpdatedAt,
		&c.VendorName, &c.VendorCode,
	)
}

// List aplica el predicado y la paginación sobre los contactos, unidos
// por LEFT JOIN a los socios para exponer nombre y código. Un FK colgante
// produce campos de socio nulos en lugar de excluir la fila.
func (r *ContactRepository) List(p *Predicate, pg Pagination) ([]models.ContactWithVendor, int, error) {
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM vendor_contacts c
		LEFT JOIN vendors v ON c.vendor_id = v.id
		%s`, p.Where())

	var total int
	if err := r.db.QueryRowWithTimeout(countQuery, p.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting contacts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM vendor_contacts c
		LEFT JOIN vendors v ON c.vendor_id = v.id
		%s
		ORDER BY c.created_at DESC
		LIMIT $%d OFFSET $%d`,
		contactJoinColumns, p.Where(), p.ArgCount()+1, p.ArgCount()+2,
	)
	args := append(p.Args(), pg.Limit, pg.Offset)

	rows, err := r.db.QueryWithTimeout(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.ContactWithVendor{}
	for rows.Next() {
		var c models.ContactWithVendor
		if err := scanContactWithVendor(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("error scanning contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating contacts: %w", err)
	}

	return contacts, total, nil
}

// GetByID obtiene un contacto por ID con los datos del socio unidos
func (r *ContactRepository) GetByID(id int64) (*models.ContactWithVendor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM vendor_contacts c
		LEFT JOIN vendors v ON c.vendor_id = v.id
		WHERE c.id = $1`, contactJoinColumns)

	var c models.ContactWithVendor
	if err := scanContactWithVendor(r.db.QueryRowWithTimeout(query, id), &c); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("contact not found: %d", id)
		}
		return nil, fmt.Errorf("error querying contact: %w", err)
	}

	return &c, nil
}

// EmailExists verifica si el email ya está registrado. La comparación es
// exacta. Con excludeID > 0 se excluye el propio registro, de modo que
// actualizar un contacto con su email actual nunca es conflicto.
func (r *ContactRepository) EmailExists(email string, excludeID int64) (bool, error) {
	query := "SELECT id FROM vendor_contacts WHERE email = $1"
	args := []interface{}{email}

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
		return false, fmt.Errorf("error checking contact email: %w", err)
	}

	return true, nil
}

// Create registra un nuevo contacto. Las restricciones únicas de email y
// vendor_id respaldan las verificaciones previas.
func (r *ContactRepository) Create(req *models.CreateContactRequest) (int64, error) {
	query := `
		INSERT INTO vendor_contacts (vendor_id, branch, email, status, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowWithTimeout(query,
		req.VendorID, req.Branch, req.Email, req.Status, req.CreatedBy,
	).Scan(&id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return 0, fmt.Errorf("contact email already exists: %s", req.Email)
		}
		return 0, fmt.Errorf("error creating contact: %w", err)
	}

	return id, nil
}

// Update modifica un contacto existente
func (r *ContactRepository) Update(id int64, req *models.UpdateContactRequest) error {
	query := `
		UPDATE vendor_contacts
		SET vendor_id = $1, branch = $2, email = $3, status = $4,
		    updated_by = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecWithTimeout(query,
		req.VendorID, req.Branch, req.Email, req.Status,
		req.UpdatedBy, time.Now(), id,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("contact email already exists: %s", req.Email)
		}
		return fmt.Errorf("error updating contact: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("contact not found: %d", id)
	}

	return nil
}

// BulkUpdateStatus aplica un mismo estado a todos los contactos indicados.
// Los IDs inexistentes se omiten en silencio; el conteo reportado es la
// cantidad de IDs solicitados.
func (r *ContactRepository) BulkUpdateStatus(ids []int64, status models.ContactStatus, updatedBy string) (int, error) {
	query := `
		UPDATE vendor_contacts
		SET status = $1, updated_by = $2, updated_at = $3
		WHERE id = ANY($4)
	`

	if _, err := r.db.ExecWithTimeout(query, status, updatedBy, time.Now(), pq.Array(ids)); err != nil {
		return 0, fmt.Errorf("error updating contact statuses: %w", err)
	}

	return len(ids), nil
}
