package database

import (
	"database/sql"
	"fmt"

	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/sirupsen/logrus"
)

// InvoiceFilesRepository maneja las operaciones de base de datos para archivos de facturas
type InvoiceFilesRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewInvoiceFilesRepository crea una nueva instancia del repositorio
func NewInvoiceFilesRepository(db *DB, logger *logrus.Logger) *InvoiceFilesRepository {
	return &InvoiceFilesRepository{
		db:     db,
		logger: logger,
	}
}

const invoiceFileColumns = `id, invoice_id, file_type, file_name, path, size, mime_type, created_at, updated_at`

// ListByInvoiceID obtiene los archivos asociados a una factura
func (r *InvoiceFilesRepository) ListByInvoiceID(invoiceID int64) ([]models.InvoiceFile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM invoice_files
		WHERE invoice_id = $1
		ORDER BY created_at DESC`, invoiceFileColumns)

	rows, err := r.db.QueryWithTimeout(query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("error querying invoice files: %w", err)
	}
	defer rows.Close()

	files := []models.InvoiceFile{}
	for rows.Next() {
		var f models.InvoiceFile
		err := rows.Scan(
			&f.ID, &f.InvoiceID, &f.FileType, &f.FileName, &f.Path,
			&f.Size, &f.MimeType, &f.CreatedAt, &f.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning invoice file: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice files: %w", err)
	}

	return files, nil
}

// GetByID obtiene un archivo por ID
func (r *InvoiceFilesRepository) GetByID(id int64) (*models.InvoiceFile, error) {
	query := fmt.Sprintf("SELECT %s FROM invoice_files WHERE id = $1", invoiceFileColumns)

	var f models.InvoiceFile
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&f.ID, &f.InvoiceID, &f.FileType, &f.FileName, &f.Path,
		&f.Size, &f.MimeType, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("invoice file not found: %d", id)
		}
		return nil, fmt.Errorf("error querying invoice file: %w", err)
	}

	return &f, nil
}

// Create registra los metadatos de un archivo subido
func (r *InvoiceFilesRepository) Create(file *models.InvoiceFile) (int64, error) {
	query := `
		INSERT INTO invoice_files (invoice_id, file_type, file_name, path, size, mime_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowWithTimeout(query,
		file.InvoiceID, file.FileType, file.FileName, file.Path, file.Size, file.MimeType,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating invoice file: %w", err)
	}

	return id, nil
}
