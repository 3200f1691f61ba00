package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/sirupsen/logrus"
)

// BillingRepository maneja las operaciones de base de datos para BillingInvoice
type BillingRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewBillingRepository crea una nueva instancia del repositorio
func NewBillingRepository(db *DB, logger *logrus.Logger) *BillingRepository {
	return &BillingRepository{
		db:     db,
		logger: logger,
	}
}

const billingJoinColumns = `
	b.id, b.vendor_id, b.form_id, b.email, b.billing_month, b.payment_info,
	b.details, b.form_snapshot, b.attachments, b.status, b.sent_at,
	b.created_by, b.created_at, b.updated_by, b.updated_at,
	v.name, v.code`

func scanBillingWithVendor(row interface{ Scan(...interface{}) error }, b *models.BillingInvoiceWithVendor) error {
	var details, snapshot, attachments []byte
	err := row.Scan(
		&b.ID, &b.VendorID, &b.FormID, &b.Email, &b.BillingMonth, &b.PaymentInfo,
		&details, &snapshot, &attachments, &b.Status, &b.SentAt,
		&b.CreatedBy, &b.CreatedAt, &b.UpdatedBy, &b.UpdatedAt,
		&b.VendorName, &b.VendorCode,
	)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(details, &b.Details); err != nil {
		return fmt.Errorf("error decoding billing details: %w", err)
	}
	if err := json.Unmarshal(snapshot, &b.FormSnapshot); err != nil {
		return fmt.Errorf("error decoding form snapshot: %w", err)
	}
	b.Attachments = attachments
	return nil
}

// List aplica el predicado y la paginación sobre las facturas, unidas
// por LEFT JOIN a los socios
func (r *BillingRepository) List(p *Predicate, pg Pagination) ([]models.BillingInvoiceWithVendor, int, error) {
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM billing_invoices b
		LEFT JOIN vendors v ON b.vendor_id = v.id
		%s`, p.Where())

	var total int
	if err := r.db.QueryRowWithTimeout(countQuery, p.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting billing invoices: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM billing_invoices b
		LEFT JOIN vendors v ON b.vendor_id = v.id
		%s
		ORDER BY b.created_at DESC
		LIMIT $%d OFFSET $%d`,
		billingJoinColumns, p.Where(), p.ArgCount()+1, p.ArgCount()+2,
	)
	args := append(p.Args(), pg.Limit, pg.Offset)

	rows, err := r.db.QueryWithTimeout(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying billing invoices: %w", err)
	}
	defer rows.Close()

	invoices := []models.BillingInvoiceWithVendor{}
	for rows.Next() {
		var b models.BillingInvoiceWithVendor
		if err := scanBillingWithVendor(rows, &b); err != nil {
			return nil, 0, fmt.Errorf("error scanning billing invoice: %w", err)
		}
		invoices = append(invoices, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating billing invoices: %w", err)
	}

	return invoices, total, nil
}

// GetByID obtiene una factura por ID con los datos del socio unidos
func (r *BillingRepository) GetByID(id int64) (*models.BillingInvoiceWithVendor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM billing_invoices b
		LEFT JOIN vendors v ON b.vendor_id = v.id
		WHERE b.id = $1`, billingJoinColumns)

	var b models.BillingInvoiceWithVendor
	if err := scanBillingWithVendor(r.db.QueryRowWithTimeout(query, id), &b); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("billing invoice not found: %d", id)
		}
		return nil, fmt.Errorf("error querying billing invoice: %w", err)
	}

	return &b, nil
}

// Create registra una nueva factura con el snapshot de la plantilla
// tomado al momento de creación
func (r *BillingRepository) Create(req *models.CreateBillingInvoiceRequest, snapshot models.InvoiceItems) (int64, error) {
	details, err := json.Marshal(req.Details)
	if err != nil {
		return 0, fmt.Errorf("error encoding billing details: %w", err)
	}
	snap, err := json.Marshal(snapshot)
	if err != nil {
		return 0, fmt.Errorf("error encoding form snapshot: %w", err)
	}

	query := `
		INSERT INTO billing_invoices (vendor_id, form_id, email, billing_month, payment_info, details, form_snapshot, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRowWithTimeout(query,
		req.VendorID, req.FormID, req.Email, req.BillingMonth, req.PaymentInfo,
		details, snap, models.BillingStatusNotSent, req.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating billing invoice: %w", err)
	}

	return id, nil
}

// UpdateSendResult registra el resultado de un envío sobre la factura
func (r *BillingRepository) UpdateSendResult(id int64, status models.BillingStatus, sentAt time.Time, updatedBy string) error {
	query := `
		UPDATE billing_invoices
		SET status = $1, sent_at = $2, updated_by = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.db.ExecWithTimeout(query, status, sentAt, updatedBy, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error updating billing invoice: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("billing invoice not found: %d", id)
	}

	return nil
}

// InsertLog agrega un registro al historial de envíos de una factura
func (r *BillingRepository) InsertLog(invoiceID int64, status models.BillingStatus, sentAt time.Time, errorMessage *string) error {
	query := `
		INSERT INTO billing_logs (invoice_id, sent_at, status, error_message)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.db.ExecWithTimeout(query, invoiceID, sentAt, status, errorMessage); err != nil {
		return fmt.Errorf("error inserting billing log: %w", err)
	}

	return nil
}

// ListLogs obtiene el historial de envíos de una factura, más reciente primero
func (r *BillingRepository) ListLogs(invoiceID int64) ([]models.BillingLog, error) {
	query := `
		SELECT id, invoice_id, sent_at, status, error_message, created_at
		FROM billing_logs
		WHERE invoice_id = $1
		ORDER BY sent_at DESC
	`

	rows, err := r.db.QueryWithTimeout(query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("error querying billing logs: %w", err)
	}
	defer rows.Close()

	logs := []models.BillingLog{}
	for rows.Next() {
		var l models.BillingLog
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.SentAt, &l.Status, &l.ErrorMessage, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning billing log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating billing logs: %w", err)
	}

	return logs, nil
}
