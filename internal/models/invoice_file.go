package models

import "time"

// FileType representa el tipo de archivo asociado a una factura
type FileType string

const (
	FileTypeHTML       FileType = "html"
	FileTypeExcel      FileType = "excel"
	FileTypeAttachment FileType = "attachment"
)

// IsValid retorna true si el tipo es un literal permitido
func (t FileType) IsValid() bool {
	return t == FileTypeHTML || t == FileTypeExcel || t == FileTypeAttachment
}

// InvoiceFile representa un archivo asociado a una factura (relación N:1)
type InvoiceFile struct {
	ID        int64     `json:"id" db:"id"`
	InvoiceID int64     `json:"invoiceId" db:"invoice_id"`
	FileType  FileType  `json:"fileType" db:"file_type"`
	FileName  string    `json:"fileName" db:"file_name"`
	Path      string    `json:"path" db:"path"`
	Size      int64     `json:"size" db:"size"`
	MimeType  *string   `json:"mimeType,omitempty" db:"mime_type"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// InvoiceFileListResponse representa el listado de archivos de una factura
type InvoiceFileListResponse struct {
	Data  []InvoiceFile `json:"data"`
	Total int           `json:"total"`
}
