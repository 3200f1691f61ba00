package models

import "time"

// InvoiceStatus representa el estado de facturación de un socio comercial
type InvoiceStatus string

const (
	InvoiceStatusActive   InvoiceStatus = "active"
	InvoiceStatusInactive InvoiceStatus = "inactive"
)

// IsValid retorna true si el estado es un literal permitido
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusActive || s == InvoiceStatusInactive
}

// Vendor representa un socio comercial facturable
type Vendor struct {
	ID            int64         `json:"id" db:"id"`
	Name          string        `json:"name" db:"name"`
	Code          string        `json:"code" db:"code"`
	CEO           *string       `json:"ceo,omitempty" db:"ceo"`
	Address       *string       `json:"address,omitempty" db:"address"`
	BusinessType  *string       `json:"businessType,omitempty" db:"business_type"`
	Item          *string       `json:"item,omitempty" db:"item"`
	InvoiceStatus InvoiceStatus `json:"invoiceStatus" db:"invoice_status"`
	Modifier      string        `json:"modifier" db:"modifier"`
	ModifiedAt    time.Time     `json:"modifiedAt" db:"modified_at"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

// CreateVendorRequest representa el request para registrar un socio comercial
type CreateVendorRequest struct {
	Name          string        `json:"name"`
	Code          string        `json:"code"`
	CEO           *string       `json:"ceo,omitempty"`
	Address       *string       `json:"address,omitempty"`
	BusinessType  *string       `json:"businessType,omitempty"`
	Item          *string       `json:"item,omitempty"`
	InvoiceStatus InvoiceStatus `json:"invoiceStatus"`
	Modifier      string        `json:"modifier"`
}

// UpdateVendorRequest representa el request para modificar un socio comercial.
// El código de negocio es inmutable y no se acepta aquí.
type UpdateVendorRequest struct {
	Name          string        `json:"name"`
	CEO           *string       `json:"ceo,omitempty"`
	Address       *string       `json:"address,omitempty"`
	BusinessType  *string       `json:"businessType,omitempty"`
	Item          *string       `json:"item,omitempty"`
	InvoiceStatus InvoiceStatus `json:"invoiceStatus"`
	Modifier      string        `json:"modifier"`
}

// BulkInvoiceStatusRequest representa el cambio de estado en lote
type BulkInvoiceStatusRequest struct {
	VendorIDs     []int64       `json:"vendorIds"`
	InvoiceStatus InvoiceStatus `json:"invoiceStatus"`
	Modifier      string        `json:"modifier"`
}

// BulkUpdateResponse representa la respuesta de una actualización en lote
type BulkUpdateResponse struct {
	Message      string `json:"message,omitempty"`
	UpdatedCount int    `json:"updatedCount"`
}

// VendorListResponse representa la respuesta paginada del listado de socios
type VendorListResponse struct {
	Data  []Vendor `json:"data"`
	Total int      `json:"total"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
}

// VendorSearchParams representa los parámetros de búsqueda de socios
type VendorSearchParams struct {
	SearchField   string
	SearchValue   string
	InvoiceStatus string
	Page          int
	Limit         int
}
