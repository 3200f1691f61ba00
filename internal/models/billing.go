package models

import (
	"encoding/json"
	"time"
)

// BillingStatus representa el estado de envío de una factura
type BillingStatus string

const (
	BillingStatusNotSent BillingStatus = "not_sent"
	BillingStatusSuccess BillingStatus = "success"
	BillingStatusFail    BillingStatus = "fail"
)

// IsValid retorna true si el estado es un literal permitido
func (s BillingStatus) IsValid() bool {
	return s == BillingStatusNotSent || s == BillingStatusSuccess || s == BillingStatusFail
}

// BillingItem representa una línea de cobro dentro de la factura
type BillingItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

// BillingDetails representa el detalle de cobro de una factura
type BillingDetails struct {
	OrderNumber string        `json:"orderNumber"`
	Items       []BillingItem `json:"items"`
	Contact     string        `json:"contact"`
}

// BillingInvoice representa una factura generada para un socio
type BillingInvoice struct {
	ID           int64           `json:"id" db:"id"`
	VendorID     int64           `json:"vendorId" db:"vendor_id"`
	FormID       int64           `json:"formId" db:"form_id"`
	Email        string          `json:"email" db:"email"`
	BillingMonth string          `json:"billingMonth" db:"billing_month"`
	PaymentInfo  *string         `json:"paymentInfo,omitempty" db:"payment_info"`
	Details      BillingDetails  `json:"details" db:"details"`
	FormSnapshot InvoiceItems    `json:"formSnapshot" db:"form_snapshot"`
	Attachments  json.RawMessage `json:"attachments,omitempty" db:"attachments"`
	Status       BillingStatus   `json:"status" db:"status"`
	SentAt       *time.Time      `json:"sentAt,omitempty" db:"sent_at"`
	CreatedBy    string          `json:"createdBy" db:"created_by"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedBy    *string         `json:"updatedBy,omitempty" db:"updated_by"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`
}

// BillingInvoiceWithVendor representa una factura junto a los datos del socio
type BillingInvoiceWithVendor struct {
	BillingInvoice
	VendorName *string `json:"vendorName" db:"vendor_name"`
	VendorCode *string `json:"vendorCode" db:"vendor_code"`
}

// CreateBillingInvoiceRequest representa el request para registrar una factura
type CreateBillingInvoiceRequest struct {
	VendorID     int64          `json:"vendorId"`
	FormID       int64          `json:"formId"`
	Email        string         `json:"email"`
	BillingMonth string         `json:"billingMonth"`
	PaymentInfo  *string        `json:"paymentInfo,omitempty"`
	Details      BillingDetails `json:"details"`
	CreatedBy    string         `json:"createdBy"`
}

// SendBillingInvoiceRequest representa el request para enviar una factura
type SendBillingInvoiceRequest struct {
	RequestedBy string `json:"requestedBy"`
}

// SendBillingInvoiceResponse representa el resultado del envío
type SendBillingInvoiceResponse struct {
	InvoiceID int64         `json:"invoiceId"`
	Status    BillingStatus `json:"status"`
	SentAt    time.Time     `json:"sentAt"`
	Message   string        `json:"message"`
}

// BillingLog representa un registro del historial de envíos
type BillingLog struct {
	ID           int64         `json:"id" db:"id"`
	InvoiceID    int64         `json:"invoiceId" db:"invoice_id"`
	SentAt       time.Time     `json:"sentAt" db:"sent_at"`
	Status       BillingStatus `json:"status" db:"status"`
	ErrorMessage *string       `json:"errorMessage,omitempty" db:"error_message"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
}

// BillingListResponse representa la respuesta paginada del listado de facturas
type BillingListResponse struct {
	Data  []BillingInvoiceWithVendor `json:"data"`
	Total int                        `json:"total"`
	Page  int                        `json:"page"`
	Limit int                        `json:"limit"`
}

// BillingSearchParams representa los parámetros de búsqueda de facturas
type BillingSearchParams struct {
	FromDate    string
	ToDate      string
	SearchField string
	SearchValue string
	Status      string
	Page        int
	Limit       int
}
