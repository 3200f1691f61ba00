package models

import "time"

// InvoiceItems representa las secciones seleccionables de una plantilla de factura
type InvoiceItems struct {
	PaymentInfo               bool `json:"paymentInfo"`
	Membership                bool `json:"membership"`
	Barcode                   bool `json:"barcode"`
	OrderNumber               bool `json:"orderNumber"`
	ProductGroup              bool `json:"productGroup"`
	ModelName                 bool `json:"modelName"`
	ContractDate              bool `json:"contractDate"`
	MandatoryPeriod           bool `json:"mandatoryPeriod"`
	ContractPeriod            bool `json:"contractPeriod"`
	SupplyPrice               bool `json:"supplyPrice"`
	VAT                       bool `json:"vat"`
	RentalFee                 bool `json:"rentalFee"`
	InstallationAddress       bool `json:"installationAddress"`
	DefaultInterest           bool `json:"defaultInterest"`
	Note                      bool `json:"note"`
	ASCharge                  bool `json:"asCharge"`
	ConsumableReplacementCost bool `json:"consumableReplacementCost"`
	PenaltyFee                bool `json:"penaltyFee"`
	BranchName                bool `json:"branchName"`
	Contact                   bool `json:"contact"`
}

// VendorForm representa la plantilla de factura configurada por socio
type VendorForm struct {
	ID                 int64        `json:"id" db:"id"`
	VendorID           int64        `json:"vendorId" db:"vendor_id"`
	InvoiceItems       InvoiceItems `json:"invoiceItems" db:"invoice_items"`
	CallCenterInfo     *string      `json:"callCenterInfo,omitempty" db:"callcenter_info"`
	PaymentDescription *string      `json:"paymentDescription,omitempty" db:"payment_description"`
	CreatedBy          string       `json:"createdBy" db:"created_by"`
	CreatedAt          time.Time    `json:"createdAt" db:"created_at"`
	UpdatedBy          *string      `json:"updatedBy,omitempty" db:"updated_by"`
	UpdatedAt          time.Time    `json:"updatedAt" db:"updated_at"`
}

// VendorFormWithVendor representa una plantilla junto a los datos del socio
type VendorFormWithVendor struct {
	VendorForm
	VendorName *string `json:"vendorName" db:"vendor_name"`
	VendorCode *string `json:"vendorCode" db:"vendor_code"`
	VendorCEO  *string `json:"vendorCeo" db:"vendor_ceo"`
}

// CreateVendorFormRequest representa el request para registrar una plantilla
type CreateVendorFormRequest struct {
	VendorID           int64        `json:"vendorId"`
	InvoiceItems       InvoiceItems `json:"invoiceItems"`
	CallCenterInfo     *string      `json:"callCenterInfo,omitempty"`
	PaymentDescription *string      `json:"paymentDescription,omitempty"`
	CreatedBy          string       `json:"createdBy"`
}

// UpdateVendorFormRequest representa el request para modificar una plantilla
type UpdateVendorFormRequest struct {
	InvoiceItems       InvoiceItems `json:"invoiceItems"`
	CallCenterInfo     *string      `json:"callCenterInfo,omitempty"`
	PaymentDescription *string      `json:"paymentDescription,omitempty"`
	UpdatedBy          string       `json:"updatedBy"`
}

// VendorFormListResponse representa la respuesta paginada del listado de plantillas
type VendorFormListResponse struct {
	Data  []VendorFormWithVendor `json:"data"`
	Total int                    `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}
