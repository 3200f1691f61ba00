package models

import "time"

// ContactStatus representa el estado de un contacto
type ContactStatus string

const (
	ContactStatusActive   ContactStatus = "active"
	ContactStatusInactive ContactStatus = "inactive"
)

// IsValid retorna true si el estado es un literal permitido
func (s ContactStatus) IsValid() bool {
	return s == ContactStatusActive || s == ContactStatusInactive
}

// VendorContact representa el contacto de facturación de un socio (relación 1:1)
type VendorContact struct {
	ID        int64         `json:"id" db:"id"`
	VendorID  int64         `json:"vendorId" db:"vendor_id"`
	Branch    *string       `json:"branch,omitempty" db:"branch"`
	Email     string        `json:"email" db:"email"`
	Status    ContactStatus `json:"status" db:"status"`
	CreatedBy string        `json:"createdBy" db:"created_by"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedBy *string       `json:"updatedBy,omitempty" db:"updated_by"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}

// ContactWithVendor representa un contacto junto a los datos del socio.
// Los campos del socio son punteros: un FK colgante produce valores nulos
// en lugar de excluir la fila.
type ContactWithVendor struct {
	VendorContact
	VendorName *string `json:"vendorName" db:"vendor_name"`
	VendorCode *string `json:"vendorCode" db:"vendor_code"`
}

// CreateContactRequest representa el request para registrar un contacto
type CreateContactRequest struct {
	VendorID  int64         `json:"vendorId"`
	Branch    *string       `json:"branch,omitempty"`
	Email     string        `json:"email"`
	Status    ContactStatus `json:"status,omitempty"`
	CreatedBy string        `json:"createdBy"`
}

// UpdateContactRequest representa el request para modificar un contacto
type UpdateContactRequest struct {
	ID        int64         `json:"id,omitempty"`
	VendorID  int64         `json:"vendorId"`
	Branch    *string       `json:"branch,omitempty"`
	Email     string        `json:"email"`
	Status    ContactStatus `json:"status"`
	UpdatedBy string        `json:"updatedBy"`
}

// BulkContactStatusRequest representa el cambio de estado de contactos en lote
type BulkContactStatusRequest struct {
	ContactIDs []int64       `json:"contactIds"`
	Status     ContactStatus `json:"status"`
	UpdatedBy  string        `json:"updatedBy"`
}

// ContactMutationResponse representa la respuesta al crear o modificar un contacto
type ContactMutationResponse struct {
	Message   string `json:"message"`
	ContactID int64  `json:"contactId"`
}

// ContactListResponse representa la respuesta paginada del listado de contactos
type ContactListResponse struct {
	Data  []ContactWithVendor `json:"data"`
	Total int                 `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

// ContactSearchParams representa los parámetros de búsqueda de contactos
type ContactSearchParams struct {
	Status      string
	SearchField string
	SearchValue string
	Page        int
	Limit       int
}
