package models

import "time"

// SupplierInfo representa los datos del proveedor emisor (tabla de fila única)
type SupplierInfo struct {
	ID             int64     `json:"id" db:"id"`
	BusinessNumber string    `json:"businessNumber" db:"business_number"`
	CompanyName    string    `json:"companyName" db:"company_name"`
	CEO            string    `json:"ceo" db:"ceo"`
	Address        string    `json:"address" db:"address"`
	BusinessType   string    `json:"businessType" db:"business_type"`
	Item           string    `json:"item" db:"item"`
	SealImagePath  *string   `json:"sealImagePath,omitempty" db:"seal_image_path"`
	UpdatedBy      string    `json:"updatedBy" db:"updated_by"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// SaveSupplierInfoRequest representa el request para guardar los datos del proveedor
type SaveSupplierInfoRequest struct {
	BusinessNumber string  `json:"businessNumber"`
	CompanyName    string  `json:"companyName"`
	CEO            string  `json:"ceo"`
	Address        string  `json:"address"`
	BusinessType   string  `json:"businessType"`
	Item           string  `json:"item"`
	SealImagePath  *string `json:"sealImagePath,omitempty"`
	UpdatedBy      string  `json:"updatedBy"`
}
