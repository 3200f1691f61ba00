package services

import (
	"testing"

	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestValidateVendorCreate(t *testing.T) {
	valid := func() *models.CreateVendorRequest {
		return &models.CreateVendorRequest{
			Name:          "Acme Corp",
			Code:          "ACME-001",
			InvoiceStatus: models.InvoiceStatusActive,
			Modifier:      "admin",
		}
	}

	assert.NoError(t, validateVendorCreate(valid()))

	req := valid()
	req.Name = "  "
	assert.Error(t, validateVendorCreate(req))

	req = valid()
	req.Code = ""
	assert.Error(t, validateVendorCreate(req))

	req = valid()
	req.Modifier = ""
	assert.Error(t, validateVendorCreate(req))

	req = valid()
	req.InvoiceStatus = "paused"
	assert.Error(t, validateVendorCreate(req))

	req = valid()
	req.Code = string(make([]byte, 21))
	assert.Error(t, validateVendorCreate(req))
}

func TestValidateVendorBulkStatus(t *testing.T) {
	valid := &models.BulkInvoiceStatusRequest{
		VendorIDs:     []int64{1, 2, 3},
		InvoiceStatus: models.InvoiceStatusInactive,
		Modifier:      "admin",
	}
	assert.NoError(t, validateVendorBulkStatus(valid))

	empty := &models.BulkInvoiceStatusRequest{
		VendorIDs:     []int64{},
		InvoiceStatus: models.InvoiceStatusActive,
		Modifier:      "admin",
	}
	err := validateVendorBulkStatus(empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vendor ids are required")

	badStatus := &models.BulkInvoiceStatusRequest{
		VendorIDs:     []int64{1},
		InvoiceStatus: "unknown",
		Modifier:      "admin",
	}
	assert.Error(t, validateVendorBulkStatus(badStatus))
}

func TestValidateContactCreate(t *testing.T) {
	valid := func() *models.CreateContactRequest {
		return &models.CreateContactRequest{
			VendorID:  1,
			Email:     "billing@acme.com",
			Status:    models.ContactStatusActive,
			CreatedBy: "admin",
		}
	}

	assert.NoError(t, validateContactCreate(valid()))

	req := valid()
	req.VendorID = 0
	assert.Error(t, validateContactCreate(req))

	req = valid()
	req.Email = "not-an-email"
	assert.Error(t, validateContactCreate(req))

	req = valid()
	req.Branch = strPtr(string(make([]byte, 31)))
	assert.Error(t, validateContactCreate(req))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("billing@acme.com"))
	assert.True(t, isValidEmail("a@b.co"))

	assert.False(t, isValidEmail(""))
	assert.False(t, isValidEmail("plain"))
	assert.False(t, isValidEmail("@acme.com"))
	assert.False(t, isValidEmail("billing@"))
	assert.False(t, isValidEmail("billing@acme"))
	assert.False(t, isValidEmail("a@b@c.com"))
}

func TestValidateVendorFormCreate(t *testing.T) {
	valid := &models.CreateVendorFormRequest{
		VendorID:  1,
		CreatedBy: "admin",
	}
	assert.NoError(t, validateVendorFormCreate(valid))

	noVendor := &models.CreateVendorFormRequest{CreatedBy: "admin"}
	assert.Error(t, validateVendorFormCreate(noVendor))

	longDesc := &models.CreateVendorFormRequest{
		VendorID:           1,
		CreatedBy:          "admin",
		PaymentDescription: strPtr(string(make([]byte, maxPaymentDescriptionLength+1))),
	}
	assert.Error(t, validateVendorFormCreate(longDesc))
}

func TestValidateSupplierInfo(t *testing.T) {
	valid := func() *models.SaveSupplierInfoRequest {
		return &models.SaveSupplierInfoRequest{
			BusinessNumber: "123-45-67890",
			CompanyName:    "Supply Co",
			CEO:            "Jane Roe",
			Address:        "1 Main St",
			BusinessType:   "services",
			Item:           "billing",
			UpdatedBy:      "admin",
		}
	}

	assert.NoError(t, validateSupplierInfo(valid()))

	req := valid()
	req.BusinessNumber = ""
	assert.Error(t, validateSupplierInfo(req))

	req = valid()
	req.CEO = "  "
	assert.Error(t, validateSupplierInfo(req))

	req = valid()
	req.BusinessNumber = string(make([]byte, 21))
	assert.Error(t, validateSupplierInfo(req))
}

func TestValidateBillingCreate(t *testing.T) {
	valid := func() *models.CreateBillingInvoiceRequest {
		return &models.CreateBillingInvoiceRequest{
			VendorID:     1,
			FormID:       2,
			Email:        "billing@acme.com",
			BillingMonth: "2025.07",
			CreatedBy:    "admin",
		}
	}

	assert.NoError(t, validateBillingCreate(valid()))

	req := valid()
	req.BillingMonth = "2025.13"
	assert.Error(t, validateBillingCreate(req))

	req = valid()
	req.BillingMonth = "2025-07"
	assert.Error(t, validateBillingCreate(req))

	req = valid()
	req.BillingMonth = "25.07"
	assert.Error(t, validateBillingCreate(req))

	req = valid()
	req.Email = "bad"
	assert.Error(t, validateBillingCreate(req))

	req = valid()
	req.CreatedBy = ""
	assert.Error(t, validateBillingCreate(req))
}

func TestValidateBillingSearch(t *testing.T) {
	assert.NoError(t, validateBillingSearch(models.BillingSearchParams{}))
	assert.NoError(t, validateBillingSearch(models.BillingSearchParams{
		FromDate: "2025-01-01",
		ToDate:   "2025-01-31",
		Status:   "success",
	}))
	assert.NoError(t, validateBillingSearch(models.BillingSearchParams{Status: "all"}))

	assert.Error(t, validateBillingSearch(models.BillingSearchParams{FromDate: "01/01/2025"}))
	assert.Error(t, validateBillingSearch(models.BillingSearchParams{Status: "pending"}))
}
