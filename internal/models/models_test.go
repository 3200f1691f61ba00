package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceStatusIsValid(t *testing.T) {
	assert.True(t, InvoiceStatusActive.IsValid())
	assert.True(t, InvoiceStatusInactive.IsValid())
	assert.False(t, InvoiceStatus("paused").IsValid())
	assert.False(t, InvoiceStatus("").IsValid())
}

func TestContactStatusIsValid(t *testing.T) {
	assert.True(t, ContactStatusActive.IsValid())
	assert.True(t, ContactStatusInactive.IsValid())
	assert.False(t, ContactStatus("deleted").IsValid())
}

func TestBillingStatusIsValid(t *testing.T) {
	assert.True(t, BillingStatusNotSent.IsValid())
	assert.True(t, BillingStatusSuccess.IsValid())
	assert.True(t, BillingStatusFail.IsValid())
	assert.False(t, BillingStatus("sent").IsValid())
}

func TestErrorResponseShape(t *testing.T) {
	resp := NewConflictError("vendor code already exists")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "CONFLICT", decoded["error"]["code"])
	assert.Equal(t, "vendor code already exists", decoded["error"]["message"])
}

func TestValidationErrorDetails(t *testing.T) {
	resp := NewValidationError("Invalid request format", []ErrorDetail{
		{Field: "email", Issue: "required"},
	})

	assert.Equal(t, string(ErrorCodeInvalidRequest), resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "email", resp.Error.Details[0].Field)
}

func TestContactWithVendorNullJoin(t *testing.T) {
	// Un FK colgante produce campos de socio nulos en el JSON
	c := ContactWithVendor{
		VendorContact: VendorContact{ID: 7, VendorID: 99, Email: "x@y.com", Status: ContactStatusActive},
	}

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded["vendorName"])
	assert.Nil(t, decoded["vendorCode"])
}
