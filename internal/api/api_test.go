package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func newTestAPI() *API {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return &API{logger: logger}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRespondServiceErrorValidation(t *testing.T) {
	api := newTestAPI()
	c, w := newTestContext()

	api.respondServiceError(c, errors.New("validation error: name is required"), "Error creating vendor")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestRespondServiceErrorNotFound(t *testing.T) {
	api := newTestAPI()
	c, w := newTestContext()

	api.respondServiceError(c, errors.New("vendor not found: 42"), "Error getting vendor")

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestRespondServiceErrorConflict(t *testing.T) {
	api := newTestAPI()
	c, w := newTestContext()

	api.respondServiceError(c, errors.New("vendor code already exists: ACME-001"), "Error creating vendor")

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
}

func TestRespondServiceErrorInternal(t *testing.T) {
	api := newTestAPI()
	c, w := newTestContext()

	api.respondServiceError(c, errors.New("connection refused"), "Error listing vendors")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "INTERNAL", resp.Error.Code)
	// El mensaje interno no se filtra al cliente
	assert.Equal(t, "Error listing vendors", resp.Error.Message)
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		value string
		ok    bool
	}{
		{"7", true},
		{"0", false},
		{"-1", false},
		{"abc", false},
		{"", false},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Params = gin.Params{{Key: "id", Value: tc.value}}

		id, ok := parseIDParam(c, "id")
		assert.Equal(t, tc.ok, ok, "value %q", tc.value)
		if tc.ok {
			assert.Equal(t, int64(7), id)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
