package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"customsduty/internal/domain"
	"customsduty/internal/handler"
	"customsduty/mocks"
)

func TestHSNHandler_Search(t *testing.T) {
	mockSvc := new(mocks.MockHSNService)
	h := handler.NewHSNHandler(mockSvc)

	gst := 18
	mockSvc.On("Search", mock.Anything, "8517").Return([]domain.HSNCode{
		{MainHSNCode: "8517", HSNCode: "8517", Description: "Telephone sets", GSTRate: &gst},
		{MainHSNCode: "8517", HSNCode: "85171300", Description: "Smartphones", GSTRate: &gst},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/hsn/search?code=8517", http.NoBody)

	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool             `json:"success"`
		Data    []domain.HSNCode `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "85171300", resp.Data[1].HSNCode)
	mockSvc.AssertExpectations(t)
}

func TestHSNHandler_Search_InvalidCode(t *testing.T) {
	mockSvc := new(mocks.MockHSNService)
	h := handler.NewHSNHandler(mockSvc)
	mockSvc.On("Search", mock.Anything, "x").Return(nil, domain.ErrInvalidHSNCode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/hsn/search?code=x", http.NoBody)

	h.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_HSN_CODE", resp.Error.Code)
}

func TestHSNHandler_Search_UpstreamUnauthorized(t *testing.T) {
	mockSvc := new(mocks.MockHSNService)
	h := handler.NewHSNHandler(mockSvc)
	mockSvc.On("Search", mock.Anything, "0101").
		Return(nil, &domain.UpstreamStatusError{Service: "hsnsearch", Endpoint: "search", StatusCode: 401})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/hsn/search?code=0101", http.NoBody)

	h.Search(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "UPSTREAM_UNAUTHORIZED")
}

func TestHealthHandler(t *testing.T) {
	ready := new(mocks.MockTariffService)
	ready.On("Countries").Return([]string{"CN,CHINA"})
	notReady := new(mocks.MockTariffService)
	notReady.On("Countries").Return([]string{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	handler.NewHealthHandler(ready).Liveness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	handler.NewHealthHandler(ready).Readiness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	handler.NewHealthHandler(notReady).Readiness(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
