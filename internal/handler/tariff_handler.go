package handler

import (
	"bytes"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"customsduty/internal/config"
	"customsduty/internal/duty"
	"customsduty/internal/export"
	"customsduty/internal/service"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

// TariffHandler handles tariff lookup, export and duty computation endpoints.
type TariffHandler struct {
	tariffService service.TariffService
	defaults      config.LookupConfig
}

// NewTariffHandler creates a new TariffHandler.
func NewTariffHandler(tariffService service.TariffService, defaults config.LookupConfig) *TariffHandler {
	return &TariffHandler{tariffService: tariffService, defaults: defaults}
}

// Lookup handles POST /api/v1/tariff
// @Summary Look up tariff data and duties
// @Description Fetch tariff lines, compliance requirements and the computed duty table for each HSN code. A code whose duty payloads are malformed carries an error instead of duties.
// @Tags tariff
// @Accept json
// @Produce json
// @Param request body TariffRequest true "Codes, country and valuation"
// @Success 200 {object} Response{data=[]service.CodeReport} "Reports in request order"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 502 {object} ErrorResponseBody "Upstream unavailable"
// @Router /tariff [post]
func (h *TariffHandler) Lookup(c *gin.Context) {
	req, ok := h.bindLookup(c)
	if !ok {
		return
	}

	reports, err := h.tariffService.Lookup(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, reports)
}

// Export handles POST /api/v1/tariff/export
// @Summary Export duty tables
// @Description Compute duties for each HSN code and download them as an XLSX workbook (one sheet per code) or a CSV file.
// @Tags tariff
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param request body TariffRequest true "Codes, country and valuation"
// @Param format query string false "xlsx (default) or csv"
// @Success 200 {file} file "Spreadsheet download"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 502 {object} ErrorResponseBody "Upstream unavailable"
// @Router /tariff/export [post]
func (h *TariffHandler) Export(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", "xlsx"))
	if format != "xlsx" && format != "csv" {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be xlsx or csv")
		return
	}

	req, ok := h.bindLookup(c)
	if !ok {
		return
	}

	reports, err := h.tariffService.Lookup(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	sheets := make([]export.Sheet, 0, len(reports))
	codes := make([]string, 0, len(reports))
	for _, r := range reports {
		sheets = append(sheets, export.Sheet{Name: r.CTH, Result: r.Duties, Error: r.Error})
		codes = append(codes, r.CTH)
	}

	var buf bytes.Buffer
	contentType := contentTypeXLSX
	if format == "csv" {
		contentType = contentTypeCSV
		err = export.WriteCSV(&buf, sheets)
	} else {
		err = export.WriteWorkbook(&buf, sheets)
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.BuildFilename(codes, format)+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// Compute handles POST /api/v1/duty/compute
// @Summary Compute duties from supplied payloads
// @Description Run the duty engine on caller-supplied tariff, effective and notification payloads without contacting ICEGATE.
// @Tags duty
// @Accept json
// @Produce json
// @Param request body ComputeRequest true "Inputs and raw payloads"
// @Success 200 {object} Response{data=duty.Result} "Duty table"
// @Failure 400 {object} ErrorResponseBody "Invalid request or payload"
// @Router /duty/compute [post]
func (h *TariffHandler) Compute(c *gin.Context) {
	var req ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	res, err := h.tariffService.Compute(c.Request.Context(), duty.Input{
		CTH:             strings.TrimSpace(req.CTH),
		Country:         req.Country,
		AssessableValue: requestNumber(req.AssessableValue, 0),
		Quantity:        requestNumber(req.Quantity, 0),
		Notification:    requestText(req.SelectedBCDNotn),
		Serial:          requestText(req.SelectedBCDSlno),
		Payloads:        req.Payloads,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}

// Countries handles GET /api/v1/countries
// @Summary List or resolve countries of origin
// @Description Without q, list the reference "CODE,NAME" entries. With q, resolve a code or name to its entry (CN,CHINA when unknown).
// @Tags tariff
// @Produce json
// @Param q query string false "Country code or name"
// @Success 200 {object} Response{data=[]string} "Reference list"
// @Success 200 {object} Response{data=CountryResponse} "Resolved country"
// @Router /countries [get]
func (h *TariffHandler) Countries(c *gin.Context) {
	if q, ok := c.GetQuery("q"); ok {
		RespondOK(c, CountryResponse{Country: h.tariffService.ResolveCountry(q)})
		return
	}
	RespondOK(c, h.tariffService.Countries())
}

// bindLookup applies the request-layer defaults. Lookup valuations are whole
// numbers; fractional input is truncated.
func (h *TariffHandler) bindLookup(c *gin.Context) (service.LookupRequest, bool) {
	var req TariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return service.LookupRequest{}, false
	}
	return service.LookupRequest{
		HSNCodes:        req.HSNCodes,
		Country:         req.Country,
		AssessableValue: math.Trunc(requestNumber(req.AssessableValue, h.defaults.DefaultAssessableValue)),
		Quantity:        math.Trunc(requestNumber(req.Quantity, h.defaults.DefaultQuantity)),
		Notification:    requestText(req.SelectedBCDNotn),
		Serial:          requestText(req.SelectedBCDSlno),
	}, true
}

// requestNumber coerces a loosely typed request value to a number. Absent,
// empty or unparseable values yield def.
func requestNumber(v any, def float64) float64 {
	if v == nil {
		return def
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return def
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

func requestText(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}
