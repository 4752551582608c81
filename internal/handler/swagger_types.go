package handler

import (
	"customsduty/internal/duty"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// TariffRequest represents the tariff lookup and export request body.
// Numeric fields accept numbers or numeric strings; empty or invalid values
// fall back to the configured defaults.
type TariffRequest struct {
	HSNCodes        []string `json:"hsn_codes" example:"10019910,21011130"`
	Country         string   `json:"country" example:"CHINA"`
	AssessableValue any      `json:"assessable_value" swaggertype:"number" example:"100000"`
	Quantity        any      `json:"quantity" swaggertype:"number" example:"100"`
	SelectedBCDNotn any      `json:"selected_bcd_notn" swaggertype:"string" example:"005/2017"`
	SelectedBCDSlno any      `json:"selected_bcd_slno" swaggertype:"string" example:"1"`
}

// ComputeRequest represents an offline duty computation on supplied payloads.
type ComputeRequest struct {
	CTH             string        `json:"cth_code" example:"85171300"`
	Country         string        `json:"country" example:"CN"`
	AssessableValue any           `json:"assessable_value" swaggertype:"number" example:"100000"`
	Quantity        any           `json:"quantity" swaggertype:"number" example:"1"`
	SelectedBCDNotn any           `json:"selected_bcd_notn" swaggertype:"string" example:"057/2017"`
	SelectedBCDSlno any           `json:"selected_bcd_slno" swaggertype:"string" example:"3"`
	Payloads        duty.Payloads `json:"payloads"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"no reference countries configured"`
}

// CountryResponse represents a resolved country.
type CountryResponse struct {
	Country string `json:"country" example:"CN,CHINA"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
