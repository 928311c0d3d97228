package domain

// Service identity reported by the health endpoint and the API docs.
const (
	ServiceName  = "payments-service"
	ServiceTitle = "Payments Service"
	Version      = "0.1.0"
)

// StatusOK is the only status the liveness check ever reports.
const StatusOK = "ok"

// HealthResponse is the liveness check payload. Field order is the wire
// order: status first, then service.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// NewHealthResponse returns the fixed healthy payload.
func NewHealthResponse() HealthResponse {
	return HealthResponse{Status: StatusOK, Service: ServiceName}
}

// ErrorDetail is the envelope used for framework-level failures such as
// unknown routes or rejected methods.
type ErrorDetail struct {
	Detail string `json:"detail"`
}
