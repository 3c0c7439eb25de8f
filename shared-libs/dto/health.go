package dto

// HealthResponse describes the payload returned by standard /healthz endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// InvokeResponse wraps a handler result returned by the local invoke endpoint.
type InvokeResponse struct {
	RequestID string `json:"requestId"`
	Result    any    `json:"result"`
}
