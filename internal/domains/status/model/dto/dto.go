package dto

// StatusResponse identifies the running service.
type StatusResponse struct {
	Authors    []string `json:"authors"`
	APIVersion string   `json:"api_version"`
}

// LiveResponse is the liveness payload. The process answering at all is the
// whole check.
type LiveResponse struct {
	Live bool `json:"live"`
}

type ReadyResponse struct {
	Ready bool `json:"ready"`
}

// HealthResponse aggregates liveness and readiness into one payload.
type HealthResponse struct {
	Live  bool `json:"live"`
	Ready bool `json:"ready"`
}
