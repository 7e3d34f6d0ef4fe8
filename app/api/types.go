package api

// API response types

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type StatusResponse struct {
	Publishers     int    `json:"publishers"`
	Sources        int    `json:"sources"`
	DedupSize      int    `json:"dedup_size"`
	LastCycleStart string `json:"last_cycle_start,omitempty"`
	Consumers      int    `json:"consumers"`
}
