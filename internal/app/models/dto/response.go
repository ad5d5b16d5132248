package dto

// HealthResponse reports process and database liveness
type HealthResponse struct {
	Status   string    `json:"status" example:"ok"`
	Database string    `json:"database" example:"up"`
	Code     ErrorCode `json:"code,omitempty" example:"SRV_002"`
}
