package dto

// LogRideRequest is the POST /logRide payload.
type LogRideRequest struct {
	Points int64 `json:"points" binding:"required,min=1"`
}

// LogRideResponse reports running totals after a ride.
type LogRideResponse struct {
	Points int64  `json:"points"`
	Tier   string `json:"tier"`
}

// DashboardResponse is the account profile projection.
type DashboardResponse struct {
	Email  string `json:"email"`
	Points int64  `json:"points"`
	Tier   string `json:"tier"`
}

// HealthResponse is returned by GET /health when the store answers.
type HealthResponse struct {
	Status string `json:"status"`
}
