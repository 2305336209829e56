// Package handlers implements the HTTP handlers for the discogs-alert
// server: health checks on plain Echo routes and the JSON API on Huma.
package handlers

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
