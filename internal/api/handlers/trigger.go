package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/discogs-alert/internal/engine"
)

// Checker runs one alert check.
type Checker interface {
	RunCheck(ctx context.Context) (*engine.CheckResult, error)
}

// CheckHandler handles manual check trigger requests.
type CheckHandler struct {
	checker Checker
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(c Checker) *CheckHandler {
	return &CheckHandler{checker: c}
}

// CheckOutput is the response body for the check endpoint.
type CheckOutput struct {
	Body struct {
		Status string             `json:"status" example:"check completed" doc:"Check status"`
		Result engine.CheckResult `json:"result"                          doc:"Counts for the run"`
	}
}

// Check runs a full check synchronously and reports its counts.
func (h *CheckHandler) Check(ctx context.Context, _ *struct{}) (*CheckOutput, error) {
	res, err := h.checker.RunCheck(ctx)
	if err != nil {
		if errors.Is(err, engine.ErrCheckInProgress) {
			return nil, huma.Error409Conflict("a check is already running")
		}
		return nil, huma.Error500InternalServerError("check failed: " + err.Error())
	}

	resp := &CheckOutput{}
	resp.Body.Status = "check completed"
	resp.Body.Result = *res
	return resp, nil
}

// RegisterTriggerRoutes registers the check trigger with the Huma API.
func RegisterTriggerRoutes(api huma.API, h *CheckHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-check",
		Method:      http.MethodPost,
		Path:        "/api/v1/check",
		Summary:     "Trigger an alert check",
		Description: "Scrapes the marketplace for every watched release, applies the alert " +
			"rules and sends notifications for new matches.",
		Tags:   []string{"alerts"},
		Errors: []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Check)
}
