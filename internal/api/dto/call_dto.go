package dto

import (
	"time"

	"github.com/helpdesk-br/chamados-api/internal/domain"
)

// OpenCallRequest payload for opening a support call.
type OpenCallRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Sector      string `json:"sector"`
	Description string `json:"description"`
}

// CallResponse is a single call record as exposed by list endpoints. Field
// names mirror the public API contract.
type CallResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Sector      string    `json:"sector"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Deadline    time.Time `json:"deadline"`
}

// NewCallResponse maps a domain call to its API shape.
func NewCallResponse(call domain.Call) CallResponse {
	return CallResponse{
		ID:          call.ID,
		Name:        call.Name,
		Email:       call.Email,
		Sector:      call.Sector,
		Description: call.Description,
		CreatedAt:   call.CreatedAt,
		Deadline:    call.Deadline,
	}
}

// NewCallListResponse maps a slice of calls, always returning a non-nil
// slice so empty listings serialize as [] rather than null.
func NewCallListResponse(calls []domain.Call) []CallResponse {
	result := make([]CallResponse, 0, len(calls))
	for _, call := range calls {
		result = append(result, NewCallResponse(call))
	}
	return result
}
