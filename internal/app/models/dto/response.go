package dto

import "time"

// APIResponse is the standard envelope for successful responses.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse creates a success envelope around data.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// UpdateGradeRequest is the body of the grade-update operation.
type UpdateGradeRequest struct {
	Grade string `json:"grade" binding:"required" example:"A-"`
}

// ReportResponse wraps a rendered text report.
type ReportResponse struct {
	Report string `json:"report"`
}
