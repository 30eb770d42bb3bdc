package server

import "github.com/kinnective/jobextractor/internal/domain"

type validateRequest struct {
	RawText string `json:"raw_text" binding:"required"`
}

type validateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type extractRequest struct {
	RawText string `json:"raw_text" binding:"required"`
	// IncludeCompany defaults to true when omitted.
	IncludeCompany *bool `json:"include_company"`
}

type extractResponse struct {
	Success            bool                  `json:"success"`
	RequestID          string                `json:"request_id"`
	Job                *domain.JobRecord     `json:"job,omitempty"`
	Company            *domain.CompanyRecord `json:"company,omitempty"`
	CompanySynthesized bool                  `json:"company_synthesized,omitempty"`
}

type insertResponse struct {
	InsertedID string `json:"inserted_id"`
	Collection string `json:"collection"`
}

type collectionStatus struct {
	Exists    bool  `json:"exists"`
	Documents int64 `json:"documents"`
}

type storeHealthResponse struct {
	Connected   bool                        `json:"connected"`
	Message     string                      `json:"message"`
	Database    string                      `json:"database,omitempty"`
	Collections map[string]collectionStatus `json:"collections,omitempty"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
