package handler

import (
	"fmt"

	"leadgen/internal/lead/export"
	"leadgen/internal/lead/models"
)

// FailureMessage is the only error text a failed generation exposes.
const FailureMessage = "Failed to generate leads"

// LeadResponse is the wire form of a lead record.
type LeadResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Company   string   `json:"company"`
	Industry  string   `json:"industry"`
	Score     int      `json:"score"`
	Insights  []string `json:"insights"`
	Timestamp string   `json:"timestamp"`
}

type GenerateLeadsResponse struct {
	Success bool           `json:"success"`
	Leads   []LeadResponse `json:"leads"`
	Message string         `json:"message"`
}

type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ToGenerateLeadsResponse builds the success payload. Leads is never nil so
// an empty batch serializes as [].
func ToGenerateLeadsResponse(leads []*models.Lead) *GenerateLeadsResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadResponse(l))
	}
	return &GenerateLeadsResponse{
		Success: true,
		Leads:   out,
		Message: fmt.Sprintf("Generated %d qualified leads", len(out)),
	}
}

func toLeadResponse(l *models.Lead) LeadResponse {
	insights := l.Insights
	if insights == nil {
		insights = []string{}
	}
	return LeadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Company:   l.Company,
		Industry:  l.Industry,
		Score:     l.Score,
		Insights:  insights,
		Timestamp: export.FormatTimestamp(l.CreatedAt),
	}
}

func newFailureResponse() *FailureResponse {
	return &FailureResponse{Success: false, Error: FailureMessage}
}
