package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"leadgen/internal/lead/models"
	"leadgen/internal/lead/service"
	dErrors "leadgen/pkg/domain-errors"
)

// MaxExportLeads caps the leads accepted by one export request.
const MaxExportLeads = 1000

// GenerateLeadsRequest is the body of POST /api/generate-leads. Every
// field is optional.
type GenerateLeadsRequest struct {
	Industry string `json:"industry"`
	Role     string `json:"role"`
	Location string `json:"location"`
	// Count accepts any whole-valued JSON number, so 3.0 and 1e2 are counts.
	Count *json.Number `json:"count"`

	count *int
}

// Validate resolves Count. Magnitudes past the int32 range saturate; the
// service caps them anyway.
func (r *GenerateLeadsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Count == nil {
		r.count = nil
		return nil
	}
	n, err := parseCount(*r.Count)
	if err != nil {
		return err
	}
	r.count = &n
	return nil
}

func parseCount(num json.Number) (int, error) {
	f, err := strconv.ParseFloat(num.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("count %q is not a number", num))
	}
	if math.IsNaN(f) || f != math.Trunc(f) {
		return 0, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("count %s is not a whole number", num))
	}
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32, nil
	case f < math.MinInt32:
		return math.MinInt32, nil
	default:
		return int(f), nil
	}
}

func (r *GenerateLeadsRequest) Normalize() {
	if r == nil {
		return
	}
	r.Industry = strings.TrimSpace(r.Industry)
	r.Role = strings.TrimSpace(r.Role)
	r.Location = strings.TrimSpace(r.Location)
}

func (r *GenerateLeadsRequest) ToCommand() *service.GenerateCommand {
	return &service.GenerateCommand{
		Industry: r.Industry,
		Role:     r.Role,
		Location: r.Location,
		Count:    r.count,
	}
}

// ExportLeadsRequest is the body of POST /api/leads/export: leads exactly
// as a generate response returned them.
type ExportLeadsRequest struct {
	Leads []LeadResponse `json:"leads"`
}

func (r *ExportLeadsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if len(r.Leads) > MaxExportLeads {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("cannot export more than %d leads", MaxExportLeads))
	}
	for i, l := range r.Leads {
		if _, err := time.Parse(time.RFC3339Nano, l.Timestamp); err != nil {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("leads[%d].timestamp must be an ISO-8601 instant", i))
		}
	}
	return nil
}

// ToModels converts validated export rows back into lead records.
func (r *ExportLeadsRequest) ToModels() []*models.Lead {
	leads := make([]*models.Lead, 0, len(r.Leads))
	for _, l := range r.Leads {
		// Validate already rejected unparsable timestamps.
		created, _ := time.Parse(time.RFC3339Nano, l.Timestamp)
		leads = append(leads, &models.Lead{
			ID:        l.ID,
			Name:      l.Name,
			Email:     l.Email,
			Company:   l.Company,
			Industry:  l.Industry,
			Score:     l.Score,
			Insights:  l.Insights,
			CreatedAt: created,
		})
	}
	return leads
}
