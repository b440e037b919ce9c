package models

import (
	"fmt"
	"strings"
	"time"

	dErrors "leadgen/pkg/domain-errors"
)

const (
	MinScore    = 60
	MaxScore    = 100
	MaxInsights = 4
)

// Lead is a synthesized sales lead. It is created once per generation
// and never mutated afterwards.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Industry  string    `json:"industry"`
	Score     int       `json:"score"`
	Insights  []string  `json:"insights"`
	CreatedAt time.Time `json:"timestamp"`
}

func (l *Lead) Tier() Tier {
	return TierFor(l.Score)
}

// Validate checks the record invariants: score range, at most MaxInsights
// distinct insights, and a local@domain email without whitespace.
func (l *Lead) Validate() error {
	if l == nil {
		return dErrors.New(dErrors.CodeInvariantViolation, "lead is required")
	}
	if l.ID == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "lead id is empty")
	}
	if l.Score < MinScore || l.Score > MaxScore {
		return dErrors.New(dErrors.CodeInvariantViolation,
			fmt.Sprintf("score %d outside [%d,%d]", l.Score, MinScore, MaxScore))
	}
	if len(l.Insights) > MaxInsights {
		return dErrors.New(dErrors.CodeInvariantViolation,
			fmt.Sprintf("%d insights exceeds limit of %d", len(l.Insights), MaxInsights))
	}
	seen := make(map[string]struct{}, len(l.Insights))
	for _, insight := range l.Insights {
		if _, dup := seen[insight]; dup {
			return dErrors.New(dErrors.CodeInvariantViolation, "duplicate insight: "+insight)
		}
		seen[insight] = struct{}{}
	}
	local, domain, ok := strings.Cut(l.Email, "@")
	if !ok || local == "" || domain == "" || strings.ContainsAny(l.Email, " \t\r\n") || strings.Contains(domain, "@") {
		return dErrors.New(dErrors.CodeInvariantViolation, "malformed email: "+l.Email)
	}
	return nil
}
