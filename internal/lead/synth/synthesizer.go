// Package synth fabricates lead records from lookup pools and a random source.
package synth

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"leadgen/internal/lead/models"
	strutil "leadgen/pkg/platform/strings"
)

const (
	// DefaultIndustry fills in for an absent industry hint.
	DefaultIndustry = "Technology"

	defaultEmailTLD = "com"

	// extraInsightPicks are drawn with replacement, so they often collide
	// and dedupe leaves fewer than MaxInsights entries.
	extraInsightPicks = 2
)

const (
	highEngagementInsight     = "High engagement potential - actively seeking new solutions"
	industryExpansionInsight  = "Company is expanding their %s operations"
	moderateEngagementInsight = "Moderate engagement potential - open to innovation"
	recentGrowthInsight       = "Company shows signs of recent growth"
	emergingInsight           = "Emerging opportunity - needs nurturing"
	evaluationPhaseInsight    = "Company is in evaluation phase"
	roleAuthorityInsight      = "%s has decision-making authority in procurement"
	genericDecisionInsight    = "Decision-maker in key technology initiatives"
)

// Hints are the caller's optional targeting inputs.
type Hints struct {
	Industry string
	Role     string
}

func (h Hints) industry() string {
	if v := strings.TrimSpace(h.Industry); v != "" {
		return v
	}
	return DefaultIndustry
}

func (h Hints) role() string {
	return strings.TrimSpace(h.Role)
}

// Synthesizer builds lead records. It holds only immutable pools, so one
// instance can serve concurrent requests as long as each brings its own Source.
type Synthesizer struct {
	pools    Pools
	emailTLD string
}

type Option func(*Synthesizer)

// WithEmailTLD overrides the top-level domain appended to company email domains.
func WithEmailTLD(tld string) Option {
	return func(s *Synthesizer) {
		if tld = strings.Trim(strings.ToLower(tld), ". "); tld != "" {
			s.emailTLD = tld
		}
	}
}

// New validates and copies pools into a Synthesizer.
func New(pools Pools, opts ...Option) (*Synthesizer, error) {
	if err := pools.Validate(); err != nil {
		return nil, err
	}
	s := &Synthesizer{pools: pools.Clone(), emailTLD: defaultEmailTLD}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Pools returns a copy of the pools in use.
func (s *Synthesizer) Pools() Pools {
	return s.pools.Clone()
}

// Synthesize fabricates one lead. It never fails: absent hints fall back to
// defaults and every draw comes from src.
func (s *Synthesizer) Synthesize(src Source, hints Hints, now time.Time) *models.Lead {
	first := pick(src, s.pools.FirstNames)
	last := pick(src, s.pools.LastNames)
	company := pick(src, s.pools.CompanyPrefixes) + " " + pick(src, s.pools.CompanySuffixes)
	score := models.MinScore + src.IntN(models.MaxScore-models.MinScore+1)
	industry := hints.industry()

	return &models.Lead{
		ID:        newID(src),
		Name:      first + " " + last,
		Email:     s.email(first, last, company),
		Company:   company,
		Industry:  industry,
		Score:     score,
		Insights:  s.insights(src, industry, hints.role(), company, score),
		CreatedAt: now,
	}
}

// email renders first.last@company.tld, lowercased with whitespace removed.
func (s *Synthesizer) email(first, last, company string) string {
	domain := strings.Join(strings.Fields(company), "")
	return strings.ToLower(first + "." + last + "@" + domain + "." + s.emailTLD)
}

func (s *Synthesizer) insights(src Source, industry, role, company string, score int) []string {
	out := make([]string, 0, 3+extraInsightPicks)

	switch models.TierFor(score) {
	case models.TierHigh:
		out = append(out, highEngagementInsight, fmt.Sprintf(industryExpansionInsight, strings.ToLower(industry)))
	case models.TierModerate:
		out = append(out, moderateEngagementInsight, recentGrowthInsight)
	default:
		out = append(out, emergingInsight, evaluationPhaseInsight)
	}

	if role != "" {
		out = append(out, fmt.Sprintf(roleAuthorityInsight, role))
	} else {
		out = append(out, genericDecisionInsight)
	}

	for range extraInsightPicks {
		out = append(out, strings.ReplaceAll(pick(src, s.pools.Insights), CompanyPlaceholder, company))
	}

	return strutil.Truncate(strutil.Dedupe(out), models.MaxInsights)
}

func newID(src Source) string {
	id, err := uuid.NewRandomFromReader(sourceReader{src: src})
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
