package synth

import (
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadgen/internal/lead/models"
)

var emailPattern = regexp.MustCompile(`^[a-z]+\.[a-z]+@[a-z]+\.com$`)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// scoreSource yields the given score for the score draw and index 0 for
// every other draw.
type scoreSource struct {
	score int
}

func (s scoreSource) IntN(n int) int {
	if n == models.MaxScore-models.MinScore+1 {
		return s.score - models.MinScore
	}
	return 0
}

func newSynth(t *testing.T, pools Pools, opts ...Option) *Synthesizer {
	t.Helper()
	s, err := New(pools, opts...)
	require.NoError(t, err)
	return s
}

func TestSynthesize_Invariants(t *testing.T) {
	s := newSynth(t, DefaultPools())
	src := NewSeededSource(7)

	for range 1000 {
		lead := s.Synthesize(src, Hints{}, fixedNow)

		require.NoError(t, lead.Validate())
		assert.GreaterOrEqual(t, lead.Score, models.MinScore)
		assert.LessOrEqual(t, lead.Score, models.MaxScore)
		assert.LessOrEqual(t, len(lead.Insights), models.MaxInsights)
		assert.Len(t, lead.Insights, len(dedupe(lead.Insights)))
		assert.Regexp(t, emailPattern, lead.Email)
		assert.Len(t, strings.Fields(lead.Name), 2)
		assert.Len(t, strings.Fields(lead.Company), 2)
		assert.Equal(t, DefaultIndustry, lead.Industry)
		assert.Equal(t, fixedNow, lead.CreatedAt)

		_, err := uuid.Parse(lead.ID)
		assert.NoError(t, err)
	}
}

func TestSynthesize_ScoreCoversRange(t *testing.T) {
	s := newSynth(t, DefaultPools())
	src := NewSeededSource(11)

	seen := make(map[int]bool)
	for range 5000 {
		seen[s.Synthesize(src, Hints{}, fixedNow).Score] = true
	}

	assert.True(t, seen[models.MinScore], "expected floor score to appear")
	assert.True(t, seen[models.MaxScore], "expected ceiling score to appear")
	assert.Len(t, seen, models.MaxScore-models.MinScore+1)
}

func TestSynthesize_EmailUsesRecordCompany(t *testing.T) {
	s := newSynth(t, DefaultPools())
	src := NewSeededSource(3)

	for range 200 {
		lead := s.Synthesize(src, Hints{}, fixedNow)
		first, last, _ := strings.Cut(lead.Name, " ")
		want := strings.ToLower(first + "." + last + "@" + strings.ReplaceAll(lead.Company, " ", "") + ".com")
		assert.Equal(t, want, lead.Email)
	}
}

func TestSynthesize_InsightTiers(t *testing.T) {
	pools := DefaultPools()
	pools.Insights = []string{"Previous vendor contracts expiring soon"}
	s := newSynth(t, pools)

	tests := []struct {
		name  string
		score int
		hints Hints
		want  []string
	}{
		{
			name:  "high tier interpolates lowercased industry",
			score: 80,
			hints: Hints{Industry: "Healthcare", Role: "CTO"},
			want: []string{
				"High engagement potential - actively seeking new solutions",
				"Company is expanding their healthcare operations",
				"CTO has decision-making authority in procurement",
				"Previous vendor contracts expiring soon",
			},
		},
		{
			name:  "high tier without industry uses fallback",
			score: 100,
			want: []string{
				"High engagement potential - actively seeking new solutions",
				"Company is expanding their technology operations",
				"Decision-maker in key technology initiatives",
				"Previous vendor contracts expiring soon",
			},
		},
		{
			name:  "moderate tier",
			score: 79,
			hints: Hints{Role: "VP of Sales"},
			want: []string{
				"Moderate engagement potential - open to innovation",
				"Company shows signs of recent growth",
				"VP of Sales has decision-making authority in procurement",
				"Previous vendor contracts expiring soon",
			},
		},
		{
			name:  "moderate tier floor",
			score: 70,
			want: []string{
				"Moderate engagement potential - open to innovation",
				"Company shows signs of recent growth",
				"Decision-maker in key technology initiatives",
				"Previous vendor contracts expiring soon",
			},
		},
		{
			name:  "emerging tier",
			score: 69,
			hints: Hints{Industry: "Retail"},
			want: []string{
				"Emerging opportunity - needs nurturing",
				"Company is in evaluation phase",
				"Decision-maker in key technology initiatives",
				"Previous vendor contracts expiring soon",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := s.Synthesize(scoreSource{score: tt.score}, tt.hints, fixedNow)
			assert.Equal(t, tt.score, lead.Score)
			assert.Equal(t, tt.want, lead.Insights)
		})
	}
}

func TestSynthesize_DuplicateExtrasShrinkInsights(t *testing.T) {
	pools := DefaultPools()
	pools.Insights = []string{"Company is in evaluation phase"}
	s := newSynth(t, pools)

	lead := s.Synthesize(scoreSource{score: 60}, Hints{}, fixedNow)

	assert.Equal(t, []string{
		"Emerging opportunity - needs nurturing",
		"Company is in evaluation phase",
		"Decision-maker in key technology initiatives",
	}, lead.Insights)
}

func TestSynthesize_CompanyPlaceholder(t *testing.T) {
	pools := Pools{
		FirstNames:      []string{"Rachel"},
		LastNames:       []string{"Lee"},
		CompanyPrefixes: []string{"Nexus"},
		CompanySuffixes: []string{"Labs"},
		Insights:        []string{CompanyPlaceholder + " recently raised funding for expansion"},
	}
	s := newSynth(t, pools)

	lead := s.Synthesize(scoreSource{score: 75}, Hints{}, fixedNow)

	assert.Equal(t, "Rachel Lee", lead.Name)
	assert.Equal(t, "Nexus Labs", lead.Company)
	assert.Equal(t, "rachel.lee@nexuslabs.com", lead.Email)
	assert.Contains(t, lead.Insights, "Nexus Labs recently raised funding for expansion")
}

func TestSynthesize_HintsAreTrimmed(t *testing.T) {
	s := newSynth(t, DefaultPools())

	lead := s.Synthesize(scoreSource{score: 90}, Hints{Industry: "  Fintech ", Role: "   "}, fixedNow)

	assert.Equal(t, "Fintech", lead.Industry)
	assert.Contains(t, lead.Insights, "Company is expanding their fintech operations")
	assert.Contains(t, lead.Insights, "Decision-maker in key technology initiatives")
}

func TestSynthesize_SeededIsReproducible(t *testing.T) {
	s := newSynth(t, DefaultPools())

	a := s.Synthesize(NewSeededSource(42), Hints{Industry: "Energy"}, fixedNow)
	b := s.Synthesize(NewSeededSource(42), Hints{Industry: "Energy"}, fixedNow)

	assert.Equal(t, a, b)
}

func TestSynthesize_IDsUniqueWithinBatch(t *testing.T) {
	s := newSynth(t, DefaultPools())
	src := NewSource()

	ids := make(map[string]struct{})
	for range 20 {
		ids[s.Synthesize(src, Hints{}, fixedNow).ID] = struct{}{}
	}
	assert.Len(t, ids, 20)
}

func TestSynthesize_ConcurrentSources(t *testing.T) {
	s := newSynth(t, DefaultPools())

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			src := NewSeededSource(seed)
			for range 50 {
				assert.NoError(t, s.Synthesize(src, Hints{Role: "CEO"}, fixedNow).Validate())
			}
		}(uint64(i))
	}
	wg.Wait()
}

func TestWithEmailTLD(t *testing.T) {
	s := newSynth(t, DefaultPools(), WithEmailTLD(".IO"))
	lead := s.Synthesize(NewSeededSource(1), Hints{}, fixedNow)
	assert.True(t, strings.HasSuffix(lead.Email, ".io"), lead.Email)

	unchanged := newSynth(t, DefaultPools(), WithEmailTLD("  "))
	assert.Regexp(t, emailPattern, unchanged.Synthesize(NewSeededSource(1), Hints{}, fixedNow).Email)
}

func TestNew_RejectsInvalidPools(t *testing.T) {
	pools := DefaultPools()
	pools.LastNames = nil

	_, err := New(pools)
	assert.Error(t, err)
}

func TestSynthesizer_PoolsAreCopied(t *testing.T) {
	pools := DefaultPools()
	s := newSynth(t, pools)

	pools.FirstNames[0] = "Mutated"
	got := s.Pools()
	got.LastNames[0] = "Mutated"

	assert.NotEqual(t, "Mutated", s.Pools().FirstNames[0])
	assert.NotEqual(t, "Mutated", s.Pools().LastNames[0])
}

func dedupe(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}
