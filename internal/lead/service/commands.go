package service

import "strings"

const (
	// DefaultCount applies when a request omits the count.
	DefaultCount = 5
	// MaxCount caps a single batch.
	MaxCount = 20
)

// GenerateCommand is the transport-agnostic input for a batch generation.
type GenerateCommand struct {
	Industry string
	Role     string
	// Location is accepted for caller compatibility and does not influence
	// the generated records.
	Location string
	// Count is nil when the caller omitted it.
	Count *int
}

// EffectiveCount returns the number of leads to synthesize and whether the
// requested count had to be clamped. Omitted counts use DefaultCount, counts
// above MaxCount use MaxCount, and negative counts become zero.
func (c *GenerateCommand) EffectiveCount() (n int, clamped bool) {
	if c.Count == nil {
		return DefaultCount, false
	}
	switch requested := *c.Count; {
	case requested > MaxCount:
		return MaxCount, true
	case requested < 0:
		return 0, true
	default:
		return requested, false
	}
}

func (c *GenerateCommand) hasIndustry() bool { return strings.TrimSpace(c.Industry) != "" }
func (c *GenerateCommand) hasRole() bool     { return strings.TrimSpace(c.Role) != "" }
func (c *GenerateCommand) hasLocation() bool { return strings.TrimSpace(c.Location) != "" }
