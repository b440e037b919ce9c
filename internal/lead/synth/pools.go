package synth

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	dErrors "leadgen/pkg/domain-errors"
)

// CompanyPlaceholder marks where an insight template takes the company name.
const CompanyPlaceholder = "{company}"

// Pools holds the lookup tables a Synthesizer draws from.
type Pools struct {
	FirstNames      []string `yaml:"first_names"`
	LastNames       []string `yaml:"last_names"`
	CompanyPrefixes []string `yaml:"company_prefixes"`
	CompanySuffixes []string `yaml:"company_suffixes"`
	Insights        []string `yaml:"insights"`
}

// DefaultPools returns a fresh copy of the built-in reference pools.
func DefaultPools() Pools {
	return Pools{
		FirstNames:      slices.Clone(defaultFirstNames),
		LastNames:       slices.Clone(defaultLastNames),
		CompanyPrefixes: slices.Clone(defaultCompanyPrefixes),
		CompanySuffixes: slices.Clone(defaultCompanySuffixes),
		Insights:        slices.Clone(defaultInsights),
	}
}

// Clone returns a deep copy so callers cannot mutate a synthesizer's pools.
func (p Pools) Clone() Pools {
	return Pools{
		FirstNames:      slices.Clone(p.FirstNames),
		LastNames:       slices.Clone(p.LastNames),
		CompanyPrefixes: slices.Clone(p.CompanyPrefixes),
		CompanySuffixes: slices.Clone(p.CompanySuffixes),
		Insights:        slices.Clone(p.Insights),
	}
}

// Sizes reports how many entries each pool holds, keyed by YAML name.
func (p Pools) Sizes() map[string]int {
	return map[string]int{
		"first_names":      len(p.FirstNames),
		"last_names":       len(p.LastNames),
		"company_prefixes": len(p.CompanyPrefixes),
		"company_suffixes": len(p.CompanySuffixes),
		"insights":         len(p.Insights),
	}
}

// Validate rejects empty pools. Name and company parts must be ASCII
// letters only, since they are lowercased straight into email addresses.
func (p Pools) Validate() error {
	wordPools := []struct {
		name   string
		values []string
	}{
		{"first_names", p.FirstNames},
		{"last_names", p.LastNames},
		{"company_prefixes", p.CompanyPrefixes},
		{"company_suffixes", p.CompanySuffixes},
	}
	for _, wp := range wordPools {
		if len(wp.values) == 0 {
			return dErrors.New(dErrors.CodeInvalidInput, wp.name+" pool is empty")
		}
		for _, v := range wp.values {
			if !isLetters(v) {
				return dErrors.New(dErrors.CodeInvalidInput,
					fmt.Sprintf("%s entry %q must contain only ASCII letters", wp.name, v))
			}
		}
	}

	if len(p.Insights) == 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "insights pool is empty")
	}
	for _, v := range p.Insights {
		if strings.TrimSpace(v) == "" {
			return dErrors.New(dErrors.CodeInvalidInput, "insights pool contains a blank entry")
		}
	}
	return nil
}

// ParsePools decodes YAML pools. Lists the document leaves out keep their
// default values.
func ParsePools(data []byte) (Pools, error) {
	pools := DefaultPools()
	var doc Pools
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Pools{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "parse pools: "+err.Error())
	}

	override(&pools.FirstNames, doc.FirstNames)
	override(&pools.LastNames, doc.LastNames)
	override(&pools.CompanyPrefixes, doc.CompanyPrefixes)
	override(&pools.CompanySuffixes, doc.CompanySuffixes)
	override(&pools.Insights, doc.Insights)

	if err := pools.Validate(); err != nil {
		return Pools{}, err
	}
	return pools, nil
}

// LoadPools reads pools from a YAML file. An empty path yields the defaults.
func LoadPools(path string) (Pools, error) {
	if path == "" {
		return DefaultPools(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Pools{}, dErrors.Wrap(err, dErrors.CodeNotFound, "pools file not found: "+path)
		}
		return Pools{}, dErrors.Wrap(err, dErrors.CodeInternal, "read pools file: "+path)
	}
	return ParsePools(data)
}

// MarshalDocument renders pools as a YAML document, the same shape ParsePools reads.
func (p Pools) MarshalDocument() ([]byte, error) {
	return yaml.Marshal(p)
}

func override(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
