package extract

import (
	_ "embed"
	"os"

	mediumreader "github.com/abdukarimovhm/medium-reader"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// Rules holds the data-driven part of normalization: the boilerplate
// denylist and the truncation heuristics.
type Rules struct {
	// Boilerplate phrases mark short blocks as site chrome to be dropped.
	Boilerplate []string `yaml:"boilerplate"`

	// TruncationMarkers are matched case-insensitively against the raw
	// page to detect preview-only articles.
	TruncationMarkers []string `yaml:"truncation_markers"`

	// MinBodyRunes is the body-length threshold below which a body that
	// looks cut off is flagged as truncated.
	MinBodyRunes int `yaml:"min_body_runes"`

	// MaxBoilerplateRunes bounds the length of blocks eligible for
	// boilerplate matching.
	MaxBoilerplateRunes int `yaml:"max_boilerplate_runes"`
}

// DefaultRules returns the embedded rule set.
func DefaultRules() Rules {
	var r Rules
	if err := yaml.Unmarshal(defaultRulesYAML, &r); err != nil {
		// The embedded document is covered by tests; failing to parse it
		// is a build defect, not a runtime condition.
		panic(err)
	}
	return r
}

// LoadRules reads a YAML rules file, overlaying it on the defaults so a
// user file only needs the keys it changes.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, mediumreader.Errorf(mediumreader.EINTERNAL, "read rules file: %v", err)
	}

	r := DefaultRules()
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, mediumreader.Errorf(mediumreader.EINVALID, "parse rules file: %v", err)
	}
	return r, nil
}
