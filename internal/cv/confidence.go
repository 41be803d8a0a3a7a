package cv

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Confidence describes how reliable an extracted entry is, based on the
// strategy that produced it. Deterministic patterns yield high or medium,
// the heuristic scan yields low, and AI-produced entries are always medium.
type Confidence int

const (
	ConfidenceUnknown Confidence = iota
	ConfidenceLow
	ConfidenceMedium
	ConfidenceHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "unknown"
	}
}

func (c Confidence) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Confidence) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseConfidence(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseConfidence converts a confidence label into its typed value.
func ParseConfidence(s string) (Confidence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return ConfidenceHigh, nil
	case "medium":
		return ConfidenceMedium, nil
	case "low":
		return ConfidenceLow, nil
	default:
		return ConfidenceUnknown, fmt.Errorf("unknown confidence %q", s)
	}
}

// WeakerOf returns the lower of two confidence levels. An entry produced by
// several steps carries the confidence of its weakest step.
func WeakerOf(a, b Confidence) Confidence {
	if a == ConfidenceUnknown {
		return b
	}
	if b == ConfidenceUnknown {
		return a
	}
	if a < b {
		return a
	}
	return b
}
