// Package factcheck holds the keyword-based claim classifier. It is a
// deterministic stand-in for an AI verification service: case-insensitive
// substring matching against fixed keyword sets, checked in priority order.
package factcheck

import "strings"

// Verdict is the classification of a submitted claim.
type Verdict struct {
	Result      string
	Confidence  int
	Explanation string
}

var rules = []struct {
	keywords    []string
	result      string
	confidence  int
	explanation string
}{
	{
		keywords:    []string{"fake", "false", "hoax"},
		result:      "false",
		confidence:  85,
		explanation: "This appears to contain false information based on available evidence.",
	},
	{
		keywords:    []string{"true", "verified", "confirmed"},
		result:      "true",
		confidence:  90,
		explanation: "This information appears to be accurate based on current evidence.",
	},
	{
		keywords:    []string{"partly", "some", "mixed"},
		result:      "partly-true",
		confidence:  70,
		explanation: "This claim contains some accurate information but may be missing context.",
	},
}

// Classify maps a claim to a verdict. The first matching keyword set wins;
// text with no match is reported as unverified. Length validation happens at
// the handler, not here.
func Classify(text string) Verdict {
	words := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(words, kw) {
				return Verdict{
					Result:      rule.result,
					Confidence:  rule.confidence,
					Explanation: rule.explanation,
				}
			}
		}
	}
	return Verdict{
		Result:      "unverified",
		Confidence:  75,
		Explanation: "This claim requires further verification from authoritative sources.",
	}
}
