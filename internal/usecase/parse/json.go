package parse

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// Some models ignore the two-section format and answer with a JSON block
// instead, usually behind a "PARSABLE OUTPUT:" marker or a code fence. The
// salvage path recovers orders from those replies.

var (
	parsableRe   = regexp.MustCompile(`(?s)\*{0,2}PARSABLE OUTPUT:?\*{0,2}\s*(\{.*\})`)
	fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*\\n(.*?)\\n\\s*```")
	bareOrdersRe = regexp.MustCompile(`(?s)(\{[^{}]*"orders"\s*:\s*\[[^\]]*\][^{}]*\})`)

	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	lineCommentRe   = regexp.MustCompile(`(?m)//[^"\n]*$`)
)

// SalvageOrders scans a reply for a JSON object carrying an "orders" array.
// It reports false when nothing parseable is found.
func SalvageOrders(reply string) ([]string, bool) {
	for _, candidate := range jsonCandidates(reply) {
		var payload struct {
			Orders []string `json:"orders"`
		}
		if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
			if err := json.Unmarshal([]byte(cleanJSON(candidate)), &payload); err != nil {
				continue
			}
		}
		if len(payload.Orders) > 0 {
			return payload.Orders, true
		}
	}
	return nil, false
}

// ExtractObject pulls the first JSON object out of a reply that may wrap it
// in prose or a code fence. Used for state-update style replies.
func ExtractObject(reply string) (map[string]any, error) {
	for _, candidate := range jsonCandidates(reply) {
		var result map[string]any
		if err := json.Unmarshal([]byte(candidate), &result); err != nil {
			if err := json.Unmarshal([]byte(cleanJSON(candidate)), &result); err != nil {
				continue
			}
		}
		if len(result) > 0 {
			return result, nil
		}
	}
	return nil, errors.New("no JSON object found in reply")
}

func jsonCandidates(reply string) []string {
	var candidates []string

	if m := parsableRe.FindStringSubmatch(reply); m != nil {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}
	for _, m := range fencedJSONRe.FindAllStringSubmatch(reply, -1) {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}
	if m := bareOrdersRe.FindStringSubmatch(reply); m != nil {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}

	// Last resort: widest brace span in the whole reply.
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start != -1 && end > start {
		candidates = append(candidates, reply[start:end+1])
	}

	return candidates
}

// cleanJSON fixes the mistakes models make most: trailing commas, // comments
// and single quotes in place of double quotes.
func cleanJSON(s string) string {
	s = lineCommentRe.ReplaceAllString(s, "")
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	if !strings.Contains(s, `"`) {
		s = strings.ReplaceAll(s, "'", `"`)
	}
	return strings.TrimSpace(s)
}
