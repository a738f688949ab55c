// Package parse turns free-text LLM replies into usable structures. It is
// stateless: every function is a pure transformation of its input.
package parse

import (
	"errors"
	"regexp"
	"strings"

	"diplomacy-agent/internal/domain/entity"
)

// ErrNoOrdersHeading is returned when a reply carries no recognizable
// orders heading and therefore cannot be split into sections.
var ErrNoOrdersHeading = errors.New("no orders heading in reply")

var (
	// A heading line: "ORDERS", "ORDERS:", "RETREAT ORDERS:", "**ORDERS:**",
	// optionally behind markdown #'s. Models render it all of these ways.
	headingRe   = regexp.MustCompile(`(?m)^[ \t]*(?:#+[ \t]*)?(?:\*\*)?[ \t]*(?:RETREAT[ \t]+)?ORDERS[ \t]*:?[ \t]*(?:\*\*)?[ \t]*$`)
	reasoningRe = regexp.MustCompile(`^\s*(?:#+[ \t]*)?(?:\*\*)?[ \t]*REASONING[ \t]*:?[ \t]*(?:\*\*)?[ \t]*`)
	bulletRe    = regexp.MustCompile(`^(?:[-*•][ \t]+|\d+[.)][ \t]+)`)
)

// Split divides a two-section reply into its reasoning segment (everything
// before the orders heading, with the REASONING label stripped) and its
// order lines (every non-empty line after the heading).
func Split(reply string) (entity.ParsedReply, error) {
	loc := headingRe.FindStringIndex(reply)
	if loc == nil {
		return entity.ParsedReply{}, ErrNoOrdersHeading
	}

	reasoning := strings.TrimSpace(reply[:loc[0]])
	reasoning = reasoningRe.ReplaceAllString(reasoning, "")
	reasoning = strings.TrimSpace(reasoning)

	return entity.ParsedReply{
		Reasoning: reasoning,
		Orders:    orderLines(reply[loc[1]:]),
	}, nil
}

func orderLines(segment string) []string {
	var orders []string
	for _, line := range strings.Split(segment, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		line = bulletRe.ReplaceAllString(line, "")
		line = strings.Trim(line, "`")
		line = strings.TrimSpace(line)
		if line != "" {
			orders = append(orders, line)
		}
	}
	return orders
}
