package orders

import (
	"sort"
	"strings"

	"diplomacy-agent/internal/domain/entity"
)

// Review filters proposed orders against the engine's legal sets and
// hold-fills every location the proposals left unordered. Rejects are
// returned for diagnostics; they never reach the engine.
func Review(proposed []string, possible entity.PossibleOrders) (accepted, rejected []string) {
	used := make(map[string]bool)

	for _, order := range proposed {
		order = strings.TrimSpace(order)
		if order == "" {
			continue
		}
		key := ""
		if parts := strings.Fields(order); len(parts) >= 2 {
			key = provinceKey(parts[1])
		}
		if isPossible(order, possible) && !used[key] {
			accepted = append(accepted, order)
			used[key] = true
		} else {
			rejected = append(rejected, order)
		}
	}

	for _, location := range sortedLocations(possible) {
		options := possible[location]
		if len(options) == 0 || used[provinceKey(location)] {
			continue
		}
		accepted = append(accepted, holdOption(options))
	}

	return accepted, rejected
}

// Fallback is the order set used when a reply is unusable: one hold per
// location, or the first legal option where no hold exists.
func Fallback(possible entity.PossibleOrders) []string {
	var orders []string
	for _, location := range sortedLocations(possible) {
		options := possible[location]
		if len(options) > 0 {
			orders = append(orders, holdOption(options))
		}
	}
	return orders
}

func isPossible(order string, possible entity.PossibleOrders) bool {
	for _, options := range possible {
		for _, option := range options {
			if option == order {
				return true
			}
		}
	}
	return false
}

func holdOption(options []string) string {
	for _, option := range options {
		if strings.HasSuffix(option, " H") {
			return option
		}
	}
	return options[0]
}

// provinceKey truncates a location to its province, so "SPA/SC" and "SPA"
// count as the same place when checking which units already have orders.
func provinceKey(location string) string {
	location = strings.ToUpper(location)
	if len(location) > 3 {
		return location[:3]
	}
	return location
}

func sortedLocations(possible entity.PossibleOrders) []string {
	locations := make([]string, 0, len(possible))
	for location := range possible {
		locations = append(locations, location)
	}
	sort.Strings(locations)
	return locations
}
