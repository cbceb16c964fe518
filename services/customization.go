package services

import (
	"fmt"
	"sort"
	"strings"
)

// ExtraIngredientSurcharge is charged per unit above the recipe baseline.
// Dropping ingredients never reduces the price.
const ExtraIngredientSurcharge = 0.50

// CustomPrefix marks a line item whose counts differ from the recipe.
const CustomPrefix = "CUSTOM: "

// Surcharge computes the upcharge for the requested per-ingredient counts
// against the recipe baseline.
func Surcharge(baseline, counts map[uint]int) float64 {
	extras := 0
	for ingID, qty := range counts {
		if base := baseline[ingID]; qty > base {
			extras += qty - base
		}
	}
	return float64(extras) * ExtraIngredientSurcharge
}

// BuildCustomization renders the kitchen description for a line item:
// "2x Chocolate, 1x Graham Cracker", prefixed when anything deviates from the
// baseline. Ingredients with a zero count are omitted from the text but still
// count as a deviation when the baseline wanted them.
func BuildCustomization(baseline, counts map[uint]int, names map[uint]string) string {
	ids := make([]uint, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	isCustom := false
	seen := make(map[uint]bool, len(counts))
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		seen[id] = true
		if counts[id] != baseline[id] {
			isCustom = true
		}
		if counts[id] > 0 {
			parts = append(parts, fmt.Sprintf("%dx %s", counts[id], names[id]))
		}
	}
	// baseline ingredients absent from the request count as removed
	for id, base := range baseline {
		if base > 0 && !seen[id] {
			isCustom = true
		}
	}

	desc := strings.Join(parts, ", ")
	if isCustom && desc != "" {
		return CustomPrefix + desc
	}
	return desc
}
