// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package strategies

// weight is one named factor weight.
type weight struct {
	name  string
	value float64
}

// weightedTotal sums breakdown[name]*value in table order.
func weightedTotal(breakdown map[string]float64, weights []weight) float64 {
	var total float64
	for _, w := range weights {
		total += breakdown[w.name] * w.value
	}
	return total
}

// weightMap copies a weight table into a map.
func weightMap(weights []weight) map[string]float64 {
	out := make(map[string]float64, len(weights))
	for _, w := range weights {
		out[w.name] = w.value
	}
	return out
}

// WeightedSumWeights returns the weighted sum factor weights.
func WeightedSumWeights() map[string]float64 {
	return weightMap(weightedSumWeights)
}

// RuleCascadeWeights returns the rule cascade feature importances.
func RuleCascadeWeights() map[string]float64 {
	return weightMap(ruleCascadeWeights)
}
