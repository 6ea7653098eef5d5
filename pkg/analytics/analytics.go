// Package analytics holds the per-word corpus statistics used in datasets.
package analytics

import (
	"math"
)

// PerMillion is the OPM scale.
const PerMillion = 1_000_000

// Analytics computes frequency and divergence metrics for one build.
type Analytics struct {
	// RatioSmooth is the additive constant for the smoothed ratio (0.5 is Jeffreys).
	RatioSmooth float64
	// MinAICount gates the log prevalence ratio; rarer words get 0.
	MinAICount float64
}

// OPM returns occurrences per million tokens. Zero tokens give zero.
func OPM(count, tokens float64) float64 {
	if tokens <= 0 || count <= 0 {
		return 0
	}
	return count / tokens * PerMillion
}

// WindowLikelihood estimates the probability that a word with count occurrences
// in a text of tokens tokens shows up at least once in a random window of k tokens.
//
// Texts shorter than k are a single window, so any occurrence means certainty.
func WindowLikelihood(count, tokens float64, k int) float64 {
	if tokens <= 0 || count <= 0 || k <= 0 {
		return 0
	}
	if tokens < float64(k) {
		return 1
	}
	p := count / tokens
	if p >= 1 {
		return 1
	}
	// 1 - (1-p)^k, computed in log space to keep precision for small p
	return -math.Expm1(float64(k) * math.Log1p(-p))
}

// LAS is the signed difference between AI and human window likelihoods.
func LAS(aiCount, aiTokens, humanCount, humanTokens float64, k int) float64 {
	return WindowLikelihood(aiCount, aiTokens, k) - WindowLikelihood(humanCount, humanTokens, k)
}

// Ratio returns aiOPM / humanOPM. ok is false when humanOPM is zero.
func Ratio(aiOPM, humanOPM float64) (ratio float64, ok bool) {
	if humanOPM == 0 {
		return 0, false
	}
	return aiOPM / humanOPM, true
}

// SmoothedRatio is (aiCount + s) / (humanCount + s) on raw counts.
func (a *Analytics) SmoothedRatio(aiCount, humanCount float64) float64 {
	return (aiCount + a.RatioSmooth) / (humanCount + a.RatioSmooth)
}

// LPR is the log2 prevalence ratio log2((ai+1)/(human+1)), or 0 below MinAICount.
func (a *Analytics) LPR(aiCount, humanCount float64) float64 {
	if aiCount < a.MinAICount {
		return 0
	}
	return math.Log2((aiCount + 1) / (humanCount + 1))
}
