package phase

import "math"

// FitPowerLaw fits order ≈ (density - critical)^Exponent by ordinary
// least squares over the log-transformed pairs
//
//	x = log(density - critical), y = log(order)
//
// for every sample with density strictly above critical and a strictly
// positive order parameter. Samples at or below the critical density,
// or with zero order, carry no usable log point and are skipped.
//
// Returns ok=false when fewer than 3 usable points exist — a fit over
// less would be noise dressed as a number.
func FitPowerLaw(samples []Sample, critical float64) (Fit, bool) {
	var xs, ys []float64
	for _, s := range samples {
		offset := s.Density - critical
		if offset <= 0 || s.Order <= 0 {
			continue
		}
		xs = append(xs, math.Log(offset))
		ys = append(ys, math.Log(s.Order))
	}
	n := len(xs)
	if n < minFitPoints {
		return Fit{}, false
	}

	// Plain OLS: slope = cov(x,y)/var(x), intercept = ȳ - slope·x̄.
	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/float64(n), sumY/float64(n)

	var cov, varX float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		cov += dx * (ys[i] - meanY)
		varX += dx * dx
	}
	if varX == 0 {
		// All usable points share one density offset; no slope exists.
		return Fit{}, false
	}

	slope := cov / varX
	return Fit{
		Exponent:  slope,
		Intercept: meanY - slope*meanX,
		Points:    n,
	}, true
}

// DetectHysteresis compares the density at the first phase transition of
// an ascending sample sweep against that of a descending one. Returns
// ok=false when either sweep contains no transition at all; otherwise
// the report's Hysteretic flag is set when the two transition densities
// differ by more than HysteresisWidth.
func DetectHysteresis(ascending, descending []Sample) (Report, bool) {
	up := transitionsOf(ascending)
	down := transitionsOf(descending)
	if len(up) == 0 || len(down) == 0 {
		return Report{}, false
	}

	width := math.Abs(up[0].Density - down[0].Density)
	return Report{
		AscendingDensity:  up[0].Density,
		DescendingDensity: down[0].Density,
		Width:             width,
		Hysteretic:        width > HysteresisWidth,
	}, true
}
