// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from gonum/plot:
// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is an implementation of the Talbot, Lin and Hanrahan algorithm
// described in doi:10.1109/TVCG.2010.130 with reference to the R
// implementation in the labeling package, ©2014 Justin Talbot (Licensed
// MIT+file LICENSE|Unlimited).

package scale

import "math"

// labelEps is the tolerance used when matching labels to step multiples.
const labelEps = 100.0 / (1 << 52)

// niceQ are the nice step multipliers, most preferred first.
var niceQ = []float64{1, 5, 2, 2.5, 4, 3}

// labelWeights are the weights of the four labelling scores.
var labelWeights = struct{ simplicity, coverage, density, legibility float64 }{0.25, 0.2, 0.5, 0.05}

func labelScore(s, c, d, l float64) float64 {
	w := labelWeights
	return w.simplicity*s + w.coverage*c + w.density*d + w.legibility*l
}

// extendedLabels returns about want label values for the data range
// [dMin, dMax] and the step between them. When contain is set, the
// labels cover the whole data range. It returns nil for an invalid range.
func extendedLabels(dMin, dMax float64, want int, contain bool) ([]float64, float64) {
	if dMin > dMax || math.IsNaN(dMin) || math.IsNaN(dMax) || math.IsInf(dMax-dMin, 0) {
		return nil, 0
	}
	want = max(want, 2)
	if r := dMax - dMin; r < labelEps {
		return evenLabels(dMin, dMax, want)
	}

	type selection struct {
		n          int
		lMin, step float64
		score      float64
	}
	best := selection{score: -2}

outer:
	for skip := 1; ; skip++ {
		for qi, q := range niceQ {
			sm := maxSimplicity(qi, skip)
			if labelScore(sm, 1, 1, 1) < best.score {
				break outer
			}

			for have := 2; ; have++ {
				dm := maxDensity(have, want)
				if labelScore(sm, 1, dm, 1) < best.score {
					break
				}

				delta := (dMax - dMin) / float64(have+1) / float64(skip) / q

				const maxExp = 309
				for mag := int(math.Ceil(math.Log10(delta))); mag < maxExp; mag++ {
					step := float64(skip) * q * math.Pow10(mag)

					cm := maxCoverage(dMin, dMax, step*float64(have-1))
					if labelScore(sm, cm, dm, 1) < best.score {
						break
					}

					fracStep := step / float64(skip)
					kStep := step * float64(have-1)

					minStart := (math.Floor(dMax/step) - float64(have-1)) * float64(skip)
					maxStart := math.Ceil(dMax/step) * float64(skip)
					for start := minStart; start <= maxStart && start != start-1; start++ {
						lMin := start * fracStep
						lMax := lMin + kStep
						if contain && (dMin < lMin || lMax < dMax) {
							continue
						}
						score := labelScore(
							simplicity(qi, skip, lMin, lMax, step),
							coverage(dMin, dMax, lMin, lMax),
							density(have, want, dMin, dMax, lMin, lMax),
							1,
						)
						if score > best.score {
							best = selection{n: have, lMin: lMin, step: step, score: score}
						}
					}
				}
			}
		}
	}

	if best.score == -2 {
		return evenLabels(dMin, dMax, want)
	}
	l := make([]float64, best.n)
	for i := range l {
		l[i] = best.lMin + float64(i)*best.step
	}
	return l, best.step
}

// evenLabels divides [dMin, dMax] into want evenly spaced labels.
func evenLabels(dMin, dMax float64, want int) ([]float64, float64) {
	l := make([]float64, want)
	step := (dMax - dMin) / float64(want-1)
	for i := range l {
		l[i] = dMin + float64(i)*step
	}
	return l, step
}

// simplicity scores how well lMin, lMax and lStep match niceQ[qi] and skip.
func simplicity(qi, skip int, lMin, lMax, lStep float64) float64 {
	m := math.Mod(lMin, lStep)
	v := 0.0
	if (m < labelEps || lStep-m < labelEps) && lMin <= 0 && 0 <= lMax {
		v = 1
	}
	return 1 - float64(qi)/float64(len(niceQ)-1) - float64(skip) + v
}

func maxSimplicity(qi, skip int) float64 {
	return 1 - float64(qi)/float64(len(niceQ)-1) - float64(skip) + 1
}

// coverage scores the squared distance between the extreme
// labels and the extreme data values.
func coverage(dMin, dMax, lMin, lMax float64) float64 {
	r := 0.1 * (dMax - dMin)
	hi := dMax - lMax
	lo := dMin - lMin
	return 1 - 0.5*(hi*hi+lo*lo)/(r*r)
}

func maxCoverage(dMin, dMax, span float64) float64 {
	r := dMax - dMin
	if span <= r {
		return 1
	}
	h := 0.5 * (span - r)
	r *= 0.1
	return 1 - (h*h)/(r*r)
}

// density scores the label density against the wanted count.
func density(have, want int, dMin, dMax, lMin, lMax float64) float64 {
	rho := float64(have-1) / (lMax - lMin)
	rhot := float64(want-1) / (max(lMax, dMax) - min(dMin, lMin))
	if d := rho / rhot; d >= 1 {
		return 2 - d
	}
	return 2 - rhot/rho
}

func maxDensity(have, want int) float64 {
	if have < want {
		return 1
	}
	return 2 - float64(have-1)/float64(want-1)
}
