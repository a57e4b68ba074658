package mathx

import "sort"

// Distribution1D is a piecewise-constant probability distribution built
// from non-negative weights, grounded on Core/Math/Distribution.cpp. It
// supports discrete importance sampling via binary search on the CDF,
// used by scene.Environment to importance-sample an environment texture
// by luminance.
type Distribution1D struct {
	funcValues   []float32
	cdf          []float32
	funcIntegral float32
}

// NewDistribution1D builds the CDF from weights. Weights may be zero but
// must not be negative or empty.
func NewDistribution1D(weights []float32) *Distribution1D {
	n := len(weights)
	d := &Distribution1D{
		funcValues: append([]float32(nil), weights...),
		cdf:        make([]float32, n+1),
	}
	d.cdf[0] = 0
	for i := 0; i < n; i++ {
		d.cdf[i+1] = d.cdf[i] + weights[i]/float32(n)
	}
	total := d.cdf[n]
	if total == 0 {
		for i := 1; i <= n; i++ {
			d.cdf[i] = float32(i) / float32(n)
		}
		d.funcIntegral = 0
	} else {
		for i := 1; i <= n; i++ {
			d.cdf[i] /= total
		}
		d.funcIntegral = total
	}
	return d
}

// Count returns the number of discrete buckets.
func (d *Distribution1D) Count() int { return len(d.funcValues) }

// FuncIntegral returns the integral of the unnormalized function over its
// domain, used to convert a discrete pdf back to the original weight
// scale.
func (d *Distribution1D) FuncIntegral() float32 { return d.funcIntegral }

// SampleDiscrete maps a uniform sample u in [0, 1) to a bucket index and
// reports the probability density over [0, 1) within that bucket (its
// probability mass times Count()).
func (d *Distribution1D) SampleDiscrete(u float32) (index int, pdf float32) {
	n := len(d.funcValues)
	i := sort.Search(len(d.cdf), func(i int) bool { return d.cdf[i] > u })
	if i == 0 {
		i = 1
	}
	index = i - 1
	if index >= n {
		index = n - 1
	}
	pdf = d.discretePDF(index)
	return
}

func (d *Distribution1D) discretePDF(index int) float32 {
	if d.funcIntegral == 0 {
		return 1
	}
	return d.funcValues[index] / d.funcIntegral
}

// Continuous maps u to a continuous value in [0, 1) within the sampled
// bucket, plus the pdf at that value, matching
// Distribution1D::SampleContinuous.
func (d *Distribution1D) Continuous(u float32) (value float32, pdf float32, index int) {
	index, pdf = d.SampleDiscrete(u)
	du := u - d.cdf[index]
	if denom := d.cdf[index+1] - d.cdf[index]; denom > 0 {
		du /= denom
	}
	value = (float32(index) + du) / float32(len(d.funcValues))
	return
}
