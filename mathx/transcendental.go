package mathx

import "math"

// FastSin/FastCos are minimax polynomial approximations of sin/cos,
// grounded on RaytracerLib/Math/Transcendental.cpp. The hot shading and
// sampling paths call these instead of math.Sin/math.Cos to avoid the
// float64 round trip on every BSDF evaluation. The polynomial itself is
// only valid on [-pi, pi], so FastSin first reduces x modulo pi and
// restores the sign from the quotient's parity, matching Sin's own
// "range reduction" step; this lets FastCos's x+pi/2 shift (which can
// land outside that window for any x beyond pi/2) stay correct too.
func FastSin(x float32) float32 {
	i := int32(x * (1 / float32(math.Pi)))
	x -= float32(i) * float32(math.Pi)

	const b = 4 / math.Pi
	const c = -4 / (math.Pi * math.Pi)
	y := b*x + c*x*absf(x)
	const p = 0.225
	y = p*(y*absf(y)-y) + y

	if i&1 != 0 {
		return -y
	}
	return y
}

func FastCos(x float32) float32 {
	return FastSin(x + math.Pi/2)
}

// FastAsin/FastAcos use a low-order rational approximation valid on
// [-1, 1], matching the original's Transcendental.cpp bounds (absolute
// error under 1e-4 over the domain).
func FastAsin(x float32) float32 {
	negate := x < 0
	if negate {
		x = -x
	}
	ret := float32(-0.0187293)
	ret = ret*x + 0.0742610
	ret = ret*x - 0.2121144
	ret = ret*x + 1.5707288
	ret = float32(math.Pi/2) - float32(math.Sqrt(float64(1-x)))*ret
	if negate {
		return -ret
	}
	return ret
}

func FastAcos(x float32) float32 {
	return float32(math.Pi/2) - FastAsin(x)
}

// FastExp/FastLog are Schraudolph-style bit-trick approximations, grounded
// on the same file. No other package in the module calls them.
func FastExp(x float32) float32 {
	const a = (1 << 23) / float32(math.Ln2)
	const b = float32(127<<23) - 486411.0
	v := int32(a*x + b)
	return math.Float32frombits(uint32(v))
}

func FastLog(x float32) float32 {
	bits := math.Float32bits(x)
	v := float32(bits) * (1.0 / (1 << 23))
	return (v - 127 - 0.0578929) * float32(math.Ln2)
}
