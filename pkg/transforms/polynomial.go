package transforms

import "math/cmplx"

// Quadratic iterates z² + c.
type Quadratic struct{}

func (Quadratic) Next(z complex128, c complex128) complex128 {
	return z*z + c
}

// Cubic iterates z³ + c.
type Cubic struct{}

func (Cubic) Next(z complex128, c complex128) complex128 {
	return z*z*z + c
}

// Power iterates zᴺ + c for an arbitrary exponent.
type Power struct {
	N complex128
}

func (p Power) Next(z complex128, c complex128) complex128 {
	return cmplx.Pow(z, p.N) + c
}

var _ Transform = Quadratic{}
var _ Transform = Cubic{}
var _ Transform = Power{}
