/*
Copyright © 2026 the MemTK authors.
This file is part of MemTK.

MemTK is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MemTK is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MemTK.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package roots provides scalar root finding on a bracketing interval.
// The equilibrium solvers depend only on the Bracketed contract, so any
// bracketing method (bisection, Brent, ITP) could satisfy it; the
// implementation here is Brent's method, which needs no derivative and
// converges superlinearly on the monotonic residuals the solvers produce.
package roots

import (
	"fmt"
	"math"
)

// Func is a scalar residual function.
type Func func(x float64) float64

// DefaultMaxIter is the iteration budget used when the caller passes a
// non-positive one.
const DefaultMaxIter = 100

const eps = 2.220446049250313e-16 // machine epsilon for float64

// ConvergenceError reports a failed bracketed search. A failure means bad
// input or a violated modeling assumption, not a transient condition, so
// callers must not retry with a different bracket.
type ConvergenceError struct {
	Lo, Hi float64 // the bracket searched
	Iter   int     // iterations performed
	Reason string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("no solution found in [%g, %g] after %d iterations: %s",
		e.Lo, e.Hi, e.Iter, e.Reason)
}

// Bracketed finds x in [lo, hi] such that f(x) = 0, to within absolute
// tolerance tol on x, using Brent's method. f(lo) and f(hi) must have
// opposite signs. It returns a *ConvergenceError if the bracket does not
// contain a sign change or the iteration budget is exhausted. Given
// identical inputs the result is bit-for-bit reproducible.
func Bracketed(f Func, lo, hi, tol float64, maxIter int) (float64, error) {
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	a, b := lo, hi
	fa, fb := f(a), f(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, &ConvergenceError{Lo: lo, Hi: hi, Reason: "residual is NaN at a bracket endpoint"}
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, &ConvergenceError{Lo: lo, Hi: hi,
			Reason: fmt.Sprintf("no sign change in bracket: f(lo)=%g, f(hi)=%g", fa, fb)}
	}

	c, fc := a, fa
	d := b - a
	e := d
	for iter := 1; iter <= maxIter; iter++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*eps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt inverse quadratic interpolation.
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				// Interpolation failed; fall back to bisection.
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
		if math.IsNaN(fb) {
			return 0, &ConvergenceError{Lo: lo, Hi: hi, Iter: iter,
				Reason: fmt.Sprintf("residual is NaN at x=%g", b)}
		}
	}
	return 0, &ConvergenceError{Lo: lo, Hi: hi, Iter: maxIter,
		Reason: "iteration budget exhausted"}
}
