// SPDX-License-Identifier: MIT

package builder

// CostFn returns the cost of the idx-th edge a constructor emits (zero-based,
// counted per constructor). It must be pure and deterministic.
type CostFn func(idx int) float64

// ConstantCost returns a CostFn that always yields c.
func ConstantCost(c float64) CostFn {
	return func(int) float64 { return c }
}

// CycleCosts returns a CostFn that repeats costs in order:
// idx 0 → costs[0], idx len(costs) → costs[0] again.
// Panics if costs is empty.
func CycleCosts(costs ...float64) CostFn {
	if len(costs) == 0 {
		panic(ErrOptionViolation.Error() + ": empty cost cycle")
	}
	cs := append([]float64(nil), costs...)

	return func(idx int) float64 { return cs[idx%len(cs)] }
}
