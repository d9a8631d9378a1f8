package hotelling

// Delta is the capture half-width: the maximum distance a peripheral player
// can push a rival away from the boundary of the space before the rival
// would rather undercut from outside. For the quadratic relocation cost
// gamma(d) = c * d^2 this is 1/(4c).
//
// The cost coefficient must be strictly positive. Exported operations
// validate this at the boundary; Delta itself does not.
func Delta(c float64) float64 {
	return 1 / (4 * c)
}
