package defs

import "math"

// Wave pacing. Times are in milliseconds of simulation time.
const (
	WaveBaseCount    = 6
	WaveCountGrowth  = 2.4
	GroupBaseSize    = 4
	GroupGrowthEvery = 3 // one extra enemy per group every N waves

	FirstGroupDelayMs = 500
	WaveIntervalMs    = 2200
	GroupJitterMin    = 0.6
	GroupJitterMax    = 1.1
)

// WaveTotal returns how many enemies wave n emits in total.
func WaveTotal(n int) int {
	return int(math.Round(WaveBaseCount + float64(n-1)*WaveCountGrowth))
}

// GroupSize returns how many enemies the next batch of wave n releases when
// `left` are still waiting to be emitted.
func GroupSize(n, left int) int {
	return min(GroupBaseSize+n/GroupGrowthEvery, left)
}
