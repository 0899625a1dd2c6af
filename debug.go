package marquee

import "time"

// debugStats holds per-frame timing and workload counts.
// Only populated when Stage.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	points     int
	lights     int
}

// debugLog reports one frame's stats at debug level.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	Logger().Debug("frame",
		"update", stats.updateTime,
		"draw", stats.drawTime,
		"total", stats.updateTime+stats.drawTime,
		"points", stats.points,
		"lights", stats.lights,
		"boards", len(s.boards),
	)
}
