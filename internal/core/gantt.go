package core

import "strconv"

// IdleLabel marks a stretch of simulated time where no process holds the CPU.
const IdleLabel = "IDLE"

// GanttSegment is one half-open slice [Start, End) of CPU occupancy.
type GanttSegment struct {
	Label string
	Start int
	End   int
}

func Label(pid int) string {
	return "P" + strconv.Itoa(pid)
}

// MergeSegments collapses consecutive segments that carry the same label,
// so preemptive schedulers can emit one segment per step and still hand the
// renderer a trace where adjacent segments always differ.
func MergeSegments(segments []GanttSegment) []GanttSegment {
	if len(segments) == 0 {
		return segments
	}
	merged := make([]GanttSegment, 0, len(segments))
	merged = append(merged, segments[0])
	for _, segment := range segments[1:] {
		last := &merged[len(merged)-1]
		if segment.Label == last.Label && segment.Start == last.End {
			last.End = segment.End
			continue
		}
		merged = append(merged, segment)
	}
	return merged
}

// IdleTime sums the lengths of all IDLE segments in a trace.
func IdleTime(segments []GanttSegment) int {
	var idle int
	for _, segment := range segments {
		if segment.Label == IdleLabel {
			idle += segment.End - segment.Start
		}
	}
	return idle
}
