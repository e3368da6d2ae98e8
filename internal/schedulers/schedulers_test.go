package schedulers

import (
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

func job(pid, arrival, burst, priority int) requests.Job {
	return requests.Job{
		ProcessId:   pid,
		ArrivalTime: arrival,
		BurstTime:   burst,
		Priority:    priority,
	}
}

func scheduleRequest(jobs ...requests.Job) *requests.ScheduleRequest {
	return &requests.ScheduleRequest{Jobs: jobs}
}

func segment(label string, start, end int) responses.GanttSegment {
	return responses.GanttSegment{Label: label, Start: start, End: end}
}

// assertTraceInvariants checks the contracts every scheduler must keep for
// any valid input: arithmetic on the per-process metrics, a gapless trace
// starting at 0 and ending at the last completion, no adjacent segments
// with the same label, and per-process CPU time equal to the burst.
func assertTraceInvariants(t *testing.T, jobs []requests.Job, response responses.ScheduleResponse) {
	t.Helper()

	var makespan int
	for _, detail := range response.Details {
		if detail.CompletionTime < detail.ArrivalTime+detail.BurstTime {
			t.Errorf("pid %d: completion %d before arrival+burst %d",
				detail.ProcessId, detail.CompletionTime, detail.ArrivalTime+detail.BurstTime)
		}
		if detail.TurnAroundTime != detail.CompletionTime-detail.ArrivalTime {
			t.Errorf("pid %d: turnaround %d, want %d",
				detail.ProcessId, detail.TurnAroundTime, detail.CompletionTime-detail.ArrivalTime)
		}
		if detail.WaitingTime != detail.TurnAroundTime-detail.BurstTime {
			t.Errorf("pid %d: waiting %d, want %d",
				detail.ProcessId, detail.WaitingTime, detail.TurnAroundTime-detail.BurstTime)
		}
		if detail.WaitingTime < 0 {
			t.Errorf("pid %d: negative waiting time %d", detail.ProcessId, detail.WaitingTime)
		}
		if detail.CompletionTime > makespan {
			makespan = detail.CompletionTime
		}
	}

	gantt := response.Gantt
	if len(gantt) == 0 {
		t.Fatal("empty gantt trace")
	}
	if gantt[0].Start != 0 {
		t.Errorf("trace starts at %d, want 0", gantt[0].Start)
	}
	if gantt[len(gantt)-1].End != makespan {
		t.Errorf("trace ends at %d, want makespan %d", gantt[len(gantt)-1].End, makespan)
	}
	executed := make(map[string]int)
	for i, seg := range gantt {
		if seg.Start >= seg.End {
			t.Errorf("segment %d: empty or inverted [%d, %d)", i, seg.Start, seg.End)
		}
		if i > 0 {
			if gantt[i-1].End != seg.Start {
				t.Errorf("gap between segment %d and %d: %d != %d", i-1, i, gantt[i-1].End, seg.Start)
			}
			if gantt[i-1].Label == seg.Label {
				t.Errorf("adjacent segments %d and %d share label %q", i-1, i, seg.Label)
			}
		}
		executed[seg.Label] += seg.End - seg.Start
	}
	for _, j := range jobs {
		if got := executed[core.Label(j.ProcessId)]; got != j.BurstTime {
			t.Errorf("pid %d: executed %d units, want burst %d", j.ProcessId, got, j.BurstTime)
		}
	}
	if response.TotalTime != makespan {
		t.Errorf("total time %d, want %d", response.TotalTime, makespan)
	}
	if got := executed[core.IdleLabel]; got != response.IdleTime {
		t.Errorf("idle time %d, want %d", response.IdleTime, got)
	}
}

func completionTimes(response responses.ScheduleResponse) map[int]int {
	times := make(map[int]int, len(response.Details))
	for _, detail := range response.Details {
		times[detail.ProcessId] = detail.CompletionTime
	}
	return times
}
