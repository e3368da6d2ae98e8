package schedulers

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"cpu-scheduler/internal/responses"
)

func TestSchedulePriorityNonPreemptiveWithTieBreak(t *testing.T) {
	// P1 keeps the CPU even though higher-priority work arrives while it
	// runs; among the ready {P2, P3} at t=4 the equal priorities resolve
	// by earlier arrival.
	request := scheduleRequest(
		job(1, 0, 4, 2),
		job(2, 1, 3, 1),
		job(3, 2, 1, 1),
	)

	response, err := SchedulePriority(request)
	if err != nil {
		t.Fatal(err)
	}

	wantGantt := []responses.GanttSegment{
		segment("P1", 0, 4),
		segment("P2", 4, 7),
		segment("P3", 7, 8),
	}
	if diff := cmp.Diff(wantGantt, response.Gantt); diff != "" {
		t.Errorf("gantt mismatch (-want +got):\n%s", diff)
	}

	wantCompletions := map[int]int{1: 4, 2: 7, 3: 8}
	if diff := cmp.Diff(wantCompletions, completionTimes(response)); diff != "" {
		t.Errorf("completion times mismatch (-want +got):\n%s", diff)
	}
	assertTraceInvariants(t, request.Jobs, response)
}

func TestSchedulePrioritySelectsSmallestValue(t *testing.T) {
	request := scheduleRequest(
		job(1, 0, 2, 3),
		job(2, 0, 2, 1),
		job(3, 0, 2, 2),
	)

	response, err := SchedulePriority(request)
	if err != nil {
		t.Fatal(err)
	}

	wantGantt := []responses.GanttSegment{
		segment("P2", 0, 2),
		segment("P3", 2, 4),
		segment("P1", 4, 6),
	}
	if diff := cmp.Diff(wantGantt, response.Gantt); diff != "" {
		t.Errorf("gantt mismatch (-want +got):\n%s", diff)
	}
	assertTraceInvariants(t, request.Jobs, response)
}

func TestSchedulePriorityIdleGapBetweenArrivals(t *testing.T) {
	request := scheduleRequest(
		job(1, 0, 2, 0),
		job(2, 5, 1, 0),
	)

	response, err := SchedulePriority(request)
	if err != nil {
		t.Fatal(err)
	}

	wantGantt := []responses.GanttSegment{
		segment("P1", 0, 2),
		segment("IDLE", 2, 5),
		segment("P2", 5, 6),
	}
	if diff := cmp.Diff(wantGantt, response.Gantt); diff != "" {
		t.Errorf("gantt mismatch (-want +got):\n%s", diff)
	}
	if response.IdleTime != 3 {
		t.Errorf("idle time %d, want 3", response.IdleTime)
	}
	assertTraceInvariants(t, request.Jobs, response)
}
