package util

import "cpu-scheduler/internal/responses"

func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageTurnAroundTime float64) {
	if len(processDetails) == 0 {
		return 0, 0
	}

	var waitingTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += float64(process.WaitingTime)
		turnAroundTimeSum += float64(process.TurnAroundTime)
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = waitingTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}
