package util

import (
	"strconv"

	"cpu-scheduler-sim/internal/responses"
)

// CalculateAverage panics on an empty slice; callers reject empty process
// sets before scheduling.
func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += float64(process.WaitingTime)
		responseTimeSum += float64(process.ResponseTime)
		turnAroundTimeSum += float64(process.TurnAroundTime)
	}

	processCount := float64(len(processDetails))
	if processCount == 0 {
		panic("util: average of zero processes")
	}

	averageWaitingTime = Round(waitingTimeSum / processCount)
	averageResponseTime = Round(responseTimeSum / processCount)
	averageTurnAroundTime = Round(turnAroundTimeSum / processCount)
	return
}

// Round rounds the exact binary value of v to two decimals. Scaling by 100
// first would round twice and flip decimal ties like 0.025.
func Round(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// Ratio returns num/den rounded, or 0 when den is 0.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return Round(num / den)
}
