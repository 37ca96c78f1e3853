package predictor

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"cpu-scheduler-sim/internal/requests"
)

var ErrPrediction = errors.New("prediction error")

// Feature names understood by LinearModel, in the order the model expects.
var FeatureNames = []string{
	"JobID", "SubmitTime", "WaitTime", "UsedMemory",
	"ReqTime", "UserID", "GroupID", "QueueID",
}

// Features is the attribute vector a burst time is predicted from.
type Features struct {
	JobID      float64
	SubmitTime float64
	WaitTime   float64
	UsedMemory float64
	ReqTime    float64
	UserID     float64
	GroupID    float64
	QueueID    float64
}

// FeaturesFromJob maps a submitted job onto the model's features. A job has
// not waited yet, and its queue is its group.
func FeaturesFromJob(job requests.Job) Features {
	return Features{
		JobID:      float64(job.ProcessId),
		SubmitTime: float64(job.ArrivalTime),
		WaitTime:   0,
		UsedMemory: float64(job.ReqMemory),
		ReqTime:    float64(job.ReqTime),
		UserID:     float64(job.UserID),
		GroupID:    float64(job.GroupID),
		QueueID:    float64(job.GroupID),
	}
}

func (f Features) value(name string) float64 {
	switch name {
	case "jobid":
		return f.JobID
	case "submittime":
		return f.SubmitTime
	case "waittime":
		return f.WaitTime
	case "usedmemory":
		return f.UsedMemory
	case "reqtime":
		return f.ReqTime
	case "userid":
		return f.UserID
	case "groupid":
		return f.GroupID
	case "queueid":
		return f.QueueID
	}
	return 0
}

type Predictor interface {
	Predict(f Features) (int, error)
}

// LinearModel predicts intercept + Σ coefficient·feature. Feature names
// match case-insensitively.
type LinearModel struct {
	intercept    float64
	coefficients map[string]float64
}

func NewLinearModel(intercept float64, coefficients map[string]float64) (*LinearModel, error) {
	known := make(map[string]bool, len(FeatureNames))
	for _, name := range FeatureNames {
		known[strings.ToLower(name)] = true
	}

	normalized := make(map[string]float64, len(coefficients))
	for name, c := range coefficients {
		key := strings.ToLower(name)
		if !known[key] {
			return nil, fmt.Errorf("unknown feature %q, expected one of %s", name, strings.Join(FeatureNames, ", "))
		}
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("coefficient for %s is not finite", name)
		}
		normalized[key] = c
	}
	return &LinearModel{intercept: intercept, coefficients: normalized}, nil
}

// Predict truncates toward zero. Negative or non-finite estimates are
// rejected rather than clamped.
func (m *LinearModel) Predict(f Features) (int, error) {
	names := make([]string, 0, len(m.coefficients))
	for name := range m.coefficients {
		names = append(names, name)
	}
	sort.Strings(names) // fixed summation order

	estimate := m.intercept
	for _, name := range names {
		estimate += m.coefficients[name] * f.value(name)
	}

	if math.IsNaN(estimate) || math.IsInf(estimate, 0) {
		return 0, fmt.Errorf("%w: estimate is not finite", ErrPrediction)
	}
	burst := int(math.Trunc(estimate))
	if burst < 0 {
		return 0, fmt.Errorf("%w: negative burst time %d", ErrPrediction, burst)
	}
	return burst, nil
}

// ResolveBursts returns each job's burst time, predicting those the client
// left out.
func ResolveBursts(p Predictor, jobs []requests.Job) ([]int, error) {
	bursts := make([]int, len(jobs))
	for i, job := range jobs {
		if job.BurstTime != nil {
			bursts[i] = *job.BurstTime
			continue
		}
		if p == nil {
			return nil, fmt.Errorf("%w: pid %d has no burst_time and no predictor is configured", ErrPrediction, job.ProcessId)
		}
		burst, err := p.Predict(FeaturesFromJob(job))
		if err != nil {
			return nil, fmt.Errorf("pid %d: %w", job.ProcessId, err)
		}
		bursts[i] = burst
	}
	return bursts, nil
}
