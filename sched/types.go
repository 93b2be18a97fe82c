package sched

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the schedulers.
var (
	// ErrNoWork indicates an empty process or task list.
	ErrNoWork = errors.New("sched: nothing to schedule")

	// ErrInvalidProcess indicates a process with an empty or duplicate ID,
	// negative arrival or non-positive burst.
	ErrInvalidProcess = errors.New("sched: invalid process")

	// ErrInvalidTask indicates a task with an empty or duplicate ID,
	// negative arrival or non-positive execution time.
	ErrInvalidTask = errors.New("sched: invalid task")

	// ErrHorizonExceeded indicates that LeastSlack would simulate more time
	// units than the configured horizon.
	ErrHorizonExceeded = errors.New("sched: simulation horizon exceeded")
)

// Process is a job for the Aging scheduler. Lower Priority is more urgent.
type Process struct {
	ID       string `yaml:"id"`
	Arrival  int    `yaml:"arrival"`
	Burst    int    `yaml:"burst"`
	Priority int    `yaml:"priority"`
}

// Task is a job for the LeastSlack scheduler.
type Task struct {
	ID       string `yaml:"id"`
	Arrival  int    `yaml:"arrival"`
	Exec     int    `yaml:"exec"`
	Deadline int    `yaml:"deadline"`
}

// Stat holds the timing of one finished job.
type Stat struct {
	Start      int // first time the job ran
	Finish     int // completion time
	Waiting    int // time spent ready but not running
	Turnaround int // Finish - Arrival
}

// Result is the outcome of a scheduling run.
type Result struct {
	// Order lists job IDs in completion order.
	Order []string

	// Stats maps job ID to its timing.
	Stats map[string]Stat

	// Timeline has one entry per simulated time unit; "" marks an idle CPU.
	// Only LeastSlack fills it.
	Timeline []string

	// Missed lists, in completion order, the IDs of tasks that finished after
	// their deadline. Only LeastSlack fills it.
	Missed []string
}

// AvgWaiting returns the mean waiting time, or 0 for an empty result.
func (r *Result) AvgWaiting() float64 {
	if len(r.Stats) == 0 {
		return 0
	}
	sum := 0
	for _, s := range r.Stats {
		sum += s.Waiting
	}

	return float64(sum) / float64(len(r.Stats))
}

// AvgTurnaround returns the mean turnaround time, or 0 for an empty result.
func (r *Result) AvgTurnaround() float64 {
	if len(r.Stats) == 0 {
		return 0
	}
	sum := 0
	for _, s := range r.Stats {
		sum += s.Turnaround
	}

	return float64(sum) / float64(len(r.Stats))
}

// Defaults for the tunable parameters.
const (
	DefaultAgingInterval = 1
	DefaultAgingStep     = 1
	DefaultHorizon       = 1 << 20
)

// AgingOptions tunes the Aging scheduler.
type AgingOptions struct {
	Interval int // waiting time units per aging step (> 0)
	Step     int // priority decrease per aging step (>= 0)
}

// AgingOption represents a functional option for Aging.
type AgingOption func(*AgingOptions)

// DefaultAgingOptions returns Interval=1, Step=1.
func DefaultAgingOptions() AgingOptions {
	return AgingOptions{Interval: DefaultAgingInterval, Step: DefaultAgingStep}
}

// WithAgingInterval sets how many waiting time units make one aging step.
// Panics if n <= 0.
func WithAgingInterval(n int) AgingOption {
	if n <= 0 {
		panic(fmt.Sprintf("sched: WithAgingInterval(%d): interval must be positive", n))
	}
	return func(o *AgingOptions) {
		o.Interval = n
	}
}

// WithAgingStep sets the priority decrease per aging step. Zero disables aging.
// Panics if n < 0.
func WithAgingStep(n int) AgingOption {
	if n < 0 {
		panic(fmt.Sprintf("sched: WithAgingStep(%d): step must be non-negative", n))
	}
	return func(o *AgingOptions) {
		o.Step = n
	}
}

// SlackOptions tunes the LeastSlack scheduler.
type SlackOptions struct {
	Horizon int // maximum number of simulated time units
}

// SlackOption represents a functional option for LeastSlack.
type SlackOption func(*SlackOptions)

// WithHorizon caps the simulated time. Panics if n <= 0.
func WithHorizon(n int) SlackOption {
	if n <= 0 {
		panic(fmt.Sprintf("sched: WithHorizon(%d): horizon must be positive", n))
	}
	return func(o *SlackOptions) {
		o.Horizon = n
	}
}
