package sched

import "fmt"

// Aging runs non-preemptive priority scheduling with aging over procs.
//
// At each decision point the arrived, unfinished process with the lowest
// effective priority runs to completion, where
//
//	effective = max(0, Priority - ((now - Arrival) / Interval) * Step)
//
// Ties go to the earlier arrival, then to the earlier position in procs.
// When nothing has arrived yet the CPU idles until the next arrival.
func Aging(procs []Process, opts ...AgingOption) (*Result, error) {
	// 1) Build options (constructors already rejected bad values).
	cfg := DefaultAgingOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	// 2) Validate every process before simulating anything.
	if err := validateProcesses(procs); err != nil {
		return nil, err
	}

	// 3) Simulate decision points until every process has run.
	res := &Result{
		Order: make([]string, 0, len(procs)),
		Stats: make(map[string]Stat, len(procs)),
	}
	done := make([]bool, len(procs))
	now := 0
	for len(res.Order) < len(procs) {
		// 3a) Among arrived, unfinished processes pick the most urgent aged one.
		pick := -1
		for i, p := range procs {
			if done[i] || p.Arrival > now {
				continue
			}
			if pick < 0 || agingBefore(procs, i, pick, now, cfg) {
				pick = i
			}
		}
		// 3b) Nothing is ready: idle the CPU until the next arrival.
		if pick < 0 {
			now = nextArrival(procs, done)
			continue
		}

		// 3c) Run the pick to completion (non-preemptive) and record its timing.
		p := procs[pick]
		start := now
		now += p.Burst
		done[pick] = true
		res.Order = append(res.Order, p.ID)
		res.Stats[p.ID] = Stat{
			Start:      start,
			Finish:     now,
			Waiting:    start - p.Arrival,
			Turnaround: now - p.Arrival,
		}
	}

	return res, nil
}

// effectivePriority applies aging to p at time now.
func effectivePriority(p Process, now int, cfg AgingOptions) int {
	eff := p.Priority - ((now-p.Arrival)/cfg.Interval)*cfg.Step
	if eff < 0 {
		return 0
	}

	return eff
}

// agingBefore reports whether procs[i] should run before procs[j] at time now.
func agingBefore(procs []Process, i, j, now int, cfg AgingOptions) bool {
	ei, ej := effectivePriority(procs[i], now, cfg), effectivePriority(procs[j], now, cfg)
	if ei != ej {
		return ei < ej
	}
	if procs[i].Arrival != procs[j].Arrival {
		return procs[i].Arrival < procs[j].Arrival
	}

	return i < j
}

// nextArrival returns the earliest arrival among unfinished processes.
func nextArrival(procs []Process, done []bool) int {
	next := -1
	for i, p := range procs {
		if !done[i] && (next < 0 || p.Arrival < next) {
			next = p.Arrival
		}
	}

	return next
}

func validateProcesses(procs []Process) error {
	if len(procs) == 0 {
		return ErrNoWork
	}
	seen := make(map[string]bool, len(procs))
	for i, p := range procs {
		switch {
		case p.ID == "":
			return fmt.Errorf("%w: process %d has empty ID", ErrInvalidProcess, i)
		case seen[p.ID]:
			return fmt.Errorf("%w: duplicate ID %q", ErrInvalidProcess, p.ID)
		case p.Arrival < 0:
			return fmt.Errorf("%w: %q arrival=%d", ErrInvalidProcess, p.ID, p.Arrival)
		case p.Burst <= 0:
			return fmt.Errorf("%w: %q burst=%d", ErrInvalidProcess, p.ID, p.Burst)
		}
		seen[p.ID] = true
	}

	return nil
}
