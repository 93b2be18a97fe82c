// Package sched simulates two classic single-CPU scheduling policies.
//
// Aging is non-preemptive priority scheduling where a waiting process gains
// urgency over time: every Interval time units of waiting lower its effective
// priority number by Step (never below zero). This bounds starvation of
// low-priority work.
//
// LeastSlack is preemptive least-slack-time-first scheduling over unit time
// slices. The slack of a ready task at time t is
//
//	slack = Deadline - t - remaining
//
// and the task with the smallest slack runs for the next unit.
//
// Both return a *Result with completion order and per-job statistics.
//
// Complexity:
//
//	– Aging:      O(n^2) time, O(n) space
//	   • n decision points, each scanning the ready set once.
//	– LeastSlack: O(H·n) time, O(n + H) space   where H = simulated time units
//	   • one scan per time unit; Timeline holds one entry per unit.
//	Effective priorities and slacks change every time unit, so the ready set is
//	scanned linearly instead of being kept in a heap.
//
// Options:
//
//	– WithAgingInterval(n): waiting units per aging step (n > 0, default 1).
//	– WithAgingStep(n):     priority decrease per step (n ≥ 0, default 1).
//	– WithHorizon(n):       cap on LeastSlack time units (n > 0, default 2^20).
//	Option constructors panic on out-of-range values.
//
// Errors (sentinel):
//
//	– ErrNoWork          if the process or task list is empty.
//	– ErrInvalidProcess  for an empty/duplicate ID, negative arrival or burst ≤ 0.
//	– ErrInvalidTask     for an empty/duplicate ID, negative arrival or exec ≤ 0.
//	– ErrHorizonExceeded if LeastSlack needs more than Horizon time units.
package sched
