package sched

import "fmt"

// LeastSlack runs preemptive least-slack-time-first scheduling over tasks in
// unit time slices.
//
// At every time unit the ready task with the smallest slack
// (Deadline - now - remaining) runs; ties go to the earlier deadline, then to
// the earlier position in tasks. Tasks that finish after their deadline are
// still completed and reported in Result.Missed.
//
// Returns ErrHorizonExceeded if the run needs more than Horizon time units
// (DefaultHorizon unless WithHorizon is given).
func LeastSlack(tasks []Task, opts ...SlackOption) (*Result, error) {
	// 1) Build options and validate tasks before simulating anything.
	cfg := SlackOptions{Horizon: DefaultHorizon}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateTasks(tasks); err != nil {
		return nil, err
	}

	// 2) Every task starts with its full execution time remaining.
	s := &slackRunner{
		tasks:     tasks,
		remaining: make([]int, len(tasks)),
		started:   make([]bool, len(tasks)),
		res: &Result{
			Order: make([]string, 0, len(tasks)),
			Stats: make(map[string]Stat, len(tasks)),
		},
	}
	for i, t := range tasks {
		s.remaining[i] = t.Exec
	}

	// 3) Advance one time unit at a time until all tasks finish or the horizon is hit.
	for now := 0; len(s.res.Order) < len(tasks); now++ {
		if now >= cfg.Horizon {
			return nil, fmt.Errorf("%w: %d units, %d of %d tasks done",
				ErrHorizonExceeded, cfg.Horizon, len(s.res.Order), len(tasks))
		}
		s.tick(now)
	}

	return s.res, nil
}

// slackRunner holds the mutable state of one LeastSlack run.
type slackRunner struct {
	tasks     []Task
	remaining []int
	started   []bool
	res       *Result
}

// tick picks the least-slack ready task at time now and runs it for one unit.
func (s *slackRunner) tick(now int) {
	// 1) Find the ready task with the least slack.
	pick := -1
	for i, t := range s.tasks {
		if s.remaining[i] == 0 || t.Arrival > now {
			continue
		}
		if pick < 0 || s.before(i, pick, now) {
			pick = i
		}
	}
	// 2) No ready task: record an idle slot.
	if pick < 0 {
		s.res.Timeline = append(s.res.Timeline, "")
		return
	}

	// 3) Run it for one unit, noting the first start.
	t := s.tasks[pick]
	st := s.res.Stats[t.ID]
	if !s.started[pick] {
		s.started[pick] = true
		st.Start = now
	}
	s.remaining[pick]--
	s.res.Timeline = append(s.res.Timeline, t.ID)

	// 4) On completion fill in timing and check the deadline.
	if s.remaining[pick] == 0 {
		st.Finish = now + 1
		st.Turnaround = st.Finish - t.Arrival
		st.Waiting = st.Turnaround - t.Exec
		s.res.Order = append(s.res.Order, t.ID)
		if st.Finish > t.Deadline {
			s.res.Missed = append(s.res.Missed, t.ID)
		}
	}
	s.res.Stats[t.ID] = st
}

func (s *slackRunner) slack(i, now int) int {
	return s.tasks[i].Deadline - now - s.remaining[i]
}

func (s *slackRunner) before(i, j, now int) bool {
	si, sj := s.slack(i, now), s.slack(j, now)
	if si != sj {
		return si < sj
	}
	if s.tasks[i].Deadline != s.tasks[j].Deadline {
		return s.tasks[i].Deadline < s.tasks[j].Deadline
	}

	return i < j
}

func validateTasks(tasks []Task) error {
	if len(tasks) == 0 {
		return ErrNoWork
	}
	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		switch {
		case t.ID == "":
			return fmt.Errorf("%w: task %d has empty ID", ErrInvalidTask, i)
		case seen[t.ID]:
			return fmt.Errorf("%w: duplicate ID %q", ErrInvalidTask, t.ID)
		case t.Arrival < 0:
			return fmt.Errorf("%w: %q arrival=%d", ErrInvalidTask, t.ID, t.Arrival)
		case t.Exec <= 0:
			return fmt.Errorf("%w: %q exec=%d", ErrInvalidTask, t.ID, t.Exec)
		}
		seen[t.ID] = true
	}

	return nil
}
