package domain

import "fmt"

// taskPos locates a task inside a plan.
type taskPos struct {
	phase int
	task  int
}

// PlanManager mutates completion state and keeps the derived flags
// (phase activation, overall completion) consistent. It indexes the plan
// for O(1) task lookup at construction time.
type PlanManager struct {
	plan  *TaskPlan
	index map[string]taskPos
}

// NewPlanManager builds the task index for the plan. Returns an error
// wrapping ErrDuplicateTaskID if two tasks share an identifier.
func NewPlanManager(plan *TaskPlan) (*PlanManager, error) {
	index := make(map[string]taskPos, plan.TotalTasks())
	for pi := range plan.Phases {
		for ti := range plan.Phases[pi].Tasks {
			id := plan.Phases[pi].Tasks[ti].ID
			if _, ok := index[id]; ok {
				return nil, fmt.Errorf("task %q: %w", id, ErrDuplicateTaskID)
			}
			index[id] = taskPos{phase: pi, task: ti}
		}
	}
	return &PlanManager{plan: plan, index: index}, nil
}

// Plan returns the managed plan.
func (m *PlanManager) Plan() *TaskPlan {
	return m.plan
}

// Task returns the task with the given ID, or nil if unknown.
func (m *PlanManager) Task(taskID string) *Task {
	pos, ok := m.index[taskID]
	if !ok {
		return nil
	}
	return &m.plan.Phases[pos.phase].Tasks[pos.task]
}

// SetCompletion updates the completion flag of a task and runs the phase and
// project completion cascades. Returns false if the task ID is unknown; the
// caller decides whether that is fatal.
func (m *PlanManager) SetCompletion(taskID string, completed bool) bool {
	pos, ok := m.index[taskID]
	if !ok {
		return false
	}

	m.plan.Phases[pos.phase].Tasks[pos.task].Completed = completed
	m.cascadePhase(pos.phase)
	m.plan.OverallCompleted = m.plan.AllCompleted()
	return true
}

// cascadePhase activates the next phase once every task in the given phase
// is complete. Activation is never revoked.
func (m *PlanManager) cascadePhase(phaseIdx int) {
	if !m.plan.Phases[phaseIdx].AllCompleted() {
		return
	}
	if phaseIdx+1 < len(m.plan.Phases) {
		m.plan.Phases[phaseIdx+1].Active = true
	}
}

// CompletionPercentage returns the overall completion percentage.
func (m *PlanManager) CompletionPercentage() float64 {
	return m.plan.CompletionPercentage()
}

// NextAvailableTask returns the first incomplete task bound to the given
// agent, scanning active phases in order and tasks in declaration order.
// This is the only priority policy: strict phase order, then declaration
// order within a phase. Returns nil if no task matches.
func (m *PlanManager) NextAvailableTask(agent string) *Task {
	for pi := range m.plan.Phases {
		phase := &m.plan.Phases[pi]
		if !phase.Active {
			continue
		}
		for ti := range phase.Tasks {
			task := &phase.Tasks[ti]
			if task.Agent == agent && !task.Completed {
				return task
			}
		}
	}
	return nil
}
