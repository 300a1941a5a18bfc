package metrics

// IncrementBoardCreated increments the board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments the task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// IncrementTaskMoved increments the task move counter
func (m *Metrics) IncrementTaskMoved() {
	m.safeExecute("IncrementTaskMoved", func() {
		m.TaskMovedTotal.Inc()
	})
}

// IncrementRemindersSent adds to the dispatched reminder counter
func (m *Metrics) IncrementRemindersSent(count int) {
	m.safeExecute("IncrementRemindersSent", func() {
		m.RemindersSentTotal.Add(float64(count))
	})
}

// SetBoardsTotal sets the current board count gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetTasksTotal sets the current task count gauge
func (m *Metrics) SetTasksTotal(count int64) {
	m.safeExecute("SetTasksTotal", func() {
		m.TasksTotal.Set(float64(count))
	})
}
