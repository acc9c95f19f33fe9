package metrics

// IncrementItemCreated counts a new item on board
func (m *Metrics) IncrementItemCreated(board string) {
	m.safeExecute("IncrementItemCreated", func() {
		m.ItemsCreatedTotal.WithLabelValues(board).Inc()
	})
}

// RecordTransition counts a persisted move between two columns
func (m *Metrics) RecordTransition(board, from, to string) {
	m.safeExecute("RecordTransition", func() {
		m.StatusTransitionsTotal.WithLabelValues(board, from, to).Inc()
	})
}

// IncrementRollback counts a move reverted after its write failed
func (m *Metrics) IncrementRollback(board string) {
	m.safeExecute("IncrementRollback", func() {
		m.TransitionRollbacksTotal.WithLabelValues(board).Inc()
	})
}

// SetItemsTotal sets the item gauge of board
func (m *Metrics) SetItemsTotal(board string, count int64) {
	m.safeExecute("SetItemsTotal", func() {
		m.ItemsTotal.WithLabelValues(board).Set(float64(count))
	})
}

// SetDeadlinesExpired sets the expired deadline gauge
func (m *Metrics) SetDeadlinesExpired(count int) {
	m.safeExecute("SetDeadlinesExpired", func() {
		m.DeadlinesExpired.Set(float64(count))
	})
}

// RecordCacheLookup counts a cache hit or miss
func (m *Metrics) RecordCacheLookup(hit bool) {
	m.safeExecute("RecordCacheLookup", func() {
		result := "miss"
		if hit {
			result = "hit"
		}
		m.CacheRequestsTotal.WithLabelValues(result).Inc()
	})
}

// SubscriberConnected tracks an opened event stream
func (m *Metrics) SubscriberConnected() {
	m.safeExecute("SubscriberConnected", func() {
		m.EventSubscribers.Inc()
	})
}

// SubscriberDisconnected tracks a closed event stream
func (m *Metrics) SubscriberDisconnected() {
	m.safeExecute("SubscriberDisconnected", func() {
		m.EventSubscribers.Dec()
	})
}
