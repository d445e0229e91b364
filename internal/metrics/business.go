package metrics

// IncrementRuleCreated increments the rule creation counter
func (m *Metrics) IncrementRuleCreated() {
	m.safeExecute("IncrementRuleCreated", func() {
		m.RuleCreatedTotal.Inc()
	})
}

// IncrementRoleAssigned increments the role assignment counter
func (m *Metrics) IncrementRoleAssigned() {
	m.safeExecute("IncrementRoleAssigned", func() {
		m.RoleAssignedTotal.Inc()
	})
}

// IncrementActivity counts a processed activity event by type
func (m *Metrics) IncrementActivity(activityType string) {
	m.safeExecute("IncrementActivity", func() {
		m.ActivitiesTotal.WithLabelValues(activityType).Inc()
	})
}

// IncrementRulesMatched increments the trigger match counter
func (m *Metrics) IncrementRulesMatched() {
	m.safeExecute("IncrementRulesMatched", func() {
		m.RulesMatchedTotal.Inc()
	})
}

// IncrementActionDispatched counts a dispatched action by type and outcome
func (m *Metrics) IncrementActionDispatched(actionType, status string) {
	m.safeExecute("IncrementActionDispatched", func() {
		m.ActionsDispatchedTotal.WithLabelValues(actionType, status).Inc()
	})
}

// IncrementMalformedTrigger counts a malformed trigger diagnostic
func (m *Metrics) IncrementMalformedTrigger() {
	m.safeExecute("IncrementMalformedTrigger", func() {
		m.MalformedTriggersTotal.Inc()
	})
}

// SetRulesTotal sets the stored rules gauge
func (m *Metrics) SetRulesTotal(count int64) {
	m.safeExecute("SetRulesTotal", func() {
		m.RulesTotal.Set(float64(count))
	})
}
