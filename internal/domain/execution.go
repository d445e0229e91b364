package domain

import "github.com/google/uuid"

// ExecutionStatus is the recorded outcome of one rule dispatch for one event.
type ExecutionStatus string

const (
	ExecutionSucceeded ExecutionStatus = "succeeded"
	ExecutionFailed    ExecutionStatus = "failed"
	ExecutionSkipped   ExecutionStatus = "skipped"
)

// RuleExecution is the audit record for a dispatched rule. Dispatch failures
// are recorded here rather than thrown; the executions API is the report
// surface rule authors consult.
type RuleExecution struct {
	BaseModel
	RuleID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_rule_executions_rule_id" json:"ruleId"`
	BoardID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_rule_executions_board_id" json:"boardId"`
	ActivityType ActivityType    `gorm:"type:varchar(50);not null" json:"activityType"`
	Status       ExecutionStatus `gorm:"type:varchar(20);not null;index:idx_rule_executions_status" json:"status"`
	Message      string          `gorm:"type:text" json:"message,omitempty"`
}

// TableName specifies the table name for RuleExecution
func (RuleExecution) TableName() string {
	return "rule_executions"
}
