package engine

import (
	"fmt"
	"strconv"
	"strings"

	"board-automation-api/internal/domain"
)

// Diagnostic reports a trigger that could not be evaluated as written.
// Matching stays fail-closed: a diagnostic always accompanies a non-match,
// never an exception.
type Diagnostic struct {
	Field  string
	Detail string
}

func (d *Diagnostic) String() string {
	if d.Field != "" {
		return fmt.Sprintf("malformed trigger: field %q: %s", d.Field, d.Detail)
	}
	return "malformed trigger: " + d.Detail
}

// Matches evaluates whether an activity event satisfies a trigger spec. It is
// total: it never panics for any well-formed trigger and any event. A trigger
// matches iff the activity type is an exact match, every condition holds
// (logical AND), and the actor filter passes. The wildcard sentinel satisfies
// any condition value or actor filter. An unknown operator fails the match
// and returns a diagnostic.
func Matches(trigger *domain.TriggerSpec, event *domain.ActivityEvent) (bool, *Diagnostic) {
	// The activity type itself has no wildcard; it determines which fields
	// are even relevant.
	if trigger.ActivityType != event.ActivityType {
		return false, nil
	}

	for _, cond := range trigger.Conditions {
		if cond.Value == domain.Wildcard {
			continue
		}
		if !cond.Operator.IsValid() {
			return false, &Diagnostic{
				Field:  cond.Field,
				Detail: fmt.Sprintf("unknown operator %q", cond.Operator),
			}
		}
		actual, ok := event.Field(cond.Field)
		if !ok {
			// The event does not carry this field; the condition simply
			// never holds for this activity type.
			return false, nil
		}
		if !evaluate(cond.Operator, actual, cond.Value) {
			return false, nil
		}
	}

	if trigger.UserID != domain.Wildcard && trigger.UserID != event.UserID.String() {
		return false, nil
	}

	return true, nil
}

// evaluate applies a single operator. Ordering operators compare numerically
// when both sides parse as numbers, lexicographically otherwise.
func evaluate(op domain.Operator, actual, expected string) bool {
	switch op {
	case domain.OperatorEquals:
		return actual == expected
	case domain.OperatorNotEquals:
		return actual != expected
	case domain.OperatorContains:
		return strings.Contains(actual, expected)
	case domain.OperatorGreaterThan:
		return compare(actual, expected) > 0
	case domain.OperatorLessThan:
		return compare(actual, expected) < 0
	}
	return false
}

func compare(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
