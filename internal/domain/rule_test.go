package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerSpec_NormalizeBlankFieldsToWildcard(t *testing.T) {
	trigger := &TriggerSpec{
		ActivityType: ActivityCreateCard,
		Conditions: []Condition{
			{Field: "listId", Operator: OperatorEquals, Value: ""},
			{Field: "swimlaneId", Operator: OperatorEquals, Value: "S1"},
		},
	}

	trigger.Normalize()

	assert.Equal(t, Wildcard, trigger.UserID)
	assert.Equal(t, Wildcard, trigger.Conditions[0].Value)
	assert.Equal(t, "S1", trigger.Conditions[1].Value)
}

func TestTriggerSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		trigger TriggerSpec
		wantErr bool
	}{
		{
			name: "valid with conditions",
			trigger: TriggerSpec{
				ActivityType: ActivityAddedLabel,
				UserID:       Wildcard,
				Conditions:   []Condition{{Field: "labelId", Operator: OperatorEquals, Value: "L1"}},
			},
		},
		{
			name:    "unknown activity type",
			trigger: TriggerSpec{ActivityType: "cardExploded", UserID: Wildcard},
			wantErr: true,
		},
		{
			name: "unknown operator",
			trigger: TriggerSpec{
				ActivityType: ActivityAddedLabel,
				UserID:       Wildcard,
				Conditions:   []Condition{{Field: "labelId", Operator: "regex", Value: "L1"}},
			},
			wantErr: true,
		},
		{
			name: "empty condition field",
			trigger: TriggerSpec{
				ActivityType: ActivityAddedLabel,
				UserID:       Wildcard,
				Conditions:   []Condition{{Field: "", Operator: OperatorEquals, Value: "L1"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trigger.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestActionSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		action  ActionSpec
		wantErr string
	}{
		{
			name:   "archive needs no parameters",
			action: ActionSpec{Type: ActionTypeBoard, Board: &BoardActionParams{Kind: BoardActionArchive}},
		},
		{
			name:    "move without a list name",
			action:  ActionSpec{Type: ActionTypeBoard, Board: &BoardActionParams{Kind: BoardActionMoveToTop}},
			wantErr: "requires a list name",
		},
		{
			name:    "set-date with an unrecognized field",
			action:  ActionSpec{Type: ActionTypeCard, Card: &CardActionParams{Kind: CardActionSetDate, DateField: "deletedAt"}},
			wantErr: "valid date field",
		},
		{
			name:   "set-color",
			action: ActionSpec{Type: ActionTypeCard, Card: &CardActionParams{Kind: CardActionSetColor, Color: "red"}},
		},
		{
			name:    "checklist action without a name",
			action:  ActionSpec{Type: ActionTypeChecklist, Checklist: &ChecklistActionParams{Kind: ChecklistActionCheckAll}},
			wantErr: "requires a checklist name",
		},
		{
			name:    "mail without a subject",
			action:  ActionSpec{Type: ActionTypeMail, Mail: &MailActionParams{To: "ops@example.com"}},
			wantErr: "requires a subject",
		},
		{
			name:    "mail without a recipient",
			action:  ActionSpec{Type: ActionTypeMail, Mail: &MailActionParams{Subject: "hello"}},
			wantErr: "requires a recipient",
		},
		{
			name:    "params missing for declared type",
			action:  ActionSpec{Type: ActionTypeMail},
			wantErr: "requires mail parameters",
		},
		{
			name:    "unrecognized type",
			action:  ActionSpec{Type: "teleport-action"},
			wantErr: "unrecognized action type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestActionSpec_RequiredPermission(t *testing.T) {
	assert.Equal(t, PermBoardsEdit, (&ActionSpec{Type: ActionTypeBoard}).RequiredPermission())
	assert.Equal(t, PermCardsEdit, (&ActionSpec{Type: ActionTypeCard}).RequiredPermission())
	assert.Equal(t, PermChecklistsEdit, (&ActionSpec{Type: ActionTypeChecklist}).RequiredPermission())
	assert.Equal(t, PermMailSend, (&ActionSpec{Type: ActionTypeMail}).RequiredPermission())
	assert.Empty(t, (&ActionSpec{Type: "other"}).RequiredPermission())
}

func TestRule_TriggerAndActionRoundTrip(t *testing.T) {
	rule := &Rule{}

	trigger := &TriggerSpec{
		ActivityType: ActivityAddedLabel,
		UserID:       Wildcard,
		Conditions:   []Condition{{Field: "labelId", Operator: OperatorEquals, Value: "L1"}},
	}
	require.NoError(t, rule.SetTrigger(trigger))

	action := &ActionSpec{
		Type: ActionTypeCard,
		Card: &CardActionParams{Kind: CardActionSetColor, Color: "red"},
	}
	require.NoError(t, rule.SetAction(action))

	gotTrigger, err := rule.TriggerSpec()
	require.NoError(t, err)
	assert.Equal(t, trigger, gotTrigger)

	gotAction, err := rule.ActionSpec()
	require.NoError(t, err)
	assert.Equal(t, action, gotAction)
	assert.Nil(t, gotAction.Board, "only the params matching the type are populated")
}

func TestRule_UndecodableTrigger(t *testing.T) {
	rule := &Rule{Trigger: []byte(`{"activityType":`)}
	_, err := rule.TriggerSpec()
	assert.Error(t, err)
}
