package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Wildcard is the stored sentinel meaning "match any value". Blank trigger
// fields are normalized to it before storage so matching never has to
// special-case empty strings.
const Wildcard = "*"

// ActivityType is the closed set of board activities a trigger can react to.
type ActivityType string

const (
	ActivityCreateCard          ActivityType = "createCard"
	ActivityMoveCard            ActivityType = "moveCard"
	ActivityArchivedCard        ActivityType = "archivedCard"
	ActivityRestoredCard        ActivityType = "restoredCard"
	ActivityAddedLabel          ActivityType = "addedLabel"
	ActivityRemovedLabel        ActivityType = "removedLabel"
	ActivityJoinMember          ActivityType = "joinMember"
	ActivityUnjoinMember        ActivityType = "unjoinMember"
	ActivityAddComment          ActivityType = "addComment"
	ActivityAddChecklist        ActivityType = "addChecklist"
	ActivityRemovedChecklist    ActivityType = "removedChecklist"
	ActivityCompleteChecklist   ActivityType = "completeChecklist"
	ActivityUncompleteChecklist ActivityType = "uncompleteChecklist"
	ActivityCheckedItem         ActivityType = "checkedItem"
	ActivityUncheckedItem       ActivityType = "uncheckedItem"
	ActivitySetDueDate          ActivityType = "setDueDate"
)

var activityTypes = map[ActivityType]bool{
	ActivityCreateCard:          true,
	ActivityMoveCard:            true,
	ActivityArchivedCard:        true,
	ActivityRestoredCard:        true,
	ActivityAddedLabel:          true,
	ActivityRemovedLabel:        true,
	ActivityJoinMember:          true,
	ActivityUnjoinMember:        true,
	ActivityAddComment:          true,
	ActivityAddChecklist:        true,
	ActivityRemovedChecklist:    true,
	ActivityCompleteChecklist:   true,
	ActivityUncompleteChecklist: true,
	ActivityCheckedItem:         true,
	ActivityUncheckedItem:       true,
	ActivitySetDueDate:          true,
}

// IsValid reports whether t is a recognized activity type.
func (t ActivityType) IsValid() bool {
	return activityTypes[t]
}

// Operator is the closed set of condition operators. Anything outside this
// set fails the match (fail-closed) and is reported as a diagnostic.
type Operator string

const (
	OperatorEquals      Operator = "equals"
	OperatorNotEquals   Operator = "notEquals"
	OperatorContains    Operator = "contains"
	OperatorGreaterThan Operator = "greaterThan"
	OperatorLessThan    Operator = "lessThan"
)

// IsValid reports whether op is a recognized operator.
func (op Operator) IsValid() bool {
	switch op {
	case OperatorEquals, OperatorNotEquals, OperatorContains, OperatorGreaterThan, OperatorLessThan:
		return true
	}
	return false
}

// Condition is a single field comparison within a trigger. Conditions are
// ANDed; there is no OR support.
type Condition struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    string   `json:"value"`
}

// TriggerSpec describes when a rule fires.
type TriggerSpec struct {
	ActivityType ActivityType `json:"activityType"`
	// UserID filters on the actor who caused the activity. Wildcard matches
	// any actor.
	UserID     string      `json:"userId"`
	Conditions []Condition `json:"conditions,omitempty"`
}

// Normalize replaces blank author-supplied fields with the wildcard sentinel
// so match logic stays total.
func (t *TriggerSpec) Normalize() {
	if t.UserID == "" {
		t.UserID = Wildcard
	}
	for i := range t.Conditions {
		if t.Conditions[i].Value == "" {
			t.Conditions[i].Value = Wildcard
		}
	}
}

// Validate checks the trigger is well-formed for storage.
func (t *TriggerSpec) Validate() error {
	if !t.ActivityType.IsValid() {
		return fmt.Errorf("unrecognized activity type %q", t.ActivityType)
	}
	for _, c := range t.Conditions {
		if c.Field == "" {
			return fmt.Errorf("condition field must not be empty")
		}
		if !c.Operator.IsValid() {
			return fmt.Errorf("unrecognized operator %q", c.Operator)
		}
	}
	return nil
}

// ActionType is the closed set of action categories.
type ActionType string

const (
	ActionTypeBoard     ActionType = "board-action"
	ActionTypeCard      ActionType = "card-action"
	ActionTypeChecklist ActionType = "checklist-action"
	ActionTypeMail      ActionType = "mail-action"
)

// Board action kinds.
const (
	BoardActionMoveToTop    = "move-to-top"
	BoardActionMoveToBottom = "move-to-bottom"
	BoardActionArchive      = "archive"
	BoardActionUnarchive    = "unarchive"
	BoardActionCreateCard   = "create-card"
	BoardActionLinkCard     = "link-card"
	BoardActionAddSwimlane  = "add-swimlane"
)

// Card action kinds.
const (
	CardActionSetDate          = "set-date"
	CardActionUpdateDate       = "update-date"
	CardActionRemoveDate       = "remove-date"
	CardActionAddLabel         = "add-label"
	CardActionRemoveLabel      = "remove-label"
	CardActionRemoveAllLabels  = "remove-all-labels"
	CardActionAddMember        = "add-member"
	CardActionRemoveMember     = "remove-member"
	CardActionRemoveAllMembers = "remove-all-members"
	CardActionSetColor         = "set-color"
)

// Checklist action kinds.
const (
	ChecklistActionAdd        = "add-checklist"
	ChecklistActionRemove     = "remove-checklist"
	ChecklistActionCheckAll   = "check-all"
	ChecklistActionUncheckAll = "uncheck-all"
)

// Card date fields a card-action can set or clear.
const (
	DateFieldStartAt    = "startAt"
	DateFieldDueAt      = "dueAt"
	DateFieldEndAt      = "endAt"
	DateFieldReceivedAt = "receivedAt"
)

// BoardActionParams parameterizes a board-action. Targets are referenced by
// human-readable name and resolved to ids at dispatch time.
type BoardActionParams struct {
	Kind         string `json:"kind"`
	BoardName    string `json:"boardName,omitempty"`
	ListName     string `json:"listName,omitempty"`
	SwimlaneName string `json:"swimlaneName,omitempty"`
	CardTitle    string `json:"cardTitle,omitempty"`
}

// CardActionParams parameterizes a card-action.
type CardActionParams struct {
	Kind      string `json:"kind"`
	DateField string `json:"dateField,omitempty"`
	LabelID   string `json:"labelId,omitempty"`
	Username  string `json:"username,omitempty"`
	Color     string `json:"color,omitempty"`
}

// ChecklistActionParams parameterizes a checklist-action.
type ChecklistActionParams struct {
	Kind          string `json:"kind"`
	ChecklistName string `json:"checklistName,omitempty"`
}

// MailActionParams parameterizes a mail-action.
type MailActionParams struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message,omitempty"`
}

// ActionSpec is a tagged union over the closed set of action categories.
// Exactly the params struct matching Type is populated.
type ActionSpec struct {
	Type      ActionType             `json:"type"`
	Board     *BoardActionParams     `json:"board,omitempty"`
	Card      *CardActionParams      `json:"card,omitempty"`
	Checklist *ChecklistActionParams `json:"checklist,omitempty"`
	Mail      *MailActionParams      `json:"mail,omitempty"`
}

// RequiredPermission returns the permission implied by the action's category.
func (a *ActionSpec) RequiredPermission() string {
	switch a.Type {
	case ActionTypeBoard:
		return PermBoardsEdit
	case ActionTypeCard:
		return PermCardsEdit
	case ActionTypeChecklist:
		return PermChecklistsEdit
	case ActionTypeMail:
		return PermMailSend
	}
	return ""
}

// Validate rejects actions whose required parameters for the declared type
// are missing. Invalid actions are refused at creation time, not at
// execution time.
func (a *ActionSpec) Validate() error {
	switch a.Type {
	case ActionTypeBoard:
		if a.Board == nil {
			return fmt.Errorf("board-action requires board parameters")
		}
		return a.Board.validate()
	case ActionTypeCard:
		if a.Card == nil {
			return fmt.Errorf("card-action requires card parameters")
		}
		return a.Card.validate()
	case ActionTypeChecklist:
		if a.Checklist == nil {
			return fmt.Errorf("checklist-action requires checklist parameters")
		}
		return a.Checklist.validate()
	case ActionTypeMail:
		if a.Mail == nil {
			return fmt.Errorf("mail-action requires mail parameters")
		}
		return a.Mail.Validate()
	default:
		return fmt.Errorf("unrecognized action type %q", a.Type)
	}
}

func (p *BoardActionParams) validate() error {
	switch p.Kind {
	case BoardActionMoveToTop, BoardActionMoveToBottom:
		if p.ListName == "" {
			return fmt.Errorf("%s requires a list name", p.Kind)
		}
	case BoardActionArchive, BoardActionUnarchive:
		// no targets beyond the event's card
	case BoardActionCreateCard:
		if p.CardTitle == "" || p.ListName == "" {
			return fmt.Errorf("create-card requires a card title and a list name")
		}
	case BoardActionLinkCard:
		if p.BoardName == "" || p.ListName == "" {
			return fmt.Errorf("link-card requires a board name and a list name")
		}
	case BoardActionAddSwimlane:
		if p.SwimlaneName == "" {
			return fmt.Errorf("add-swimlane requires a swimlane name")
		}
	default:
		return fmt.Errorf("unrecognized board-action kind %q", p.Kind)
	}
	return nil
}

func (p *CardActionParams) validate() error {
	switch p.Kind {
	case CardActionSetDate, CardActionUpdateDate, CardActionRemoveDate:
		switch p.DateField {
		case DateFieldStartAt, DateFieldDueAt, DateFieldEndAt, DateFieldReceivedAt:
		default:
			return fmt.Errorf("%s requires a valid date field", p.Kind)
		}
	case CardActionAddLabel, CardActionRemoveLabel:
		if p.LabelID == "" {
			return fmt.Errorf("%s requires a label id", p.Kind)
		}
	case CardActionAddMember, CardActionRemoveMember:
		if p.Username == "" {
			return fmt.Errorf("%s requires a username", p.Kind)
		}
	case CardActionSetColor:
		if p.Color == "" {
			return fmt.Errorf("set-color requires a color")
		}
	case CardActionRemoveAllLabels, CardActionRemoveAllMembers:
		// no parameters
	default:
		return fmt.Errorf("unrecognized card-action kind %q", p.Kind)
	}
	return nil
}

func (p *ChecklistActionParams) validate() error {
	switch p.Kind {
	case ChecklistActionAdd, ChecklistActionRemove, ChecklistActionCheckAll, ChecklistActionUncheckAll:
		if p.ChecklistName == "" {
			return fmt.Errorf("%s requires a checklist name", p.Kind)
		}
	default:
		return fmt.Errorf("unrecognized checklist-action kind %q", p.Kind)
	}
	return nil
}

// Validate checks the mail parameters required for sending. Exported because
// the dispatcher re-checks defensively before invoking the mail collaborator.
func (p *MailActionParams) Validate() error {
	if p.To == "" {
		return fmt.Errorf("mail-action requires a recipient")
	}
	if p.Subject == "" {
		return fmt.Errorf("mail-action requires a subject")
	}
	return nil
}

// Rule is a stored automation entry: when the trigger fires, perform the
// action. Trigger and action live on the row as JSON documents so a rule is
// always created and deleted as one unit.
type Rule struct {
	BaseModel
	BoardID uuid.UUID `gorm:"type:uuid;not null;index:idx_rules_board_id" json:"boardId"`
	// AuthorID is the user who last edited the rule; dispatched actions are
	// authorized against this identity.
	AuthorID uuid.UUID      `gorm:"type:uuid;not null;index:idx_rules_author_id" json:"authorId"`
	Title    string         `gorm:"type:varchar(255);not null" json:"title"`
	Enabled  bool           `gorm:"not null;default:true;index:idx_rules_enabled" json:"enabled"`
	Trigger  datatypes.JSON `gorm:"type:jsonb;not null" json:"trigger"`
	Action   datatypes.JSON `gorm:"type:jsonb;not null" json:"action"`
}

// TableName specifies the table name for Rule
func (Rule) TableName() string {
	return "rules"
}

// TriggerSpec decodes the stored trigger document.
func (r *Rule) TriggerSpec() (*TriggerSpec, error) {
	var spec TriggerSpec
	if err := json.Unmarshal(r.Trigger, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode trigger spec: %w", err)
	}
	return &spec, nil
}

// ActionSpec decodes the stored action document.
func (r *Rule) ActionSpec() (*ActionSpec, error) {
	var spec ActionSpec
	if err := json.Unmarshal(r.Action, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode action spec: %w", err)
	}
	return &spec, nil
}

// SetTrigger encodes and stores the trigger document.
func (r *Rule) SetTrigger(spec *TriggerSpec) error {
	data, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to encode trigger spec: %w", err)
	}
	r.Trigger = data
	return nil
}

// SetAction encodes and stores the action document.
func (r *Rule) SetAction(spec *ActionSpec) error {
	data, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to encode action spec: %w", err)
	}
	r.Action = data
	return nil
}
