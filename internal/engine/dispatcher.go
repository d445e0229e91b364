package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"board-automation-api/internal/client"
	"board-automation-api/internal/domain"
	"board-automation-api/internal/response"
	"board-automation-api/internal/service"
)

// Dispatcher executes the side effect described by an action spec. It
// authorizes the rule's author against the action category, resolves
// human-readable targets to ids, and hands fully-resolved commands to the
// board and mail collaborators.
type Dispatcher struct {
	boards      client.BoardClient
	mail        client.MailClient
	permissions service.PermissionService
	logger      *zap.Logger
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(
	boards client.BoardClient,
	mail client.MailClient,
	permissions service.PermissionService,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		boards:      boards,
		mail:        mail,
		permissions: permissions,
		logger:      logger,
	}
}

// Execute runs the action for the event on behalf of the rule's author.
// Failures come back as AppError values (Unauthorized, TargetNotFound, ...)
// for the engine to record; they are never retried here.
func (d *Dispatcher) Execute(ctx context.Context, rule *domain.Rule, action *domain.ActionSpec, event *domain.ActivityEvent) error {
	required := action.RequiredPermission()
	if required == "" {
		return response.NewAppError(response.ErrCodeInvalidAction, "Unrecognized action type", string(action.Type))
	}

	allowed, err := d.permissions.HasPermission(ctx, rule.AuthorID, event.BoardID, required)
	if err != nil {
		return err
	}
	if !allowed {
		return response.NewAppError(response.ErrCodeUnauthorized,
			"Rule author lacks permission for action",
			fmt.Sprintf("user %s requires %s on board %s", rule.AuthorID, required, event.BoardID))
	}

	switch action.Type {
	case domain.ActionTypeBoard:
		return d.executeBoardAction(ctx, action.Board, event)
	case domain.ActionTypeCard:
		return d.executeCardAction(ctx, action.Card, event)
	case domain.ActionTypeChecklist:
		return d.executeChecklistAction(ctx, action.Checklist, event)
	case domain.ActionTypeMail:
		return d.executeMailAction(ctx, action.Mail)
	default:
		return response.NewAppError(response.ErrCodeInvalidAction, "Unrecognized action type", string(action.Type))
	}
}

func (d *Dispatcher) executeBoardAction(ctx context.Context, params *domain.BoardActionParams, event *domain.ActivityEvent) error {
	switch params.Kind {
	case domain.BoardActionArchive:
		cardID, err := requireCard(event)
		if err != nil {
			return err
		}
		return d.boards.ArchiveCard(ctx, cardID)

	case domain.BoardActionUnarchive:
		cardID, err := requireCard(event)
		if err != nil {
			return err
		}
		return d.boards.UnarchiveCard(ctx, cardID)

	case domain.BoardActionAddSwimlane:
		layout, err := d.resolveBoard(ctx, params.BoardName, event.BoardID)
		if err != nil {
			return err
		}
		// Only add-swimlane may create a missing swimlane; every other
		// resolution failure is TargetNotFound.
		if _, ok := findSwimlane(layout, params.SwimlaneName); ok {
			return nil
		}
		_, err = d.boards.CreateSwimlane(ctx, layout.BoardID, params.SwimlaneName)
		return err

	case domain.BoardActionMoveToTop, domain.BoardActionMoveToBottom:
		cardID, err := requireCard(event)
		if err != nil {
			return err
		}
		target, err := d.resolveTarget(ctx, params, event)
		if err != nil {
			return err
		}
		position := "top"
		if params.Kind == domain.BoardActionMoveToBottom {
			position = "bottom"
		}
		target.Position = position
		return d.boards.MoveCard(ctx, cardID, *target)

	case domain.BoardActionCreateCard:
		target, err := d.resolveTarget(ctx, params, event)
		if err != nil {
			return err
		}
		return d.boards.CreateCard(ctx, client.CreateCardRequest{
			BoardID:    target.BoardID,
			ListID:     target.ListID,
			SwimlaneID: target.SwimlaneID,
			Title:      params.CardTitle,
		})

	case domain.BoardActionLinkCard:
		cardID, err := requireCard(event)
		if err != nil {
			return err
		}
		target, err := d.resolveTarget(ctx, params, event)
		if err != nil {
			return err
		}
		return d.boards.LinkCard(ctx, cardID, *target)
	}

	return response.NewAppError(response.ErrCodeInvalidAction, "Unrecognized board-action kind", params.Kind)
}

func (d *Dispatcher) executeCardAction(ctx context.Context, params *domain.CardActionParams, event *domain.ActivityEvent) error {
	cardID, err := requireCard(event)
	if err != nil {
		return err
	}

	switch params.Kind {
	case domain.CardActionSetDate, domain.CardActionUpdateDate:
		return d.boards.SetCardDate(ctx, cardID, params.DateField, time.Now().UTC())
	case domain.CardActionRemoveDate:
		return d.boards.ClearCardDate(ctx, cardID, params.DateField)
	case domain.CardActionAddLabel:
		return d.boards.AddCardLabel(ctx, cardID, params.LabelID)
	case domain.CardActionRemoveLabel:
		return d.boards.RemoveCardLabel(ctx, cardID, params.LabelID)
	case domain.CardActionRemoveAllLabels:
		return d.boards.RemoveAllCardLabels(ctx, cardID)
	case domain.CardActionAddMember:
		userID, err := d.resolveMember(ctx, event.BoardID, params.Username)
		if err != nil {
			return err
		}
		return d.boards.AddCardMember(ctx, cardID, userID)
	case domain.CardActionRemoveMember:
		userID, err := d.resolveMember(ctx, event.BoardID, params.Username)
		if err != nil {
			return err
		}
		return d.boards.RemoveCardMember(ctx, cardID, userID)
	case domain.CardActionRemoveAllMembers:
		return d.boards.RemoveAllCardMembers(ctx, cardID)
	case domain.CardActionSetColor:
		return d.boards.SetCardColor(ctx, cardID, params.Color)
	}

	return response.NewAppError(response.ErrCodeInvalidAction, "Unrecognized card-action kind", params.Kind)
}

func (d *Dispatcher) executeChecklistAction(ctx context.Context, params *domain.ChecklistActionParams, event *domain.ActivityEvent) error {
	cardID, err := requireCard(event)
	if err != nil {
		return err
	}

	switch params.Kind {
	case domain.ChecklistActionAdd:
		return d.boards.AddChecklist(ctx, cardID, params.ChecklistName)
	case domain.ChecklistActionRemove:
		return d.boards.RemoveChecklist(ctx, cardID, params.ChecklistName)
	case domain.ChecklistActionCheckAll:
		return d.boards.SetChecklistItems(ctx, cardID, params.ChecklistName, true)
	case domain.ChecklistActionUncheckAll:
		return d.boards.SetChecklistItems(ctx, cardID, params.ChecklistName, false)
	}

	return response.NewAppError(response.ErrCodeInvalidAction, "Unrecognized checklist-action kind", params.Kind)
}

func (d *Dispatcher) executeMailAction(ctx context.Context, params *domain.MailActionParams) error {
	// Creation-time validation should have caught this; the dispatcher
	// re-checks so an incomplete spec can never reach the mail collaborator.
	if err := params.Validate(); err != nil {
		return response.NewAppError(response.ErrCodeIncompleteMailAction, "Mail action is missing required fields", err.Error())
	}
	return d.mail.SendMail(ctx, params.To, params.Subject, params.Message)
}

// resolveBoard returns the layout of the named board, or of the event's board
// when no name is given.
func (d *Dispatcher) resolveBoard(ctx context.Context, boardName string, eventBoardID uuid.UUID) (*client.BoardLayout, error) {
	if boardName == "" {
		layout, err := d.boards.GetBoardLayout(ctx, eventBoardID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeTargetNotFound, "Board not found", eventBoardID.String())
		}
		return layout, nil
	}
	layout, err := d.boards.FindBoardByTitle(ctx, boardName)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeTargetNotFound, "Board not found", boardName)
	}
	return layout, nil
}

// resolveTarget turns the action's named list/swimlane into a fully-resolved
// move command. First name match wins; a missing swimlane name falls back to
// the board's default swimlane.
func (d *Dispatcher) resolveTarget(ctx context.Context, params *domain.BoardActionParams, event *domain.ActivityEvent) (*client.MoveCardRequest, error) {
	layout, err := d.resolveBoard(ctx, params.BoardName, event.BoardID)
	if err != nil {
		return nil, err
	}

	listID, ok := findList(layout, params.ListName)
	if !ok {
		return nil, response.NewAppError(response.ErrCodeTargetNotFound, "List not found", params.ListName)
	}

	swimlaneID, ok := findSwimlane(layout, params.SwimlaneName)
	if !ok {
		swimlaneID, ok = defaultSwimlane(layout)
		if !ok {
			return nil, response.NewAppError(response.ErrCodeTargetNotFound, "Swimlane not found", params.SwimlaneName)
		}
	}

	return &client.MoveCardRequest{
		BoardID:    layout.BoardID,
		ListID:     listID,
		SwimlaneID: swimlaneID,
	}, nil
}

// resolveMember resolves a username to a user id via the board's member list.
func (d *Dispatcher) resolveMember(ctx context.Context, boardID uuid.UUID, username string) (uuid.UUID, error) {
	layout, err := d.boards.GetBoardLayout(ctx, boardID)
	if err != nil {
		return uuid.Nil, response.NewAppError(response.ErrCodeTargetNotFound, "Board not found", boardID.String())
	}
	for _, m := range layout.Members {
		if m.Username == username {
			return m.UserID, nil
		}
	}
	return uuid.Nil, response.NewAppError(response.ErrCodeTargetNotFound, "Board member not found", username)
}

func requireCard(event *domain.ActivityEvent) (uuid.UUID, error) {
	if event.CardID == uuid.Nil {
		return uuid.Nil, response.NewAppError(response.ErrCodeTargetNotFound, "Event carries no card", string(event.ActivityType))
	}
	return event.CardID, nil
}

func findList(layout *client.BoardLayout, name string) (uuid.UUID, bool) {
	for _, l := range layout.Lists {
		if l.Title == name {
			return l.ID, true
		}
	}
	return uuid.Nil, false
}

func findSwimlane(layout *client.BoardLayout, name string) (uuid.UUID, bool) {
	if name == "" {
		return uuid.Nil, false
	}
	for _, s := range layout.Swimlanes {
		if s.Title == name {
			return s.ID, true
		}
	}
	return uuid.Nil, false
}

func defaultSwimlane(layout *client.BoardLayout) (uuid.UUID, bool) {
	for _, s := range layout.Swimlanes {
		if s.IsDefault {
			return s.ID, true
		}
	}
	if len(layout.Swimlanes) > 0 {
		return layout.Swimlanes[0].ID, true
	}
	return uuid.Nil, false
}
