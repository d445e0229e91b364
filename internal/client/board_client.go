package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"board-automation-api/internal/metrics"
)

// ListInfo describes a list on a board
type ListInfo struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// SwimlaneInfo describes a swimlane on a board
type SwimlaneInfo struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	IsDefault bool      `json:"isDefault"`
}

// MemberInfo describes a board member
type MemberInfo struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
}

// BoardLayout is the name-resolution view of a board: everything the
// dispatcher needs to turn human-readable action targets into ids.
type BoardLayout struct {
	BoardID   uuid.UUID      `json:"boardId"`
	Title     string         `json:"title"`
	Lists     []ListInfo     `json:"lists"`
	Swimlanes []SwimlaneInfo `json:"swimlanes"`
	Members   []MemberInfo   `json:"members"`
}

// MoveCardRequest is a fully-resolved card move command
type MoveCardRequest struct {
	BoardID    uuid.UUID `json:"boardId"`
	ListID     uuid.UUID `json:"listId"`
	SwimlaneID uuid.UUID `json:"swimlaneId"`
	Position   string    `json:"position"`
}

// CreateCardRequest is a fully-resolved card creation command
type CreateCardRequest struct {
	BoardID    uuid.UUID `json:"boardId"`
	ListID     uuid.UUID `json:"listId"`
	SwimlaneID uuid.UUID `json:"swimlaneId"`
	Title      string    `json:"title"`
}

// BoardClient defines the interface for the board mutation service. All
// methods take fully-resolved ids; name resolution happens in the engine via
// GetBoardLayout / FindBoardByTitle.
type BoardClient interface {
	GetBoardLayout(ctx context.Context, boardID uuid.UUID) (*BoardLayout, error)
	FindBoardByTitle(ctx context.Context, title string) (*BoardLayout, error)
	MoveCard(ctx context.Context, cardID uuid.UUID, req MoveCardRequest) error
	ArchiveCard(ctx context.Context, cardID uuid.UUID) error
	UnarchiveCard(ctx context.Context, cardID uuid.UUID) error
	CreateCard(ctx context.Context, req CreateCardRequest) error
	LinkCard(ctx context.Context, cardID uuid.UUID, req MoveCardRequest) error
	CreateSwimlane(ctx context.Context, boardID uuid.UUID, title string) (uuid.UUID, error)
	SetCardDate(ctx context.Context, cardID uuid.UUID, field string, value time.Time) error
	ClearCardDate(ctx context.Context, cardID uuid.UUID, field string) error
	AddCardLabel(ctx context.Context, cardID uuid.UUID, labelID string) error
	RemoveCardLabel(ctx context.Context, cardID uuid.UUID, labelID string) error
	RemoveAllCardLabels(ctx context.Context, cardID uuid.UUID) error
	AddCardMember(ctx context.Context, cardID, userID uuid.UUID) error
	RemoveCardMember(ctx context.Context, cardID, userID uuid.UUID) error
	RemoveAllCardMembers(ctx context.Context, cardID uuid.UUID) error
	SetCardColor(ctx context.Context, cardID uuid.UUID, color string) error
	AddChecklist(ctx context.Context, cardID uuid.UUID, title string) error
	RemoveChecklist(ctx context.Context, cardID uuid.UUID, title string) error
	SetChecklistItems(ctx context.Context, cardID uuid.UUID, title string, checked bool) error
}

// boardClient implements BoardClient against the board service's internal API
type boardClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewBoardClient creates a new board service client
func NewBoardClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) BoardClient {
	return &boardClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// doJSON issues a request against the board service, recording external API
// metrics, and decodes the response body into out when out is non-nil.
func (c *boardClient) doJSON(ctx context.Context, operation, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", operation, err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordExternalAPIError("board", operation)
		}
		c.logger.Error("Board API request failed",
			zap.String("operation", operation),
			zap.Error(err),
		)
		return fmt.Errorf("board API %s failed: %w", operation, err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.RecordExternalAPIRequest("board", operation, resp.StatusCode, time.Since(startTime))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.metrics != nil {
			c.metrics.RecordExternalAPIError("board", operation)
		}
		c.logger.Warn("Board API returned non-success status",
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("board API %s returned status %d", operation, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", operation, err)
		}
	}
	return nil
}

func (c *boardClient) GetBoardLayout(ctx context.Context, boardID uuid.UUID) (*BoardLayout, error) {
	var layout BoardLayout
	path := fmt.Sprintf("/api/internal/boards/%s/layout", boardID)
	if err := c.doJSON(ctx, "get_board_layout", http.MethodGet, path, nil, &layout); err != nil {
		return nil, err
	}
	return &layout, nil
}

func (c *boardClient) FindBoardByTitle(ctx context.Context, title string) (*BoardLayout, error) {
	var layout BoardLayout
	path := "/api/internal/boards/lookup?title=" + url.QueryEscape(title)
	if err := c.doJSON(ctx, "find_board_by_title", http.MethodGet, path, nil, &layout); err != nil {
		return nil, err
	}
	return &layout, nil
}

func (c *boardClient) MoveCard(ctx context.Context, cardID uuid.UUID, req MoveCardRequest) error {
	path := fmt.Sprintf("/api/internal/cards/%s/move", cardID)
	return c.doJSON(ctx, "move_card", http.MethodPost, path, req, nil)
}

func (c *boardClient) ArchiveCard(ctx context.Context, cardID uuid.UUID) error {
	path := fmt.Sprintf("/api/internal/cards/%s/archive", cardID)
	return c.doJSON(ctx, "archive_card", http.MethodPost, path, nil, nil)
}

func (c *boardClient) UnarchiveCard(ctx context.Context, cardID uuid.UUID) error {
	path := fmt.Sprintf("/api/internal/cards/%s/unarchive", cardID)
	return c.doJSON(ctx, "unarchive_card", http.MethodPost, path, nil, nil)
}

func (c *boardClient) CreateCard(ctx context.Context, req CreateCardRequest) error {
	return c.doJSON(ctx, "create_card", http.MethodPost, "/api/internal/cards", req, nil)
}

func (c *boardClient) LinkCard(ctx context.Context, cardID uuid.UUID, req MoveCardRequest) error {
	path := fmt.Sprintf("/api/internal/cards/%s/link", cardID)
	return c.doJSON(ctx, "link_card", http.MethodPost, path, req, nil)
}

func (c *boardClient) CreateSwimlane(ctx context.Context, boardID uuid.UUID, title string) (uuid.UUID, error) {
	var created SwimlaneInfo
	path := fmt.Sprintf("/api/internal/boards/%s/swimlanes", boardID)
	body := map[string]string{"title": title}
	if err := c.doJSON(ctx, "create_swimlane", http.MethodPost, path, body, &created); err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}

func (c *boardClient) SetCardDate(ctx context.Context, cardID uuid.UUID, field string, value time.Time) error {
	path := fmt.Sprintf("/api/internal/cards/%s/dates/%s", cardID, field)
	body := map[string]string{"value": value.UTC().Format(time.RFC3339)}
	return c.doJSON(ctx, "set_card_date", http.MethodPut, path, body, nil)
}

func (c *boardClient) ClearCardDate(ctx context.Context, cardID uuid.UUID, field string) error {
	path := fmt.Sprintf("/api/internal/cards/%s/dates/%s", cardID, field)
	return c.doJSON(ctx, "clear_card_date", http.MethodDelete, path, nil, nil)
}

func (c *boardClient) AddCardLabel(ctx context.Context, cardID uuid.UUID, labelID string) error {
	path := fmt.Sprintf("/api/internal/cards/%s/labels/%s", cardID, labelID)
	return c.doJSON(ctx, "add_card_label", http.MethodPut, path, nil, nil)
}

func (c *boardClient) RemoveCardLabel(ctx context.Context, cardID uuid.UUID, labelID string) error {
	path := fmt.Sprintf("/api/internal/cards/%s/labels/%s", cardID, labelID)
	return c.doJSON(ctx, "remove_card_label", http.MethodDelete, path, nil, nil)
}

func (c *boardClient) RemoveAllCardLabels(ctx context.Context, cardID uuid.UUID) error {
	path := fmt.Sprintf("/api/internal/cards/%s/labels", cardID)
	return c.doJSON(ctx, "remove_all_card_labels", http.MethodDelete, path, nil, nil)
}

func (c *boardClient) AddCardMember(ctx context.Context, cardID, userID uuid.UUID) error {
	path := fmt.Sprintf("/api/internal/cards/%s/members/%s", cardID, userID)
	return c.doJSON(ctx, "add_card_member", http.MethodPut, path, nil, nil)
}

func (c *boardClient) RemoveCardMember(ctx context.Context, cardID, userID uuid.UUID) error {
	path := fmt.Sprintf("/api/internal/cards/%s/members/%s", cardID, userID)
	return c.doJSON(ctx, "remove_card_member", http.MethodDelete, path, nil, nil)
}

func (c *boardClient) RemoveAllCardMembers(ctx context.Context, cardID uuid.UUID) error {
	path := fmt.Sprintf("/api/internal/cards/%s/members", cardID)
	return c.doJSON(ctx, "remove_all_card_members", http.MethodDelete, path, nil, nil)
}

func (c *boardClient) SetCardColor(ctx context.Context, cardID uuid.UUID, color string) error {
	path := fmt.Sprintf("/api/internal/cards/%s/color", cardID)
	body := map[string]string{"color": color}
	return c.doJSON(ctx, "set_card_color", http.MethodPut, path, body, nil)
}

func (c *boardClient) AddChecklist(ctx context.Context, cardID uuid.UUID, title string) error {
	path := fmt.Sprintf("/api/internal/cards/%s/checklists", cardID)
	body := map[string]string{"title": title}
	return c.doJSON(ctx, "add_checklist", http.MethodPost, path, body, nil)
}

func (c *boardClient) RemoveChecklist(ctx context.Context, cardID uuid.UUID, title string) error {
	path := fmt.Sprintf("/api/internal/cards/%s/checklists/%s", cardID, url.PathEscape(title))
	return c.doJSON(ctx, "remove_checklist", http.MethodDelete, path, nil, nil)
}

func (c *boardClient) SetChecklistItems(ctx context.Context, cardID uuid.UUID, title string, checked bool) error {
	path := fmt.Sprintf("/api/internal/cards/%s/checklists/%s/items", cardID, url.PathEscape(title))
	body := map[string]bool{"checked": checked}
	return c.doJSON(ctx, "set_checklist_items", http.MethodPut, path, body, nil)
}
