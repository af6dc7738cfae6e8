package connectwise

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"slidebridge/internal/shared/config"
	"slidebridge/internal/shared/logger"
)

const (
	// Maximum page size accepted by the ConnectWise REST API.
	pageSize = 1000
	// Maximum response body size (8MB).
	maxResponseSize = 8 << 20
)

// Client talks to the ConnectWise Manage REST API. Auth is HTTP Basic with
// "companyID+publicKey" as the username and the private key as the password,
// plus the registered clientId header.
type Client struct {
	baseURL    string
	companyID  string
	publicKey  string
	privateKey string
	clientID   string
	httpClient *http.Client
	logger     logger.Interface
}

// Ref is the id-or-name reference shape ConnectWise accepts on writes.
type Ref struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type ticketCreateRequest struct {
	Summary     string `json:"summary"`
	Company     Ref    `json:"company"`
	Board       Ref    `json:"board"`
	Status      Ref    `json:"status,omitempty"`
	Priority    Ref    `json:"priority,omitempty"`
	Type        Ref    `json:"type,omitempty"`
	Description string `json:"initialDescription,omitempty"`
}

func NewClient(cfg *config.ConnectWiseConfig, timeout time.Duration, log logger.Interface) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		companyID:  cfg.CompanyID,
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		clientID:   cfg.ClientID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

// GetCompanies fetches all non-deleted companies, paging until exhausted.
func (c *Client) GetCompanies(ctx context.Context) ([]Company, error) {
	var all []Company
	page := 1

	for {
		endpoint := fmt.Sprintf("/company/companies?conditions=deletedFlag=false&page=%d&pageSize=%d&orderBy=name", page, pageSize)

		var companies []Company
		if err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, &companies); err != nil {
			return nil, fmt.Errorf("failed to get companies (page %d): %w", page, err)
		}

		if len(companies) == 0 {
			break
		}

		all = append(all, companies...)
		if len(companies) < pageSize {
			break
		}
		page++
	}

	c.logger.Debugw("fetched connectwise companies", "count", len(all))
	return all, nil
}

func (c *Client) GetBoards(ctx context.Context) ([]Board, error) {
	var all []Board
	page := 1

	for {
		endpoint := fmt.Sprintf("/service/boards?conditions=inactiveFlag=false&page=%d&pageSize=%d", page, pageSize)

		var boards []Board
		if err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, &boards); err != nil {
			return nil, fmt.Errorf("failed to get boards (page %d): %w", page, err)
		}

		all = append(all, boards...)
		if len(boards) < pageSize {
			break
		}
		page++
	}

	return all, nil
}

// GetStatuses fetches statuses for a board. The statuses endpoint rejects
// the conditions parameter, so inactive entries are filtered client-side.
func (c *Client) GetStatuses(ctx context.Context, boardID int) ([]Status, error) {
	var all []Status
	page := 1

	for {
		endpoint := fmt.Sprintf("/service/boards/%d/statuses?page=%d&pageSize=%d", boardID, page, pageSize)

		var statuses []Status
		if err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, &statuses); err != nil {
			return nil, fmt.Errorf("failed to get statuses for board %d (page %d): %w", boardID, page, err)
		}

		for _, status := range statuses {
			if !status.Inactive {
				all = append(all, status)
			}
		}

		if len(statuses) < pageSize {
			break
		}
		page++
	}

	return all, nil
}

func (c *Client) GetPriorities(ctx context.Context) ([]Priority, error) {
	var all []Priority
	page := 1

	for {
		endpoint := fmt.Sprintf("/service/priorities?page=%d&pageSize=%d", page, pageSize)

		var priorities []Priority
		if err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, &priorities); err != nil {
			return nil, fmt.Errorf("failed to get priorities (page %d): %w", page, err)
		}

		for _, priority := range priorities {
			if !priority.Inactive {
				all = append(all, priority)
			}
		}

		if len(priorities) < pageSize {
			break
		}
		page++
	}

	return all, nil
}

func (c *Client) GetTypes(ctx context.Context, boardID int) ([]Type, error) {
	var all []Type
	page := 1

	for {
		endpoint := fmt.Sprintf("/service/boards/%d/types?conditions=inactiveFlag=false&page=%d&pageSize=%d", boardID, page, pageSize)

		var types []Type
		if err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, &types); err != nil {
			return nil, fmt.Errorf("failed to get types for board %d (page %d): %w", boardID, page, err)
		}

		all = append(all, types...)
		if len(types) < pageSize {
			break
		}
		page++
	}

	return all, nil
}

func (c *Client) GetMembers(ctx context.Context) ([]Member, error) {
	var all []Member
	page := 1

	for {
		endpoint := fmt.Sprintf("/system/members?conditions=inactiveFlag=false&page=%d&pageSize=%d", page, pageSize)

		var members []Member
		if err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, &members); err != nil {
			return nil, fmt.Errorf("failed to get members (page %d): %w", page, err)
		}

		all = append(all, members...)
		if len(members) < pageSize {
			break
		}
		page++
	}

	return all, nil
}

// CreateTicketParams carries the resolved target for a new ticket. Names are
// used for board/status/priority/type references since the ConnectWise write
// API resolves them server-side.
type CreateTicketParams struct {
	CompanyID    int
	Summary      string
	Description  string
	BoardName    string
	StatusName   string
	PriorityName string
	TypeName     string
}

func (c *Client) CreateTicket(ctx context.Context, params CreateTicketParams) (*Ticket, error) {
	request := ticketCreateRequest{
		Summary:     params.Summary,
		Company:     Ref{ID: params.CompanyID},
		Board:       Ref{Name: params.BoardName},
		Status:      Ref{Name: params.StatusName},
		Priority:    Ref{Name: params.PriorityName},
		Type:        Ref{Name: params.TypeName},
		Description: params.Description,
	}

	var result Ticket
	if err := c.makeRequest(ctx, http.MethodPost, "/service/tickets", request, &result); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	c.logger.Infow("created connectwise ticket",
		"ticket_id", result.ID,
		"company_id", result.Company.ID,
		"company_name", result.Company.Name,
	)
	return &result, nil
}

func (c *Client) GetTicket(ctx context.Context, ticketID int) (*Ticket, error) {
	endpoint := fmt.Sprintf("/service/tickets/%d", ticketID)

	var result Ticket
	if err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to get ticket %d: %w", ticketID, err)
	}

	return &result, nil
}

// AssignTicket sets the ticket owner by member ID.
func (c *Client) AssignTicket(ctx context.Context, ticketID int, memberID int) error {
	patch := []map[string]any{
		{
			"op":    "replace",
			"path":  "owner/id",
			"value": memberID,
		},
	}

	endpoint := fmt.Sprintf("/service/tickets/%d", ticketID)
	if err := c.makeRequest(ctx, http.MethodPatch, endpoint, patch, nil); err != nil {
		return fmt.Errorf("failed to assign ticket %d: %w", ticketID, err)
	}

	return nil
}

func (c *Client) makeRequest(ctx context.Context, method, endpoint string, payload any, result any) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	auth := fmt.Sprintf("%s+%s:%s", c.companyID, c.publicKey, c.privateKey)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(auth)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("clientId", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("connectwise API returned status %d for %s %s", resp.StatusCode, method, endpoint)
	}

	if result != nil {
		limited := io.LimitReader(resp.Body, maxResponseSize)
		if err := json.NewDecoder(limited).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
