package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

// Tool names.
const (
	toolAskAssistant   = "ask_assistant"
	toolLookupPlaybook = "lookup_playbook"
	toolListWorkOrders = "list_work_orders"
	toolResolve        = "resolve_work_order"
	toolPriorityQueue  = "priority_queue"
)

// AskInput is the input schema for the ask_assistant tool.
type AskInput struct {
	TaskID   string `json:"task_id" jsonschema:"the work order task ID, e.g. WO-2024-001"`
	Question string `json:"question" jsonschema:"the technician's question"`
}

// AskOutput is the output schema for the ask_assistant tool.
type AskOutput struct {
	TaskID string `json:"task_id"`
	Intent string `json:"intent"`
	Answer string `json:"answer"`
}

// PlaybookInput is the input schema for the lookup_playbook tool.
type PlaybookInput struct {
	ID string `json:"id" jsonschema:"the playbook identifier, e.g. power_supply_failure"`
}

// PlaybookOutput is the output schema for the lookup_playbook tool.
type PlaybookOutput struct {
	Found    bool                     `json:"found"`
	Playbook *domain.PlaybookDocument `json:"playbook,omitempty"`
}

// ListWorkOrdersInput is the input schema for the list_work_orders tool.
type ListWorkOrdersInput struct {
	Status   string `json:"status,omitempty" jsonschema:"only return orders with this status"`
	Priority string `json:"priority,omitempty" jsonschema:"only return orders with this priority"`
}

// WorkOrderSummary is a compact work order.
type WorkOrderSummary struct {
	TaskID          string `json:"task_id"`
	Title           string `json:"title"`
	Priority        string `json:"priority"`
	Status          string `json:"status"`
	Location        string `json:"location,omitempty"`
	DueDate         string `json:"due_date,omitempty"`
	IssueDocumentID string `json:"issue_document_id,omitempty"`
}

// ListWorkOrdersOutput is the output schema for the list_work_orders tool.
type ListWorkOrdersOutput struct {
	WorkOrders []WorkOrderSummary `json:"work_orders"`
	Count      int                `json:"count"`
}

// ResolveInput is the input schema for the resolve_work_order tool.
type ResolveInput struct {
	TaskID string `json:"task_id" jsonschema:"the work order to mark completed"`
}

// ResolveOutput is the output schema for the resolve_work_order tool.
type ResolveOutput struct {
	TaskID    string `json:"task_id"`
	Status    string `json:"status"`
	Synced    bool   `json:"synced"`
	SyncError string `json:"sync_error,omitempty"`
}

// PriorityQueueInput is the (empty) input schema for the priority_queue tool.
type PriorityQueueInput struct{}

// PriorityQueueOutput is the output schema for the priority_queue tool.
type PriorityQueueOutput struct {
	Critical []WorkOrderSummary `json:"critical"`
	High     []WorkOrderSummary `json:"high"`
	Medium   []WorkOrderSummary `json:"medium"`
	Low      []WorkOrderSummary `json:"low"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolAskAssistant,
		Description: "Ask the playbook assistant a question about a work order",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolLookupPlaybook,
		Description: "Look up an incident playbook by ID",
	}, s.handleLookupPlaybook)

	if s.ports.WorkOrders == nil {
		return
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolListWorkOrders,
		Description: "List the technician's work orders",
	}, s.handleListWorkOrders)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolResolve,
		Description: "Mark a work order completed and sync it to the backend",
	}, s.handleResolve)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolPriorityQueue,
		Description: "Open work orders grouped by priority, most urgent first",
	}, s.handlePriorityQueue)
}

// handleAsk handles the ask_assistant tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (_ *mcp.CallToolResult, _ AskOutput, err error) {
	defer func() { s.record(toolAskAssistant, err) }()

	if strings.TrimSpace(input.Question) == "" {
		return nil, AskOutput{}, fmt.Errorf("question: %w", domain.ErrEmptyInput)
	}

	answer, err := s.ports.Assistant.Ask(ctx, input.TaskID, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{
		TaskID: answer.TaskID,
		Intent: answer.Intent.String(),
		Answer: answer.Text,
	}, nil
}

// handleLookupPlaybook handles the lookup_playbook tool invocation.
// An unknown ID is not an error.
func (s *Server) handleLookupPlaybook(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PlaybookInput,
) (*mcp.CallToolResult, PlaybookOutput, error) {
	doc := s.ports.Catalog.Lookup(input.ID)
	s.record(toolLookupPlaybook, nil)
	if doc == nil {
		return nil, PlaybookOutput{}, nil
	}
	return nil, PlaybookOutput{Found: true, Playbook: doc}, nil
}

// handleListWorkOrders handles the list_work_orders tool invocation.
func (s *Server) handleListWorkOrders(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListWorkOrdersInput,
) (_ *mcp.CallToolResult, _ ListWorkOrdersOutput, err error) {
	defer func() { s.record(toolListWorkOrders, err) }()

	if s.ports.WorkOrders == nil {
		return nil, ListWorkOrdersOutput{}, ErrWorkOrdersUnavailable
	}

	orders, err := s.ports.WorkOrders.List(ctx)
	if err != nil {
		return nil, ListWorkOrdersOutput{}, err
	}

	output := ListWorkOrdersOutput{WorkOrders: []WorkOrderSummary{}}
	for i := range orders {
		if input.Status != "" && string(orders[i].Status) != input.Status {
			continue
		}
		if input.Priority != "" && string(orders[i].Priority) != input.Priority {
			continue
		}
		output.WorkOrders = append(output.WorkOrders, summarise(orders[i]))
	}
	output.Count = len(output.WorkOrders)

	return nil, output, nil
}

// handleResolve handles the resolve_work_order tool invocation.
func (s *Server) handleResolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (_ *mcp.CallToolResult, _ ResolveOutput, err error) {
	defer func() { s.record(toolResolve, err) }()

	if s.ports.WorkOrders == nil {
		return nil, ResolveOutput{}, ErrWorkOrdersUnavailable
	}

	result, err := s.ports.WorkOrders.Resolve(ctx, input.TaskID)
	if err != nil {
		return nil, ResolveOutput{}, err
	}

	output := ResolveOutput{
		TaskID: result.Order.TaskID,
		Status: string(result.Order.Status),
		Synced: result.Synced,
	}
	if result.SyncErr != nil {
		output.SyncError = result.SyncErr.Error()
	}
	return nil, output, nil
}

// handlePriorityQueue handles the priority_queue tool invocation.
func (s *Server) handlePriorityQueue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ PriorityQueueInput,
) (_ *mcp.CallToolResult, _ PriorityQueueOutput, err error) {
	defer func() { s.record(toolPriorityQueue, err) }()

	if s.ports.WorkOrders == nil {
		return nil, PriorityQueueOutput{}, ErrWorkOrdersUnavailable
	}

	q, err := s.ports.WorkOrders.PriorityQueue(ctx)
	if err != nil {
		return nil, PriorityQueueOutput{}, err
	}

	return nil, PriorityQueueOutput{
		Critical: summariseAll(q.Critical),
		High:     summariseAll(q.High),
		Medium:   summariseAll(q.Medium),
		Low:      summariseAll(q.Low),
	}, nil
}

func summarise(wo domain.WorkOrder) WorkOrderSummary {
	sum := WorkOrderSummary{
		TaskID:          wo.TaskID,
		Title:           wo.Title,
		Priority:        string(wo.Priority),
		Status:          string(wo.Status),
		Location:        wo.Location,
		IssueDocumentID: wo.IssueDocumentID,
	}
	if wo.HasDueDate() {
		sum.DueDate = wo.DueDate.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return sum
}

func summariseAll(orders []domain.WorkOrder) []WorkOrderSummary {
	out := make([]WorkOrderSummary, len(orders))
	for i := range orders {
		out[i] = summarise(orders[i])
	}
	return out
}
