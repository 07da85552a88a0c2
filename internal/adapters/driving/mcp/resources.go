package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for techassist resources.
	uriScheme = "techassist://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "playbooks",
		Name:        "playbooks",
		Description: "Index of incident playbooks",
		MIMEType:    mimeJSON,
	}, s.handlePlaybooksResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "playbooks/{id}",
		Name:        "playbook",
		Description: "A single incident playbook",
		MIMEType:    mimeJSON,
	}, s.handlePlaybookResource)

	if s.ports.WorkOrders != nil {
		s.server.AddResourceTemplate(&mcp.ResourceTemplate{
			URITemplate: uriScheme + "workorders/{taskId}",
			Name:        "work-order-briefing",
			Description: "A work order with its condensed playbook briefing",
			MIMEType:    mimeJSON,
		}, s.handleWorkOrderResource)
	}
}

// handlePlaybooksResource lists playbook IDs and titles.
func (s *Server) handlePlaybooksResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type playbookInfo struct {
		ID               string `json:"id"`
		Title            string `json:"title"`
		EstimatedMinutes int    `json:"estimated_minutes"`
	}

	docs := s.ports.Catalog.List()
	infos := make([]playbookInfo, len(docs))
	for i := range docs {
		infos[i] = playbookInfo{
			ID:               docs[i].ID,
			Title:            docs[i].Title,
			EstimatedMinutes: docs[i].EstimatedMinutes,
		}
	}

	return jsonResult(req.Params.URI, infos)
}

// handlePlaybookResource returns one playbook.
func (s *Server) handlePlaybookResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractID(req.Params.URI, "playbooks/")
	doc := s.ports.Catalog.Lookup(id)
	if doc == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResult(req.Params.URI, doc)
}

// handleWorkOrderResource returns a work order briefing.
func (s *Server) handleWorkOrderResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	taskID := extractID(req.Params.URI, "workorders/")
	if taskID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	b, err := s.ports.WorkOrders.Briefing(ctx, taskID)
	if err != nil {
		if isNotFound(err) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("loading briefing: %w", err)
	}

	type briefing struct {
		WorkOrder        WorkOrderSummary `json:"work_order"`
		Playbook         string           `json:"playbook,omitempty"`
		EstimatedMinutes int              `json:"estimated_minutes,omitempty"`
		ImmediateActions []string         `json:"immediate_actions,omitempty"`
		NextStep         string           `json:"next_step,omitempty"`
	}

	out := briefing{
		WorkOrder:        summarise(b.WorkOrder),
		ImmediateActions: b.ImmediateActions,
		NextStep:         b.NextStep,
	}
	if b.Document != nil {
		out.Playbook = b.Document.Title
		out.EstimatedMinutes = b.Document.EstimatedMinutes
	}
	return jsonResult(req.Params.URI, out)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractID returns the path segment after uriScheme+prefix, or "" if the
// URI does not match.
func extractID(uri, prefix string) string {
	full := uriScheme + prefix
	if !strings.HasPrefix(uri, full) {
		return ""
	}
	id := strings.TrimPrefix(uri, full)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
