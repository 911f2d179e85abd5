package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for vecalc resources.
	uriScheme = "vecalc://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "instructions",
		Name:        "instructions",
		Description: "Expression syntax and quiz answer format",
		MIMEType:    "text/plain",
	}, s.handleInstructionsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recently evaluated expressions, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{limit}",
		Name:        "history-limited",
		Description: "The given number of recent calculations",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

func (s *Server) handleInstructionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	text := domain.CalculatorInstructions + "\n\n" + domain.QuizInstructions
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}

// handleHistoryResource lists recorded calculations. It serves both the
// static history resource and the history/{limit} template.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	limit, ok := extractLimit(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	calcs, err := s.ports.History.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	type calcInfo struct {
		ID         string    `json:"id"`
		Expression string    `json:"expression"`
		Result     string    `json:"result"`
		CreatedAt  time.Time `json:"created_at"`
	}

	infos := make([]calcInfo, len(calcs))
	for i := range calcs {
		infos[i] = calcInfo{
			ID:         calcs[i].ID,
			Expression: calcs[i].Expression,
			Result:     calcs[i].Result,
			CreatedAt:  calcs[i].CreatedAt,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractLimit reads the limit from vecalc://history/{limit}.
// vecalc://history itself yields 0, the configured default.
func extractLimit(uri string) (int, bool) {
	const base = uriScheme + "history"

	if uri == base {
		return 0, true
	}
	rest, found := strings.CutPrefix(uri, base+"/")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
