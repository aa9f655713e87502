// Package mcpsrv exposes the live transcript and suggestions as MCP tools so
// other agents can consume them over stdio.
package mcpsrv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/cuebot/internal/core"
	"github.com/sandevgo/cuebot/internal/transport/httpapi"
	"github.com/sandevgo/cuebot/pkg/log"
)

type Server struct {
	mcp     *server.MCPServer
	session httpapi.SessionView
}

func NewServer(session httpapi.SessionView) *Server {
	s := &Server{
		mcp:     server.NewMCPServer(core.CueName, core.CueVersion),
		session: session,
	}

	s.mcp.AddTool(
		mcp.NewTool("transcript_tail",
			mcp.WithDescription("Return the most recent segments of the live transcript"),
			mcp.WithNumber("limit", mcp.Description("Maximum number of segments to return")),
		),
		s.handleTranscriptTail,
	)

	s.mcp.AddTool(
		mcp.NewTool("recent_suggestions",
			mcp.WithDescription("Return the current suggestion list, oldest to newest"),
		),
		s.handleRecentSuggestions,
	)

	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting mcp server on stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) handleTranscriptTail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 20)

	segments := s.session.Transcript()
	if limit > 0 && len(segments) > limit {
		segments = segments[len(segments)-limit:]
	}

	data, err := json.Marshal(map[string]any{
		"session_id": s.session.ID(),
		"segments":   segments,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal transcript: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleRecentSuggestions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(map[string]any{
		"session_id":  s.session.ID(),
		"suggestions": s.session.Suggestions(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal suggestions: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
