// ABOUTME: MCP resource implementations for diary and profile state.
// ABOUTME: Provides sehat://profile, sehat://today, and sehat://diary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sehatsense/sehat/internal/models"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "sehat://profile",
		Name:        "Health Profile",
		Description: "The user's health profile: conditions, metrics, lifestyle",
		MIMEType:    "application/json",
	}, s.handleProfileResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "sehat://today",
		Name:        "Today's Meals",
		Description: "Meals logged today with their analyses",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "sehat://diary",
		Name:        "Food Diary",
		Description: "The full date-bucketed food diary",
		MIMEType:    "application/json",
	}, s.handleDiaryResource)
}

// Resource handlers

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("sehat://profile", s.store.Profile())
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.DateKey(time.Now())
	log := s.store.FoodLog()

	result := map[string]any{
		"date":  today,
		"meals": log[today],
		"count": len(log[today]),
	}
	return jsonResource("sehat://today", result)
}

func (s *Server) handleDiaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("sehat://diary", s.store.FoodLog())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
