package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teranos/fuzzmatch/logger"
	"github.com/teranos/fuzzmatch/match"
)

// queryResponse is the match_query payload.
type queryResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []match.Result `json:"results"`
}

// spanResponse is the match_span payload.
type spanResponse struct {
	A    string     `json:"a"`
	B    string     `json:"b"`
	Span match.Span `json:"span"`
}

// infoResponse is the corpus_info payload.
type infoResponse struct {
	Stats  match.Stats  `json:"stats"`
	Config match.Config `json:"config"`
}

// handleQuery handles match_query tool calls
func (s *Server) handleQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	topk := request.GetInt("topk", 0)
	noWindow := request.GetBool("no_window", false)
	applyHard := request.GetBool("apply_hard_cutoff", false)

	key := s.cacheKey("match_query", query, fmt.Sprintf("%d|%t|%t", topk, noWindow, applyHard))
	if payload, ok := s.cacheGet(key); ok {
		fields := append(logger.FieldsFromContext(ctx), logger.FieldQuery, query)
		s.log.Debugw("Query served from cache", fields...)
		return mcp.NewToolResultText(payload), nil
	}

	var opts []match.QueryOption
	if topk > 0 {
		opts = append(opts, match.TopK(topk))
	}
	if noWindow {
		opts = append(opts, match.WithoutWindow())
	}

	results, err := s.engine.Query(query, opts...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Query failed: %v", err)), nil
	}
	if applyHard {
		results = s.engine.ApplyHardCutoff(results)
	}

	payload, err := marshalPayload(queryResponse{Query: query, Count: len(results), Results: results})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode results: %v", err)), nil
	}
	s.cachePut(key, payload)

	return mcp.NewToolResultText(payload), nil
}

// handleSpan handles match_span tool calls
func (s *Server) handleSpan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := request.RequireString("a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := request.RequireString("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := marshalPayload(spanResponse{A: a, B: b, Span: match.SpanOf(a, b)})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode span: %v", err)), nil
	}
	return mcp.NewToolResultText(payload), nil
}

// handleInfo handles corpus_info tool calls
func (s *Server) handleInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := marshalPayload(infoResponse{Stats: s.engine.Stats(), Config: s.engine.Config()})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode corpus info: %v", err)), nil
	}
	return mcp.NewToolResultText(payload), nil
}

func marshalPayload(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// cacheKey scopes an entry to the current corpus: a reload changes the
// fingerprint, so stale entries stop being addressable and age out of
// the LRU on their own.
func (s *Server) cacheKey(tool string, parts ...string) string {
	elems := append([]string{s.engine.Stats().Fingerprint, tool}, parts...)
	return strings.Join(elems, "\x00")
}

func (s *Server) cacheGet(key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	return s.cache.Get(key)
}

func (s *Server) cachePut(key, payload string) {
	if s.cache == nil {
		return
	}
	s.cache.Add(key, payload)
}
