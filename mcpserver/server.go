// Package mcpserver exposes a fuzzy matcher to MCP clients over stdio.
//
// Three tools are registered: match_query runs a ranked query against the
// indexed corpus, match_span locates the matched region between two strings,
// and corpus_info reports index statistics and the active configuration.
// Calls pass through a rate limiter, and query payloads are cached in an LRU
// keyed by corpus fingerprint so a reloaded corpus never serves stale hits.
package mcpserver

import (
	"context"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/fuzzmatch/config"
	"github.com/teranos/fuzzmatch/errors"
	"github.com/teranos/fuzzmatch/logger"
	"github.com/teranos/fuzzmatch/match"
	"github.com/teranos/fuzzmatch/version"
)

// Engine is the matcher surface the MCP tools consume. *match.Matcher
// satisfies it; watch mode wraps it in a Reloadable so the corpus can be
// swapped mid-session.
type Engine interface {
	Query(text string, opts ...match.QueryOption) ([]match.Result, error)
	ApplyHardCutoff(results []match.Result) []match.Result
	Stats() match.Stats
	Config() match.Config
}

var _ Engine = (*match.Matcher)(nil)

// Server wraps an Engine and exposes it via Model Context Protocol
type Server struct {
	engine  Engine
	mcp     *server.MCPServer
	limiter *rate.Limiter
	cache   *lru.Cache[string, string]
	log     *zap.SugaredLogger
}

// New creates an MCP server around engine. cfg.MaxCallsPerSec of zero means
// no rate limit; cfg.CacheSize of zero disables the result cache.
func New(engine Engine, cfg config.MCPConfig) (*Server, error) {
	if engine == nil {
		return nil, errors.NewValidationError("mcp server requires a matcher engine")
	}

	s := &Server{
		engine:  engine,
		limiter: newLimiter(cfg.MaxCallsPerSec),
		log:     serveLogger(),
	}

	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, string](cfg.CacheSize)
		if err != nil {
			return nil, errors.WrapConfiguration(err, "mcp result cache")
		}
		s.cache = cache
	}

	// Create MCP server with tool capabilities
	s.mcp = server.NewMCPServer(
		"fuzzmatch",
		version.Version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()

	return s, nil
}

func newLimiter(callsPerSec float64) *rate.Limiter {
	if callsPerSec <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(callsPerSec), 1)
}

func serveLogger() *zap.SugaredLogger {
	if logger.Logger != nil {
		return logger.AddServeSymbol(logger.Logger)
	}
	return zap.NewNop().Sugar()
}

// registerTools registers all MCP tools for matcher operations
func (s *Server) registerTools() {
	queryTool := mcp.NewTool("match_query",
		mcp.WithDescription("Run a fuzzy query against the indexed corpus and return ranked matches"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to match against the corpus"),
		),
		mcp.WithNumber("topk",
			mcp.Description("Maximum number of results to return (0 = matcher default)"),
		),
		mcp.WithBoolean("no_window",
			mcp.Description("Score the whole corpus instead of the length window (default: false)"),
		),
		mcp.WithBoolean("apply_hard_cutoff",
			mcp.Description("Drop results below the configured hard cutoff (default: false)"),
		),
	)
	s.mcp.AddTool(queryTool, s.gated("match_query", s.handleQuery))

	spanTool := mcp.NewTool("match_span",
		mcp.WithDescription("Locate the region of the first string that matches the second"),
		mcp.WithString("a",
			mcp.Required(),
			mcp.Description("String the span is reported against"),
		),
		mcp.WithString("b",
			mcp.Required(),
			mcp.Description("String to align with the first"),
		),
	)
	s.mcp.AddTool(spanTool, s.gated("match_span", s.handleSpan))

	infoTool := mcp.NewTool("corpus_info",
		mcp.WithDescription("Report corpus statistics and the active matcher configuration"),
	)
	s.mcp.AddTool(infoTool, s.gated("corpus_info", s.handleInfo))
}

// gated wraps a tool handler with a per-call request ID, the rate limiter,
// and timing instrumentation.
func (s *Server) gated(tool string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		requestID := uuid.New().String()

		if !s.limiter.Allow() {
			s.log.Warnw("Tool call rate limited",
				logger.FieldRequestID, requestID,
				logger.FieldTool, tool)
			return mcp.NewToolResultError("rate limit exceeded, retry shortly"), nil
		}

		start := time.Now()
		result, err := next(logger.WithRequestID(ctx, requestID), request)
		s.log.Debugw("Tool call served",
			logger.FieldRequestID, requestID,
			logger.FieldTool, tool,
			logger.FieldDurationUS, time.Since(start).Microseconds())
		return result, err
	}
}

// Serve blocks, handling MCP requests on stdin and stdout. Logging must
// already be routed to stderr or it will corrupt the protocol stream.
func (s *Server) Serve() error {
	stats := s.engine.Stats()
	s.log.Infow("MCP server starting",
		logger.FieldCorpusSize, stats.Size,
		logger.FieldFingerprint, stats.Fingerprint)
	return server.ServeStdio(s.mcp)
}
