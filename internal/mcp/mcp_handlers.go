package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/facetkit/facet/core"
	"github.com/facetkit/facet/core/engine"
	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

func (h *toolHandler) handleAnalyzeFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	path := request.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("a data file path is required"), nil
	}
	cfg.DataPath = path
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	output, _, err := core.GetFacetAnalyzeResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(output.Decisions, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAnalyzeValues(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	values, err := parseFloatList(request.GetString("values", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid values: %v", err)), nil
	}

	result := engine.AnalyzeNumerical(values)
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAnalyzeCategories(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	counts, err := parseCategoryCounts(request.GetString("categories", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid categories: %v", err)), nil
	}

	result := engine.AnalyzeCategorical(counts)
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleResolveFieldOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Fields = splitFields(request.GetString("fields", ""))
	if len(cfg.Fields) == 0 {
		return mcp.NewToolResultError("at least one field is required"), nil
	}
	if p := request.GetString("hints_path", ""); p != "" {
		cfg.HintsPath = p
	}
	if tr := request.GetString("trait", ""); tr != "" {
		cfg.Trait = schema.Trait(tr)
	}

	decision, _, err := core.GetFacetFieldsResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("field order resolution failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(decision, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// parseFloatList parses a comma-separated list of numbers.
func parseFloatList(raw string) ([]float64, error) {
	var values []float64
	for part := range strings.SplitSeq(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as a number", trimmed)
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return nil, errors.New("no values given")
	}
	return values, nil
}

// parseCategoryCounts parses a JSON object mapping category labels to counts.
func parseCategoryCounts(raw string) (map[string]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("no categories given")
	}
	var counts map[string]int
	if err := json.Unmarshal([]byte(raw), &counts); err != nil {
		return nil, fmt.Errorf("categories must be a JSON object of label counts: %w", err)
	}
	if len(counts) == 0 {
		return nil, errors.New("no categories given")
	}
	return counts, nil
}

// splitFields splits a comma-separated field list, dropping blank entries.
func splitFields(raw string) []string {
	var fields []string
	for part := range strings.SplitSeq(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}
