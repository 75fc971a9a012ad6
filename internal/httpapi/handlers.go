package httpapi

import (
	"fmt"
	"net/http"

	"github.com/facetkit/facet/core"
	"github.com/facetkit/facet/core/engine"
	"github.com/facetkit/facet/internal/hints"
	"github.com/facetkit/facet/schema"
	"github.com/gin-gonic/gin"
)

// analyzeRequest carries one inline dataset shape for analysis.
type analyzeRequest struct {
	Count      *int           `json:"count,omitempty"`
	Values     []float64      `json:"values,omitempty"`
	Categories map[string]int `json:"categories,omitempty"`
}

// dataset converts the request body to the tagged dataset value. The bool
// reports whether exactly one shape was supplied.
func (r *analyzeRequest) dataset() (schema.Dataset, bool) {
	shapes := 0
	if r.Count != nil {
		shapes++
	}
	if r.Values != nil {
		shapes++
	}
	if r.Categories != nil {
		shapes++
	}
	if shapes != 1 {
		return schema.Dataset{}, false
	}

	switch {
	case r.Count != nil:
		return schema.CountedDataset(*r.Count), true
	case r.Values != nil:
		return schema.NumericDataset(r.Values), true
	default:
		return schema.CategoricalDataset(r.Categories), true
	}
}

// resolveRequest carries a field set plus optional ordering rules, either
// inline or loaded from a hints file.
type resolveRequest struct {
	Fields    []string                `json:"fields"`
	Rules     *schema.FieldOrderRules `json:"rules,omitempty"`
	HintsPath string                  `json:"hints_path,omitempty"`
	Trait     string                  `json:"trait,omitempty"`
}

// handleAnalyze classifies one inline dataset and returns the analysis result.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ds, ok := req.dataset()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide exactly one of count, values or categories"})
		return
	}

	c.JSON(http.StatusOK, engine.AnalyzeDataset(ds))
}

// handleResolve orders the requested field set and returns the decision.
func (s *Server) handleResolve(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one field is required"})
		return
	}
	if req.Rules != nil && req.HintsPath != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide inline rules or a hints file path, not both"})
		return
	}

	var rules schema.FieldOrderRules
	switch {
	case req.Rules != nil:
		rules = *req.Rules
	case req.HintsPath != "":
		loaded, err := hints.Load(req.HintsPath)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to load hints file: %v", err)})
			return
		}
		rules = loaded
	}

	c.JSON(http.StatusOK, core.ResolveFieldOrderDecision(req.Fields, rules, schema.Trait(req.Trait)))
}

// handleHeuristics returns the thresholds and detectors the analyzer uses.
func (s *Server) handleHeuristics(c *gin.Context) {
	c.JSON(http.StatusOK, core.BuildHeuristicsModel())
}

// handleHealthz reports process liveness.
func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
