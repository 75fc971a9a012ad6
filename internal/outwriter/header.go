package outwriter

import (
	"fmt"
	"path/filepath"

	"github.com/facetkit/facet/internal/contract"
)

// headerGlyph returns the glyph prefix when emojis are enabled.
func headerGlyph(cfg *contract.Config, glyph string) string {
	if cfg.UseEmojis {
		return glyph
	}
	return ""
}

// LogAnalysisHeader prints a concise, 2-line header for each analysis phase.
func LogAnalysisHeader(cfg *contract.Config) {
	dataName := filepath.Base(cfg.DataPath)
	if dataName == "" || dataName == "." {
		dataName = "current"
	}

	// Line 1: The analysis summary (Data file and limit)
	fmt.Printf("%sData: %s (limit: %d)\n", headerGlyph(cfg, "🔎 "), dataName, cfg.ResultLimit)

	// Line 2: The storage backends in play
	tracking := "off"
	if cfg.Track {
		tracking = string(cfg.DecisionsBackend)
	}
	cache := string(cfg.CacheBackend)
	if cfg.NoCache {
		cache = "bypassed"
	}
	fmt.Printf("%sCache: %s, tracking: %s\n", headerGlyph(cfg, "🗄️  "), cache, tracking)
}

// LogCompareHeader prints a header for comparison analysis.
func LogCompareHeader(cfg *contract.Config) {
	baseName := filepath.Base(cfg.BasePath)
	targetName := filepath.Base(cfg.TargetPath)
	fmt.Printf("%sCompare mode (limit: %d)\n", headerGlyph(cfg, "🔎 "), cfg.ResultLimit)
	fmt.Printf("%sComparing: %s ↔ %s\n", headerGlyph(cfg, "📊 "), baseName, targetName)
}
