package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/facetkit/facet/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	StrongColor = color.New(color.FgGreen, color.Bold) // strongColor marks recommendations safe to apply.
	SolidColor  = color.New(color.FgCyan)              // solidColor marks reliable recommendations.
	FairColor   = color.New(color.FgYellow)            // fairColor marks recommendations worth a look.
	WeakColor   = color.New(color.FgRed, color.Bold)   // weakColor marks recommendations needing review.
)

// GetColorLabel returns a colored confidence label for console output (table).
// It uses schema.GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(confidence float64) string {
	text := schema.GetPlainLabel(confidence)

	switch text {
	case schema.StrongValue:
		return StrongColor.Sprint(text)
	case schema.SolidValue:
		return SolidColor.Sprint(text)
	case schema.FairValue:
		return FairColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ShouldExclude returns true if the given dataset name matches any of the
// exclude patterns. It supports simple glob patterns (using filepath.Match)
// when the pattern contains wildcard characters (*, ?, [ ]). Patterns starting
// with '.' are treated as suffix matches. Anything else is a substring match.
// A user can provide patterns like "id", "*_raw", ".tmp".
func ShouldExclude(name string, excludes []string) bool {
	for _, ex := range excludes {
		ex = strings.TrimSpace(ex)
		if ex == "" {
			continue
		}

		// If the pattern contains glob characters, try filepath.Match.
		if strings.ContainsAny(ex, "*?[") {
			if ok, err := filepath.Match(ex, name); err == nil && ok {
				return true
			}
			continue
		}

		switch {
		case strings.HasPrefix(ex, "."):
			if strings.HasSuffix(name, ex) {
				return true
			}
		case strings.Contains(name, ex):
			return true
		}
	}
	return false
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for dataset cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".facet_cache.db"
	}
	return filepath.Join(homeDir, ".facet_cache.db")
}

// GetDecisionsDBFilePath returns the path to the SQLite DB file for decision history storage.
func GetDecisionsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".facet_decisions.db"
	}
	return filepath.Join(homeDir, ".facet_decisions.db")
}

// TruncateName truncates a dataset name or path to a maximum width with an
// ellipsis prefix, keeping the distinctive tail visible.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and
// at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
