package core

import (
	"math"
	"sort"
	"strings"

	"github.com/facetkit/facet/schema"
)

// compareDecisions matches decisions from the base snapshot against the target
// snapshot by dataset name and computes the drift between them. A missing side
// counts as zero data points and zero confidence, so new and inactive datasets
// surface with their full size as the delta.
func compareDecisions(baseDecisions, targetDecisions []schema.DatasetDecision, limit int) schema.ComparisonResult {
	baseMap := make(map[string]schema.DatasetDecision, len(baseDecisions))
	targetMap := make(map[string]schema.DatasetDecision, len(targetDecisions))
	allNames := make(map[string]struct{})

	// 1. Populate maps and collect all names
	for _, d := range baseDecisions {
		baseMap[d.Name] = d
		allNames[d.Name] = struct{}{}
	}
	for _, d := range targetDecisions {
		targetMap[d.Name] = d
		allNames[d.Name] = struct{}{}
	}

	details := make([]schema.ComparisonDetail, 0, len(allNames))

	// Initialize summary accumulators
	var netDataPointsDelta int
	var netConfidenceDelta float64
	var totalNewDatasets, totalInactiveDatasets, totalActiveDatasets int
	var totalChartChanges int

	// 2. Compare all names
	for name := range allNames {
		baseD, baseExists := baseMap[name]
		targetD, targetExists := targetMap[name]

		detail := schema.ComparisonDetail{
			Name:   name,
			Status: determineStatus(baseExists, targetExists),
		}

		// Snapshot copies so the detail never aliases the input slices
		if baseExists {
			before := baseD.Result
			detail.Before = &before
			detail.DeltaDataPoints -= before.DataPoints
			detail.DeltaConfidence -= before.Confidence
		}
		if targetExists {
			after := targetD.Result
			detail.After = &after
			detail.DeltaDataPoints += after.DataPoints
			detail.DeltaConfidence += after.Confidence
		}

		// Presentation moves only make sense with both sides present
		if baseExists && targetExists {
			detail.ChartChanged = baseD.Result.RecommendedChart != targetD.Result.RecommendedChart
			detail.ComplexityMoved = baseD.Result.Complexity != targetD.Result.Complexity

			// Net deltas cover datasets present in both snapshots
			netDataPointsDelta += detail.DeltaDataPoints
			netConfidenceDelta += detail.DeltaConfidence
		}

		// Accumulate summary counts
		switch detail.Status {
		case schema.NewStatus:
			totalNewDatasets++
		case schema.ActiveStatus:
			totalActiveDatasets++
		case schema.InactiveStatus:
			totalInactiveDatasets++
		}
		if detail.ChartChanged {
			totalChartChanges++
		}

		// Only include datasets that appeared, vanished or changed
		if detail.Status != schema.ActiveStatus || detailChanged(detail) {
			details = append(details, detail)
		}
	}

	// Create summary
	summary := schema.ComparisonSummary{
		NetDataPointsDelta:    netDataPointsDelta,
		NetConfidenceDelta:    netConfidenceDelta,
		TotalNewDatasets:      totalNewDatasets,
		TotalInactiveDatasets: totalInactiveDatasets,
		TotalActiveDatasets:   totalActiveDatasets,
		TotalChartChanges:     totalChartChanges,
	}

	// Sort details
	sortComparisonDetails(details)

	// Apply limit
	if limit > 0 && len(details) > limit {
		details = details[:limit]
	}

	return schema.ComparisonResult{Details: details, Summary: summary}
}

// detailChanged reports whether a dataset present in both snapshots moved in
// any dimension the comparison tracks.
func detailChanged(d schema.ComparisonDetail) bool {
	return d.DeltaDataPoints != 0 || d.DeltaConfidence != 0 || d.ChartChanged || d.ComplexityMoved
}

// determineStatus returns the status based on existence in base and target.
func determineStatus(baseExists, targetExists bool) schema.Status {
	switch {
	case !baseExists && targetExists:
		return schema.NewStatus
	case baseExists && targetExists:
		return schema.ActiveStatus
	case baseExists: // Target does not exist in this case
		return schema.InactiveStatus
	default:
		return schema.UnknownStatus
	}
}

// sortComparisonDetails sorts details by absolute data-point delta, then delta sign, then name.
func sortComparisonDetails(details []schema.ComparisonDetail) {
	sort.Slice(details, func(i, j int) bool {
		a := details[i]
		b := details[j]

		// Primary: Absolute delta (descending)
		absA := math.Abs(float64(a.DeltaDataPoints))
		absB := math.Abs(float64(b.DeltaDataPoints))
		if absA != absB {
			return absA > absB
		}

		// Secondary: Delta sign (growth before shrinkage)
		if a.DeltaDataPoints != b.DeltaDataPoints {
			return a.DeltaDataPoints > b.DeltaDataPoints
		}

		// Tertiary: Name (ascending)
		return strings.Compare(a.Name, b.Name) < 0
	})
}
