package schema

// AnalyzeOutput is the outcome of one data-file analysis pass.
type AnalyzeOutput struct {
	Datasets  []NamedDataset
	Decisions []DatasetDecision
	CacheHit  bool
}
