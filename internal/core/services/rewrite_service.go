package services

import (
	"strings"

	"showcase/internal/core/domain"
)

// RewriteService applies an ordered find/replace table to a document. It is
// the degenerate variant of the catalog build: same all-or-nothing contract,
// but the transformation is a plain substitution pass over existing text.
type RewriteService struct{}

// NewRewriteService creates a new rewrite service.
func NewRewriteService() *RewriteService {
	return &RewriteService{}
}

// RuleCount reports how many occurrences one rule replaced.
type RuleCount struct {
	Rule  domain.RewriteRule
	Count int
}

// RewriteResult is the outcome of applying a rule table.
type RewriteResult struct {
	Document string
	Counts   []RuleCount
	Total    int
}

// Apply replaces every occurrence of each rule's pattern with its
// replacement, in table order. Later rules observe earlier rules' output,
// so a replacement that matches a later pattern will be rewritten again.
// Rules with an empty pattern are skipped.
func (s *RewriteService) Apply(document string, rules []domain.RewriteRule) RewriteResult {
	result := RewriteResult{Document: document}

	for _, rule := range rules {
		if rule.Pattern == "" {
			continue
		}
		count := strings.Count(result.Document, rule.Pattern)
		if count > 0 {
			result.Document = strings.ReplaceAll(result.Document, rule.Pattern, rule.Replacement)
		}
		result.Counts = append(result.Counts, RuleCount{Rule: rule, Count: count})
		result.Total += count
	}

	return result
}
