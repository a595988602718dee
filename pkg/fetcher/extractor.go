package fetcher

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// PartialRecord is whatever an extractor managed to lift out of the search
// results. Zero values mean the field was not found.
type PartialRecord struct {
	TrainName      string
	CurrentStation string
	DelayMinutes   *int
}

// Extractor turns raw search results into a partial status record. It is an
// interface so the snippet heuristics can be swapped for a structured API
// backed implementation without touching the fetcher.
type Extractor interface {
	Extract(results []SearchResult, trainNumber string) (PartialRecord, bool)
}

// Only this many results are ever consulted.
const maxResultsScanned = 5

var statusKeywords = []string{"running", "departed", "arrived", "delayed", "on time"}

var (
	stationPattern = regexp.MustCompile(`(?:at|from|departed|arrived)\s+([A-Z][a-zA-Z\s]+?)(?:\s|$|\.)`)
	delayPattern   = regexp.MustCompile(`(\d+)\s*(?:min|minute|hr|hour).*(?:late|delay)`)
)

// SnippetExtractor scans result snippets for status keywords and pulls a
// station name and delay out of the ones that match. Later matching snippets
// overwrite earlier ones.
type SnippetExtractor struct {
}

func (e SnippetExtractor) Extract(results []SearchResult, trainNumber string) (PartialRecord, bool) {
	var partial PartialRecord
	actionable := false

	if len(results) > maxResultsScanned {
		results = results[:maxResultsScanned]
	}

	for _, result := range results {
		title := strings.ToLower(result.Title)
		snippet := strings.ToLower(result.Snippet)

		if strings.Contains(title, trainNumber) && strings.Contains(title, "train") {
			partial.TrainName = strings.TrimSpace(strings.ReplaceAll(result.Title, trainNumber, ""))
		}

		if !containsStatusKeyword(snippet) {
			continue
		}

		if stationMatch := stationPattern.FindStringSubmatch(result.Snippet); stationMatch != nil {
			partial.CurrentStation = strings.TrimSpace(stationMatch[1])
			actionable = true
		}

		if delayMatch := delayPattern.FindStringSubmatch(snippet); delayMatch != nil {
			delayMinutes, err := strconv.Atoi(delayMatch[1])
			if err == nil {
				if strings.Contains(snippet, "hr") || strings.Contains(snippet, "hour") {
					delayMinutes *= 60
				}

				partial.DelayMinutes = &delayMinutes
				actionable = true
			}
		}
	}

	return partial, actionable
}

func containsStatusKeyword(snippet string) bool {
	return slices.ContainsFunc(statusKeywords, func(keyword string) bool {
		return strings.Contains(snippet, keyword)
	})
}
