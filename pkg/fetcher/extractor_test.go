package fetcher

import (
	"fmt"
	"testing"
)

func TestExtractStationAndDelay(t *testing.T) {
	results := []SearchResult{
		{
			Title:   "12622 Tamil Nadu Express train status",
			Snippet: "Train arrived at Bhopal. Running 15 min late due to fog delay",
		},
	}

	partial, actionable := SnippetExtractor{}.Extract(results, "12622")

	if !actionable {
		t.Fatal("expected actionable extraction")
	}
	if partial.CurrentStation != "Bhopal" {
		t.Errorf("expected station Bhopal, got %q", partial.CurrentStation)
	}
	if partial.DelayMinutes == nil || *partial.DelayMinutes != 15 {
		t.Errorf("expected 15 minute delay, got %v", partial.DelayMinutes)
	}
}

func TestExtractHourDelayConvertedToMinutes(t *testing.T) {
	results := []SearchResult{
		{Snippet: "Train delayed, departed Itarsi about 2 hr ago running late"},
	}

	partial, actionable := SnippetExtractor{}.Extract(results, "12622")

	if !actionable {
		t.Fatal("expected actionable extraction")
	}
	if partial.DelayMinutes == nil || *partial.DelayMinutes != 120 {
		t.Errorf("expected 120 minute delay, got %v", partial.DelayMinutes)
	}
}

func TestExtractIgnoresSnippetsWithoutStatusKeywords(t *testing.T) {
	results := []SearchResult{
		{Snippet: "Book tickets from Kanpur with 30 min booking window, no late fee delay"},
	}

	_, actionable := SnippetExtractor{}.Extract(results, "12622")

	if actionable {
		t.Error("expected nothing actionable without a status keyword")
	}
}

func TestExtractLastMatchWins(t *testing.T) {
	results := []SearchResult{
		{Snippet: "Train departed Surat earlier today"},
		{Snippet: "no status words in this one, at Pune"},
		{Snippet: "Train has now arrived at Vadodara on time"},
	}

	partial, actionable := SnippetExtractor{}.Extract(results, "12622")

	if !actionable {
		t.Fatal("expected actionable extraction")
	}
	if partial.CurrentStation != "Vadodara" {
		t.Errorf("expected the later keyword-positive snippet to win, got %q", partial.CurrentStation)
	}
}

func TestExtractScansAtMostFiveResults(t *testing.T) {
	var results []SearchResult
	for i := 0; i < 5; i++ {
		results = append(results, SearchResult{Snippet: fmt.Sprintf("filler result %d with nothing in it", i)})
	}
	results = append(results, SearchResult{Snippet: "Train departed Surat running"})

	_, actionable := SnippetExtractor{}.Extract(results, "12622")

	if actionable {
		t.Error("expected the sixth result to be ignored")
	}
}

func TestExtractTrainNameFromTitle(t *testing.T) {
	results := []SearchResult{
		{
			Title:   "12622 Tamil Nadu Express train timings",
			Snippet: "Currently running on time from Nagpur",
		},
	}

	partial, _ := SnippetExtractor{}.Extract(results, "12622")

	if partial.TrainName != "Tamil Nadu Express train timings" {
		t.Errorf("unexpected train name %q", partial.TrainName)
	}
}
