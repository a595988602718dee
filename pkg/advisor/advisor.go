package advisor

import (
	"fmt"
	"time"

	"github.com/railscope/railscope/pkg/ctrf"
)

var apiSuggestions = []string{
	"Check your internet connection",
	"Try again in a few moments",
	"The railway data service might be temporarily unavailable",
	"Consider trying with a different train number",
}

var suggestionSets = map[ctrf.ErrorType][]string{
	ctrf.ErrorTypeValidation: {
		"Check that the train number is exactly 5 digits",
		"Ensure date is in YYYY-MM-DD format",
		"Verify that the date is not in the past",
		"Try with today's date if no specific date is needed",
	},
	ctrf.ErrorTypeAPI:     apiSuggestions,
	ctrf.ErrorTypeNetwork: apiSuggestions,
	ctrf.ErrorTypeProcessing: {
		"The train data might be incomplete",
		"Try with a different train number",
		"Check if the train number is correct",
		"Some trains might not have real-time tracking",
	},
	ctrf.ErrorTypeExecution: {
		"There was a system error during processing",
		"Try the request again",
		"If the problem persists, contact support",
		"Check that all required services are running",
	},
}

var genericSuggestions = []string{
	"An unexpected error occurred",
	"Try the request again",
	"Check your input parameters",
	"Contact support if the problem persists",
}

// Advise maps an error kind to user-facing guidance and a retry
// recommendation. It never fails - unmatched kinds fall back to the generic
// set with no retry.
func Advise(errorType ctrf.ErrorType, errorMessage string) ctrf.Advice {
	suggestions, known := suggestionSets[errorType]
	if !known {
		suggestions = genericSuggestions
	}

	return ctrf.Advice{
		Message:          fmt.Sprintf("Error in %s: %s", errorType, errorMessage),
		Suggestions:      suggestions,
		RetryRecommended: known,
		HandledAt:        time.Now().Format(time.RFC3339),
	}
}

// CriticalAdvice is the fixed payload for when error handling itself has
// gone wrong.
func CriticalAdvice(err error) ctrf.Advice {
	return ctrf.Advice{
		Message: fmt.Sprintf("Error handler failure: %s", err),
		Suggestions: []string{
			"Critical system error occurred",
			"Please contact technical support",
			"Try restarting the application",
		},
		RetryRecommended: false,
		HandledAt:        time.Now().Format(time.RFC3339),
	}
}
