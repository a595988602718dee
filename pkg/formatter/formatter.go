package formatter

import (
	"fmt"
	"strings"

	"github.com/railscope/railscope/pkg/ctrf"
	"github.com/railscope/railscope/pkg/util"
)

var statusMarkers = map[ctrf.StatusCategory]string{
	ctrf.StatusCategoryOnTime:               "✅",
	ctrf.StatusCategorySlightlyDelayed:      "🟡",
	ctrf.StatusCategoryDelayed:              "🟠",
	ctrf.StatusCategorySignificantlyDelayed: "🔴",
	ctrf.StatusCategoryUnknown:              "❓",
}

// Format renders a canonical record into the user-facing multi-line message
// plus the compact summary.
func Format(record ctrf.CanonicalStatusRecord) ctrf.Response {
	var lines []string

	lines = append(lines, fmt.Sprintf("🚂 **%s** (#%s)", record.TrainName, record.TrainNumber))

	statusMarker := statusMarkers[record.StatusCategory]
	if statusMarker == "" {
		statusMarker = statusMarkers[ctrf.StatusCategoryUnknown]
	}
	lines = append(lines, fmt.Sprintf("%s **Status:** %s", statusMarker, record.StatusCategory))
	lines = append(lines, fmt.Sprintf("⏱️ **Timing:** %s", record.DelayText))

	lines = append(lines, fmt.Sprintf("📍 **Current Location:** %s", record.CurrentLocation.Station))

	if len(record.NextStations) > 0 {
		lines = append(lines, fmt.Sprintf("🎯 **Upcoming Stations:** %s", strings.Join(record.NextStations, ", ")))
	}

	lines = append(lines, fmt.Sprintf("%s **Reliability Score:** %.1f%%", reliabilityMarker(record.ReliabilityScore), record.ReliabilityScore))

	switch record.DataSource {
	case ctrf.DataSourceMock:
		lines = append(lines, "ℹ️ *Using demonstration data*")
	case ctrf.DataSourceCache:
		lines = append(lines, "💾 *Data from cache*")
	case ctrf.DataSourceLive:
		lines = append(lines, "🌐 *Data from live search*")
	}

	if record.Timing.LastUpdated != "" {
		if updatedTime, err := util.ParseTimestamp(record.Timing.LastUpdated); err == nil {
			lines = append(lines, fmt.Sprintf("🕐 **Last Updated:** %s", updatedTime.Format("15:04 on 2006-01-02")))
		}
	}

	message := strings.Join(lines, "\n")

	if record.Note != "" {
		message = fmt.Sprintf("%s\n\n📝 **Note:** %s", message, record.Note)
	}

	return ctrf.Response{
		Success: true,
		Message: message,
		Summary: &ctrf.Summary{
			Train:       fmt.Sprintf("%s (#%s)", record.TrainName, record.TrainNumber),
			Status:      string(record.StatusCategory),
			Delay:       record.DelayMinutes,
			Location:    record.CurrentLocation.Station,
			Reliability: record.ReliabilityScore,
			DataSource:  record.DataSource,
		},
		Raw: &record,
	}
}

// FormatError renders a stage failure. The error string is embedded verbatim
// behind the failure marker.
func FormatError(err error) ctrf.Response {
	return ctrf.Response{
		Success: false,
		Message: fmt.Sprintf("❌ Error: %s", err),
	}
}

// Reliability tiers: at least 80 is good, 60 to 79 is fair, anything lower
// is poor.
func reliabilityMarker(score float64) string {
	if score >= 80 {
		return "🟢"
	}
	if score >= 60 {
		return "🟡"
	}

	return "🔴"
}
