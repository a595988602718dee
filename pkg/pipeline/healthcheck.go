package pipeline

import (
	"context"

	"github.com/railscope/railscope/pkg/formatter"
	"github.com/railscope/railscope/pkg/geo"
	"github.com/railscope/railscope/pkg/normalizer"
)

const canaryTrainNumber = "12622"

type HealthStatus struct {
	Overall    string            `json:"overall" groups:"basic"`
	Components map[string]string `json:"components" groups:"basic"`
}

// HealthCheck runs a canary query through every stage and reports per-stage
// status.
func (p *Pipeline) HealthCheck(ctx context.Context) HealthStatus {
	components := map[string]string{}
	overall := "healthy"

	record := func(component string, err error) {
		if err != nil {
			components[component] = err.Error()
			overall = "degraded"
		} else {
			components[component] = "ok"
		}
	}

	query, err := p.validator.Validate(canaryTrainNumber, "")
	record("validator", err)
	if err != nil {
		return HealthStatus{Overall: "unhealthy", Components: components}
	}

	raw := p.fetcher.Fetch(ctx, query)
	record("fetcher", nil)

	canonical := normalizer.Normalize(raw)
	record("normalizer", nil)

	_, err = geo.Compute(canonical.CurrentLocation.Lat, canonical.CurrentLocation.Lon, nil)
	record("geo", err)

	response := formatter.Format(canonical)
	if response.Message == "" {
		components["formatter"] = "empty message"
		overall = "degraded"
	} else {
		components["formatter"] = "ok"
	}

	components["data_source"] = string(canonical.DataSource)

	return HealthStatus{Overall: overall, Components: components}
}
