package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/railscope/railscope/pkg/advisor"
	"github.com/railscope/railscope/pkg/ctrf"
	"github.com/railscope/railscope/pkg/fetcher"
	"github.com/railscope/railscope/pkg/formatter"
	"github.com/railscope/railscope/pkg/geo"
	"github.com/railscope/railscope/pkg/normalizer"
	"github.com/railscope/railscope/pkg/util"
	"github.com/railscope/railscope/pkg/validator"
)

const maxErrorDetailLength = 500

// Request is one train status query. Target coordinates are optional - when
// present the geo stage also reports distance, bearing and direction towards
// them.
type Request struct {
	TrainNumber string
	Date        string

	Target *ctrf.Coordinates
}

// Pipeline chains the five stages - validate, fetch, normalise, geo-compute,
// format - and routes any stage failure through the error advisor instead of
// the next stage.
type Pipeline struct {
	validator *validator.Validator
	fetcher   *fetcher.Fetcher

	now func() time.Time
}

func New(statusFetcher *fetcher.Fetcher) *Pipeline {
	return &Pipeline{
		validator: validator.New(),
		fetcher:   statusFetcher,

		now: time.Now,
	}
}

func (p *Pipeline) Run(ctx context.Context, request Request) (outcome ctrf.Outcome) {
	requestID := fmt.Sprintf("req_%s", uuid.NewString())
	startedAt := p.now()

	defer func() {
		if recovered := recover(); recovered != nil {
			log.Error().Str("request", requestID).Interface("panic", recovered).Msg("Pipeline run panicked")

			detail := util.TrimString(fmt.Sprint(recovered), maxErrorDetailLength)
			outcome = p.failure(requestID, startedAt, ctrf.NewError(ctrf.ErrorTypeExecution, detail))
		}
	}()

	log.Debug().Str("request", requestID).Str("train", request.TrainNumber).Str("date", request.Date).Msg("Running status pipeline")

	query, err := p.validator.Validate(request.TrainNumber, request.Date)
	if err != nil {
		return p.failure(requestID, startedAt, err)
	}

	raw := p.fetcher.Fetch(ctx, query)

	record := normalizer.Normalize(raw)

	geoResult, err := geo.Compute(record.CurrentLocation.Lat, record.CurrentLocation.Lon, request.Target)
	if err != nil {
		return p.failure(requestID, startedAt, err)
	}

	response := formatter.Format(record)

	return ctrf.Outcome{
		RequestID: requestID,

		Success: true,
		Message: response.Message,

		Summary: response.Summary,
		Record:  response.Raw,
		Geo:     &geoResult,

		StartedAt:   startedAt,
		CompletedAt: p.now(),
	}
}

// failure builds the error outcome for a stage failure. If error handling
// itself panics, the fixed critical advice payload is returned instead.
func (p *Pipeline) failure(requestID string, startedAt time.Time, err error) (outcome ctrf.Outcome) {
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Error().Str("request", requestID).Interface("panic", recovered).Msg("Error handling panicked")

			advice := advisor.CriticalAdvice(fmt.Errorf("%v", recovered))

			outcome = ctrf.Outcome{
				RequestID: requestID,

				Success: false,
				Message: advice.Message,
				Advice:  &advice,

				StartedAt:   startedAt,
				CompletedAt: time.Now(),
			}
		}
	}()

	errorType := ctrf.ErrorTypeOf(err)

	log.Debug().Str("request", requestID).Str("type", string(errorType)).Err(err).Msg("Pipeline stage failed")

	advice := advisor.Advise(errorType, err.Error())
	response := formatter.FormatError(err)

	return ctrf.Outcome{
		RequestID: requestID,

		Success: false,
		Message: response.Message,
		Advice:  &advice,

		StartedAt:   startedAt,
		CompletedAt: p.now(),
	}
}
