package validator

import (
	"regexp"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"
	"github.com/railscope/railscope/pkg/ctrf"
)

const DateFormat = "2006-01-02"

// Queries may be booked at most this many days ahead.
const maxFutureDays = 120

var trainNumberPattern = regexp.MustCompile(`^[0-9]{5}$`)

type Validator struct {
	validate *playground.Validate

	now func() time.Time
}

func New() *Validator {
	validate := playground.New()
	validate.RegisterValidation("trainnumber", func(fl playground.FieldLevel) bool {
		return trainNumberPattern.MatchString(fl.Field().String())
	})

	return &Validator{
		validate: validate,
		now:      time.Now,
	}
}

// Validate checks a raw train number and optional travel date. The date
// defaults to today when absent. Failures come back as validation errors
// with a field specific message.
func (v *Validator) Validate(trainNumberRaw string, dateRaw string) (ctrf.ValidatedQuery, error) {
	trainNumber := SanitiseInput(trainNumberRaw)

	if err := v.validate.Var(trainNumber, "required,trainnumber"); err != nil {
		return ctrf.ValidatedQuery{}, ctrf.NewError(ctrf.ErrorTypeValidation, "Train number must be exactly 5 digits")
	}

	today := v.now()
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	date := SanitiseInput(dateRaw)
	if date == "" {
		date = todayDate.Format(DateFormat)
	} else {
		parsedDate, err := time.ParseInLocation(DateFormat, date, today.Location())
		if err != nil {
			return ctrf.ValidatedQuery{}, ctrf.NewError(ctrf.ErrorTypeValidation, "Invalid date format. Use YYYY-MM-DD")
		}

		if parsedDate.Before(todayDate) {
			return ctrf.ValidatedQuery{}, ctrf.NewError(ctrf.ErrorTypeValidation, "Date cannot be in the past")
		}

		if parsedDate.After(todayDate.AddDate(0, 0, maxFutureDays)) {
			return ctrf.ValidatedQuery{}, ctrf.NewError(ctrf.ErrorTypeValidation, "Date cannot be more than 120 days in the future")
		}
	}

	return ctrf.ValidatedQuery{
		TrainNumber: trainNumber,
		Date:        date,
	}, nil
}

// SanitiseInput strips the quoting damage that inputs pick up when they have
// travelled through a generic text channel. Only matching wrapper quotes are
// removed - an unbalanced quote is left for validation to reject.
func SanitiseInput(value string) string {
	cleaned := strings.TrimSpace(value)

	for len(cleaned) >= 2 {
		first := cleaned[0]
		if (first != '"' && first != '\'') || cleaned[len(cleaned)-1] != first {
			break
		}

		cleaned = cleaned[1 : len(cleaned)-1]
	}

	cleaned = strings.ReplaceAll(cleaned, `\"`, `"`)
	cleaned = strings.ReplaceAll(cleaned, `\'`, "'")

	return cleaned
}
