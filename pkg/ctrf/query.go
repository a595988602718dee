package ctrf

// ValidatedQuery is the output of input validation: a confirmed 5 digit
// train number and a travel date in YYYY-MM-DD form.
type ValidatedQuery struct {
	TrainNumber string `json:"train_number" groups:"basic"`
	Date        string `json:"date" groups:"basic"`
}
