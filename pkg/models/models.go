package models

type EstimateForm struct {
	Password         string   `json:"password" jsonschema:"description=Password to estimate. Never stored or logged."`
	GuessesPerSecond *float64 `json:"guessesPerSecond,omitempty" validate:"omitnil,gt=0" jsonschema:"exclusiveMinimum=0,description=Attacker guess rate. Defaults to the server setting."`
}
