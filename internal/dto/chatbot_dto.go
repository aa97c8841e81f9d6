package dto

// QueryRequest is the /ask body. The user_id field is accepted for backward
// compatibility but the identity from the verified token is what gets used.
type QueryRequest struct {
	Query  string `json:"query" validate:"required"`
	UserID string `json:"user_id"`
}

// AnswerResponse is the /ask response.
type AnswerResponse struct {
	Answer string `json:"answer"`
}

// AdvisoryOutcome is the result of the classification pipeline. Exactly one
// branch is set: StageError when a classifier call failed before the chat
// model was ever invoked, Advisory otherwise (a parsed advisory object, or an
// error-shaped object when the model's JSON did not parse).
type AdvisoryOutcome struct {
	StageError string
	Advisory   interface{}
}
