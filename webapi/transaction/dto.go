package transaction

// SubmitInput represents the request body for a new deposit or withdrawal
// request. The screenshot is the proof-of-payment reference, required for
// deposits; type/amount/proof rules are enforced by the workflow engine so
// the error texts match across transports.
type SubmitInput struct {
	Type       string `json:"type" validate:"required"`
	Amount     int64  `json:"amount" validate:"required"`
	Screenshot string `json:"screenshot"`
}

// ReviewInput represents the admin decision body.
type ReviewInput struct {
	Status     string `json:"status" validate:"required"`
	Comment    string `json:"comment"`
	Screenshot string `json:"screenshot"`
}
