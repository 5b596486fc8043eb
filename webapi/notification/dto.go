package notification

// MarkTypeInput represents the request body for marking all notifications
// of one type read.
type MarkTypeInput struct {
	Type string `json:"type" validate:"required"`
}
