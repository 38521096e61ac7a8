package orders

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
