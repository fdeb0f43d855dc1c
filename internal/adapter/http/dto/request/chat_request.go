package request

type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}
