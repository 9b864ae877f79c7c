package dto

type ChatRequest struct {
	UserId  string `json:"user_id" validate:"required"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Name    string  `json:"name"`
	Emotion string  `json:"emotion"`
	Dua     *string `json:"dua"`
	Message string  `json:"message"`
}
