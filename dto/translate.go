package dto

type TranslateRequest struct {
	Text   string `json:"text" binding:"required,max=5000"`
	Source string `json:"source" binding:"omitempty,oneof=en th zh"`
	Target string `json:"target" binding:"required,oneof=en th zh"`
}

type TranslateResponse struct {
	Translated string `json:"translated"`
}
