package dto

type CategoryRequest struct {
	Slug          string `json:"slug" binding:"omitempty,max=120"`
	NameEn        string `json:"nameEn" binding:"required,max=120"`
	NameTh        string `json:"nameTh" binding:"max=120"`
	NameZh        string `json:"nameZh" binding:"max=120"`
	AutoTranslate bool   `json:"autoTranslate"`
}
