package dto

type CreateReviewRequest struct {
	AuthorName       string `json:"authorName" form:"authorName" binding:"required,max=80"`
	Rating           int    `json:"rating" form:"rating" binding:"required,min=1,max=5"`
	Comment          string `json:"comment" form:"comment" binding:"max=2000"`
	BookingReference string `json:"bookingReference" form:"bookingReference"`
	Locale           string `json:"locale" form:"locale"`
}

// ReviewSummary is the approved rating aggregate of a tour
type ReviewSummary struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}
