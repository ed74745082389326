package dto

import "tourbooking/response"

// PaginatedResponse is the shape of list endpoints
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// PageQuery is bound from ?page=&limit=. Pages start at 1.
type PageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Normalize fills defaults and returns the offset
func (q *PageQuery) Normalize() int {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
	return (q.Page - 1) * q.Limit
}
