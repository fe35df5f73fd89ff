package cart

import (
	"hoodbook/internal/domain"
	"hoodbook/internal/pkg/money"
)

type AddItemRequest struct {
	ClassID string `json:"class_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
}

type CartResponse struct {
	Items          []domain.CartItem `json:"items"`
	Count          int               `json:"count"`
	Total          int64             `json:"total"`
	TotalFormatted string            `json:"total_formatted"`
}

type AddItemResponse struct {
	Item  domain.CartItem `json:"item"`
	Added bool            `json:"added"`
	Cart  CartResponse    `json:"cart"`
}

func toCartResponse(items []domain.CartItem) CartResponse {
	if items == nil {
		items = []domain.CartItem{}
	}
	sum := total(items)
	return CartResponse{
		Items:          items,
		Count:          len(items),
		Total:          sum,
		TotalFormatted: money.FormatMYR(sum),
	}
}
