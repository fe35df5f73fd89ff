package admin

import (
	"time"

	"hoodbook/internal/domain"
	"hoodbook/internal/modules/catalog"
)

type UnlockRequest struct {
	PIN string `json:"pin" binding:"required"`
}

type UnlockResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type OverviewResponse struct {
	Totals         domain.LedgerTotals    `json:"totals"`
	GrossFormatted string                 `json:"gross_formatted"`
	Classes        []catalog.OfferingView `json:"classes"`
}
