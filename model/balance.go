package model

import (
	"sort"
	"time"
)

const (
	HistoryTypeSale       = "sale"
	HistoryTypePayout     = "payout"
	HistoryTypeAdjustment = "adjustment"
)

// CustomerBalance is the advisory snapshot computed from the union of a
// customer's sales, their payouts and the applicable adjustments.
type CustomerBalance struct {
	CustomerID       string  `json:"customer_id"`
	TotalSales       float64 `json:"total_sales"`
	TotalPayouts     float64 `json:"total_payouts"`
	TotalAdjustments float64 `json:"total_adjustments"`
	Balance          float64 `json:"balance"`
}

// HistoryEntry is one record in a customer's merged transaction history.
// Adjustments carry no status.
type HistoryEntry struct {
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BuildHistory merges sales, payouts and adjustments into a single history
// sorted newest first. The sort is stable so records sharing a timestamp keep
// their original order.
func BuildHistory(sales []Sale, payouts []Payout, adjustments []Adjustment) []HistoryEntry {
	history := make([]HistoryEntry, 0, len(sales)+len(payouts)+len(adjustments))
	for _, sale := range sales {
		history = append(history, HistoryEntry{
			Type:      HistoryTypeSale,
			Amount:    sale.Amount,
			Status:    sale.Status,
			CreatedAt: sale.CreatedAt,
		})
	}
	for _, payout := range payouts {
		history = append(history, HistoryEntry{
			Type:      HistoryTypePayout,
			Amount:    payout.Amount,
			Status:    payout.Status,
			CreatedAt: payout.CreatedAt,
		})
	}
	for _, adjustment := range adjustments {
		history = append(history, HistoryEntry{
			Type:      HistoryTypeAdjustment,
			Amount:    adjustment.Amount,
			CreatedAt: adjustment.CreatedAt,
		})
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.After(history[j].CreatedAt)
	})
	return history
}
