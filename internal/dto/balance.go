package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
)

// PartyBalanceResponse is the clamped outstanding position of one party.
type PartyBalanceResponse struct {
	PartyName     string          `json:"partyName"`
	NetReceivable decimal.Decimal `json:"netReceivable"`
	NetPayable    decimal.Decimal `json:"netPayable"`
}

// BalanceSummaryResponse aggregates all outstanding parties.
type BalanceSummaryResponse struct {
	Parties          []PartyBalanceResponse `json:"parties"`
	TotalReceivable  decimal.Decimal        `json:"totalReceivable"`
	TotalPayable     decimal.Decimal        `json:"totalPayable"`
	NetMarketBalance decimal.Decimal        `json:"netMarketBalance"`
}

// ToBalanceSummaryResponse converts the derived balance summary to its API form.
func ToBalanceSummaryResponse(s domain.BalanceSummary) BalanceSummaryResponse {
	parties := make([]PartyBalanceResponse, len(s.Parties))
	for i, p := range s.Parties {
		parties[i] = PartyBalanceResponse{
			PartyName:     p.PartyName,
			NetReceivable: p.NetReceivable,
			NetPayable:    p.NetPayable,
		}
	}
	return BalanceSummaryResponse{
		Parties:          parties,
		TotalReceivable:  s.TotalReceivable,
		TotalPayable:     s.TotalPayable,
		NetMarketBalance: s.NetMarketBalance,
	}
}
