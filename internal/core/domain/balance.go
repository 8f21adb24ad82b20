package domain

import "github.com/shopspring/decimal"

// OutstandingEpsilon is the threshold below which a clamped balance is not
// reported as outstanding, absorbing rounding residue from repeated sums.
var OutstandingEpsilon = decimal.NewFromFloat(0.01)

// PartyBalance is the derived outstanding position for one trading partner.
// NetReceivable and NetPayable are clamped at zero for reporting: overpayment
// is not carried forward as a credit owed back to the party.
type PartyBalance struct {
	PartyName     string          `json:"partyName"`
	NetReceivable decimal.Decimal `json:"netReceivable"`
	NetPayable    decimal.Decimal `json:"netPayable"`
}

// Outstanding reports whether the party owes or is owed anything material.
func (b PartyBalance) Outstanding() bool {
	return b.NetReceivable.GreaterThan(OutstandingEpsilon) || b.NetPayable.GreaterThan(OutstandingEpsilon)
}

// BalanceSummary aggregates all outstanding parties.
type BalanceSummary struct {
	Parties          []PartyBalance  `json:"parties"`
	TotalReceivable  decimal.Decimal `json:"totalReceivable"`
	TotalPayable     decimal.Decimal `json:"totalPayable"`
	NetMarketBalance decimal.Decimal `json:"netMarketBalance"`
}
