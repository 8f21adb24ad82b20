package mapping

import (
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	"github.com/sunnytraders/inventory_pro_app/internal/models"
)

// ToModelTransaction converts a domain transaction to its DB row representation.
func ToModelTransaction(t domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:              t.ID,
		Date:            t.Date,
		Category:        t.Category,
		ItemType:        t.ItemType,
		Unit:            t.Unit,
		Quantity:        t.Quantity,
		Rate:            t.Rate,
		Amount:          t.Amount,
		TransactionType: string(t.TransactionType),
		CashCredit:      string(t.CashCredit),
		PartyName:       t.PartyName,
		VehicleName:     t.VehicleName,
		SiteName:        t.SiteName,
		Remarks:         t.Remarks,
	}
}

// ToDomainTransaction converts a DB row to the domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:              m.ID,
		Date:            m.Date,
		Category:        m.Category,
		ItemType:        m.ItemType,
		Unit:            m.Unit,
		Quantity:        m.Quantity,
		Rate:            m.Rate,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		CashCredit:      domain.CashCredit(m.CashCredit),
		PartyName:       m.PartyName,
		VehicleName:     m.VehicleName,
		SiteName:        m.SiteName,
		Remarks:         m.Remarks,
	}
}

// ToDomainTransactionSlice converts a slice of DB rows to domain transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
