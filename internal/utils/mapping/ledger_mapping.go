package mapping

import (
	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	"github.com/flsuite/freelance_ledger_app/internal/models"
)

// ToModelEntry converts a domain ledger entry to its database row shape.
func ToModelEntry(e domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:      e.EntryID,
		EntryDate:    e.EntryDate,
		Description:  e.Description,
		Type:         models.TransactionKind(e.Type),
		Amount:       e.Amount,
		CurrencyCode: e.CurrencyCode,
		GST:          e.GST,
		ProjectName:  e.ProjectName,
		ClientName:   e.ClientName,
		Platform:     models.Platform(e.Platform),
		ProjectID:    e.ProjectID,
		MilestoneID:  e.MilestoneID,
		Notes:        e.Notes,
		AuditFields:  ToModelAuditFields(e.AuditFields),
	}
}

// ToDomainEntry converts a database row to the domain ledger entry.
func ToDomainEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      m.EntryID,
		EntryDate:    m.EntryDate,
		Description:  m.Description,
		Type:         domain.TransactionKind(m.Type),
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		GST:          m.GST,
		ProjectName:  m.ProjectName,
		ClientName:   m.ClientName,
		Platform:     domain.Platform(m.Platform),
		ProjectID:    m.ProjectID,
		MilestoneID:  m.MilestoneID,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntrySlice converts a slice of rows to domain entries.
func ToDomainEntrySlice(rows []models.LedgerEntry) []domain.LedgerEntry {
	entries := make([]domain.LedgerEntry, len(rows))
	for i, m := range rows {
		entries[i] = ToDomainEntry(m)
	}
	return entries
}
