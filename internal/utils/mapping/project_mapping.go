package mapping

import (
	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	"github.com/flsuite/freelance_ledger_app/internal/models"
)

// ToModelClient converts a domain client to its database row shape.
func ToModelClient(c domain.Client) models.Client {
	return models.Client{
		ClientID:    c.ClientID,
		Name:        c.Name,
		ClientType:  string(c.ClientType),
		AuditFields: ToModelAuditFields(c.AuditFields),
	}
}

// ToDomainClient converts a database row to the domain client.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		Name:        m.Name,
		ClientType:  domain.ClientType(m.ClientType),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelProject converts a domain project to its database row shape.
func ToModelProject(p domain.Project) models.Project {
	return models.Project{
		ProjectID:    p.ProjectID,
		Name:         p.Name,
		ClientID:     p.ClientID,
		Status:       string(p.Status),
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Budget:       p.Budget,
		CurrencyCode: p.CurrencyCode,
		AuditFields:  ToModelAuditFields(p.AuditFields),
	}
}

// ToDomainProject converts a database row to the domain project.
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:    m.ProjectID,
		Name:         m.Name,
		ClientID:     m.ClientID,
		Status:       domain.ProjectStatus(m.Status),
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Budget:       m.Budget,
		CurrencyCode: m.CurrencyCode,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelMilestone converts a domain milestone to its database row shape.
func ToModelMilestone(m domain.Milestone) models.Milestone {
	return models.Milestone{
		MilestoneID:  m.MilestoneID,
		ProjectID:    m.ProjectID,
		Title:        m.Title,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Status:       string(m.Status),
		DueDate:      m.DueDate,
		ReleasedAt:   m.ReleasedAt,
		AuditFields:  ToModelAuditFields(m.AuditFields),
	}
}
