package mapping

import (
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:          d.CompanyID,
		Name:               d.Name,
		OrganizationNumber: d.OrganizationNumber,
		CurrentFiscalYear:  d.CurrentFiscalYear,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:          m.CompanyID,
		Name:               m.Name,
		OrganizationNumber: m.OrganizationNumber,
		CurrentFiscalYear:  m.CurrentFiscalYear,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
