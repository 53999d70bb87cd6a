package mapping

import (
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/models"
)

// ToModelSettings converts domain Settings to model Settings
func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		BaseCurrency: d.BaseCurrency.String(),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSettings converts model Settings to domain Settings
func ToDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		BaseCurrency: domain.Currency(m.BaseCurrency),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
