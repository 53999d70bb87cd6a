package domain

// Settings holds deployment-wide preferences.
type Settings struct {
	BaseCurrency Currency `json:"baseCurrency"`
	AuditFields
}
