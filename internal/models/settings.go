package models

// Settings is the single row of the settings table.
type Settings struct {
	BaseCurrency string `db:"base_currency"`
	AuditFields
}
