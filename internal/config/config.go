package config

const (
	DefaultTimeZone = "Asia/Kolkata"

	// HTTP defaults; services.yaml overrides per service.
	DefaultGatewayPort  = 8081
	DefaultAnalysisPort = 7143

	// Upload limit for ledger files.
	MaxUploadBytes = 32 << 20

	// Legacy .xls worksheets cap out at 65536 rows.
	MaxLegacySheetRows = 65536

	// Retention of persisted transactions.
	DefaultRetentionSchedule = "0 2 * * *"
	DefaultRetentionDays     = 180
)
