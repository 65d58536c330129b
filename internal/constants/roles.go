package constants

// User roles
const (
	RoleAdmin   = "admin"
	RoleFinance = "finance"
	RoleStaff   = "staff"
)

// Access levels
const (
	AccessLevelRead  = "read"
	AccessLevelWrite = "write"
	AccessLevelAdmin = "admin"
)

// Auth types
const (
	AuthTypeAPIKey = "api_key"
)

// APIKeyPrefix marks issued keys so leaked values are recognizable in
// secret scanners.
const APIKeyPrefix = "flk_"
