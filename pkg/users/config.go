package users

// Group role names the API accepts, each mapped to a directory group id
// through configuration.
const (
	GroupJudge       = "judge"
	GroupTestAccount = "test-account"
)

const (
	DefaultAdminRoleName         = "User Administrator"
	DefaultPerformanceTestPrefix = "TP"
)

// Config is built once at startup and passed by injection, it is never
// mutated afterwards.
type Config struct {
	// EmailDomain is the domain part of every allocated principal name.
	EmailDomain string
	// GroupIDs maps a group role name to the configured directory group id.
	GroupIDs map[string]string
	// IsLive toggles the test-account exclusion in the judges listing.
	IsLive bool
	// TestUserPassword is the fixed password given to test users.
	TestUserPassword string
	// PerformanceTestPrefix excludes users whose given name starts with it.
	PerformanceTestPrefix string
	// AdminRoleName is the directory role definition checked by IsUserAdmin.
	AdminRoleName string
}

// GroupID resolves a group role name to its configured directory group id.
func (c Config) GroupID(role string) (string, bool) {
	id, ok := c.GroupIDs[role]
	return id, ok
}
