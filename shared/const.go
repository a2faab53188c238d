package shared

const (
	// Store key prefixes. Everything lives in a single keyspace, so the
	// prefix doubles as the namespace for listing.
	KeyPrefixContact   = "contact:"
	KeyPrefixRateLimit = "rate:"
	KeyPrefixAnalytics = "analytics:"

	HeaderAdminKey = "X-Admin-Key"
)
