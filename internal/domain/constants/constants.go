package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// HeaderCronSecret carries the shared secret of scheduled calls.
const HeaderCronSecret = "X-Cron-Secret"

// SearchHistoryLimit is the number of recent searches returned to a user.
const SearchHistoryLimit = 10
