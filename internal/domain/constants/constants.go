// Package constants holds shared constant values used across layers.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"

	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Pub/Sub publisher.
	PubSubProviderGoogle = "google"

	// EntityCalls is the change-feed key for call-log rows.
	EntityCalls = "calls"
	// EntityVendors is the change-feed key for vendor-registry rows.
	EntityVendors = "vendors"

	// ChangeInsert marks a row insertion on the change feed.
	ChangeInsert = "insert"
	// ChangeUpdate marks a row update on the change feed.
	ChangeUpdate = "update"
)
