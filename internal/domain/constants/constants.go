// Package constants holds string values shared between configuration and runtime wiring.
package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Batch sync modes
const (
	BatchModeInline = "inline"
	BatchModePubSub = "pubsub"
)
