// Package constants holds identifiers shared between configuration and wiring.
package constants

const (
	// EnvDevelop is the environment name that relaxes production-only checks.
	EnvDevelop = "develop"
)

// Pub/Sub provider names accepted by config.PubSubConfig.Provider.
const (
	PubSubProviderLocal     = "local"
	PubSubProviderGoogle    = "google"
	PubSubProviderInProcess = "inprocess"
)
