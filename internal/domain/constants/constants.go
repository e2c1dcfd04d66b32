// Package constants defines shared domain constants.
package constants

// Pub/Sub provider types.
const (
	// PubSubProviderLocal uses a local HTTP endpoint that mimics push delivery.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle uses Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
