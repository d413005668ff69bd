// Package constants contains shared domain-level constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes broadcast events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes broadcast events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// RoleOwner marks a user who manages one or more restaurants.
	RoleOwner = "owner"
)
