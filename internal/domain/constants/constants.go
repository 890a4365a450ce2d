// Package constants contains enum-like values shared between configuration and infrastructure.
package constants

// Pub/Sub providers for shop change events.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Proximity search engines.
const (
	SearchEngineScan    = "scan"
	SearchEngineGrid    = "grid"
	SearchEngineElastic = "elastic"
)

// DefaultSearchRadiusKm is used when a search request carries no radius.
const DefaultSearchRadiusKm = 5.0

// TokenTypeBearer is the OAuth2 token_type returned by the login endpoint.
const TokenTypeBearer = "bearer"
