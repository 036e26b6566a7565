// Package constants holds values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for order-ready events
const (
	PubSubProviderInline = "inline"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Reply generator providers
const (
	LLMProviderGemini = "gemini"
	LLMProviderStatic = "static"
)

// Webhook values defined by the Messenger platform
const (
	WebhookModeSubscribe = "subscribe"
	WebhookObjectPage    = "page"
	WebhookAcknowledged  = "EVENT_RECEIVED"
	HeaderHubSignature   = "X-Hub-Signature-256"
)

// AdminRole is the only role issued by the operator login.
const AdminRole = "admin"
