// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Identity & validation
	KeyIdentityRequired  = "identity.required"
	KeyValidationInvalid = "validation.invalid"

	// Catalog
	KeyBottleNotFound = "bottle.not_found"

	// Users
	KeyUserNotFound   = "user.not_found"
	KeyProfileUpdated = "profile.updated"

	// Messaging
	KeyConversationNotFound  = "conversation.not_found"
	KeyConversationForbidden = "conversation.forbidden"
	KeyConversationStarted   = "conversation.started"
	KeyMessageSent           = "message.sent"
	KeyConversationRead      = "conversation.read"

	// Collections
	KeyFavoriteAdded   = "favorite.added"
	KeyFavoriteRemoved = "favorite.removed"
	KeyCartUpdated     = "cart.updated"
)
