package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	BusinessHandler     *BusinessHandler
	PostHandler         *PostHandler
	EventHandler        *EventHandler
	NotificationHandler *NotificationHandler
	PaymentHandler      *PaymentHandler
	ChatHandler         *ChatHandler
}
