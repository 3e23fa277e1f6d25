package services

// ServiceContainer bundles every service for injection into the handlers.
type ServiceContainer struct {
	AuthService         AuthService
	BusinessService     BusinessService
	PostService         PostService
	EventService        EventService
	NotificationService NotificationService
	PaymentService      PaymentService
	ChatService         ChatService
}
