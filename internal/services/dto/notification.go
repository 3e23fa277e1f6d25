package dto

// NotificationResponse matches the fields the notification screen binds to:
// idnotif, type, message, is_read, created_at, sender references.
type NotificationResponse struct {
	ID            string  `json:"idnotif"`
	RecipientID   string  `json:"recipient_id"`
	RecipientType string  `json:"userType"`
	Type          string  `json:"type"`
	Message       string  `json:"message"`
	IsRead        bool    `json:"is_read"`
	SenderID      *string `json:"explorer_idexplorer,omitempty"`
	SenderType    string  `json:"senderType,omitempty"`
	SenderImage   string  `json:"senderImage,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}
