package dto

type SendMessageRequest struct {
	ExplorerID string `json:"explorer_idexplorer" validate:"required"`
	BusinessID string `json:"business_idbusiness" validate:"required"`
	Content    string `json:"content" validate:"required,min=1,max=2000"`
}

type ChatMessageResponse struct {
	ID         string `json:"idmessage"`
	ExplorerID string `json:"explorer_idexplorer"`
	BusinessID string `json:"business_idbusiness"`
	Sender     string `json:"sender"`
	Content    string `json:"content"`
	Seen       bool   `json:"seen"`
	CreatedAt  string `json:"created_at"`
}
