package services

import (
	"time"

	"localink_backend/internal/models"
	"localink_backend/internal/repositories"
	"localink_backend/internal/services/dto"
	"localink_backend/pkg/apperrors"
)

type ChatService interface {
	SendMessage(senderID string, senderRole models.UserRole, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error)
	GetConversation(callerID string, callerRole models.UserRole, explorerID, businessID string) ([]dto.ChatMessageResponse, error)
}

type chatService struct {
	chatRepo     repositories.ChatRepository
	explorerRepo repositories.ExplorerRepository
	businessRepo repositories.BusinessRepository
}

func NewChatService(
	chatRepo repositories.ChatRepository,
	explorerRepo repositories.ExplorerRepository,
	businessRepo repositories.BusinessRepository,
) ChatService {
	return &chatService{
		chatRepo:     chatRepo,
		explorerRepo: explorerRepo,
		businessRepo: businessRepo,
	}
}

func (s *chatService) SendMessage(senderID string, senderRole models.UserRole, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error) {
	var sender models.RecipientType
	switch senderRole {
	case models.UserRoleExplorer:
		if senderID != req.ExplorerID {
			return nil, apperrors.NewForbiddenError("Cannot send messages for another explorer")
		}
		sender = models.RecipientExplorer
	case models.UserRoleBusiness:
		if senderID != req.BusinessID {
			return nil, apperrors.NewForbiddenError("Cannot send messages for another business")
		}
		sender = models.RecipientBusiness
	default:
		return nil, apperrors.ErrInvalidOperation("chat", "Only explorers and businesses can chat")
	}

	if _, err := s.explorerRepo.FindByID(req.ExplorerID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if _, err := s.businessRepo.FindByID(req.BusinessID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	message := &models.ChatMessage{
		ExplorerID: req.ExplorerID,
		BusinessID: req.BusinessID,
		Sender:     sender,
		Content:    req.Content,
	}
	if err := s.chatRepo.CreateMessage(message); err != nil {
		return nil, err
	}

	return buildChatMessageResponse(message), nil
}

func (s *chatService) GetConversation(callerID string, callerRole models.UserRole, explorerID, businessID string) ([]dto.ChatMessageResponse, error) {
	// A conversation is only visible to its two participants.
	switch callerRole {
	case models.UserRoleExplorer:
		if callerID != explorerID {
			return nil, apperrors.NewForbiddenError("Not a participant of this conversation")
		}
	case models.UserRoleBusiness:
		if callerID != businessID {
			return nil, apperrors.NewForbiddenError("Not a participant of this conversation")
		}
	default:
		return nil, apperrors.NewForbiddenError("Not a participant of this conversation")
	}

	messages, err := s.chatRepo.FindConversation(explorerID, businessID)
	if err != nil {
		return nil, err
	}

	reader := models.RecipientExplorer
	if callerRole == models.UserRoleBusiness {
		reader = models.RecipientBusiness
	}
	if err := s.chatRepo.MarkSeen(explorerID, businessID, reader); err != nil {
		return nil, err
	}

	responses := make([]dto.ChatMessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *buildChatMessageResponse(&messages[i]))
	}
	return responses, nil
}

func buildChatMessageResponse(m *models.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		ID:         m.ID,
		ExplorerID: m.ExplorerID,
		BusinessID: m.BusinessID,
		Sender:     string(m.Sender),
		Content:    m.Content,
		Seen:       m.SeenAt != nil,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}
