// internal/handlers/message.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/cavea-app/cavea-backend/internal/i18n"
	"github.com/cavea-app/cavea-backend/internal/services"
	"github.com/cavea-app/cavea-backend/internal/store"
	"github.com/cavea-app/cavea-backend/internal/utils"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// GET /conversations
func (h *MessageHandler) GetInbox(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"conversations": h.messageService.Inbox(userID),
	})
}

// POST /conversations
func (h *MessageHandler) StartConversation(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	req.BuyerID = userID

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	conversation, err := h.messageService.StartConversation(&req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "user")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":      i18n.T(lang, i18n.KeyConversationStarted),
		"conversation": conversation,
	})
}

// GET /conversations/:id
func (h *MessageHandler) GetConversation(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	conversation, err := h.messageService.GetConversation(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "conversation")
			return
		}
		if errors.Is(err, store.ErrNotParticipant) {
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyConversationForbidden))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"conversation": conversation,
	})
}

// POST /conversations/:id/messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	req.SenderID = userID

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	message, err := h.messageService.SendMessage(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "conversation")
			return
		}
		if errors.Is(err, store.ErrNotParticipant) {
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyConversationForbidden))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyMessageSent),
		"sent":    message,
	})
}

// PUT /conversations/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	read, err := h.messageService.MarkRead(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "conversation")
			return
		}
		if errors.Is(err, store.ErrNotParticipant) {
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyConversationForbidden))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyConversationRead),
		"marked_read": read,
	})
}
