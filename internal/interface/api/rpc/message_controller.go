package rpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docchat-api/internal/application/ports"
	"docchat-api/internal/domain/identity"
	messageDTO "docchat-api/internal/interface/api/rpc/dto/message"
	"docchat-api/internal/interface/api/rpc/validator"
)

type GetFileMessagesInput struct {
	FileID uuid.UUID
	Limit  int
	Cursor *uuid.UUID
}

type MessageController struct {
	logger         *zap.Logger
	messageService ports.MessageService
	defaultLimit   int
}

func NewMessageController(
	rt *Router,
	logger *zap.Logger,
	messageService ports.MessageService,
	defaultLimit int,
) *MessageController {
	mc := &MessageController{
		logger:         logger,
		messageService: messageService,
		defaultLimit:   defaultLimit,
	}

	rt.Register(Procedure{Name: ProcGetFileMessages, AuthRequired: true, Decode: mc.decodeGetFileMessages, Handle: mc.GetFileMessages})

	return mc
}

func (mc *MessageController) decodeGetFileMessages(raw []byte) (any, error) {
	var req struct {
		FileID string  `json:"fileId"`
		Limit  *int    `json:"limit"`
		Cursor *string `json:"cursor"`
	}
	if err := validator.DecodeStrict(raw, &req); err != nil {
		return nil, err
	}

	ok, fileID := validator.IsUUID(req.FileID)
	if !ok {
		return nil, errors.New("fileId must be a valid UUID")
	}

	limit, err := validator.ValidateLimit(req.Limit, mc.defaultLimit)
	if err != nil {
		return nil, err
	}

	in := GetFileMessagesInput{FileID: fileID, Limit: limit}
	if req.Cursor != nil {
		ok, cursor := validator.IsUUID(*req.Cursor)
		if !ok {
			return nil, errors.New("cursor must be a valid message id")
		}
		in.Cursor = &cursor
	}

	return in, nil
}

func (mc *MessageController) GetFileMessages(ctx context.Context, caller *identity.Identity, input any) (any, error) {
	in := input.(GetFileMessagesInput)

	page, err := mc.messageService.FindFileMessages(ctx, caller.ID, in.FileID, in.Limit, in.Cursor)
	if err != nil {
		mc.logger.Error("FindFileMessages() error", zap.Error(err))
		return nil, err
	}
	if page == nil {
		return nil, NotFound("file not found")
	}

	return messageDTO.ToResponsePage(*page), nil
}
