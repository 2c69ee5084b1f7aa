package rpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docchat-api/internal/application/ports"
	"docchat-api/internal/domain/identity"
	fileDTO "docchat-api/internal/interface/api/rpc/dto/file"
	"docchat-api/internal/interface/api/rpc/validator"
)

type (
	DeleteFileInput struct {
		ID uuid.UUID
	}
	GetFileInput struct {
		Key string
	}
	UploadStatusInput struct {
		FileID uuid.UUID
	}
)

type FileController struct {
	logger      *zap.Logger
	fileService ports.FileService
}

func NewFileController(
	rt *Router,
	logger *zap.Logger,
	fileService ports.FileService,
) *FileController {
	fc := &FileController{
		logger:      logger,
		fileService: fileService,
	}

	rt.Register(Procedure{Name: ProcGetUserFiles, AuthRequired: true, Handle: fc.GetUserFiles})
	rt.Register(Procedure{Name: ProcDeleteFile, AuthRequired: true, Decode: decodeDeleteFile, Handle: fc.DeleteFile})
	rt.Register(Procedure{Name: ProcGetFile, AuthRequired: true, Decode: decodeGetFile, Handle: fc.GetFile})
	rt.Register(Procedure{Name: ProcGetFileUploadStatus, AuthRequired: true, Decode: decodeUploadStatus, Handle: fc.GetFileUploadStatus})

	return fc
}

func decodeDeleteFile(raw []byte) (any, error) {
	var req struct {
		ID string `json:"id"`
	}
	if err := validator.DecodeStrict(raw, &req); err != nil {
		return nil, err
	}
	ok, id := validator.IsUUID(req.ID)
	if !ok {
		return nil, errors.New("id must be a valid UUID")
	}
	return DeleteFileInput{ID: id}, nil
}

func decodeGetFile(raw []byte) (any, error) {
	var req struct {
		Key string `json:"key"`
	}
	if err := validator.DecodeStrict(raw, &req); err != nil {
		return nil, err
	}
	if req.Key == "" {
		return nil, errors.New("key is required")
	}
	return GetFileInput{Key: req.Key}, nil
}

func decodeUploadStatus(raw []byte) (any, error) {
	var req struct {
		FileID string `json:"fileId"`
	}
	if err := validator.DecodeStrict(raw, &req); err != nil {
		return nil, err
	}
	ok, id := validator.IsUUID(req.FileID)
	if !ok {
		return nil, errors.New("fileId must be a valid UUID")
	}
	return UploadStatusInput{FileID: id}, nil
}

func (fc *FileController) GetUserFiles(ctx context.Context, caller *identity.Identity, _ any) (any, error) {
	fls, err := fc.fileService.FindUserFiles(ctx, caller.ID)
	if err != nil {
		fc.logger.Error("FindUserFiles() error", zap.Error(err))
		return nil, err
	}

	return fileDTO.ToResponseFiles(fls), nil
}

func (fc *FileController) DeleteFile(ctx context.Context, caller *identity.Identity, input any) (any, error) {
	in := input.(DeleteFileInput)

	f, err := fc.fileService.DeleteFile(ctx, caller.ID, in.ID)
	if err != nil {
		fc.logger.Error("DeleteFile() error", zap.Error(err))
		return nil, err
	}
	if f == nil {
		return nil, NotFound("file not found")
	}

	return fileDTO.ToResponseFile(*f), nil
}

func (fc *FileController) GetFile(ctx context.Context, caller *identity.Identity, input any) (any, error) {
	in := input.(GetFileInput)

	f, err := fc.fileService.FindFileByKey(ctx, caller.ID, in.Key)
	if err != nil {
		fc.logger.Error("FindFileByKey() error", zap.Error(err))
		return nil, err
	}
	if f == nil {
		return nil, NotFound("file not found")
	}

	return fileDTO.ToResponseFile(*f), nil
}

func (fc *FileController) GetFileUploadStatus(ctx context.Context, caller *identity.Identity, input any) (any, error) {
	in := input.(UploadStatusInput)

	status, err := fc.fileService.UploadStatus(ctx, caller.ID, in.FileID)
	if err != nil {
		fc.logger.Error("UploadStatus() error", zap.Error(err))
		return nil, err
	}

	return map[string]string{"status": string(status)}, nil
}
