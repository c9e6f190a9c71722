package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/muhammadheryan/gadgetfix/application/policy"
	"github.com/muhammadheryan/gadgetfix/cmd/config"
	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	storagerepo "github.com/muhammadheryan/gadgetfix/repository/storage"
	"github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/muhammadheryan/gadgetfix/utils/logger"
	"go.uber.org/zap"
)

// sniffLen is how many leading bytes http.DetectContentType looks at.
const sniffLen = 512

var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

type UploadApp interface {
	UploadImage(ctx context.Context, actor *model.Actor, req *model.UploadRequest) (*model.UploadResponse, error)
}

type uploadAppImpl struct {
	config      *config.Config
	storageRepo storagerepo.StorageRepository
}

func NewUploadApp(config *config.Config, storageRepo storagerepo.StorageRepository) UploadApp {
	return &uploadAppImpl{config: config, storageRepo: storageRepo}
}

// UploadImage stores a jpeg, png, webp or gif image. The type is taken from
// the content, never from the client's filename or header.
func (s *uploadAppImpl) UploadImage(ctx context.Context, actor *model.Actor, req *model.UploadRequest) (*model.UploadResponse, error) {
	if err := policy.Authorize(policy.ActionUpload, actor, nil); err != nil {
		return nil, err
	}

	maxSize := s.config.Upload.MaxSize
	if req.Size > maxSize {
		return nil, errors.SetCustomError(constant.ErrFileTooLarge)
	}

	data, err := io.ReadAll(io.LimitReader(req.Content, maxSize+1))
	if err != nil {
		logger.Error("[UploadImage] error reading upload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidUpload)
	}
	if int64(len(data)) > maxSize {
		return nil, errors.SetCustomError(constant.ErrFileTooLarge)
	}
	if len(data) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidUpload)
	}

	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	contentType := http.DetectContentType(head)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		logger.Warn("[UploadImage] rejected upload",
			zap.String("filename", req.Filename), zap.String("content_type", contentType))
		return nil, errors.SetCustomError(constant.ErrInvalidUpload)
	}

	name := fmt.Sprintf("%d-%s.%s", actor.ID, uuid.NewString(), ext)
	url, err := s.storageRepo.Save(ctx, name, bytes.NewReader(data))
	if err != nil {
		logger.Error("[UploadImage] error storageRepo.Save", zap.String("name", name), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[UploadImage] stored upload", zap.Uint64("actor_id", actor.ID), zap.String("url", url), zap.Int("size", len(data)))
	return &model.UploadResponse{ImageURL: url}, nil
}
