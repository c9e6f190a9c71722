package upload_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	appupload "github.com/muhammadheryan/gadgetfix/application/upload"
	"github.com/muhammadheryan/gadgetfix/cmd/config"
	"github.com/muhammadheryan/gadgetfix/constant"
	storagemocks "github.com/muhammadheryan/gadgetfix/mocks/repository/storage"
	"github.com/muhammadheryan/gadgetfix/model"
	cerr "github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	gifHeader = []byte("GIF89a\x01\x00\x01\x00")
)

func testConfig(maxSize int64) *config.Config {
	return &config.Config{Upload: config.UploadConfig{Dir: "unused", PublicPath: "/uploads/", MaxSize: maxSize}}
}

func TestUploadApp_UploadImage(t *testing.T) {
	actor := &model.Actor{ID: 42, Role: constant.RoleUser}

	tests := []struct {
		name     string
		actor    *model.Actor
		maxSize  int64
		content  []byte
		size     int64
		mockCall func(repo *storagemocks.StorageRepository)
		wantURL  *regexp.Regexp
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: png gets an owner-prefixed name",
			actor:   actor,
			maxSize: 1024,
			content: pngHeader,
			mockCall: func(repo *storagemocks.StorageRepository) {
				repo.On("Save", mock.Anything, mock.MatchedBy(func(name string) bool {
					return strings.HasPrefix(name, "42-") && strings.HasSuffix(name, ".png")
				}), mock.Anything).Return(func(_ context.Context, name string, _ io.Reader) (string, error) {
					return "/uploads/" + name, nil
				}).Once()
			},
			wantURL: regexp.MustCompile(`^/uploads/42-[0-9a-f-]{36}\.png$`),
		},
		{
			name:    "success: gif",
			actor:   actor,
			maxSize: 1024,
			content: gifHeader,
			mockCall: func(repo *storagemocks.StorageRepository) {
				repo.On("Save", mock.Anything, mock.MatchedBy(func(name string) bool {
					return strings.HasSuffix(name, ".gif")
				}), mock.Anything).Return("/uploads/x.gif", nil).Once()
			},
			wantURL: regexp.MustCompile(`^/uploads/x\.gif$`),
		},
		{
			name:    "error: declared size over limit",
			actor:   actor,
			maxSize: 8,
			content: pngHeader,
			size:    9,
			wantErr: true,
			errCode: constant.ErrFileTooLarge,
		},
		{
			name:    "error: body over limit",
			actor:   actor,
			maxSize: 8,
			content: pngHeader,
			wantErr: true,
			errCode: constant.ErrFileTooLarge,
		},
		{
			name:    "error: not an image",
			actor:   actor,
			maxSize: 1024,
			content: []byte("#!/bin/sh\necho hi\n"),
			wantErr: true,
			errCode: constant.ErrInvalidUpload,
		},
		{
			name:    "error: empty file",
			actor:   actor,
			maxSize: 1024,
			content: nil,
			wantErr: true,
			errCode: constant.ErrInvalidUpload,
		},
		{
			name:    "error: anonymous",
			maxSize: 1024,
			content: pngHeader,
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:    "error: storage failure",
			actor:   actor,
			maxSize: 1024,
			content: pngHeader,
			mockCall: func(repo *storagemocks.StorageRepository) {
				repo.On("Save", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("disk full")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := storagemocks.NewStorageRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}

			app := appupload.NewUploadApp(testConfig(tt.maxSize), repo)
			got, err := app.UploadImage(context.Background(), tt.actor, &model.UploadRequest{
				Filename: "photo.bin",
				Size:     tt.size,
				Content:  bytes.NewReader(tt.content),
			})
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Regexp(t, tt.wantURL, got.ImageURL)
		})
	}
}
