package transport

import (
	stderrors "errors"
	"mime/multipart"
	"net/http"

	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	utilsContext "github.com/muhammadheryan/gadgetfix/utils/context"
	"github.com/muhammadheryan/gadgetfix/utils/errors"
)

// multipartOverhead is the room left for the multipart envelope on top of
// the file size limit.
const multipartOverhead = 1 << 20

// formFile reads one multipart file from a body capped at the upload limit.
func (s *RestHandler) formFile(w http.ResponseWriter, r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	limit := s.Config.Upload.MaxSize
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, nil, errors.SetCustomError(constant.ErrFileTooLarge)
		}
		return nil, nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return file, header, nil
}

// UploadImage handler
// @Summary Upload an image
// @Description JPG, PNG, WebP or GIF up to 5MB; returns the public path
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image"
// @Success 200 {object} model.UploadResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /upload [post]
func (s *RestHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	actor := utilsContext.GetActor(r.Context())

	file, header, err := s.formFile(w, r, "image")
	if err != nil {
		writeError(w, err)
		return
	}
	defer file.Close()

	res, err := s.UploadApp.UploadImage(r.Context(), actor, &model.UploadRequest{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetStats handler
// @Summary Dashboard statistics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.StatsResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /admin/stats [get]
func (s *RestHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	res, err := s.StatsApp.GetStats(r.Context(), utilsContext.GetActor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
