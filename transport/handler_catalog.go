package transport

import (
	"net/http"

	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	utilsContext "github.com/muhammadheryan/gadgetfix/utils/context"
	"github.com/muhammadheryan/gadgetfix/utils/errors"
	validatorx "github.com/muhammadheryan/gadgetfix/utils/validator"
)

// ListServices handler
// @Summary List catalog
// @Description Active services for everyone; all=true includes inactive ones (admin)
// @Tags Services
// @Produce json
// @Param all query bool false "Include inactive entries"
// @Success 200 {array} model.CatalogItem
// @Failure 403 {object} model.ErrorResponse
// @Router /services [get]
func (s *RestHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	all := r.URL.Query().Get("all") == "true"

	items, err := s.CatalogApp.ListServices(r.Context(), utilsContext.GetActor(r.Context()), all)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, items)
}

// QuoteService handler
// @Summary Price lookup
// @Tags Services
// @Produce json
// @Param category query string true "Device category"
// @Param brand query string true "Brand"
// @Param model query string true "Model"
// @Param issue query string true "Issue"
// @Success 200 {object} model.CatalogItem
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /services/quote [get]
func (s *RestHandler) QuoteService(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := model.CatalogKey{
		DeviceCategory: q.Get("category"),
		Brand:          q.Get("brand"),
		Model:          q.Get("model"),
		Issue:          q.Get("issue"),
	}
	if err := validatorx.ValidateStruct(&key); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	item, err := s.CatalogApp.Quote(r.Context(), &key)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, item)
}

// CreateService handler
// @Summary Create catalog entry
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateServiceRequest true "Catalog entry"
// @Success 201 {object} model.CatalogItem
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /services [post]
func (s *RestHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req model.CreateServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	item, err := s.CatalogApp.CreateService(r.Context(), utilsContext.GetActor(r.Context()), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// UpdateService handler
// @Summary Update catalog entry
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body model.UpdateServiceRequest true "Fields to change"
// @Success 200 {object} model.CatalogItem
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /services/{id} [patch]
func (s *RestHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	item, err := s.CatalogApp.UpdateService(r.Context(), utilsContext.GetActor(r.Context()), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, item)
}

// DeleteService handler
// @Summary Delete catalog entry
// @Tags Services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} model.MessageResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /services/{id} [delete]
func (s *RestHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CatalogApp.DeleteService(r.Context(), utilsContext.GetActor(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MessageResponse{Message: "Deleted"})
}

// ImportServices handler
// @Summary Bulk import catalog from xlsx
// @Description First sheet, header row, then category, brand, model, issue, basePrice[, discount[, active]]
// @Tags Services
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} model.ImportServicesResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /services/import [post]
func (s *RestHandler) ImportServices(w http.ResponseWriter, r *http.Request) {
	file, _, err := s.formFile(w, r, "file")
	if err != nil {
		writeError(w, err)
		return
	}
	defer file.Close()

	res, err := s.CatalogApp.ImportServices(r.Context(), utilsContext.GetActor(r.Context()), file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
