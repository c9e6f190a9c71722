package catalog

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muhammadheryan/gadgetfix/application/policy"
	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	catalogRepo "github.com/muhammadheryan/gadgetfix/repository/catalog"
	"github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/muhammadheryan/gadgetfix/utils/logger"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type CatalogApp interface {
	ListServices(ctx context.Context, actor *model.Actor, all bool) ([]model.CatalogItem, error)
	Quote(ctx context.Context, key *model.CatalogKey) (*model.CatalogItem, error)
	CreateService(ctx context.Context, actor *model.Actor, req *model.CreateServiceRequest) (*model.CatalogItem, error)
	UpdateService(ctx context.Context, actor *model.Actor, id uint64, req *model.UpdateServiceRequest) (*model.CatalogItem, error)
	DeleteService(ctx context.Context, actor *model.Actor, id uint64) error
	ImportServices(ctx context.Context, actor *model.Actor, file io.Reader) (*model.ImportServicesResponse, error)
}

type catalogAppImpl struct {
	catalogRepo catalogRepo.CatalogRepository
}

func NewCatalogApp(catalogRepo catalogRepo.CatalogRepository) CatalogApp {
	return &catalogAppImpl{catalogRepo: catalogRepo}
}

// ListServices returns the active catalog to everyone; the full catalog,
// inactive entries included, is for administrators.
func (s *catalogAppImpl) ListServices(ctx context.Context, actor *model.Actor, all bool) ([]model.CatalogItem, error) {
	if all {
		if err := policy.Authorize(policy.ActionListAllServices, actor, nil); err != nil {
			return nil, err
		}
	}

	entries, err := s.catalogRepo.List(ctx, &model.CatalogFilter{ActiveOnly: !all})
	if err != nil {
		logger.Error("[ListServices] error catalogRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]model.CatalogItem, 0, len(entries))
	for i := range entries {
		items = append(items, model.NewCatalogItem(&entries[i]))
	}
	return items, nil
}

// Quote looks up the active entry for a device and issue.
func (s *catalogAppImpl) Quote(ctx context.Context, key *model.CatalogKey) (*model.CatalogItem, error) {
	entry, err := s.catalogRepo.GetByKey(ctx, key)
	if err != nil {
		logger.Error("[Quote] error catalogRepo.GetByKey", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entry == nil || !entry.Active {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	item := model.NewCatalogItem(entry)
	return &item, nil
}

func (s *catalogAppImpl) CreateService(ctx context.Context, actor *model.Actor, req *model.CreateServiceRequest) (*model.CatalogItem, error) {
	if err := policy.Authorize(policy.ActionManageCatalog, actor, nil); err != nil {
		return nil, err
	}

	entity := &model.CatalogEntity{
		DeviceCategory: strings.TrimSpace(req.DeviceCategory),
		Brand:          strings.TrimSpace(req.Brand),
		Model:          strings.TrimSpace(req.Model),
		Issue:          strings.TrimSpace(req.Issue),
		BasePrice:      *req.BasePrice,
		Active:         true,
	}
	if req.Discount != nil {
		entity.Discount = *req.Discount
	}
	if req.Active != nil {
		entity.Active = *req.Active
	}

	created, err := s.catalogRepo.Create(ctx, entity)
	if err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateService)
		}
		logger.Error("[CreateService] error catalogRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	item := model.NewCatalogItem(created)
	return &item, nil
}

func (s *catalogAppImpl) UpdateService(ctx context.Context, actor *model.Actor, id uint64, req *model.UpdateServiceRequest) (*model.CatalogItem, error) {
	if err := policy.Authorize(policy.ActionManageCatalog, actor, nil); err != nil {
		return nil, err
	}

	existing, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateService] error catalogRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if req.IsEmpty() {
		item := model.NewCatalogItem(existing)
		return &item, nil
	}

	if err := s.catalogRepo.Update(ctx, id, req); err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateService)
		}
		logger.Error("[UpdateService] error catalogRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateService] error catalogRepo.GetByID after update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if updated == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	item := model.NewCatalogItem(updated)
	return &item, nil
}

// DeleteService is a hard delete; bookings keep their own copy of the
// device and issue text so nothing references the entry.
func (s *catalogAppImpl) DeleteService(ctx context.Context, actor *model.Actor, id uint64) error {
	if err := policy.Authorize(policy.ActionManageCatalog, actor, nil); err != nil {
		return err
	}

	deleted, err := s.catalogRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteService] error catalogRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// ImportServices reads the first sheet of an xlsx workbook. Row 1 is a
// header; each following row is category, brand, model, issue, base price,
// and optionally discount and active.
func (s *catalogAppImpl) ImportServices(ctx context.Context, actor *model.Actor, file io.Reader) (*model.ImportServicesResponse, error) {
	if err := policy.Authorize(policy.ActionManageCatalog, actor, nil); err != nil {
		return nil, err
	}

	xlsx, err := excelize.OpenReader(file)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	rows, err := xlsx.GetRows(sheets[0])
	if err != nil {
		logger.Error("[ImportServices] error GetRows", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	res := &model.ImportServicesResponse{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		line := i + 1

		entity, err := parseCatalogRow(row)
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %s", line, err.Error()))
			continue
		}

		if _, err := s.catalogRepo.Create(ctx, entity); err != nil {
			if errors.IsDuplicateEntry(err) {
				res.Skipped++
				res.Errors = append(res.Errors, fmt.Sprintf("row %d: duplicate service", line))
				continue
			}
			logger.Error("[ImportServices] error catalogRepo.Create", zap.Int("row", line), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		res.Created++
	}

	logger.Info("[ImportServices] catalog import done",
		zap.Uint64("actor_id", actor.ID), zap.Int("created", res.Created), zap.Int("skipped", res.Skipped))
	return res, nil
}

func parseCatalogRow(row []string) (*model.CatalogEntity, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	entity := &model.CatalogEntity{
		DeviceCategory: cell(0),
		Brand:          cell(1),
		Model:          cell(2),
		Issue:          cell(3),
		Active:         true,
	}
	if entity.DeviceCategory == "" || entity.Brand == "" || entity.Model == "" || entity.Issue == "" {
		return nil, fmt.Errorf("category, brand, model and issue are required")
	}

	price, err := strconv.ParseInt(cell(4), 10, 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("invalid base price %q", cell(4))
	}
	entity.BasePrice = price

	if v := cell(5); v != "" {
		discount, err := strconv.ParseInt(v, 10, 64)
		if err != nil || discount < 0 {
			return nil, fmt.Errorf("invalid discount %q", v)
		}
		entity.Discount = discount
	}
	if v := cell(6); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid active flag %q", v)
		}
		entity.Active = active
	}
	return entity, nil
}
