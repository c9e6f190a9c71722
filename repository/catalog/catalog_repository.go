package catalog

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/gadgetfix/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CatalogRepository interface {
	Create(ctx context.Context, data *model.CatalogEntity) (*model.CatalogEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.CatalogEntity, error)
	GetByKey(ctx context.Context, key *model.CatalogKey) (*model.CatalogEntity, error)
	List(ctx context.Context, filter *model.CatalogFilter) ([]model.CatalogEntity, error)
	Update(ctx context.Context, id uint64, req *model.UpdateServiceRequest) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

const (
	catalogColumns = `id, device_category, brand, model, issue, base_price, discount, active, created_at, updated_at`

	insertCatalogQuery = `INSERT INTO catalog_entry (device_category, brand, model, issue, base_price, discount, active, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`

	getCatalogByID = `SELECT ` + catalogColumns + ` FROM catalog_entry WHERE id = ?`

	getCatalogByKey = `SELECT ` + catalogColumns + ` FROM catalog_entry
WHERE device_category = ? AND brand = ? AND model = ? AND issue = ?`

	listCatalogBase = `SELECT ` + catalogColumns + ` FROM catalog_entry`

	deleteCatalogQuery = `DELETE FROM catalog_entry WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.CatalogEntity) (*model.CatalogEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertCatalogQuery, data.DeviceCategory, data.Brand, data.Model, data.Issue,
		data.BasePrice, data.Discount, data.Active)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.CatalogEntity, error) {
	var entity model.CatalogEntity
	if err := s.conn.QueryRowxContext(ctx, getCatalogByID, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByKey(ctx context.Context, key *model.CatalogKey) (*model.CatalogEntity, error) {
	var entity model.CatalogEntity
	row := s.conn.QueryRowxContext(ctx, getCatalogByKey, key.DeviceCategory, key.Brand, key.Model, key.Issue)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.CatalogFilter) ([]model.CatalogEntity, error) {
	query := listCatalogBase
	if filter != nil && filter.ActiveOnly {
		query += " WHERE active = true"
	}
	query += " ORDER BY device_category, created_at DESC, id DESC"

	items := make([]model.CatalogEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.UpdateServiceRequest) error {
	sets := make([]string, 0, 8)
	args := make([]any, 0, 8)

	if req.DeviceCategory != nil {
		sets = append(sets, "device_category = ?")
		args = append(args, *req.DeviceCategory)
	}
	if req.Brand != nil {
		sets = append(sets, "brand = ?")
		args = append(args, *req.Brand)
	}
	if req.Model != nil {
		sets = append(sets, "model = ?")
		args = append(args, *req.Model)
	}
	if req.Issue != nil {
		sets = append(sets, "issue = ?")
		args = append(args, *req.Issue)
	}
	if req.BasePrice != nil {
		sets = append(sets, "base_price = ?")
		args = append(args, *req.BasePrice)
	}
	if req.Discount != nil {
		sets = append(sets, "discount = ?")
		args = append(args, *req.Discount)
	}
	if req.Active != nil {
		sets = append(sets, "active = ?")
		args = append(args, *req.Active)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, "UPDATE catalog_entry SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteCatalogQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
