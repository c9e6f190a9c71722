package model

import "time"

// CatalogEntity is a priced (device, issue) combination.
type CatalogEntity struct {
	ID             uint64     `db:"id" json:"id"`
	DeviceCategory string     `db:"device_category" json:"deviceCategory"`
	Brand          string     `db:"brand" json:"brand"`
	Model          string     `db:"model" json:"model"`
	Issue          string     `db:"issue" json:"issue"`
	BasePrice      int64      `db:"base_price" json:"basePrice"`
	Discount       int64      `db:"discount" json:"discount"`
	Active         bool       `db:"active" json:"active"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// EffectivePrice is the base price minus the flat discount, floored at zero.
func (c *CatalogEntity) EffectivePrice() int64 {
	if c.Discount >= c.BasePrice {
		return 0
	}
	return c.BasePrice - c.Discount
}

// CatalogItem is a catalog entry as rendered to clients.
type CatalogItem struct {
	CatalogEntity
	EffectivePrice int64 `json:"effectivePrice"`
}

func NewCatalogItem(e *CatalogEntity) CatalogItem {
	return CatalogItem{CatalogEntity: *e, EffectivePrice: e.EffectivePrice()}
}

type CatalogFilter struct {
	ActiveOnly bool
}

// CatalogKey identifies a catalog entry by its unique tuple.
type CatalogKey struct {
	DeviceCategory string `json:"deviceCategory" validate:"required"`
	Brand          string `json:"brand" validate:"required"`
	Model          string `json:"model" validate:"required"`
	Issue          string `json:"issue" validate:"required"`
}

type CreateServiceRequest struct {
	DeviceCategory string `json:"deviceCategory" validate:"required"`
	Brand          string `json:"brand" validate:"required"`
	Model          string `json:"model" validate:"required"`
	Issue          string `json:"issue" validate:"required"`
	BasePrice      *int64 `json:"basePrice" validate:"required,gte=0"`
	Discount       *int64 `json:"discount" validate:"omitempty,gte=0"`
	Active         *bool  `json:"active"`
}

// UpdateServiceRequest carries the administrator-editable fields; anything
// else in the payload is ignored.
type UpdateServiceRequest struct {
	DeviceCategory *string `json:"deviceCategory" validate:"omitempty,min=1"`
	Brand          *string `json:"brand" validate:"omitempty,min=1"`
	Model          *string `json:"model" validate:"omitempty,min=1"`
	Issue          *string `json:"issue" validate:"omitempty,min=1"`
	BasePrice      *int64  `json:"basePrice" validate:"omitempty,gte=0"`
	Discount       *int64  `json:"discount" validate:"omitempty,gte=0"`
	Active         *bool   `json:"active"`
}

// IsEmpty reports whether no field was supplied.
func (r *UpdateServiceRequest) IsEmpty() bool {
	return r.DeviceCategory == nil && r.Brand == nil && r.Model == nil && r.Issue == nil &&
		r.BasePrice == nil && r.Discount == nil && r.Active == nil
}

type ImportServicesResponse struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
