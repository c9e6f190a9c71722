package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/go-sql-driver/mysql"
	appcatalog "github.com/muhammadheryan/gadgetfix/application/catalog"
	"github.com/muhammadheryan/gadgetfix/constant"
	catalogmocks "github.com/muhammadheryan/gadgetfix/mocks/repository/catalog"
	"github.com/muhammadheryan/gadgetfix/model"
	cerr "github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var (
	adminActor    = &model.Actor{ID: 1, Role: constant.RoleAdmin}
	customerActor = &model.Actor{ID: 2, Role: constant.RoleUser}
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }

func screenEntry() model.CatalogEntity {
	return model.CatalogEntity{
		ID:             7,
		DeviceCategory: "Smartphone",
		Brand:          "Apple",
		Model:          "iPhone 13",
		Issue:          "Screen",
		BasePrice:      150,
		Discount:       20,
		Active:         true,
	}
}

func TestCatalogApp_ListServices(t *testing.T) {
	inactive := screenEntry()
	inactive.ID = 8
	inactive.Active = false

	tests := []struct {
		name     string
		actor    *model.Actor
		all      bool
		mockCall func(repo *catalogmocks.CatalogRepository)
		want     []model.CatalogItem
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: anonymous gets active entries with effective price",
			actor: nil,
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("List", mock.Anything, &model.CatalogFilter{ActiveOnly: true}).
					Return([]model.CatalogEntity{screenEntry()}, nil).Once()
			},
			want: []model.CatalogItem{model.NewCatalogItem(func() *model.CatalogEntity { e := screenEntry(); return &e }())},
		},
		{
			name:  "success: admin lists every entry",
			actor: adminActor,
			all:   true,
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("List", mock.Anything, &model.CatalogFilter{ActiveOnly: false}).
					Return([]model.CatalogEntity{inactive}, nil).Once()
			},
			want: []model.CatalogItem{model.NewCatalogItem(&inactive)},
		},
		{
			name:    "error: customer asks for every entry",
			actor:   customerActor,
			all:     true,
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:    "error: anonymous asks for every entry",
			all:     true,
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "error: repository failure",
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := catalogmocks.NewCatalogRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}

			got, err := appcatalog.NewCatalogApp(repo).ListServices(context.Background(), tt.actor, tt.all)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ListServices() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCatalogApp_ListServices_EffectivePriceFloorsAtZero(t *testing.T) {
	repo := catalogmocks.NewCatalogRepository(t)
	entry := screenEntry()
	entry.BasePrice = 100
	entry.Discount = 150
	repo.On("List", mock.Anything, mock.Anything).Return([]model.CatalogEntity{entry}, nil).Once()

	got, err := appcatalog.NewCatalogApp(repo).ListServices(context.Background(), nil, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(0), got[0].EffectivePrice)
}

func TestCatalogApp_Quote(t *testing.T) {
	key := &model.CatalogKey{DeviceCategory: "Smartphone", Brand: "Apple", Model: "iPhone 13", Issue: "Screen"}

	t.Run("success: active entry", func(t *testing.T) {
		repo := catalogmocks.NewCatalogRepository(t)
		entry := screenEntry()
		repo.On("GetByKey", mock.Anything, key).Return(&entry, nil).Once()

		got, err := appcatalog.NewCatalogApp(repo).Quote(context.Background(), key)
		require.NoError(t, err)
		assert.Equal(t, int64(130), got.EffectivePrice)
	})

	t.Run("error: inactive entry is not quoted", func(t *testing.T) {
		repo := catalogmocks.NewCatalogRepository(t)
		entry := screenEntry()
		entry.Active = false
		repo.On("GetByKey", mock.Anything, key).Return(&entry, nil).Once()

		_, err := appcatalog.NewCatalogApp(repo).Quote(context.Background(), key)
		assert.True(t, cerr.Is(err, constant.ErrNotFound))
	})

	t.Run("error: unknown entry", func(t *testing.T) {
		repo := catalogmocks.NewCatalogRepository(t)
		repo.On("GetByKey", mock.Anything, key).Return(nil, nil).Once()

		_, err := appcatalog.NewCatalogApp(repo).Quote(context.Background(), key)
		assert.True(t, cerr.Is(err, constant.ErrNotFound))
	})
}

func TestCatalogApp_CreateService(t *testing.T) {
	validReq := func() *model.CreateServiceRequest {
		return &model.CreateServiceRequest{
			DeviceCategory: "Smartphone",
			Brand:          "Apple",
			Model:          "iPhone 13",
			Issue:          "Screen",
			BasePrice:      int64Ptr(150),
			Discount:       int64Ptr(20),
		}
	}

	tests := []struct {
		name     string
		actor    *model.Actor
		req      *model.CreateServiceRequest
		mockCall func(repo *catalogmocks.CatalogRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: admin creates active entry",
			actor: adminActor,
			req:   validReq(),
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.CatalogEntity) bool {
					return e.Brand == "Apple" && e.BasePrice == 150 && e.Discount == 20 && e.Active
				})).Return(func(_ context.Context, e *model.CatalogEntity) (*model.CatalogEntity, error) {
					e.ID = 7
					return e, nil
				}).Once()
			},
		},
		{
			name:    "error: customer cannot create",
			actor:   customerActor,
			req:     validReq(),
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:  "error: duplicate tuple",
			actor: adminActor,
			req:   validReq(),
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("Create", mock.Anything, mock.Anything).
					Return(nil, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := catalogmocks.NewCatalogRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}

			got, err := appcatalog.NewCatalogApp(repo).CreateService(context.Background(), tt.actor, tt.req)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(7), got.ID)
			assert.Equal(t, int64(130), got.EffectivePrice)
		})
	}
}

func TestCatalogApp_UpdateService(t *testing.T) {
	t.Run("success: applies only supplied fields", func(t *testing.T) {
		repo := catalogmocks.NewCatalogRepository(t)
		before := screenEntry()
		after := screenEntry()
		after.Discount = 50
		req := &model.UpdateServiceRequest{Discount: int64Ptr(50)}

		repo.On("GetByID", mock.Anything, uint64(7)).Return(&before, nil).Once()
		repo.On("Update", mock.Anything, uint64(7), req).Return(nil).Once()
		repo.On("GetByID", mock.Anything, uint64(7)).Return(&after, nil).Once()

		got, err := appcatalog.NewCatalogApp(repo).UpdateService(context.Background(), adminActor, 7, req)
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.EffectivePrice)
		assert.Equal(t, "Apple", got.Brand)
	})

	t.Run("success: empty patch returns current entry", func(t *testing.T) {
		repo := catalogmocks.NewCatalogRepository(t)
		entry := screenEntry()
		repo.On("GetByID", mock.Anything, uint64(7)).Return(&entry, nil).Once()

		got, err := appcatalog.NewCatalogApp(repo).UpdateService(context.Background(), adminActor, 7, &model.UpdateServiceRequest{})
		require.NoError(t, err)
		assert.Equal(t, uint64(7), got.ID)
	})

	t.Run("error: missing entry", func(t *testing.T) {
		repo := catalogmocks.NewCatalogRepository(t)
		repo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

		_, err := appcatalog.NewCatalogApp(repo).UpdateService(context.Background(), adminActor, 99,
			&model.UpdateServiceRequest{Brand: strPtr("Samsung")})
		assert.True(t, cerr.Is(err, constant.ErrNotFound))
	})

	t.Run("error: technician cannot update", func(t *testing.T) {
		repo := catalogmocks.NewCatalogRepository(t)
		tech := &model.Actor{ID: 3, Role: constant.RoleTechnician}

		_, err := appcatalog.NewCatalogApp(repo).UpdateService(context.Background(), tech, 7,
			&model.UpdateServiceRequest{Active: boolPtr(false)})
		assert.True(t, cerr.Is(err, constant.ErrForbidden))
	})
}

func TestCatalogApp_DeleteService(t *testing.T) {
	tests := []struct {
		name     string
		actor    *model.Actor
		mockCall func(repo *catalogmocks.CatalogRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success",
			actor: adminActor,
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("Delete", mock.Anything, uint64(7)).Return(true, nil).Once()
			},
		},
		{
			name:  "error: not found",
			actor: adminActor,
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("Delete", mock.Anything, uint64(7)).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: customer",
			actor:   customerActor,
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := catalogmocks.NewCatalogRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}

			err := appcatalog.NewCatalogApp(repo).DeleteService(context.Background(), tt.actor, 7)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestCatalogApp_ImportServices(t *testing.T) {
	t.Run("success: creates valid rows and skips bad or duplicate ones", func(t *testing.T) {
		repo := catalogmocks.NewCatalogRepository(t)
		file := buildWorkbook(t, [][]interface{}{
			{"category", "brand", "model", "issue", "basePrice", "discount", "active"},
			{"Smartphone", "Apple", "iPhone 13", "Screen", "150", "20", "true"},
			{"Smartphone", "Apple", "iPhone 13", "Battery", "abc"},
			{"Laptop", "Dell", "XPS 13", "Keyboard", "90"},
			{"Smartphone", "Apple", "iPhone 13", "Screen", "150"},
		})

		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.CatalogEntity) bool {
			return e.Issue == "Screen" && e.Discount == 20
		})).Return(&model.CatalogEntity{ID: 1}, nil).Once()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.CatalogEntity) bool {
			return e.Brand == "Dell" && e.BasePrice == 90 && e.Active
		})).Return(&model.CatalogEntity{ID: 2}, nil).Once()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.CatalogEntity) bool {
			return e.Issue == "Screen" && e.Discount == 0
		})).Return(nil, &mysql.MySQLError{Number: 1062}).Once()

		got, err := appcatalog.NewCatalogApp(repo).ImportServices(context.Background(), adminActor, file)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Created)
		assert.Equal(t, 2, got.Skipped)
		assert.Len(t, got.Errors, 2)
		assert.Contains(t, got.Errors[0], "row 3")
		assert.Contains(t, got.Errors[1], "row 5")
	})

	t.Run("error: not a workbook", func(t *testing.T) {
		repo := catalogmocks.NewCatalogRepository(t)
		_, err := appcatalog.NewCatalogApp(repo).ImportServices(context.Background(), adminActor,
			bytes.NewBufferString("category,brand\n"))
		assert.True(t, cerr.Is(err, constant.ErrInvalidRequest))
	})

	t.Run("error: customer", func(t *testing.T) {
		repo := catalogmocks.NewCatalogRepository(t)
		_, err := appcatalog.NewCatalogApp(repo).ImportServices(context.Background(), customerActor, &bytes.Buffer{})
		assert.True(t, cerr.Is(err, constant.ErrForbidden))
	})
}
