package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogEntity_EffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		base     int64
		discount int64
		want     int64
	}{
		{name: "discounted", base: 1000, discount: 200, want: 800},
		{name: "no discount", base: 450, discount: 0, want: 450},
		{name: "discount above base is floored", base: 1000, discount: 1500, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &CatalogEntity{BasePrice: tt.base, Discount: tt.discount}
			assert.Equal(t, tt.want, e.EffectivePrice())
			assert.Equal(t, tt.want, NewCatalogItem(e).EffectivePrice)
		})
	}
}

func TestStringList_Value(t *testing.T) {
	v, err := StringList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringList{"/uploads/a.png", "/uploads/b.jpg"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["/uploads/a.png","/uploads/b.jpg"]`, v)
}

func TestStringList_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    StringList
		wantErr bool
	}{
		{name: "bytes", src: []byte(`["a","b"]`), want: StringList{"a", "b"}},
		{name: "string", src: `["a"]`, want: StringList{"a"}},
		{name: "null", src: nil, want: StringList{}},
		{name: "empty", src: []byte{}, want: StringList{}},
		{name: "unsupported", src: 42, wantErr: true},
		{name: "malformed", src: []byte(`{`), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			err := l.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, l)
		})
	}
}

func TestNewBookingItem(t *testing.T) {
	name, email := "Rina", "rina@example.com"

	item := NewBookingItem(&BookingRow{
		BookingEntity: BookingEntity{ID: 7, UserID: 3},
		OwnerName:     &name,
		OwnerEmail:    &email,
	})
	assert.Equal(t, &OwnerSummary{ID: 3, Name: "Rina", Email: "rina@example.com"}, item.Owner)

	orphan := NewBookingItem(&BookingRow{BookingEntity: BookingEntity{ID: 8, UserID: 99}})
	assert.Nil(t, orphan.Owner)
	assert.Equal(t, uint64(8), orphan.ID)
}

func TestUpdateBookingRequest_IsEmpty(t *testing.T) {
	assert.True(t, (&UpdateBookingRequest{}).IsEmpty())
	tech := uint64(4)
	assert.False(t, (&UpdateBookingRequest{TechnicianID: &tech}).IsEmpty())
}
