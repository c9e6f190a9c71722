package policy_test

import (
	"testing"

	"github.com/muhammadheryan/gadgetfix/application/policy"
	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	cerr "github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/stretchr/testify/assert"
)

var (
	admin      = &model.Actor{ID: 1, Role: constant.RoleAdmin}
	customer   = &model.Actor{ID: 2, Role: constant.RoleUser}
	other      = &model.Actor{ID: 3, Role: constant.RoleUser}
	technician = &model.Actor{ID: 4, Role: constant.RoleTechnician}
)

func TestAllow(t *testing.T) {
	ownPending := &policy.Resource{OwnerID: customer.ID, RepairStatus: constant.RepairStatusPending}
	ownInProgress := &policy.Resource{OwnerID: customer.ID, RepairStatus: constant.RepairStatusInProgress}
	ownCompleted := &policy.Resource{OwnerID: customer.ID, RepairStatus: constant.RepairStatusCompleted}
	ownCancelled := &policy.Resource{OwnerID: customer.ID, RepairStatus: constant.RepairStatusCancelled}

	tests := []struct {
		name   string
		action policy.Action
		actor  *model.Actor
		res    *policy.Resource
		want   bool
	}{
		{"anonymous cannot create booking", policy.ActionCreateBooking, nil, nil, false},
		{"customer creates booking", policy.ActionCreateBooking, customer, nil, true},
		{"customer lists own bookings", policy.ActionListOwnBookings, customer, nil, true},
		{"customer cannot list all bookings", policy.ActionListAllBookings, customer, nil, false},
		{"technician cannot list all bookings", policy.ActionListAllBookings, technician, nil, false},
		{"admin lists all bookings", policy.ActionListAllBookings, admin, nil, true},
		{"owner views booking", policy.ActionViewBooking, customer, ownPending, true},
		{"stranger cannot view booking", policy.ActionViewBooking, other, ownPending, false},
		{"admin views any booking", policy.ActionViewBooking, admin, ownPending, true},
		{"owner cannot transition own booking", policy.ActionTransitionBooking, customer, ownPending, false},
		{"technician cannot transition booking", policy.ActionTransitionBooking, technician, ownPending, false},
		{"admin transitions booking", policy.ActionTransitionBooking, admin, ownCompleted, true},
		{"owner cancels pending booking", policy.ActionCancelBooking, customer, ownPending, true},
		{"owner cancels in-progress booking", policy.ActionCancelBooking, customer, ownInProgress, true},
		{"owner cannot cancel completed booking", policy.ActionCancelBooking, customer, ownCompleted, false},
		{"owner cannot cancel cancelled booking", policy.ActionCancelBooking, customer, ownCancelled, false},
		{"stranger cannot cancel booking", policy.ActionCancelBooking, other, ownPending, false},
		{"admin cancels completed booking", policy.ActionCancelBooking, admin, ownCompleted, true},
		{"cancel without resource denied", policy.ActionCancelBooking, customer, nil, false},
		{"customer cannot list users", policy.ActionListUsers, customer, nil, false},
		{"admin lists users", policy.ActionListUsers, admin, nil, true},
		{"customer cannot delete user", policy.ActionDeleteUser, customer, nil, false},
		{"customer cannot manage catalog", policy.ActionManageCatalog, customer, nil, false},
		{"admin manages catalog", policy.ActionManageCatalog, admin, nil, true},
		{"customer submits ticket", policy.ActionSubmitTicket, customer, nil, true},
		{"customer cannot list all tickets", policy.ActionListAllTickets, customer, nil, false},
		{"customer cannot update ticket", policy.ActionUpdateTicket, customer, nil, false},
		{"customer cannot view stats", policy.ActionViewStats, customer, nil, false},
		{"admin views stats", policy.ActionViewStats, admin, nil, true},
		{"zero id actor denied", policy.ActionUpload, &model.Actor{Role: constant.RoleAdmin}, nil, false},
		{"unknown action denied", policy.Action("booking:teleport"), admin, nil, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Allow(tt.action, tt.actor, tt.res))
		})
	}
}

func TestAuthorize(t *testing.T) {
	err := policy.Authorize(policy.ActionViewStats, nil, nil)
	assert.True(t, cerr.Is(err, constant.ErrUnauthorize))

	err = policy.Authorize(policy.ActionViewStats, customer, nil)
	assert.True(t, cerr.Is(err, constant.ErrForbidden))

	assert.NoError(t, policy.Authorize(policy.ActionViewStats, admin, nil))
}
