// Package policy is the single place deciding who may do what. Every
// application operation consults Authorize before touching the store.
package policy

import (
	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	"github.com/muhammadheryan/gadgetfix/utils/errors"
)

type Action string

const (
	ActionViewProfile   Action = "profile:view"
	ActionUpdateProfile Action = "profile:update"

	ActionCreateBooking     Action = "booking:create"
	ActionListOwnBookings   Action = "booking:list-own"
	ActionListAllBookings   Action = "booking:list-all"
	ActionViewBooking       Action = "booking:view"
	ActionTransitionBooking Action = "booking:transition"
	ActionCancelBooking     Action = "booking:cancel"

	ActionListUsers  Action = "user:list"
	ActionUpdateUser Action = "user:update"
	ActionDeleteUser Action = "user:delete"

	ActionListAllServices Action = "catalog:list-all"
	ActionManageCatalog   Action = "catalog:manage"

	ActionSubmitTicket   Action = "ticket:submit"
	ActionListOwnTickets Action = "ticket:list-own"
	ActionListAllTickets Action = "ticket:list-all"
	ActionUpdateTicket   Action = "ticket:update"

	ActionViewStats Action = "stats:view"
	ActionUpload    Action = "upload:create"
)

// Resource carries the attributes of the target that rules may inspect.
// A nil Resource means the action has no specific target.
type Resource struct {
	OwnerID      uint64
	RepairStatus constant.RepairStatus
}

// Rule decides for an authenticated actor; actor is never nil here.
type Rule func(actor *model.Actor, res *Resource) bool

func authenticated(*model.Actor, *Resource) bool { return true }

func adminOnly(actor *model.Actor, _ *Resource) bool { return actor.IsAdmin() }

func ownerOrAdmin(actor *model.Actor, res *Resource) bool {
	if actor.IsAdmin() {
		return true
	}
	return res != nil && res.OwnerID == actor.ID
}

// cancelRule lets an owner cancel only while the order is still open.
func cancelRule(actor *model.Actor, res *Resource) bool {
	if actor.IsAdmin() {
		return true
	}
	return res != nil && res.OwnerID == actor.ID && !res.RepairStatus.IsTerminal()
}

var rules = map[Action]Rule{
	ActionViewProfile:   authenticated,
	ActionUpdateProfile: authenticated,

	ActionCreateBooking:     authenticated,
	ActionListOwnBookings:   authenticated,
	ActionListAllBookings:   adminOnly,
	ActionViewBooking:       ownerOrAdmin,
	ActionTransitionBooking: adminOnly,
	ActionCancelBooking:     cancelRule,

	ActionListUsers:  adminOnly,
	ActionUpdateUser: adminOnly,
	ActionDeleteUser: adminOnly,

	ActionListAllServices: adminOnly,
	ActionManageCatalog:   adminOnly,

	ActionSubmitTicket:   authenticated,
	ActionListOwnTickets: authenticated,
	ActionListAllTickets: adminOnly,
	ActionUpdateTicket:   adminOnly,

	ActionViewStats: adminOnly,
	ActionUpload:    authenticated,
}

// Allow reports whether actor may perform action on res. Anonymous actors
// and unknown actions are always denied.
func Allow(action Action, actor *model.Actor, res *Resource) bool {
	if actor == nil || actor.ID == 0 {
		return false
	}
	rule, ok := rules[action]
	if !ok {
		return false
	}
	return rule(actor, res)
}

// Authorize is Allow mapped onto the error taxonomy: anonymous actors get
// ErrUnauthorize, authenticated ones that fail the rule get ErrForbidden.
func Authorize(action Action, actor *model.Actor, res *Resource) error {
	if actor == nil || actor.ID == 0 {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if !Allow(action, actor, res) {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	return nil
}
