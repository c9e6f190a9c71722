package constant

type RepairStatus string

const (
	RepairStatusPending    RepairStatus = "Pending"
	RepairStatusAssigned   RepairStatus = "Assigned"
	RepairStatusInProgress RepairStatus = "In Progress"
	RepairStatusCompleted  RepairStatus = "Completed"
	RepairStatusCancelled  RepairStatus = "Cancelled"
)

var ValidRepairStatuses = map[RepairStatus]bool{
	RepairStatusPending:    true,
	RepairStatusAssigned:   true,
	RepairStatusInProgress: true,
	RepairStatusCompleted:  true,
	RepairStatusCancelled:  true,
}

// IsTerminal reports whether no further transition is expected from s.
func (s RepairStatus) IsTerminal() bool {
	return s == RepairStatusCompleted || s == RepairStatusCancelled
}

// IsActive reports whether s counts as an open repair.
func (s RepairStatus) IsActive() bool {
	return s == RepairStatusPending || s == RepairStatusAssigned || s == RepairStatusInProgress
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

var ValidPaymentStatuses = map[PaymentStatus]bool{
	PaymentStatusPending:  true,
	PaymentStatusPaid:     true,
	PaymentStatusRefunded: true,
}

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "Online"
)

var ValidPaymentMethods = map[PaymentMethod]bool{
	PaymentMethodCOD:    true,
	PaymentMethodOnline: true,
}

type BookingEventType string

const (
	BookingEventCreated   BookingEventType = "created"
	BookingEventUpdated   BookingEventType = "updated"
	BookingEventCancelled BookingEventType = "cancelled"
)
