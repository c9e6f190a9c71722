package constant

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusResolved   TicketStatus = "Resolved"
	TicketStatusClosed     TicketStatus = "Closed"
)

var ValidTicketStatuses = map[TicketStatus]bool{
	TicketStatusOpen:       true,
	TicketStatusInProgress: true,
	TicketStatusResolved:   true,
	TicketStatusClosed:     true,
}
