package ticketservice

import "errors"

var (
	// ErrTicketAlreadyOpen marks a creation attempt while the opener still
	// has an open ticket in the guild.
	ErrTicketAlreadyOpen = errors.New("opener already has an open ticket")
	// ErrTicketNotOpen marks a transition on a missing or closed ticket.
	ErrTicketNotOpen = errors.New("ticket is not open")
	// ErrInvalidTicketType marks an unknown ticket type.
	ErrInvalidTicketType = errors.New("invalid ticket type")
)
