package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	TierFull       = "full"
	TierConcession = "concession"
)

type TicketTier struct {
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Tickets maps a tier name (full, concession, ...) to its allocation.
// It is persisted as JSON text in events.tickets.
type Tickets map[string]TicketTier

// DefaultTickets is what an event shows before the organiser sets any tiers.
func DefaultTickets() Tickets {
	return Tickets{
		TierFull:       {Quantity: 0, Price: decimal.Zero},
		TierConcession: {Quantity: 0, Price: decimal.Zero},
	}
}

// Tier returns the named tier, or a zero tier when it is absent.
func (t Tickets) Tier(name string) TicketTier {
	if tier, ok := t[name]; ok {
		return tier
	}
	return TicketTier{Price: decimal.Zero}
}

// Value allows Tickets to be written into SQLite
func (t Tickets) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(map[string]TicketTier(t))
	if err != nil {
		return nil, fmt.Errorf("encode tickets: %w", err)
	}
	return string(b), nil
}

// Scan reads Tickets back from SQLite. Missing, empty and malformed values all
// decode to DefaultTickets; a bad column never fails the query.
func (t *Tickets) Scan(src interface{}) error {
	var raw []byte

	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		*t = DefaultTickets()
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Tickets", src)
	}

	*t = DecodeTickets(raw)
	return nil
}

func DecodeTickets(raw []byte) Tickets {
	if len(raw) == 0 {
		return DefaultTickets()
	}

	var decoded map[string]TicketTier
	if err := json.Unmarshal(raw, &decoded); err != nil || len(decoded) == 0 {
		return DefaultTickets()
	}
	return Tickets(decoded)
}
