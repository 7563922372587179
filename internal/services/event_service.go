package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshua-takyi/stretch/internal/clock"
	"github.com/joshua-takyi/stretch/internal/models"
	"github.com/shopspring/decimal"
)

const msgEventFieldsRequired = "All fields required"

type EventService struct {
	eventsRepo models.EventsRepo
	clock      clock.Clock
}

func NewEventService(eventsRepo models.EventsRepo, clk clock.Clock) *EventService {
	return &EventService{
		eventsRepo: eventsRepo,
		clock:      clk,
	}
}

// Dashboard is everything the organiser home page lists.
type Dashboard struct {
	Published []*models.Event
	Drafts    []*models.Event
}

func (es *EventService) Dashboard(ctx context.Context) (*Dashboard, error) {
	published, err := es.eventsRepo.ListEventsByStatus(ctx, models.StatusPublished)
	if err != nil {
		return nil, err
	}

	drafts, err := es.eventsRepo.ListEventsByStatus(ctx, models.StatusDraft)
	if err != nil {
		return nil, err
	}

	return &Dashboard{Published: published, Drafts: drafts}, nil
}

// CreateDraft inserts a placeholder draft for the organiser to fill in.
func (es *EventService) CreateDraft(ctx context.Context) (int64, error) {
	return es.eventsRepo.CreateEvent(ctx, models.PlaceholderTitle, models.PlaceholderDate, es.clock.Now())
}

func (es *EventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	if id <= 0 {
		return nil, fmt.Errorf("get event %d: %w", id, models.ErrEventNotFound)
	}
	return es.eventsRepo.GetEventByID(ctx, id)
}

// UpdateEvent validates the submitted form, rebuilds the ticket tiers from its
// numeric fields and stamps the modification time.
func (es *EventService) UpdateEvent(ctx context.Context, id int64, form models.EventForm) error {
	form.Title = strings.TrimSpace(form.Title)
	form.Description = strings.TrimSpace(form.Description)
	form.Date = strings.TrimSpace(form.Date)

	if err := models.Validate.Struct(form); err != nil {
		return fromValidator(err, msgEventFieldsRequired)
	}

	tickets, err := ticketsFromForm(form)
	if err != nil {
		return err
	}

	return es.eventsRepo.UpdateEvent(ctx, id, models.EventUpdate{
		Title:       form.Title,
		Description: form.Description,
		Date:        form.Date,
		Tickets:     tickets,
		ModifiedAt:  es.clock.Now(),
	})
}

func (es *EventService) PublishEvent(ctx context.Context, id int64) error {
	return es.eventsRepo.PublishEvent(ctx, id, es.clock.Now())
}

func (es *EventService) DeleteEvent(ctx context.Context, id int64) error {
	return es.eventsRepo.DeleteEvent(ctx, id)
}

// PublishedSchedule lists published events for attendees, earliest date first.
func (es *EventService) PublishedSchedule(ctx context.Context) ([]models.EventSummary, error) {
	return es.eventsRepo.ListPublishedSummaries(ctx)
}

func ticketsFromForm(form models.EventForm) (models.Tickets, error) {
	fullQty, err := parseQuantity("fullQuantity", form.FullQuantity)
	if err != nil {
		return nil, err
	}
	fullPrice, err := parsePrice("fullPrice", form.FullPrice)
	if err != nil {
		return nil, err
	}
	concQty, err := parseQuantity("concessionQuantity", form.ConcessionQuantity)
	if err != nil {
		return nil, err
	}
	concPrice, err := parsePrice("concessionPrice", form.ConcessionPrice)
	if err != nil {
		return nil, err
	}

	return models.Tickets{
		models.TierFull:       {Quantity: fullQty, Price: fullPrice},
		models.TierConcession: {Quantity: concQty, Price: concPrice},
	}, nil
}

// parseQuantity treats a blank field as zero and rejects anything that is not
// a whole number >= 0.
func parseQuantity(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, invalid(field, "must be a non-negative whole number")
	}
	return n, nil
}

func parsePrice(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero, invalid(field, "must be a non-negative number")
	}
	return d, nil
}
