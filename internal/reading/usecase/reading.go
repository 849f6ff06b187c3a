package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"tracker-api/internal/model"
	"tracker-api/internal/reading"
	"tracker-api/internal/reading/repository"
	postgrePkg "tracker-api/pkg/postgre"
)

// Ingest stores a device sample and then publishes it to live subscribers.
// A publish failure is logged; the stored reading is still returned.
func (uc *usecase) Ingest(ctx context.Context, ip reading.IngestInput) (model.Reading, error) {
	if !uc.validDeviceKey(ip.DeviceKey) {
		return model.Reading{}, reading.ErrInvalidDeviceKey
	}
	if err := validateIngest(ip); err != nil {
		return model.Reading{}, err
	}

	recordedAt := uc.clock().UTC()
	if ip.RecordedAt != nil && !ip.RecordedAt.IsZero() {
		recordedAt = ip.RecordedAt.UTC()
	}

	r, err := uc.repo.Create(ctx, repository.CreateOptions{Reading: model.Reading{
		ID:           postgrePkg.NewUUID(),
		DeviceID:     strings.TrimSpace(ip.DeviceID),
		DeviceType:   ip.DeviceType,
		TemperatureC: ip.TemperatureC,
		Humidity:     ip.Humidity,
		RecordedAt:   recordedAt,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.reading.usecase.Ingest.Create: %v", err)
		return model.Reading{}, err
	}

	if err := uc.broker.Publish(ctx, r); err != nil {
		uc.l.Warnf(ctx, "internal.reading.usecase.Ingest.Publish: %v", err)
	}

	return r, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip reading.GetInput) (reading.GetReadingOutput, error) {
	f, err := toRepoFilter(ip.Filter)
	if err != nil {
		return reading.GetReadingOutput{}, err
	}

	rs, pag, err := uc.repo.Get(ctx, repository.GetOptions{Filter: f, PaginateQuery: ip.PaginateQuery})
	if err != nil {
		uc.l.Errorf(ctx, "internal.reading.usecase.Get: %v", err)
		return reading.GetReadingOutput{}, err
	}

	return reading.GetReadingOutput{Readings: rs, Paginator: pag}, nil
}

func (uc *usecase) Summary(ctx context.Context, sc model.Scope, f reading.Filter) ([]model.ReadingSummary, error) {
	rf, err := toRepoFilter(f)
	if err != nil {
		return nil, err
	}

	ss, err := uc.repo.Summary(ctx, rf)
	if err != nil {
		uc.l.Errorf(ctx, "internal.reading.usecase.Summary: %v", err)
		return nil, err
	}

	return ss, nil
}

// Ticket seals the caller's scope for a short-lived websocket handshake.
func (uc *usecase) Ticket(ctx context.Context, sc model.Scope) (reading.TicketOutput, error) {
	raw, err := json.Marshal(sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.reading.usecase.Ticket.Marshal: %v", err)
		return reading.TicketOutput{}, err
	}

	ticket, err := uc.enc.SealTicket(string(raw), uc.cfg.TicketTTL)
	if err != nil {
		uc.l.Errorf(ctx, "internal.reading.usecase.Ticket.SealTicket: %v", err)
		return reading.TicketOutput{}, err
	}

	return reading.TicketOutput{Ticket: ticket, ExpiresAt: uc.clock().Add(uc.cfg.TicketTTL)}, nil
}

func (uc *usecase) Subscribe(ctx context.Context, sc model.Scope, deviceID string) (reading.Stream, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" || len(deviceID) > reading.MaxDeviceIDLen {
		return nil, reading.ErrDeviceIDRequired
	}

	s, err := uc.broker.Subscribe(ctx, deviceID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.reading.usecase.Subscribe: %v", err)
		return nil, err
	}

	uc.l.Infof(ctx, "internal.reading.usecase.Subscribe: user %s streaming %s", sc.UserID, deviceID)
	return s, nil
}
