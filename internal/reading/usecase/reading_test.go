package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tracker-api/internal/model"
	"tracker-api/internal/reading"
	"tracker-api/internal/reading/repository"
	"tracker-api/pkg/encrypter"
	"tracker-api/pkg/log"
	"tracker-api/pkg/paginator"
	"tracker-api/pkg/permission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.Reading, paginator.Paginator, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]model.Reading), args.Get(1).(paginator.Paginator), args.Error(2)
}

func (m *mockRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Reading, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]model.Reading), args.Error(1)
}

func (m *mockRepository) Summary(ctx context.Context, f repository.Filter) ([]model.ReadingSummary, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]model.ReadingSummary), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Reading, error) {
	return opts.Reading, m.Called(ctx, opts).Error(0)
}

type mockBroker struct {
	mock.Mock
}

func (m *mockBroker) Publish(ctx context.Context, r model.Reading) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockBroker) Subscribe(ctx context.Context, deviceID string) (reading.Stream, error) {
	args := m.Called(ctx, deviceID)
	if s, ok := args.Get(0).(reading.Stream); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

const deviceKey = "device-secret"

var (
	viewer = model.Scope{UserID: "u1", Username: "ana", RawRole: "supervisor", Role: permission.RoleSupervisor}
	now    = time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
)

type fixture struct {
	uc     *usecase
	repo   *mockRepository
	broker *mockBroker
	enc    encrypter.Encrypter
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	enc, err := encrypter.New("0123456789abcdef")
	require.NoError(t, err)

	repo, broker := &mockRepository{}, &mockBroker{}
	uc := New(log.NewNop(), repo, broker, enc, reading.Config{DeviceKey: deviceKey, TicketTTL: time.Minute}).(*usecase)
	uc.clock = func() time.Time { return now }
	return fixture{uc: uc, repo: repo, broker: broker, enc: enc}
}

func TestIngest_Validation(t *testing.T) {
	ctx := context.Background()
	hum := 120.0

	tests := []struct {
		name    string
		input   reading.IngestInput
		wantErr error
	}{
		{name: "missing key", input: reading.IngestInput{DeviceID: "esp-01", DeviceType: model.DeviceTypeESP32}, wantErr: reading.ErrInvalidDeviceKey},
		{name: "wrong key", input: reading.IngestInput{DeviceKey: "guess", DeviceID: "esp-01", DeviceType: model.DeviceTypeESP32}, wantErr: reading.ErrInvalidDeviceKey},
		{name: "blank device", input: reading.IngestInput{DeviceKey: deviceKey, DeviceID: "  ", DeviceType: model.DeviceTypeESP32}, wantErr: reading.ErrDeviceIDRequired},
		{name: "unknown board", input: reading.IngestInput{DeviceKey: deviceKey, DeviceID: "a1", DeviceType: "arduino"}, wantErr: reading.ErrInvalidDeviceType},
		{name: "too hot", input: reading.IngestInput{DeviceKey: deviceKey, DeviceID: "a1", DeviceType: model.DeviceTypeESP32, TemperatureC: 300}, wantErr: reading.ErrInvalidTemperature},
		{name: "humidity", input: reading.IngestInput{DeviceKey: deviceKey, DeviceID: "a1", DeviceType: model.DeviceTypeRaspberryPi, Humidity: &hum}, wantErr: reading.ErrInvalidHumidity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.uc.Ingest(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestIngest_StoresThenPublishes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.repo.On("Create", ctx, mock.MatchedBy(func(o repository.CreateOptions) bool {
		return o.Reading.DeviceID == "esp-01" && o.Reading.RecordedAt.Equal(now) && o.Reading.ID != ""
	})).Return(nil)
	f.broker.On("Publish", ctx, mock.Anything).Return(errors.New("redis down"))

	r, err := f.uc.Ingest(ctx, reading.IngestInput{
		DeviceKey:    deviceKey,
		DeviceID:     " esp-01 ",
		DeviceType:   model.DeviceTypeESP32,
		TemperatureC: 22.4,
	})
	require.NoError(t, err)
	assert.Equal(t, "esp-01", r.DeviceID)
	f.repo.AssertExpectations(t)
	f.broker.AssertExpectations(t)
}

func TestIngest_KeepsDeviceTime(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	at := time.Date(2025, 7, 9, 8, 30, 0, 0, time.FixedZone("BRT", -3*3600))

	f.repo.On("Create", ctx, mock.Anything).Return(nil)
	f.broker.On("Publish", ctx, mock.Anything).Return(nil)

	r, err := f.uc.Ingest(ctx, reading.IngestInput{
		DeviceKey: deviceKey, DeviceID: "pi-01", DeviceType: model.DeviceTypeRaspberryPi, TemperatureC: -3, RecordedAt: &at,
	})
	require.NoError(t, err)
	assert.True(t, r.RecordedAt.Equal(at))
	assert.Equal(t, time.UTC, r.RecordedAt.Location())
}

func TestGet_InvalidRange(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Get(context.Background(), viewer, reading.GetInput{Filter: reading.Filter{From: now, To: now.Add(-time.Hour)}})
	assert.ErrorIs(t, err, reading.ErrInvalidRange)
}

func TestExport_CSV(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	hum := 55.5

	f.repo.On("List", ctx, repository.ListOptions{Filter: repository.Filter{DeviceID: "esp-01"}, Limit: exportLimit}).
		Return([]model.Reading{
			{ID: "r1", DeviceID: "esp-01", DeviceType: model.DeviceTypeESP32, TemperatureC: 21.25, Humidity: &hum, RecordedAt: now},
			{ID: "r2", DeviceID: "esp-01", DeviceType: model.DeviceTypeESP32, TemperatureC: -4, RecordedAt: now},
		}, nil)

	var buf bytes.Buffer
	require.NoError(t, f.uc.Export(ctx, viewer, reading.Filter{DeviceID: "esp-01"}, &buf))
	assert.Equal(t,
		"id,device_id,device_type,temperature_c,humidity,recorded_at\n"+
			"r1,esp-01,esp32,21.25,55.5,2025-07-10T12:00:00Z\n"+
			"r2,esp-01,esp32,-4,,2025-07-10T12:00:00Z\n",
		buf.String())
}

func TestTicket_SealsScope(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Ticket(context.Background(), viewer)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Minute), out.ExpiresAt)

	raw, err := f.enc.OpenTicket(out.Ticket)
	require.NoError(t, err)
	var sc model.Scope
	require.NoError(t, json.Unmarshal([]byte(raw), &sc))
	assert.Equal(t, "u1", sc.UserID)
	assert.Equal(t, "supervisor", sc.RawRole)
}

func TestSubscribe_RequiresDevice(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Subscribe(context.Background(), viewer, " ")
	assert.ErrorIs(t, err, reading.ErrDeviceIDRequired)
	f.broker.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything)
}
