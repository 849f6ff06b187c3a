package http

import (
	"strings"
	"time"

	"tracker-api/internal/model"
	"tracker-api/internal/reading"
	"tracker-api/pkg/paginator"
	"tracker-api/pkg/response"
)

const deviceKeyHeader = "X-Device-Key"

// parseTime accepts RFC 3339 or a bare date. A bare upper bound covers the
// whole day.
func parseTime(s string, upper bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, errInvalidTime
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

type ingestReq struct {
	DeviceID     string     `json:"device_id" binding:"required"`
	DeviceType   string     `json:"device_type" binding:"required"`
	TemperatureC *float64   `json:"temperature_c" binding:"required"`
	Humidity     *float64   `json:"humidity"`
	RecordedAt   *time.Time `json:"recorded_at"`
}

func (r ingestReq) toInput(key string) reading.IngestInput {
	return reading.IngestInput{
		DeviceKey:    key,
		DeviceID:     r.DeviceID,
		DeviceType:   model.DeviceType(strings.ToLower(strings.TrimSpace(r.DeviceType))),
		TemperatureC: *r.TemperatureC,
		Humidity:     r.Humidity,
		RecordedAt:   r.RecordedAt,
	}
}

type filterReq struct {
	DeviceID   string `form:"device_id"`
	DeviceType string `form:"device_type"`
	From       string `form:"from"`
	To         string `form:"to"`
}

func (r filterReq) toFilter() (reading.Filter, error) {
	from, err := parseTime(r.From, false)
	if err != nil {
		return reading.Filter{}, err
	}
	to, err := parseTime(r.To, true)
	if err != nil {
		return reading.Filter{}, err
	}
	return reading.Filter{
		DeviceID:   r.DeviceID,
		DeviceType: model.DeviceType(strings.ToLower(strings.TrimSpace(r.DeviceType))),
		From:       from,
		To:         to,
	}, nil
}

type getReq struct {
	paginator.PaginateQuery
	filterReq
}

func (r getReq) toInput() (reading.GetInput, error) {
	f, err := r.toFilter()
	if err != nil {
		return reading.GetInput{}, err
	}
	pq := r.PaginateQuery
	pq.Adjust()
	return reading.GetInput{Filter: f, PaginateQuery: pq}, nil
}

type readingResp struct {
	ID           string            `json:"id"`
	DeviceID     string            `json:"device_id"`
	DeviceType   string            `json:"device_type"`
	TemperatureC float64           `json:"temperature_c"`
	Humidity     *float64          `json:"humidity,omitempty"`
	RecordedAt   response.DateTime `json:"recorded_at"`
}

func newReadingResp(r model.Reading) readingResp {
	return readingResp{
		ID:           r.ID,
		DeviceID:     r.DeviceID,
		DeviceType:   string(r.DeviceType),
		TemperatureC: r.TemperatureC,
		Humidity:     r.Humidity,
		RecordedAt:   response.DateTime(r.RecordedAt),
	}
}

type getResp struct {
	Items []readingResp               `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func newGetResp(o reading.GetReadingOutput) getResp {
	items := make([]readingResp, 0, len(o.Readings))
	for _, r := range o.Readings {
		items = append(items, newReadingResp(r))
	}
	return getResp{Items: items, Meta: o.Paginator.ToResponse()}
}

type summaryResp struct {
	DeviceID   string            `json:"device_id"`
	DeviceType string            `json:"device_type"`
	Count      int64             `json:"count"`
	MinC       float64           `json:"min_c"`
	MaxC       float64           `json:"max_c"`
	AvgC       float64           `json:"avg_c"`
	FirstAt    response.DateTime `json:"first_at"`
	LastAt     response.DateTime `json:"last_at"`
}

func newSummaryResp(ss []model.ReadingSummary) []summaryResp {
	res := make([]summaryResp, 0, len(ss))
	for _, s := range ss {
		res = append(res, summaryResp{
			DeviceID:   s.DeviceID,
			DeviceType: string(s.DeviceType),
			Count:      s.Count,
			MinC:       s.MinC,
			MaxC:       s.MaxC,
			AvgC:       s.AvgC,
			FirstAt:    response.DateTime(s.FirstAt),
			LastAt:     response.DateTime(s.LastAt),
		})
	}
	return res
}

type ticketResp struct {
	Ticket    string            `json:"ticket"`
	ExpiresAt response.DateTime `json:"expires_at"`
}
