package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"tracker-api/internal/model"
	"tracker-api/internal/reading"
	"tracker-api/internal/reading/repository"
)

var exportHeader = []string{"id", "device_id", "device_type", "temperature_c", "humidity", "recorded_at"}

func (uc *usecase) Export(ctx context.Context, sc model.Scope, f reading.Filter, w io.Writer) error {
	rf, err := toRepoFilter(f)
	if err != nil {
		return err
	}

	rs, err := uc.repo.List(ctx, repository.ListOptions{Filter: rf, Limit: exportLimit})
	if err != nil {
		uc.l.Errorf(ctx, "internal.reading.usecase.Export.List: %v", err)
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range rs {
		if err := cw.Write(toRecord(r)); err != nil {
			uc.l.Errorf(ctx, "internal.reading.usecase.Export.Write: %v", err)
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func toRecord(r model.Reading) []string {
	rec := []string{
		r.ID,
		r.DeviceID,
		string(r.DeviceType),
		strconv.FormatFloat(r.TemperatureC, 'f', -1, 64),
		"",
		r.RecordedAt.UTC().Format(time.RFC3339),
	}
	if r.Humidity != nil {
		rec[4] = strconv.FormatFloat(*r.Humidity, 'f', -1, 64)
	}
	return rec
}
