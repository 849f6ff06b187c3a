package postgre

import (
	"context"

	"tracker-api/internal/model"
	"tracker-api/internal/reading/repository"
	"tracker-api/pkg/paginator"
	postgrePkg "tracker-api/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.Reading, paginator.Paginator, error) {
	opts.PaginateQuery.Adjust()

	var total int64
	if err := postgrePkg.NewQuery(append([]qm.QueryMod{qm.Select("COUNT(*)")}, buildFilterQuery(opts.Filter)...)...).
		QueryRowContext(ctx, r.db).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.reading.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	var rows []readingRow
	if err := postgrePkg.NewQuery(buildGetQuery(opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.reading.repository.postgre.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return toModels(rows), paginator.New(opts.PaginateQuery, total, len(rows)), nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Reading, error) {
	var rows []readingRow
	if err := postgrePkg.NewQuery(buildListQuery(opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.reading.repository.postgre.List.Bind: %v", err)
		return nil, err
	}

	return toModels(rows), nil
}

func (r *implRepository) Summary(ctx context.Context, f repository.Filter) ([]model.ReadingSummary, error) {
	var rows []summaryRow
	if err := postgrePkg.NewQuery(buildSummaryQuery(f)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.reading.repository.postgre.Summary.Bind: %v", err)
		return nil, err
	}

	res := make([]model.ReadingSummary, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}
	return res, nil
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Reading, error) {
	rd := opts.Reading

	var row readingRow
	err := queries.Raw(
		`INSERT INTO readings (id, device_id, device_type, temperature_c, humidity, recorded_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+readingCols,
		rd.ID, rd.DeviceID, string(rd.DeviceType), rd.TemperatureC, null.Float64FromPtr(rd.Humidity), rd.RecordedAt, r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.reading.repository.postgre.Create.Insert: %v", err)
		return model.Reading{}, err
	}

	return row.toModel(), nil
}
