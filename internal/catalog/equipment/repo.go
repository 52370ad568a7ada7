package equipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitstack/catalog/internal/catalog/rules"
	"github.com/fitstack/catalog/internal/telemetry/tracing"
	"github.com/fitstack/catalog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const entityName = "equipment"

// Equipment names are compared case-insensitively, backed by a partial
// unique index on LOWER(name) for active rows.

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, e Equipment) (_ *Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO equipment (name, description, media_url, category, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id;`,
		e.Name, e.Description, e.MediaURL, e.Category, e.Status,
	).Scan(&e.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, &rules.NameConflictError{Entity: entityName, Name: e.Name}
		}
		return nil, fmt.Errorf("insert equipment: %w", err)
	}

	span.SetAttributes(attribute.Int("equipment.id", e.ID))
	return &e, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var e Equipment
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(media_url, ''),
				category, status, score, total_ratings
			FROM equipment
			WHERE id = $1 AND is_deleted = FALSE;`,
		id,
	).Scan(&e.ID, &e.Name, &e.Description, &e.MediaURL, &e.Category, &e.Status, &e.Score, &e.TotalRatings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}

	return &e, nil
}

func (r *Repo) List(ctx context.Context, pagination rules.Pagination) (_ []Equipment, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", pagination.Page))
	span.SetAttributes(attribute.Int("limit", pagination.Limit))

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM equipment WHERE is_deleted = FALSE;`,
	).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count equipment: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(media_url, ''),
				category, status, score, total_ratings
			FROM equipment
			WHERE is_deleted = FALSE
			ORDER BY id
			LIMIT $1 OFFSET $2;`,
		pagination.Limit, pagination.Offset(),
	)
	if err != nil {
		return nil, -1, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	equipmentList := make([]Equipment, 0)
	for rows.Next() {
		var e Equipment
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.MediaURL,
			&e.Category, &e.Status, &e.Score, &e.TotalRatings,
		); err != nil {
			return nil, -1, fmt.Errorf("scan equipment: %w", err)
		}
		equipmentList = append(equipmentList, e)
	}
	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	return equipmentList, total, nil
}

func (r *Repo) Update(ctx context.Context, e *Equipment) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", e.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE equipment
			SET name = $2, description = $3, media_url = $4, category = $5, status = $6, updated_at = now()
			WHERE id = $1 AND is_deleted = FALSE;`,
		e.ID, e.Name, e.Description, e.MediaURL, e.Category, e.Status,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return &rules.NameConflictError{Entity: entityName, Name: e.Name}
		}
		return fmt.Errorf("update equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &rules.NotFoundError{Entity: entityName, ID: e.ID}
	}

	return nil
}

// Rate overwrites the stored aggregate with the caller's values in one
// statement, so concurrent raters cannot interleave a read-modify-write.
func (r *Repo) Rate(ctx context.Context, id int, rating rules.Rating) (_ *rules.RateResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.rate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var resp rules.RateResponse
	err = r.db.QueryRow(
		ctx,
		`UPDATE equipment
			SET score = $2, total_ratings = $3, updated_at = now()
			WHERE id = $1 AND is_deleted = FALSE
		RETURNING id, name, score, total_ratings;`,
		id, rating.Score, rating.TotalRatings,
	).Scan(&resp.ID, &resp.Name, &resp.Score, &resp.TotalRatings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("rate equipment: %w", err)
	}

	return &resp, nil
}

// SoftDelete flags the equipment deleted and renames it, guarded by the
// active exercises still requiring it. Guard and mutation share a
// transaction.
func (r *Repo) SoftDelete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.softdelete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("rollback: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var name string
	err = tx.QueryRow(
		ctx,
		`SELECT name FROM equipment WHERE id = $1 AND is_deleted = FALSE FOR UPDATE;`,
		id,
	).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return fmt.Errorf("lock equipment: %w", err)
	}

	dependentIDs, err := activeExerciseIDs(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("check equipment dependencies: %w", err)
	}
	if len(dependentIDs) > 0 {
		return &rules.DependencyConflictError{
			Entity:       entityName,
			Dependent:    "exercise",
			DependentIDs: dependentIDs,
		}
	}

	_, err = tx.Exec(
		ctx,
		`UPDATE equipment
			SET is_deleted = TRUE, name = $2, updated_at = now()
			WHERE id = $1;`,
		id, rules.DeletedName(name, id),
	)
	if err != nil {
		return fmt.Errorf("soft delete equipment: %w", err)
	}

	return nil
}

func activeExerciseIDs(ctx context.Context, tx pgx.Tx, equipmentID int) ([]int, error) {
	rows, err := tx.Query(
		ctx,
		`SELECT e.id
			FROM exercise e
			JOIN exercise_equipment ee ON ee.exercise_id = e.id
			WHERE ee.equipment_id = $1 AND e.is_deleted = FALSE
			ORDER BY e.id;`,
		equipmentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repo) ActiveNameExists(ctx context.Context, name string, excludeID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.activenameexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM equipment
			WHERE LOWER(name) = LOWER($1) AND is_deleted = FALSE AND id <> $2
		);`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("equipment name lookup: %w", err)
	}
	return exists, nil
}

// FilterActiveIDs returns the subset of ids belonging to active equipment.
// Used by the exercise service to validate references.
func (r *Repo) FilterActiveIDs(ctx context.Context, ids []int) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.filteractiveids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id FROM equipment WHERE id = ANY($1) AND is_deleted = FALSE;`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("filter equipment ids: %w", err)
	}
	defer rows.Close()

	var active []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		active = append(active, id)
	}
	return active, rows.Err()
}
