package trainingplans

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitstack/catalog/internal/catalog/rules"
	"github.com/fitstack/catalog/internal/telemetry/tracing"
	"github.com/fitstack/catalog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const entityName = "training plan"

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add inserts the plan and its workout connections in one transaction, then
// returns it expanded.
func (r *Repo) Add(ctx context.Context, tp TrainingPlan, workoutIDs []int) (_ *TrainingPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingplans.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
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

	err = tx.QueryRow(
		ctx,
		`INSERT INTO training_plan
			(name, description, level, start_date, end_date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id;`,
		tp.Name, tp.Description, tp.Level, tp.StartDate, tp.EndDate,
	).Scan(&tp.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, &rules.NameConflictError{Entity: entityName, Name: tp.Name}
		}
		return nil, fmt.Errorf("insert training plan: %w", err)
	}

	if err = connectWorkouts(ctx, tx, tp.ID, workoutIDs); err != nil {
		return nil, err
	}
	if tp.Workouts, err = expandWorkouts(ctx, tx, tp.ID); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("trainingplan.id", tp.ID))
	return &tp, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *TrainingPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingplans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var tp TrainingPlan
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, COALESCE(description, ''), level, start_date, end_date, score, total_ratings
			FROM training_plan
			WHERE id = $1 AND is_deleted = FALSE;`,
		id,
	).Scan(&tp.ID, &tp.Name, &tp.Description, &tp.Level, &tp.StartDate, &tp.EndDate, &tp.Score, &tp.TotalRatings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get training plan: %w", err)
	}

	if tp.Workouts, err = expandWorkouts(ctx, r.db, tp.ID); err != nil {
		return nil, err
	}
	return &tp, nil
}

// GetByIDs fetches the requested active plans and reports the exact set of
// missing ids when any are absent.
func (r *Repo) GetByIDs(ctx context.Context, ids []int) (_ []TrainingPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingplans.getbyids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ids.count", len(ids)))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, COALESCE(description, ''), level, start_date, end_date, score, total_ratings
			FROM training_plan
			WHERE id = ANY($1) AND is_deleted = FALSE
			ORDER BY id;`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("get training plans by ids: %w", err)
	}
	defer rows.Close()

	plans := make([]TrainingPlan, 0, len(ids))
	for rows.Next() {
		var tp TrainingPlan
		if err := rows.Scan(
			&tp.ID, &tp.Name, &tp.Description, &tp.Level,
			&tp.StartDate, &tp.EndDate, &tp.Score, &tp.TotalRatings,
		); err != nil {
			return nil, fmt.Errorf("scan training plan: %w", err)
		}
		plans = append(plans, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	foundIDs := make([]int, 0, len(plans))
	for _, tp := range plans {
		foundIDs = append(foundIDs, tp.ID)
	}
	if missing := rules.MissingIDs(ids, foundIDs); len(missing) > 0 {
		return nil, &rules.NotFoundError{Entity: entityName, IDs: missing}
	}

	for i := range plans {
		if plans[i].Workouts, err = expandWorkouts(ctx, r.db, plans[i].ID); err != nil {
			return nil, err
		}
	}
	return plans, nil
}

func (r *Repo) List(ctx context.Context, pagination rules.Pagination) (_ []TrainingPlan, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingplans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", pagination.Page))
	span.SetAttributes(attribute.Int("limit", pagination.Limit))

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM training_plan WHERE is_deleted = FALSE;`,
	).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count training plans: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, COALESCE(description, ''), level, start_date, end_date, score, total_ratings
			FROM training_plan
			WHERE is_deleted = FALSE
			ORDER BY id
			LIMIT $1 OFFSET $2;`,
		pagination.Limit, pagination.Offset(),
	)
	if err != nil {
		return nil, -1, fmt.Errorf("list training plans: %w", err)
	}
	defer rows.Close()

	plans := make([]TrainingPlan, 0)
	for rows.Next() {
		var tp TrainingPlan
		if err := rows.Scan(
			&tp.ID, &tp.Name, &tp.Description, &tp.Level,
			&tp.StartDate, &tp.EndDate, &tp.Score, &tp.TotalRatings,
		); err != nil {
			return nil, -1, fmt.Errorf("scan training plan: %w", err)
		}
		plans = append(plans, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	for i := range plans {
		if plans[i].Workouts, err = expandWorkouts(ctx, r.db, plans[i].ID); err != nil {
			return nil, -1, err
		}
	}

	return plans, total, nil
}

// Update writes the patched row and, when workoutIDs is non-nil, replaces the
// workout set wholesale in the same transaction.
func (r *Repo) Update(ctx context.Context, tp *TrainingPlan, workoutIDs *[]int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingplans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", tp.ID))

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

	tag, err := tx.Exec(
		ctx,
		`UPDATE training_plan
			SET name = $2, description = $3, level = $4, start_date = $5, end_date = $6, updated_at = now()
			WHERE id = $1 AND is_deleted = FALSE;`,
		tp.ID, tp.Name, tp.Description, tp.Level, tp.StartDate, tp.EndDate,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return &rules.NameConflictError{Entity: entityName, Name: tp.Name}
		}
		return fmt.Errorf("update training plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &rules.NotFoundError{Entity: entityName, ID: tp.ID}
	}

	if workoutIDs != nil {
		if _, err = tx.Exec(
			ctx, `DELETE FROM training_plan_workout WHERE training_plan_id = $1;`, tp.ID,
		); err != nil {
			return fmt.Errorf("clear training plan workouts: %w", err)
		}
		if err = connectWorkouts(ctx, tx, tp.ID, *workoutIDs); err != nil {
			return err
		}
	}

	if tp.Workouts, err = expandWorkouts(ctx, tx, tp.ID); err != nil {
		return err
	}
	return nil
}

func (r *Repo) Rate(ctx context.Context, id int, rating rules.Rating) (_ *rules.RateResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingplans.rate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var resp rules.RateResponse
	err = r.db.QueryRow(
		ctx,
		`UPDATE training_plan
			SET score = $2, total_ratings = $3, updated_at = now()
			WHERE id = $1 AND is_deleted = FALSE
		RETURNING id, name, score, total_ratings;`,
		id, rating.Score, rating.TotalRatings,
	).Scan(&resp.ID, &resp.Name, &resp.Score, &resp.TotalRatings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("rate training plan: %w", err)
	}

	return &resp, nil
}

// SoftDelete flags the plan deleted and renames it. Nothing depends on a
// training plan, so there is no guard.
func (r *Repo) SoftDelete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingplans.softdelete")
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
		`SELECT name FROM training_plan WHERE id = $1 AND is_deleted = FALSE FOR UPDATE;`,
		id,
	).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return fmt.Errorf("lock training plan: %w", err)
	}

	_, err = tx.Exec(
		ctx,
		`UPDATE training_plan
			SET is_deleted = TRUE, name = $2, updated_at = now()
			WHERE id = $1;`,
		id, rules.DeletedName(name, id),
	)
	if err != nil {
		return fmt.Errorf("soft delete training plan: %w", err)
	}

	return nil
}

func (r *Repo) ActiveNameExists(ctx context.Context, name string, excludeID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingplans.activenameexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM training_plan
			WHERE name = $1 AND is_deleted = FALSE AND id <> $2
		);`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("training plan name lookup: %w", err)
	}
	return exists, nil
}

// querier is the subset of pgx shared by the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func connectWorkouts(ctx context.Context, q querier, planID int, workoutIDs []int) error {
	for _, wID := range workoutIDs {
		if _, err := q.Exec(
			ctx,
			`INSERT INTO training_plan_workout (training_plan_id, workout_id) VALUES ($1, $2);`,
			planID, wID,
		); err != nil {
			return fmt.Errorf("connect training plan workout %d: %w", wID, err)
		}
	}
	return nil
}

func expandWorkouts(ctx context.Context, q querier, planID int) ([]WorkoutRef, error) {
	rows, err := q.Query(
		ctx,
		`SELECT w.id, w.name, COALESCE(w.description, '')
			FROM workout w
			JOIN training_plan_workout tpw ON tpw.workout_id = w.id
			WHERE tpw.training_plan_id = $1
			ORDER BY w.id;`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("expand training plan workouts: %w", err)
	}
	defer rows.Close()

	refs := make([]WorkoutRef, 0)
	for rows.Next() {
		var ref WorkoutRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Description); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
