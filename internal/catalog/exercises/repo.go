package exercises

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

const entityName = "exercise"

// Exercise names are compared case-sensitively, unlike equipment and muscle
// groups, backed by a partial unique index on name for active rows.

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add inserts the exercise and its relation rows in one transaction, then
// returns it expanded.
func (r *Repo) Add(ctx context.Context, e Exercise, muscleGroupIDs, equipmentIDs []int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
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
		`INSERT INTO exercise
			(name, description, media_url, recommendation, level, category, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING id;`,
		e.Name, e.Description, e.MediaURL, e.Recommendation, e.Level, e.Category,
	).Scan(&e.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, &rules.NameConflictError{Entity: entityName, Name: e.Name}
		}
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	if err = connectRelations(ctx, tx, e.ID, muscleGroupIDs, equipmentIDs); err != nil {
		return nil, err
	}
	if err = expandRelations(ctx, tx, &e); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercise.id", e.ID))
	return &e, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var e Exercise
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(media_url, ''),
				COALESCE(recommendation, ''), level, category, score, total_ratings
			FROM exercise
			WHERE id = $1 AND is_deleted = FALSE;`,
		id,
	).Scan(
		&e.ID, &e.Name, &e.Description, &e.MediaURL,
		&e.Recommendation, &e.Level, &e.Category, &e.Score, &e.TotalRatings,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	if err = expandRelations(ctx, r.db, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repo) List(ctx context.Context, pagination rules.Pagination) (_ []Exercise, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", pagination.Page))
	span.SetAttributes(attribute.Int("limit", pagination.Limit))

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM exercise WHERE is_deleted = FALSE;`,
	).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count exercises: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(media_url, ''),
				COALESCE(recommendation, ''), level, category, score, total_ratings
			FROM exercise
			WHERE is_deleted = FALSE
			ORDER BY id
			LIMIT $1 OFFSET $2;`,
		pagination.Limit, pagination.Offset(),
	)
	if err != nil {
		return nil, -1, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercisesList := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.MediaURL,
			&e.Recommendation, &e.Level, &e.Category, &e.Score, &e.TotalRatings,
		); err != nil {
			return nil, -1, fmt.Errorf("scan exercise: %w", err)
		}
		exercisesList = append(exercisesList, e)
	}
	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	for i := range exercisesList {
		if err := expandRelations(ctx, r.db, &exercisesList[i]); err != nil {
			return nil, -1, err
		}
	}

	return exercisesList, total, nil
}

// Update writes the patched row and, when a relation id list is non-nil,
// replaces that relation set wholesale in the same transaction.
func (r *Repo) Update(ctx context.Context, e *Exercise, muscleGroupIDs, equipmentIDs *[]int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", e.ID))

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
		`UPDATE exercise
			SET name = $2, description = $3, media_url = $4, recommendation = $5,
				level = $6, category = $7, updated_at = now()
			WHERE id = $1 AND is_deleted = FALSE;`,
		e.ID, e.Name, e.Description, e.MediaURL, e.Recommendation, e.Level, e.Category,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return &rules.NameConflictError{Entity: entityName, Name: e.Name}
		}
		return fmt.Errorf("update exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &rules.NotFoundError{Entity: entityName, ID: e.ID}
	}

	if muscleGroupIDs != nil {
		if _, err = tx.Exec(
			ctx, `DELETE FROM exercise_muscle_group WHERE exercise_id = $1;`, e.ID,
		); err != nil {
			return fmt.Errorf("clear exercise muscle groups: %w", err)
		}
	}
	if equipmentIDs != nil {
		if _, err = tx.Exec(
			ctx, `DELETE FROM exercise_equipment WHERE exercise_id = $1;`, e.ID,
		); err != nil {
			return fmt.Errorf("clear exercise equipment: %w", err)
		}
	}

	var newMuscleGroupIDs, newEquipmentIDs []int
	if muscleGroupIDs != nil {
		newMuscleGroupIDs = *muscleGroupIDs
	}
	if equipmentIDs != nil {
		newEquipmentIDs = *equipmentIDs
	}
	if err = connectRelations(ctx, tx, e.ID, newMuscleGroupIDs, newEquipmentIDs); err != nil {
		return err
	}

	if err = expandRelations(ctx, tx, e); err != nil {
		return err
	}
	return nil
}

func (r *Repo) Rate(ctx context.Context, id int, rating rules.Rating) (_ *rules.RateResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.rate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var resp rules.RateResponse
	err = r.db.QueryRow(
		ctx,
		`UPDATE exercise
			SET score = $2, total_ratings = $3, updated_at = now()
			WHERE id = $1 AND is_deleted = FALSE
		RETURNING id, name, score, total_ratings;`,
		id, rating.Score, rating.TotalRatings,
	).Scan(&resp.ID, &resp.Name, &resp.Score, &resp.TotalRatings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("rate exercise: %w", err)
	}

	return &resp, nil
}

// SoftDelete flags the exercise deleted and renames it, guarded by active
// workout rows still using it.
func (r *Repo) SoftDelete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.softdelete")
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
		`SELECT name FROM exercise WHERE id = $1 AND is_deleted = FALSE FOR UPDATE;`,
		id,
	).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return fmt.Errorf("lock exercise: %w", err)
	}

	dependentIDs, err := activeWorkoutIDs(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("check exercise dependencies: %w", err)
	}
	if len(dependentIDs) > 0 {
		return &rules.DependencyConflictError{
			Entity:       entityName,
			Dependent:    "workout",
			DependentIDs: dependentIDs,
		}
	}

	_, err = tx.Exec(
		ctx,
		`UPDATE exercise
			SET is_deleted = TRUE, name = $2, updated_at = now()
			WHERE id = $1;`,
		id, rules.DeletedName(name, id),
	)
	if err != nil {
		return fmt.Errorf("soft delete exercise: %w", err)
	}

	return nil
}

func activeWorkoutIDs(ctx context.Context, tx pgx.Tx, exerciseID int) ([]int, error) {
	rows, err := tx.Query(
		ctx,
		`SELECT DISTINCT w.id
			FROM workout w
			JOIN exercise_in_workout eiw ON eiw.workout_id = w.id
			WHERE eiw.exercise_id = $1 AND eiw.is_deleted = FALSE AND w.is_deleted = FALSE
			ORDER BY w.id;`,
		exerciseID,
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
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.activenameexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM exercise
			WHERE name = $1 AND is_deleted = FALSE AND id <> $2
		);`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exercise name lookup: %w", err)
	}
	return exists, nil
}

// FilterActiveIDs returns the subset of ids belonging to active exercises.
// Used by the workout service to validate references.
func (r *Repo) FilterActiveIDs(ctx context.Context, ids []int) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.filteractiveids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id FROM exercise WHERE id = ANY($1) AND is_deleted = FALSE;`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("filter exercise ids: %w", err)
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

// querier is the subset of pgx shared by the pool and a transaction, so the
// relation helpers can run inside or outside a tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func connectRelations(ctx context.Context, q querier, exerciseID int, muscleGroupIDs, equipmentIDs []int) error {
	for _, mgID := range muscleGroupIDs {
		if _, err := q.Exec(
			ctx,
			`INSERT INTO exercise_muscle_group (exercise_id, muscle_group_id) VALUES ($1, $2);`,
			exerciseID, mgID,
		); err != nil {
			return fmt.Errorf("connect exercise muscle group %d: %w", mgID, err)
		}
	}
	for _, eqID := range equipmentIDs {
		if _, err := q.Exec(
			ctx,
			`INSERT INTO exercise_equipment (exercise_id, equipment_id) VALUES ($1, $2);`,
			exerciseID, eqID,
		); err != nil {
			return fmt.Errorf("connect exercise equipment %d: %w", eqID, err)
		}
	}
	return nil
}

func expandRelations(ctx context.Context, q querier, e *Exercise) error {
	e.MuscleGroups = make([]MuscleGroupRef, 0)
	e.Equipments = make([]EquipmentRef, 0)

	rows, err := q.Query(
		ctx,
		`SELECT mg.id, mg.name
			FROM muscle_group mg
			JOIN exercise_muscle_group emg ON emg.muscle_group_id = mg.id
			WHERE emg.exercise_id = $1
			ORDER BY mg.id;`,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("expand exercise muscle groups: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ref MuscleGroupRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return err
		}
		e.MuscleGroups = append(e.MuscleGroups, ref)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	eqRows, err := q.Query(
		ctx,
		`SELECT eq.id, eq.name
			FROM equipment eq
			JOIN exercise_equipment ee ON ee.equipment_id = eq.id
			WHERE ee.exercise_id = $1
			ORDER BY eq.id;`,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("expand exercise equipment: %w", err)
	}
	defer eqRows.Close()
	for eqRows.Next() {
		var ref EquipmentRef
		if err := eqRows.Scan(&ref.ID, &ref.Name); err != nil {
			return err
		}
		e.Equipments = append(e.Equipments, ref)
	}
	return eqRows.Err()
}
