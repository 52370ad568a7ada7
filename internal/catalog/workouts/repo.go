package workouts

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

const entityName = "workout"

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add inserts the workout and its exercise rows in one transaction, then
// returns it expanded.
func (r *Repo) Add(ctx context.Context, w Workout, exerciseInputs []ExerciseInWorkoutInput) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
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
		`INSERT INTO workout
			(name, description, frequency, duration, level, category, training_type, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING id;`,
		w.Name, w.Description, w.Frequency, w.Duration, w.Level, w.Category, w.TrainingType,
	).Scan(&w.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, &rules.NameConflictError{Entity: entityName, Name: w.Name}
		}
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	w.Exercises, err = insertExerciseRows(ctx, tx, w.ID, exerciseInputs)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workout.id", w.ID))
	return &w, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var w Workout
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, COALESCE(description, ''), frequency, duration,
				level, category, COALESCE(training_type, ''), score, total_ratings
			FROM workout
			WHERE id = $1 AND is_deleted = FALSE;`,
		id,
	).Scan(
		&w.ID, &w.Name, &w.Description, &w.Frequency, &w.Duration,
		&w.Level, &w.Category, &w.TrainingType, &w.Score, &w.TotalRatings,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}

	if w.Exercises, err = activeExerciseRows(ctx, r.db, w.ID); err != nil {
		return nil, err
	}
	return &w, nil
}

// GetByIDs fetches the requested active workouts and reports the exact set of
// missing ids when any are absent.
func (r *Repo) GetByIDs(ctx context.Context, ids []int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getbyids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ids.count", len(ids)))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, COALESCE(description, ''), frequency, duration,
				level, category, COALESCE(training_type, ''), score, total_ratings
			FROM workout
			WHERE id = ANY($1) AND is_deleted = FALSE
			ORDER BY id;`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("get workouts by ids: %w", err)
	}
	defer rows.Close()

	workoutsList := make([]Workout, 0, len(ids))
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Description, &w.Frequency, &w.Duration,
			&w.Level, &w.Category, &w.TrainingType, &w.Score, &w.TotalRatings,
		); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workoutsList = append(workoutsList, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	foundIDs := make([]int, 0, len(workoutsList))
	for _, w := range workoutsList {
		foundIDs = append(foundIDs, w.ID)
	}
	if missing := rules.MissingIDs(ids, foundIDs); len(missing) > 0 {
		return nil, &rules.NotFoundError{Entity: entityName, IDs: missing}
	}

	for i := range workoutsList {
		if workoutsList[i].Exercises, err = activeExerciseRows(ctx, r.db, workoutsList[i].ID); err != nil {
			return nil, err
		}
	}
	return workoutsList, nil
}

func (r *Repo) List(ctx context.Context, pagination rules.Pagination) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", pagination.Page))
	span.SetAttributes(attribute.Int("limit", pagination.Limit))

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout WHERE is_deleted = FALSE;`,
	).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count workouts: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, COALESCE(description, ''), frequency, duration,
				level, category, COALESCE(training_type, ''), score, total_ratings
			FROM workout
			WHERE is_deleted = FALSE
			ORDER BY id
			LIMIT $1 OFFSET $2;`,
		pagination.Limit, pagination.Offset(),
	)
	if err != nil {
		return nil, -1, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	workoutsList := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Description, &w.Frequency, &w.Duration,
			&w.Level, &w.Category, &w.TrainingType, &w.Score, &w.TotalRatings,
		); err != nil {
			return nil, -1, fmt.Errorf("scan workout: %w", err)
		}
		workoutsList = append(workoutsList, w)
	}
	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	for i := range workoutsList {
		if workoutsList[i].Exercises, err = activeExerciseRows(ctx, r.db, workoutsList[i].ID); err != nil {
			return nil, -1, err
		}
	}

	return workoutsList, total, nil
}

func (r *Repo) GetExerciseInWorkout(ctx context.Context, id int) (_ *ExerciseInWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getexerciseinworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var eiw ExerciseInWorkout
	err = r.db.QueryRow(
		ctx,
		`SELECT id, exercise_id, workout_id, sets, reps, weight, rest_time, position
			FROM exercise_in_workout
			WHERE id = $1 AND is_deleted = FALSE;`,
		id,
	).Scan(&eiw.ID, &eiw.ExerciseID, &eiw.WorkoutID, &eiw.Sets, &eiw.Reps, &eiw.Weight, &eiw.RestTime, &eiw.Order)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &rules.NotFoundError{Entity: "exercise in workout", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get exercise in workout: %w", err)
	}

	return &eiw, nil
}

// Update writes the patched row and, when exerciseInputs is non-nil, replaces
// the owned rows: the old ones are dropped and the new set inserted in the
// same transaction.
func (r *Repo) Update(ctx context.Context, w *Workout, exerciseInputs *[]ExerciseInWorkoutInput) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", w.ID))

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
		`UPDATE workout
			SET name = $2, description = $3, frequency = $4, duration = $5,
				level = $6, category = $7, training_type = $8, updated_at = now()
			WHERE id = $1 AND is_deleted = FALSE;`,
		w.ID, w.Name, w.Description, w.Frequency, w.Duration, w.Level, w.Category, w.TrainingType,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return &rules.NameConflictError{Entity: entityName, Name: w.Name}
		}
		return fmt.Errorf("update workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &rules.NotFoundError{Entity: entityName, ID: w.ID}
	}

	if exerciseInputs != nil {
		if _, err = tx.Exec(
			ctx, `DELETE FROM exercise_in_workout WHERE workout_id = $1;`, w.ID,
		); err != nil {
			return fmt.Errorf("clear workout exercises: %w", err)
		}
		if w.Exercises, err = insertExerciseRows(ctx, tx, w.ID, *exerciseInputs); err != nil {
			return err
		}
	} else if w.Exercises, err = activeExerciseRows(ctx, tx, w.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repo) Rate(ctx context.Context, id int, rating rules.Rating) (_ *rules.RateResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.rate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var resp rules.RateResponse
	err = r.db.QueryRow(
		ctx,
		`UPDATE workout
			SET score = $2, total_ratings = $3, updated_at = now()
			WHERE id = $1 AND is_deleted = FALSE
		RETURNING id, name, score, total_ratings;`,
		id, rating.Score, rating.TotalRatings,
	).Scan(&resp.ID, &resp.Name, &resp.Score, &resp.TotalRatings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("rate workout: %w", err)
	}

	return &resp, nil
}

// SoftDelete flags the workout deleted and renames it, guarded by the active
// training plans still scheduling it. The owned exercise rows cascade in the
// same transaction.
func (r *Repo) SoftDelete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.softdelete")
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
		`SELECT name FROM workout WHERE id = $1 AND is_deleted = FALSE FOR UPDATE;`,
		id,
	).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return fmt.Errorf("lock workout: %w", err)
	}

	dependentIDs, err := activeTrainingPlanIDs(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("check workout dependencies: %w", err)
	}
	if len(dependentIDs) > 0 {
		return &rules.DependencyConflictError{
			Entity:       entityName,
			Dependent:    "training plan",
			DependentIDs: dependentIDs,
		}
	}

	if _, err = tx.Exec(
		ctx,
		`UPDATE exercise_in_workout SET is_deleted = TRUE WHERE workout_id = $1;`,
		id,
	); err != nil {
		return fmt.Errorf("soft delete workout exercises: %w", err)
	}

	_, err = tx.Exec(
		ctx,
		`UPDATE workout
			SET is_deleted = TRUE, name = $2, updated_at = now()
			WHERE id = $1;`,
		id, rules.DeletedName(name, id),
	)
	if err != nil {
		return fmt.Errorf("soft delete workout: %w", err)
	}

	return nil
}

func activeTrainingPlanIDs(ctx context.Context, tx pgx.Tx, workoutID int) ([]int, error) {
	rows, err := tx.Query(
		ctx,
		`SELECT tp.id
			FROM training_plan tp
			JOIN training_plan_workout tpw ON tpw.training_plan_id = tp.id
			WHERE tpw.workout_id = $1 AND tp.is_deleted = FALSE
			ORDER BY tp.id;`,
		workoutID,
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
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.activenameexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM workout
			WHERE name = $1 AND is_deleted = FALSE AND id <> $2
		);`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("workout name lookup: %w", err)
	}
	return exists, nil
}

// FilterActiveIDs returns the subset of ids belonging to active workouts.
// Used by the training plan service to validate references.
func (r *Repo) FilterActiveIDs(ctx context.Context, ids []int) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.filteractiveids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id FROM workout WHERE id = ANY($1) AND is_deleted = FALSE;`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("filter workout ids: %w", err)
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

// querier is the subset of pgx shared by the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertExerciseRows(ctx context.Context, q querier, workoutID int, inputs []ExerciseInWorkoutInput) ([]ExerciseInWorkout, error) {
	inserted := make([]ExerciseInWorkout, 0, len(inputs))
	for _, in := range inputs {
		eiw := ExerciseInWorkout{
			ExerciseID: in.ExerciseID,
			WorkoutID:  workoutID,
			Sets:       in.Sets,
			Reps:       in.Reps,
			Weight:     in.Weight,
			RestTime:   in.RestTime,
			Order:      in.Order,
		}
		if err := q.QueryRow(
			ctx,
			`INSERT INTO exercise_in_workout
				(exercise_id, workout_id, sets, reps, weight, rest_time, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
			in.ExerciseID, workoutID, in.Sets, in.Reps, in.Weight, in.RestTime, in.Order,
		).Scan(&eiw.ID); err != nil {
			return nil, fmt.Errorf("insert exercise in workout: %w", err)
		}
		inserted = append(inserted, eiw)
	}
	return inserted, nil
}

func activeExerciseRows(ctx context.Context, q querier, workoutID int) ([]ExerciseInWorkout, error) {
	rows, err := q.Query(
		ctx,
		`SELECT id, exercise_id, workout_id, sets, reps, weight, rest_time, position
			FROM exercise_in_workout
			WHERE workout_id = $1 AND is_deleted = FALSE
			ORDER BY position;`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("get workout exercises: %w", err)
	}
	defer rows.Close()

	exerciseRows := make([]ExerciseInWorkout, 0)
	for rows.Next() {
		var eiw ExerciseInWorkout
		if err := rows.Scan(
			&eiw.ID, &eiw.ExerciseID, &eiw.WorkoutID,
			&eiw.Sets, &eiw.Reps, &eiw.Weight, &eiw.RestTime, &eiw.Order,
		); err != nil {
			return nil, fmt.Errorf("scan exercise in workout: %w", err)
		}
		exerciseRows = append(exerciseRows, eiw)
	}
	return exerciseRows, rows.Err()
}
