package musclegroups

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

const entityName = "muscle group"

// Muscle group names are compared case-insensitively, backed by a partial
// unique index on LOWER(name) for active rows.

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, mg MuscleGroup) (_ *MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.musclegroups.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO muscle_group (name, description, created_at, updated_at)
			VALUES ($1, $2, now(), now())
		RETURNING id;`,
		mg.Name, mg.Description,
	).Scan(&mg.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, &rules.NameConflictError{Entity: entityName, Name: mg.Name}
		}
		return nil, fmt.Errorf("insert muscle group: %w", err)
	}

	span.SetAttributes(attribute.Int("musclegroup.id", mg.ID))
	return &mg, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.musclegroups.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var mg MuscleGroup
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, COALESCE(description, '')
			FROM muscle_group
			WHERE id = $1 AND is_deleted = FALSE;`,
		id,
	).Scan(&mg.ID, &mg.Name, &mg.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get muscle group: %w", err)
	}

	return &mg, nil
}

func (r *Repo) List(ctx context.Context, pagination rules.Pagination) (_ []MuscleGroup, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.musclegroups.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", pagination.Page))
	span.SetAttributes(attribute.Int("limit", pagination.Limit))

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM muscle_group WHERE is_deleted = FALSE;`,
	).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count muscle groups: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, COALESCE(description, '')
			FROM muscle_group
			WHERE is_deleted = FALSE
			ORDER BY id
			LIMIT $1 OFFSET $2;`,
		pagination.Limit, pagination.Offset(),
	)
	if err != nil {
		return nil, -1, fmt.Errorf("list muscle groups: %w", err)
	}
	defer rows.Close()

	muscleGroups := make([]MuscleGroup, 0)
	for rows.Next() {
		var mg MuscleGroup
		if err := rows.Scan(&mg.ID, &mg.Name, &mg.Description); err != nil {
			return nil, -1, fmt.Errorf("scan muscle group: %w", err)
		}
		muscleGroups = append(muscleGroups, mg)
	}
	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	return muscleGroups, total, nil
}

func (r *Repo) Update(ctx context.Context, mg *MuscleGroup) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.musclegroups.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", mg.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE muscle_group
			SET name = $2, description = $3, updated_at = now()
			WHERE id = $1 AND is_deleted = FALSE;`,
		mg.ID, mg.Name, mg.Description,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return &rules.NameConflictError{Entity: entityName, Name: mg.Name}
		}
		return fmt.Errorf("update muscle group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &rules.NotFoundError{Entity: entityName, ID: mg.ID}
	}

	return nil
}

// SoftDelete flags the muscle group deleted and renames it, guarded by the
// active exercises still targeting it. Guard and mutation run in one
// transaction so a dependency created mid-delete cannot slip through.
func (r *Repo) SoftDelete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.musclegroups.softdelete")
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
		`SELECT name FROM muscle_group WHERE id = $1 AND is_deleted = FALSE FOR UPDATE;`,
		id,
	).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return &rules.NotFoundError{Entity: entityName, ID: id}
	}
	if err != nil {
		return fmt.Errorf("lock muscle group: %w", err)
	}

	dependentIDs, err := activeExerciseIDs(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("check muscle group dependencies: %w", err)
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
		`UPDATE muscle_group
			SET is_deleted = TRUE, name = $2, updated_at = now()
			WHERE id = $1;`,
		id, rules.DeletedName(name, id),
	)
	if err != nil {
		return fmt.Errorf("soft delete muscle group: %w", err)
	}

	return nil
}

func activeExerciseIDs(ctx context.Context, tx pgx.Tx, muscleGroupID int) ([]int, error) {
	rows, err := tx.Query(
		ctx,
		`SELECT e.id
			FROM exercise e
			JOIN exercise_muscle_group emg ON emg.exercise_id = e.id
			WHERE emg.muscle_group_id = $1 AND e.is_deleted = FALSE
			ORDER BY e.id;`,
		muscleGroupID,
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
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.musclegroups.activenameexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM muscle_group
			WHERE LOWER(name) = LOWER($1) AND is_deleted = FALSE AND id <> $2
		);`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("muscle group name lookup: %w", err)
	}
	return exists, nil
}

// FilterActiveIDs returns the subset of ids belonging to active muscle
// groups. Used by the exercise service to validate references.
func (r *Repo) FilterActiveIDs(ctx context.Context, ids []int) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.musclegroups.filteractiveids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id FROM muscle_group WHERE id = ANY($1) AND is_deleted = FALSE;`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("filter muscle group ids: %w", err)
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
