package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/treinos/internal/db"
	"github.com/2beens/treinos/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
)

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", exercise.WorkoutID))

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO exercises (workout_id, name, sets, reps) VALUES ($1, $2, $3, $4)
			RETURNING id, workout_id, name, sets, reps;`,
		exercise.WorkoutID, exercise.Name, string(exercise.Sets), string(exercise.Reps),
	)

	created, err := scanExercise(row)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", created.ID))
	return created, nil
}

func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, name, sets, reps FROM exercises ORDER BY id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2exercises(rows)
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT id, workout_id, name, sets, reps FROM exercises WHERE id = $1;`,
		id,
	)
	return scanExercise(row)
}

func (r *Repo) Update(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", exercise.ID))

	row := r.db.QueryRow(
		ctx,
		`UPDATE exercises SET workout_id = $1, name = $2, sets = $3, reps = $4 WHERE id = $5
			RETURNING id, workout_id, name, sets, reps;`,
		exercise.WorkoutID, exercise.Name, string(exercise.Sets), string(exercise.Reps), exercise.ID,
	)
	return scanExercise(row)
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercises WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// ListByWorkout returns the exercises of a single workout, in id order.
// It returns ErrWorkoutNotFound only when the workout itself does not exist;
// an existing workout without exercises yields an empty slice.
func (r *Repo) ListByWorkout(ctx context.Context, workoutID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listbyworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				w.id, e.id, e.name, e.sets, e.reps
			FROM workouts w
			LEFT JOIN exercises e ON e.workout_id = w.id
			WHERE w.id = $1
			ORDER BY e.id;`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	workoutFound := false
	exercises := make([]Exercise, 0)
	for rows.Next() {
		workoutFound = true

		var wID int
		var id *int
		var name, sets, reps *string
		if err := rows.Scan(&wID, &id, &name, &sets, &reps); err != nil {
			return nil, err
		}
		if id == nil {
			// workout without exercises
			continue
		}
		exercises = append(exercises, Exercise{
			ID:        *id,
			WorkoutID: wID,
			Name:      deref(name),
			Sets:      Count(deref(sets)),
			Reps:      Count(deref(reps)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !workoutFound {
		return nil, ErrWorkoutNotFound
	}
	return exercises, nil
}

// ListByWorkouts fetches the exercises of all given workouts in one query,
// grouped by workout id. Workouts without exercises are absent from the map.
func (r *Repo) ListByWorkouts(ctx context.Context, workoutIDs []int) (_ map[int][]Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listbyworkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.IntSlice("workout.ids", workoutIDs))

	grouped := make(map[int][]Exercise, len(workoutIDs))
	if len(workoutIDs) == 0 {
		return grouped, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, name, sets, reps FROM exercises
			WHERE workout_id = ANY($1)
			ORDER BY workout_id, id;`,
		workoutIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	for _, e := range exercises {
		grouped[e.WorkoutID] = append(grouped[e.WorkoutID], e)
	}
	return grouped, nil
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	var e Exercise
	var sets, reps string
	if err := row.Scan(&e.ID, &e.WorkoutID, &e.Name, &sets, &reps); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	e.Sets = Count(sets)
	e.Reps = Count(reps)
	return &e, nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		var sets, reps string
		if err := rows.Scan(&e.ID, &e.WorkoutID, &e.Name, &sets, &reps); err != nil {
			return nil, err
		}
		e.Sets = Count(sets)
		e.Reps = Count(reps)
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
