package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/treinos/internal/db"
	"github.com/2beens/treinos/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, params WorkoutParams) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("student.id", params.StudentID))

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO workouts (student_id, name, last_execution) VALUES ($1, $2, $3::text::timestamptz)
			RETURNING id, student_id, name, last_execution;`,
		params.StudentID, params.Name, params.LastExecution,
	)

	created, err := scanWorkout(row)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", created.ID))
	return created, nil
}

func (r *Repo) List(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, student_id, name, last_execution FROM workouts ORDER BY id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2workouts(rows)
}

// ListByStudent returns the workouts of a student, in creation (id) order.
func (r *Repo) ListByStudent(ctx context.Context, studentID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listbystudent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("student.id", studentID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, student_id, name, last_execution FROM workouts WHERE student_id = $1 ORDER BY id;`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2workouts(rows)
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT id, student_id, name, last_execution FROM workouts WHERE id = $1;`,
		id,
	)
	return scanWorkout(row)
}

func (r *Repo) Update(ctx context.Context, id int, params WorkoutParams) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	row := r.db.QueryRow(
		ctx,
		`UPDATE workouts SET student_id = $1, name = $2, last_execution = $3::text::timestamptz WHERE id = $4
			RETURNING id, student_id, name, last_execution;`,
		params.StudentID, params.Name, params.LastExecution, id,
	)
	return scanWorkout(row)
}

// MarkExecuted stamps last_execution with the store's current time.
func (r *Repo) MarkExecuted(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.markexecuted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	row := r.db.QueryRow(
		ctx,
		`UPDATE workouts SET last_execution = NOW() WHERE id = $1
			RETURNING id, student_id, name, last_execution;`,
		id,
	)
	return scanWorkout(row)
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workouts WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func scanWorkout(row pgx.Row) (*Workout, error) {
	var w Workout
	if err := row.Scan(&w.ID, &w.StudentID, &w.Name, &w.LastExecution); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return &w, nil
}

func rows2workouts(rows pgx.Rows) ([]Workout, error) {
	workouts := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.StudentID, &w.Name, &w.LastExecution); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}
