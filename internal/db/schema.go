package db

import (
	"context"
	"fmt"
)

// Schema creates the three tables if missing.
// There are no foreign keys: deleting a student or a workout leaves its
// children in place.
const Schema = `
CREATE TABLE IF NOT EXISTS students
(
    id     SERIAL PRIMARY KEY,
    tax_id VARCHAR NOT NULL UNIQUE,
    name   VARCHAR NOT NULL,
    active BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE INDEX IF NOT EXISTS ix_students_name ON students (name);

CREATE TABLE IF NOT EXISTS workouts
(
    id             SERIAL PRIMARY KEY,
    student_id     INTEGER NOT NULL,
    name           VARCHAR NOT NULL,
    last_execution TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS ix_workouts_student_id ON workouts (student_id);

CREATE TABLE IF NOT EXISTS exercises
(
    id         SERIAL PRIMARY KEY,
    workout_id INTEGER NOT NULL,
    name       VARCHAR NOT NULL,
    sets       VARCHAR NOT NULL,
    reps       VARCHAR NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_exercises_workout_id ON exercises (workout_id);
`

func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
