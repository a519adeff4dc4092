package students

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/treinos/internal/db"
	"github.com/2beens/treinos/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

var ErrStudentNotFound = errors.New("student not found")

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, taxID, name string) (_ *Student, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.students.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO students (tax_id, name) VALUES ($1, $2)
			RETURNING id, tax_id, name, active;`,
		taxID, name,
	)

	student, err := scanStudent(row)
	if err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}

	span.SetAttributes(attribute.Int("student.id", student.ID))
	return student, nil
}

func (r *Repo) List(ctx context.Context, filter Filter) (_ []Student, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.students.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if filter.Active != nil {
		span.SetAttributes(attribute.Bool("active", *filter.Active))
	}
	span.SetAttributes(attribute.String("name", filter.Name))

	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	students, err := rows2students(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2students: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(students)))
	return students, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Student, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.students.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT id, tax_id, name, active FROM students WHERE id = $1;`,
		id,
	)
	return scanStudent(row)
}

func (r *Repo) GetByTaxID(ctx context.Context, taxID string) (_ *Student, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.students.getbytaxid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`SELECT id, tax_id, name, active FROM students WHERE tax_id = $1;`,
		taxID,
	)
	return scanStudent(row)
}

// Update replaces tax id, name and active flag of the student with student.ID.
func (r *Repo) Update(ctx context.Context, student Student) (_ *Student, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.students.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", student.ID))

	row := r.db.QueryRow(
		ctx,
		`UPDATE students SET tax_id = $1, name = $2, active = $3 WHERE id = $4
			RETURNING id, tax_id, name, active;`,
		student.TaxID, student.Name, student.Active, student.ID,
	)
	return scanStudent(row)
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.students.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM students WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func scanStudent(row pgx.Row) (*Student, error) {
	var s Student
	if err := row.Scan(&s.ID, &s.TaxID, &s.Name, &s.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &s, nil
}

func rows2students(rows pgx.Rows) ([]Student, error) {
	students := make([]Student, 0)
	for rows.Next() {
		var s Student
		if err := rows.Scan(&s.ID, &s.TaxID, &s.Name, &s.Active); err != nil {
			return nil, err
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
