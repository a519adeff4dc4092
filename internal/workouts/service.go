package workouts

import (
	"context"
	"fmt"

	"github.com/2beens/treinos/internal/exercises"
	"github.com/2beens/treinos/internal/students"
	"github.com/2beens/treinos/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type studentFinder interface {
	GetByTaxID(ctx context.Context, taxID string) (*students.Student, error)
}

type studentWorkoutsLister interface {
	ListByStudent(ctx context.Context, studentID int) ([]Workout, error)
}

type exercisesBatchLister interface {
	ListByWorkouts(ctx context.Context, workoutIDs []int) (map[int][]exercises.Exercise, error)
}

// Service composes the students, workouts and exercises repos into
// read-only views over a student's training plan.
type Service struct {
	students  studentFinder
	workouts  studentWorkoutsLister
	exercises exercisesBatchLister
}

func NewService(
	students studentFinder,
	workouts studentWorkoutsLister,
	exercises exercisesBatchLister,
) *Service {
	return &Service{
		students:  students,
		workouts:  workouts,
		exercises: exercises,
	}
}

// WorkoutsWithExercisesByTaxID returns every workout of the student with the given tax id,
// each paired with its own exercises, in the student's workout order.
// Returns students.ErrStudentNotFound (wrapped) for an unknown tax id.
//
// The three reads are not transactional: a student deleted between the
// lookup and the workouts query yields an empty result, not an error.
func (s *Service) WorkoutsWithExercisesByTaxID(ctx context.Context, taxID string) (_ []WorkoutWithExercises, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.withexercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	student, err := s.students.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, fmt.Errorf("get student by tax id: %w", err)
	}
	span.SetAttributes(attribute.Int("student.id", student.ID))

	studentWorkouts, err := s.workouts.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("list student %d workouts: %w", student.ID, err)
	}

	workoutIDs := make([]int, 0, len(studentWorkouts))
	for _, w := range studentWorkouts {
		workoutIDs = append(workoutIDs, w.ID)
	}

	exercisesByWorkout, err := s.exercises.ListByWorkouts(ctx, workoutIDs)
	if err != nil {
		return nil, fmt.Errorf("list exercises of workouts %v: %w", workoutIDs, err)
	}

	result := make([]WorkoutWithExercises, 0, len(studentWorkouts))
	for _, w := range studentWorkouts {
		workoutExercises := exercisesByWorkout[w.ID]
		if workoutExercises == nil {
			workoutExercises = []exercises.Exercise{}
		}
		result = append(result, WorkoutWithExercises{
			Workout:   w,
			Exercises: workoutExercises,
		})
	}

	span.SetAttributes(attribute.Int("workouts.count", len(result)))
	return result, nil
}
