//go:build integration_test || all_tests

package test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/treinos/internal/exercises"
	"github.com/2beens/treinos/internal/workouts"
)

func (s *IntegrationTestSuite) TestWorkouts_CRUD() {
	student := s.createStudent("100", "Rafa")

	resp := s.do("POST", "/treinos", map[string]any{
		"student_id":     student.ID,
		"name":           "Upper",
		"last_execution": "2024-01-15T08:00:00Z",
	})
	s.Require().Equal(http.StatusCreated, resp.status)
	var created workouts.Workout
	s.decode(resp, &created)
	s.NotZero(created.ID)
	s.Equal(student.ID, created.StudentID)
	s.Equal("Upper", created.Name)
	s.Require().NotNil(created.LastExecution)
	s.True(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC).Equal(*created.LastExecution))

	resp = s.do("PUT", fmt.Sprintf("/treinos/%d", created.ID), map[string]any{
		"student_id": student.ID,
		"name":       "Upper B",
	})
	s.Require().Equal(http.StatusOK, resp.status)

	var got workouts.Workout
	s.decode(s.do("GET", fmt.Sprintf("/treinos/%d", created.ID), nil), &got)
	s.Equal("Upper B", got.Name)
	s.Nil(got.LastExecution)

	var list []workouts.Workout
	s.decode(s.do("GET", "/treinos", nil), &list)
	s.Len(list, 1)

	s.Equal(http.StatusNoContent, s.do("DELETE", fmt.Sprintf("/treinos/%d", created.ID), nil).status)
	s.Equal(http.StatusNotFound, s.do("GET", fmt.Sprintf("/treinos/%d", created.ID), nil).status)
}

func (s *IntegrationTestSuite) TestWorkouts_LastExecutionParsedByStore() {
	student := s.createStudent("101", "Lia")

	for _, raw := range []string{"2024-01-15", "2024-01-15 08:00:00", "2024-01-15T08:00:00"} {
		resp := s.do("POST", "/treinos", map[string]any{
			"student_id":     student.ID,
			"name":           raw,
			"last_execution": raw,
		})
		s.Require().Equal(http.StatusCreated, resp.status, raw)

		var created workouts.Workout
		s.decode(resp, &created)
		s.Require().NotNil(created.LastExecution, raw)
		s.Equal(2024, created.LastExecution.UTC().Year())
		s.Equal(time.January, created.LastExecution.UTC().Month())
		s.Equal(15, created.LastExecution.UTC().Day())

		resp = s.do("PUT", fmt.Sprintf("/treinos/%d", created.ID), map[string]any{
			"student_id":     student.ID,
			"name":           raw,
			"last_execution": raw,
		})
		s.Equal(http.StatusOK, resp.status, raw)
	}

	// rejected by postgres, not by the handler
	resp := s.do("POST", "/treinos", map[string]any{
		"student_id":     student.ID,
		"name":           "bad",
		"last_execution": "not a date",
	})
	s.Equal(http.StatusInternalServerError, resp.status)
	s.Equal("error inserting workout\n", string(resp.body))
}

func (s *IntegrationTestSuite) TestWorkouts_NotFound() {
	resp := s.do("GET", "/treinos/999", nil)
	s.Equal(http.StatusNotFound, resp.status)
	s.Equal("workout not found\n", string(resp.body))

	s.Equal(http.StatusNotFound, s.do("PUT", "/treinos/999", map[string]any{"student_id": 1, "name": "x"}).status)
	s.Equal(http.StatusNotFound, s.do("DELETE", "/treinos/999", nil).status)
	s.Equal(http.StatusNotFound, s.do("PUT", "/treinos/999/executar", nil).status)
}

func (s *IntegrationTestSuite) TestWorkouts_Execute() {
	student := s.createStudent("200", "Bia")
	workout := s.createWorkout(student.ID, "Legs")
	s.Nil(workout.LastExecution)

	// the db clock may lag the test clock slightly
	before := time.Now().Add(-2 * time.Second)
	resp := s.do("PUT", fmt.Sprintf("/treinos/%d/executar", workout.ID), nil)
	s.Require().Equal(http.StatusOK, resp.status)

	var executed workouts.Workout
	s.decode(resp, &executed)
	s.Require().NotNil(executed.LastExecution)
	s.False(executed.LastExecution.Before(before))
	s.Equal(workout.ID, executed.ID)
}

func (s *IntegrationTestSuite) TestWorkouts_WithExercisesByTaxID() {
	student := s.createStudent("300", "Caio")
	other := s.createStudent("301", "Other")

	upper := s.createWorkout(student.ID, "Upper")
	lower := s.createWorkout(student.ID, "Lower")
	rest := s.createWorkout(student.ID, "Rest")
	otherWorkout := s.createWorkout(other.ID, "Other")

	squat := s.createExercise(lower.ID, "Squat", 4, "10")
	press := s.createExercise(upper.ID, "Press", "3", 8)
	row := s.createExercise(upper.ID, "Row", 3, "8-12")
	s.createExercise(otherWorkout.ID, "Not mine", 1, 1)

	var result []workouts.WorkoutWithExercises
	resp := s.do("GET", "/treinos/exercicios/300", nil)
	s.Require().Equal(http.StatusOK, resp.status)
	s.decode(resp, &result)

	s.Require().Len(result, 3)
	s.Equal(upper.ID, result[0].Workout.ID)
	s.Equal([]exercises.Exercise{press, row}, result[0].Exercises)
	s.Equal(lower.ID, result[1].Workout.ID)
	s.Equal([]exercises.Exercise{squat}, result[1].Exercises)
	s.Equal(rest.ID, result[2].Workout.ID)
	s.NotNil(result[2].Exercises)
	s.Empty(result[2].Exercises)

	resp = s.do("GET", "/treinos/exercicios/does-not-exist", nil)
	s.Equal(http.StatusNotFound, resp.status)
	s.Equal("student not found\n", string(resp.body))
}

func (s *IntegrationTestSuite) TestWorkouts_WithExercises_NoWorkouts() {
	s.createStudent("400", "Lazy")

	resp := s.do("GET", "/treinos/exercicios/400", nil)
	s.Equal(http.StatusOK, resp.status)
	s.Equal("[]", string(resp.body))
}
