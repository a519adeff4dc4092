//go:build integration_test || all_tests

package test

import (
	"fmt"
	"net/http"

	"github.com/2beens/treinos/internal/students"
)

func (s *IntegrationTestSuite) TestStudents_CreateEchoesFields() {
	created := s.createStudent("12345678900", "Ana Souza")
	s.NotZero(created.ID)
	s.Equal("12345678900", created.TaxID)
	s.Equal("Ana Souza", created.Name)
	s.True(created.Active)
}

func (s *IntegrationTestSuite) TestStudents_DuplicateTaxID() {
	s.createStudent("111", "first")

	resp := s.do("POST", "/alunos", map[string]string{"tax_id": "111", "name": "second"})
	s.Equal(http.StatusInternalServerError, resp.status)
	s.Equal("error inserting student\n", string(resp.body))
}

func (s *IntegrationTestSuite) TestStudents_ListAndFilters() {
	s.createStudent("1", "Carla")
	ana := s.createStudent("2", "Ana")
	mariana := s.createStudent("3", "Mariana")
	s.createStudent("4", "Bruno")

	resp := s.do("PUT", fmt.Sprintf("/alunos/%d", mariana.ID), map[string]any{
		"tax_id": mariana.TaxID,
		"name":   mariana.Name,
		"active": false,
	})
	s.Require().Equal(http.StatusOK, resp.status)

	var list []students.Student
	s.decode(s.do("GET", "/alunos", nil), &list)
	s.Equal([]string{"Ana", "Bruno", "Carla", "Mariana"}, studentNames(list))

	s.decode(s.do("GET", "/alunos?active=true", nil), &list)
	s.Equal([]string{"Ana", "Bruno", "Carla"}, studentNames(list))

	// anything but the literal "true" is no filter
	s.decode(s.do("GET", "/alunos?active=false", nil), &list)
	s.Len(list, 4)

	s.decode(s.do("GET", "/alunos?name=ANA", nil), &list)
	s.Equal([]string{"Ana", "Mariana"}, studentNames(list))

	s.decode(s.do("GET", "/alunos?active=true&name=Ana", nil), &list)
	s.Equal([]students.Student{ana}, list)

	s.decode(s.do("GET", "/alunos?tax_id=1", nil), &list)
	s.Equal([]string{"Carla"}, studentNames(list))

	resp = s.do("GET", "/alunos?name=nobody", nil)
	s.Equal(http.StatusOK, resp.status)
	s.Equal("[]", string(resp.body))
}

func (s *IntegrationTestSuite) TestStudents_UpdateRoundTrip() {
	created := s.createStudent("555", "Before")

	resp := s.do("PUT", fmt.Sprintf("/alunos/%d", created.ID), map[string]any{
		"tax_id": "556",
		"name":   "After",
		"active": false,
	})
	s.Require().Equal(http.StatusOK, resp.status)

	var got students.Student
	s.decode(s.do("GET", fmt.Sprintf("/alunos/%d", created.ID), nil), &got)
	s.Equal(students.Student{ID: created.ID, TaxID: "556", Name: "After", Active: false}, got)

	s.decode(s.do("GET", "/alunos/tax_id/556", nil), &got)
	s.Equal(created.ID, got.ID)

	s.Equal(http.StatusNotFound, s.do("GET", "/alunos/tax_id/555", nil).status)
}

func (s *IntegrationTestSuite) TestStudents_NotFound() {
	resp := s.do("GET", "/alunos/999", nil)
	s.Equal(http.StatusNotFound, resp.status)
	s.Equal("student not found\n", string(resp.body))

	resp = s.do("PUT", "/alunos/999", map[string]any{"tax_id": "x", "name": "x", "active": true})
	s.Equal(http.StatusNotFound, resp.status)

	resp = s.do("DELETE", "/alunos/999", nil)
	s.Equal(http.StatusNotFound, resp.status)
}

func (s *IntegrationTestSuite) TestStudents_DeleteDoesNotCascade() {
	student := s.createStudent("777", "Leaving")
	workout := s.createWorkout(student.ID, "orphan to be")

	resp := s.do("DELETE", fmt.Sprintf("/alunos/%d", student.ID), nil)
	s.Require().Equal(http.StatusNoContent, resp.status)
	s.Empty(resp.body)

	// the workout survives its student
	resp = s.do("GET", fmt.Sprintf("/treinos/%d", workout.ID), nil)
	s.Equal(http.StatusOK, resp.status)

	var count int
	s.Require().NoError(s.DB.QueryRow(`SELECT COUNT(*) FROM workouts WHERE student_id = $1`, student.ID).Scan(&count))
	s.Equal(1, count)
}

func studentNames(list []students.Student) []string {
	res := make([]string, 0, len(list))
	for _, st := range list {
		res = append(res, st.Name)
	}
	return res
}
