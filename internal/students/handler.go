package students

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/treinos/internal/telemetry/metrics"
	"github.com/2beens/treinos/internal/telemetry/tracing"
	"github.com/2beens/treinos/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=students_mocks_test.go -package=students_test

type studentsRepo interface {
	Create(ctx context.Context, taxID, name string) (*Student, error)
	List(ctx context.Context, filter Filter) ([]Student, error)
	Get(ctx context.Context, id int) (*Student, error)
	GetByTaxID(ctx context.Context, taxID string) (*Student, error)
	Update(ctx context.Context, student Student) (*Student, error)
	Delete(ctx context.Context, id int) error
}

type CreateStudentRequest struct {
	TaxID string `json:"tax_id"`
	Name  string `json:"name"`
}

type UpdateStudentRequest struct {
	TaxID  string `json:"tax_id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type Handler struct {
	repo    studentsRepo
	metrics *metrics.Manager
}

func NewHandler(repo studentsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/alunos", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-student")
	r.HandleFunc("/alunos", handler.HandleList).Methods("GET", "OPTIONS").Name("list-students")
	r.HandleFunc("/alunos/tax_id/{tax_id}", handler.HandleGetByTaxID).Methods("GET", "OPTIONS").Name("get-student-by-tax-id")
	r.HandleFunc("/alunos/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-student")
	r.HandleFunc("/alunos/{id:[0-9]+}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-student")
	r.HandleFunc("/alunos/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-student")
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.students.create")
	defer span.End()

	var req CreateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new student, unmarshal json body: %s", err)
		http.Error(w, "error inserting student", http.StatusInternalServerError)
		return
	}

	student, err := handler.repo.Create(ctx, req.TaxID, req.Name)
	if err != nil {
		log.Errorf("failed to insert student [%s] (%s): %s", req.TaxID, pkg.DescribeStoreError(err), err)
		http.Error(w, "error inserting student", http.StatusInternalServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterStudentsCreated.Inc()
	}

	log.Debugf("new student added: %d", student.ID)
	pkg.WriteJSON(w, student, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.students.list")
	defer span.End()

	filter := FilterFromQuery(r)
	studentsList, err := handler.repo.List(ctx, filter)
	if err != nil {
		log.Errorf("failed to list students: %s", err)
		http.Error(w, "error fetching students", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("students.count", len(studentsList)))
	pkg.WriteJSON(w, studentsList, http.StatusOK)
}

// FilterFromQuery builds the list filter from ?active=&name=&tax_id=.
// Only the literal "true" enables the active filter.
func FilterFromQuery(r *http.Request) Filter {
	query := r.URL.Query()
	filter := Filter{
		Name:  query.Get("name"),
		TaxID: query.Get("tax_id"),
	}
	if query.Get("active") == "true" {
		active := true
		filter.Active = &active
	}
	return filter
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.students.get")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "student not found", http.StatusNotFound)
		return
	}

	student, err := handler.repo.Get(ctx, id)
	handler.writeStudent(w, student, err, "error fetching student")
}

func (handler *Handler) HandleGetByTaxID(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.students.getbytaxid")
	defer span.End()

	taxID := mux.Vars(r)["tax_id"]
	student, err := handler.repo.GetByTaxID(ctx, taxID)
	handler.writeStudent(w, student, err, "error fetching student")
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.students.update")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "student not found", http.StatusNotFound)
		return
	}

	var req UpdateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update student %d, unmarshal json body: %s", id, err)
		http.Error(w, "error updating student", http.StatusInternalServerError)
		return
	}

	student, err := handler.repo.Update(ctx, Student{
		ID:     id,
		TaxID:  req.TaxID,
		Name:   req.Name,
		Active: req.Active,
	})
	handler.writeStudent(w, student, err, "error updating student")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.students.delete")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "student not found", http.StatusNotFound)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			http.Error(w, "student not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete student %d: %s", id, err)
		http.Error(w, "error removing student", http.StatusInternalServerError)
		return
	}

	log.Debugf("student %d removed", id)
	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) writeStudent(w http.ResponseWriter, student *Student, err error, failMsg string) {
	switch {
	case errors.Is(err, ErrStudentNotFound):
		http.Error(w, "student not found", http.StatusNotFound)
	case err != nil:
		log.Errorf("%s: %s", failMsg, err)
		http.Error(w, failMsg, http.StatusInternalServerError)
	default:
		pkg.WriteJSON(w, student, http.StatusOK)
	}
}
