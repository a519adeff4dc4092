package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/treinos/internal/students"
	"github.com/2beens/treinos/internal/telemetry/metrics"
	"github.com/2beens/treinos/internal/telemetry/tracing"
	"github.com/2beens/treinos/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Create(ctx context.Context, params WorkoutParams) (*Workout, error)
	List(ctx context.Context) ([]Workout, error)
	Get(ctx context.Context, id int) (*Workout, error)
	Update(ctx context.Context, id int, params WorkoutParams) (*Workout, error)
	MarkExecuted(ctx context.Context, id int) (*Workout, error)
	Delete(ctx context.Context, id int) error
}

type workoutsAggregator interface {
	WorkoutsWithExercisesByTaxID(ctx context.Context, taxID string) ([]WorkoutWithExercises, error)
}

type Handler struct {
	repo       workoutsRepo
	aggregator workoutsAggregator
	metrics    *metrics.Manager
}

func NewHandler(
	repo workoutsRepo,
	aggregator workoutsAggregator,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:       repo,
		aggregator: aggregator,
		metrics:    metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/treinos", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/treinos", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/treinos/exercicios/{tax_id}", handler.HandleWithExercisesByTaxID).Methods("GET", "OPTIONS").Name("student-workouts-with-exercises")
	r.HandleFunc("/treinos/{id:[0-9]+}/executar", handler.HandleMarkExecuted).Methods("PUT", "OPTIONS").Name("execute-workout")
	r.HandleFunc("/treinos/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/treinos/{id:[0-9]+}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/treinos/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	var params WorkoutParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("new workout, unmarshal json body: %s", err)
		http.Error(w, "error inserting workout", http.StatusInternalServerError)
		return
	}

	created, err := handler.repo.Create(ctx, params)
	if err != nil {
		log.Errorf("failed to insert workout for student %d (%s): %s", params.StudentID, pkg.DescribeStoreError(err), err)
		http.Error(w, "error inserting workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: %d", created.ID)
	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	workouts, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("failed to list workouts: %s", err)
		http.Error(w, "error fetching workouts", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}

	workout, err := handler.repo.Get(ctx, id)
	writeWorkout(w, workout, err, "error fetching workout")
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}

	var params WorkoutParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("update workout %d, unmarshal json body: %s", id, err)
		http.Error(w, "error updating workout", http.StatusInternalServerError)
		return
	}

	updated, err := handler.repo.Update(ctx, id, params)
	writeWorkout(w, updated, err, "error updating workout")
}

func (handler *Handler) HandleMarkExecuted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.markexecuted")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}

	workout, err := handler.repo.MarkExecuted(ctx, id)
	if err == nil && handler.metrics != nil {
		handler.metrics.CounterWorkoutsExecuted.Inc()
	}
	writeWorkout(w, workout, err, "error updating workout last execution")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout %d: %s", id, err)
		http.Error(w, "error removing workout", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleWithExercisesByTaxID(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.withexercises")
	defer span.End()

	taxID := mux.Vars(r)["tax_id"]
	result, err := handler.aggregator.WorkoutsWithExercisesByTaxID(ctx, taxID)
	if err != nil {
		if errors.Is(err, students.ErrStudentNotFound) {
			http.Error(w, "student not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workouts with exercises for student [%s]: %s", taxID, err)
		http.Error(w, "error fetching student workouts and exercises", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("workouts.count", len(result)))
	pkg.WriteJSON(w, result, http.StatusOK)
}

func writeWorkout(w http.ResponseWriter, workout *Workout, err error, failMsg string) {
	switch {
	case errors.Is(err, ErrWorkoutNotFound):
		http.Error(w, "workout not found", http.StatusNotFound)
	case err != nil:
		log.Errorf("%s: %s", failMsg, err)
		http.Error(w, failMsg, http.StatusInternalServerError)
	default:
		pkg.WriteJSON(w, workout, http.StatusOK)
	}
}
