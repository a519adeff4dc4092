package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/treinos/internal/telemetry/tracing"
	"github.com/2beens/treinos/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Create(ctx context.Context, exercise Exercise) (*Exercise, error)
	List(ctx context.Context) ([]Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	Update(ctx context.Context, exercise Exercise) (*Exercise, error)
	Delete(ctx context.Context, id int) error
	ListByWorkout(ctx context.Context, workoutID int) ([]Exercise, error)
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercicios", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercicios", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercicios/exercicios_treino/{workout_id:[0-9]+}", handler.HandleListByWorkout).Methods("GET", "OPTIONS").Name("list-workout-exercises")
	r.HandleFunc("/exercicios/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercicios/{id:[0-9]+}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercicios/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.create")
	defer span.End()

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("new exercise, unmarshal json body: %s", err)
		http.Error(w, "error inserting exercise", http.StatusInternalServerError)
		return
	}

	created, err := handler.repo.Create(ctx, exercise)
	if err != nil {
		log.Errorf("failed to insert exercise for workout %d (%s): %s", exercise.WorkoutID, pkg.DescribeStoreError(err), err)
		http.Error(w, "error inserting exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise added: %d", created.ID)
	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exercises, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("failed to list exercises: %s", err)
		http.Error(w, "error fetching exercises", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}

	exercise, err := handler.repo.Get(ctx, id)
	writeExercise(w, exercise, err, "error fetching exercise")
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("update exercise %d, unmarshal json body: %s", id, err)
		http.Error(w, "error updating exercise", http.StatusInternalServerError)
		return
	}
	exercise.ID = id

	updated, err := handler.repo.Update(ctx, exercise)
	writeExercise(w, updated, err, "error updating exercise")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete exercise %d: %s", id, err)
		http.Error(w, "error removing exercise", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleListByWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.listbyworkout")
	defer span.End()

	workoutID, err := pkg.IntPathVar(r, "workout_id")
	if err != nil {
		http.Error(w, "no exercises found for workout", http.StatusNotFound)
		return
	}

	exercises, err := handler.repo.ListByWorkout(ctx, workoutID)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "no exercises found for workout", http.StatusNotFound)
			return
		}
		log.Errorf("failed to list exercises of workout %d: %s", workoutID, err)
		http.Error(w, "error fetching workout exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func writeExercise(w http.ResponseWriter, exercise *Exercise, err error, failMsg string) {
	switch {
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusNotFound)
	case err != nil:
		log.Errorf("%s: %s", failMsg, err)
		http.Error(w, failMsg, http.StatusInternalServerError)
	default:
		pkg.WriteJSON(w, exercise, http.StatusOK)
	}
}
