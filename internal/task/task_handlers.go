package task

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"taskboard/internal/respond"
	"taskboard/middleware"

	"github.com/gorilla/mux"
)

type CreateTaskRequest struct {
	Title string `json:"title"`
}

type TaskHandlers struct {
	Service *TaskService
}

func NewTaskHandlers(service *TaskService) *TaskHandlers {
	return &TaskHandlers{Service: service}
}

func (h *TaskHandlers) GetTasks(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusForbidden, "Token required")
		return
	}

	tasks, err := h.Service.ListTasks(r.Context(), identity.UserID)
	if err != nil {
		log.Printf("List tasks for %s failed: %v", identity.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "Error fetching tasks")
		return
	}

	respond.JSON(w, http.StatusOK, tasks)
}

func (h *TaskHandlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusForbidden, "Token required")
		return
	}

	// An empty body is an empty request
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	task, err := h.Service.AddTask(r.Context(), identity.UserID, req.Title)
	if err != nil {
		log.Printf("Add task for %s failed: %v", identity.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "Error adding task")
		return
	}

	respond.JSON(w, http.StatusOK, task)
}

func (h *TaskHandlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusForbidden, "Token required")
		return
	}

	taskID := mux.Vars(r)["id"]

	err := h.Service.DeleteTask(r.Context(), identity.UserID, taskID)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			respond.Error(w, http.StatusForbidden, "Not allowed to delete this task")
			return
		}
		log.Printf("Delete task %s for %s failed: %v", taskID, identity.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "Error deleting task")
		return
	}

	respond.Message(w, http.StatusOK, "Deleted")
}
