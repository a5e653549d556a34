package web

import (
	"net/http"

	"taskboard/internal/auth"
	"taskboard/internal/respond"
	"taskboard/internal/task"
	"taskboard/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	authHandlers *auth.AuthHandlers
	taskHandlers *task.TaskHandlers
	middleware   *middleware.Middleware
}

func NewRouter(authHandlers *auth.AuthHandlers, taskHandlers *task.TaskHandlers, m *middleware.Middleware) *Router {
	return &Router{
		authHandlers: authHandlers,
		taskHandlers: taskHandlers,
		middleware:   m,
	}
}

func (rt *Router) SetupRoutes() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", Health).Methods("GET")
	api.HandleFunc("/register", rt.authHandlers.RegisterHandler).Methods("POST")
	api.HandleFunc("/login", rt.authHandlers.LoginHandler).Methods("POST")

	// The gate wraps the whole /api/tasks tree so that unmatched methods
	// are rejected for a missing token before they get a 405.
	api.PathPrefix("/tasks").Handler(rt.middleware.AuthMiddleware(rt.taskRoutes()))

	r.NotFoundHandler = http.HandlerFunc(NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(MethodNotAllowed)

	return r
}

func (rt *Router) taskRoutes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/tasks", rt.taskHandlers.GetTasks).Methods("GET")
	r.HandleFunc("/api/tasks", rt.taskHandlers.CreateTask).Methods("POST")
	r.HandleFunc("/api/tasks/{id}", rt.taskHandlers.DeleteTask).Methods("DELETE")

	r.NotFoundHandler = http.HandlerFunc(NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(MethodNotAllowed)

	return r
}

func Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusNotFound, "Not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}
