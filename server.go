package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"todo-console/internal/manager"
)

// NewRouter собирает служебный HTTP-роутер: метрики Prometheus,
// healthcheck и read-only список задач для отладки. Роутер поднимается
// только по явному флагу, основное приложение живет в консоли.
func NewRouter(tm *manager.TaskManager) *chi.Mux {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", healthHandler)
	r.Get("/tasks", listTasksHandler(tm))
	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func listTasksHandler(tm *manager.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		// GetAllTasks отдает копию, менеджер отсюда не изменить.
		if err := json.NewEncoder(w).Encode(tm.GetAllTasks()); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}
}
