// Package testserver runs an in-process fake of the project-management
// backend for integration tests: bearer-token auth, project and task CRUD,
// and server-computed completion fields.
package testserver

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListEnvelope selects how list endpoints wrap their payload.
type ListEnvelope string

const (
	EnvelopeNone    ListEnvelope = ""
	EnvelopeContent ListEnvelope = "content"
	EnvelopeData    ListEnvelope = "data"
)

type projectRecord struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type taskRecord struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     string    `json:"dueDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type projectResponse struct {
	projectRecord
	TotalTasks         int `json:"totalTasks"`
	CompletedTasks     int `json:"completedTasks"`
	ProgressPercentage int `json:"progressPercentage"`
}

// TestServer is the fake backend plus direct access to its state.
type TestServer struct {
	Server *httptest.Server

	// Envelope wraps list responses when set, to exercise the client's
	// normalization.
	Envelope ListEnvelope

	mu       sync.Mutex
	users    map[string]string // email -> password
	tokens   map[string]string // token -> email
	projects map[int64]*projectRecord
	tasks    map[int64]*taskRecord
	nextID   int64
}

// New starts a fake backend and registers cleanup on t.
func New(t *testing.T) *TestServer {
	t.Helper()

	ts := &TestServer{
		users:    map[string]string{},
		tokens:   map[string]string{},
		projects: map[int64]*projectRecord{},
		tasks:    map[int64]*taskRecord{},
	}

	r := chi.NewRouter()
	r.Post("/auth/register", ts.handleRegister)
	r.Post("/auth/login", ts.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(ts.authMiddleware)
		r.Get("/projects", ts.handleListProjects)
		r.Post("/projects", ts.handleCreateProject)
		r.Get("/projects/{id}", ts.handleGetProject)
		r.Put("/projects/{id}", ts.handleUpdateProject)
		r.Delete("/projects/{id}", ts.handleDeleteProject)
		r.Get("/projects/{id}/tasks", ts.handleListTasks)
		r.Post("/projects/{id}/tasks", ts.handleCreateTask)
		r.Put("/tasks/{id}", ts.handleUpdateTask)
		r.Delete("/tasks/{id}", ts.handleDeleteTask)
		r.Patch("/tasks/{id}/complete", ts.handleCompleteTask)
	})

	ts.Server = httptest.NewServer(r)
	t.Cleanup(ts.Server.Close)
	return ts
}

// URL returns the base URL of the fake backend.
func (ts *TestServer) URL() string {
	return ts.Server.URL
}

// AddUser seeds an account directly.
func (ts *TestServer) AddUser(email, password string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.users[email] = password
}

// SeedProject inserts a project directly and returns its id.
func (ts *TestServer) SeedProject(title, description string) int64 {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.nextID++
	id := ts.nextID
	ts.projects[id] = &projectRecord{ID: id, Title: title, Description: description, CreatedAt: time.Now().UTC()}
	return id
}

// SeedTask inserts a task directly and returns its id.
func (ts *TestServer) SeedTask(projectID int64, title, status string) int64 {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.nextID++
	id := ts.nextID
	ts.tasks[id] = &taskRecord{ID: id, ProjectID: projectID, Title: title, Status: status, CreatedAt: time.Now().UTC()}
	return id
}

func (ts *TestServer) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if len(auth) <= len(prefix) || auth[:len(prefix)] != prefix {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		ts.mu.Lock()
		_, ok := ts.tokens[auth[len(prefix):]]
		ts.mu.Unlock()
		if !ok {
			http.Error(w, "invalid bearer token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (ts *TestServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if _, exists := ts.users[req.Email]; exists {
		http.Error(w, "user already exists", http.StatusConflict)
		return
	}
	ts.users[req.Email] = req.Password
	w.WriteHeader(http.StatusCreated)
}

func (ts *TestServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if password, ok := ts.users[req.Email]; !ok || password != req.Password {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
		return
	}
	token := uuid.NewString()
	ts.tokens[token] = req.Email
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (ts *TestServer) handleListProjects(w http.ResponseWriter, r *http.Request) {
	ts.mu.Lock()
	out := make([]projectResponse, 0, len(ts.projects))
	for _, p := range ts.projects {
		out = append(out, ts.projectResponseLocked(p))
	}
	envelope := ts.Envelope
	ts.mu.Unlock()

	// map iteration order is random; keep ids ascending for stable pages
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	writeList(w, envelope, out)
}

func (ts *TestServer) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	ts.mu.Lock()
	ts.nextID++
	p := &projectRecord{ID: ts.nextID, Title: req.Title, Description: req.Description, CreatedAt: time.Now().UTC()}
	ts.projects[p.ID] = p
	resp := ts.projectResponseLocked(p)
	ts.mu.Unlock()
	writeJSON(w, http.StatusCreated, resp)
}

func (ts *TestServer) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	ts.mu.Lock()
	p, ok := ts.projects[id]
	var resp projectResponse
	if ok {
		resp = ts.projectResponseLocked(p)
	}
	ts.mu.Unlock()
	if !ok {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (ts *TestServer) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	ts.mu.Lock()
	p, ok := ts.projects[id]
	var resp projectResponse
	if ok {
		p.Title = req.Title
		p.Description = req.Description
		resp = ts.projectResponseLocked(p)
	}
	ts.mu.Unlock()
	if !ok {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (ts *TestServer) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	ts.mu.Lock()
	_, ok := ts.projects[id]
	delete(ts.projects, id)
	for taskID, tk := range ts.tasks {
		if tk.ProjectID == id {
			delete(ts.tasks, taskID)
		}
	}
	ts.mu.Unlock()
	if !ok {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ts *TestServer) handleListTasks(w http.ResponseWriter, r *http.Request) {
	projectID := pathID(r)
	ts.mu.Lock()
	out := make([]taskRecord, 0)
	for _, tk := range ts.tasks {
		if tk.ProjectID == projectID {
			out = append(out, *tk)
		}
	}
	envelope := ts.Envelope
	ts.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	writeList(w, envelope, out)
}

func (ts *TestServer) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	projectID := pathID(r)
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		DueDate     string `json:"dueDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	ts.mu.Lock()
	if _, ok := ts.projects[projectID]; !ok {
		ts.mu.Unlock()
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	ts.nextID++
	tk := &taskRecord{
		ID:          ts.nextID,
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      "TODO",
		CreatedAt:   time.Now().UTC(),
	}
	ts.tasks[tk.ID] = tk
	resp := *tk
	ts.mu.Unlock()
	writeJSON(w, http.StatusCreated, resp)
}

func (ts *TestServer) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		DueDate     string `json:"dueDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	ts.mu.Lock()
	tk, ok := ts.tasks[id]
	var resp taskRecord
	if ok {
		tk.Title = req.Title
		tk.Description = req.Description
		tk.DueDate = req.DueDate
		resp = *tk
	}
	ts.mu.Unlock()
	if !ok {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (ts *TestServer) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	ts.mu.Lock()
	_, ok := ts.tasks[id]
	delete(ts.tasks, id)
	ts.mu.Unlock()
	if !ok {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ts *TestServer) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	ts.mu.Lock()
	tk, ok := ts.tasks[id]
	var resp taskRecord
	if ok {
		tk.Status = "DONE"
		resp = *tk
	}
	ts.mu.Unlock()
	if !ok {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (ts *TestServer) projectResponseLocked(p *projectRecord) projectResponse {
	resp := projectResponse{projectRecord: *p}
	for _, tk := range ts.tasks {
		if tk.ProjectID != p.ID {
			continue
		}
		resp.TotalTasks++
		if tk.Status == "DONE" {
			resp.CompletedTasks++
		}
	}
	if resp.TotalTasks > 0 {
		resp.ProgressPercentage = int(math.Round(float64(resp.CompletedTasks) / float64(resp.TotalTasks) * 100))
	}
	return resp
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeList[T any](w http.ResponseWriter, envelope ListEnvelope, list []T) {
	switch envelope {
	case EnvelopeContent:
		writeJSON(w, http.StatusOK, map[string]any{"content": list})
	case EnvelopeData:
		writeJSON(w, http.StatusOK, map[string]any{"data": list})
	default:
		writeJSON(w, http.StatusOK, list)
	}
}
