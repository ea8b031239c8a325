/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package reqres is an in-memory rendition of the public ReqRes API.  It
// lets the API suites run hermetically, and backs the client unit tests.
package reqres

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
)

const (
	// timestampFormat matches the millisecond precision ISO timestamps
	// ReqRes hands back for creations and updates.
	timestampFormat = "2006-01-02T15:04:05.000Z"

	// maxDelay caps the artificial latency a client can ask for.
	maxDelay = 10 * time.Second
)

// Options allows the service to be configured on the CLI.
type Options struct {
	// ListenAddress is where the service listens.
	ListenAddress string

	// ReadHeaderTimeout bounds how long a client may take sending headers.
	ReadHeaderTimeout time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":8080", "API listener address.")
	f.DurationVar(&o.ReadHeaderTimeout, "read-header-timeout", 5*time.Second, "How long to wait for request headers.")
}

// Server serves the fake API.
type Server struct {
	logger logr.Logger

	// nextID hands out identifiers for created users, nothing is stored.
	nextID atomic.Int64
}

// New returns a new server.
func New(logger logr.Logger) *Server {
	s := &Server{
		logger: logger,
	}

	s.nextID.Store(100)

	return s
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.logRequests)
	router.Use(delay)

	router.Route("/api", func(r chi.Router) {
		r.Get("/users", s.listUsers)
		r.Post("/users", s.createUser)
		r.Get("/users/{id}", s.getUser)
		r.Put("/users/{id}", s.updateUser)
		r.Patch("/users/{id}", s.updateUser)
		r.Delete("/users/{id}", s.deleteUser)
		r.Get("/unknown", s.listResources)
		r.Get("/unknown/{id}", s.getResource)
		r.Post("/register", s.register)
		r.Post("/login", s.login)
	})

	return router
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("request served", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start))
	})
}

// delay emulates a slow service when the client passes a delay in seconds.
func delay(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seconds, err := strconv.Atoi(r.URL.Query().Get("delay"))
		if err != nil || seconds <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		d := min(time.Duration(seconds)*time.Second, maxDelay)

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-r.Context().Done():
			return
		case <-timer.C:
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSONResponse writes the body without a trailing newline, clients
// compare empty objects byte for byte.
func writeJSONResponse(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_, _ = w.Write(data)
}

// writeNotFound mirrors ReqRes returning an empty object for missing items.
func writeNotFound(w http.ResponseWriter) {
	writeJSONResponse(w, http.StatusNotFound, struct{}{})
}

func writeError(w http.ResponseWriter, message string) {
	writeJSONResponse(w, http.StatusBadRequest, Error{Error: message})
}

// positiveQuery reads an integer query parameter, falling back to the default
// for anything missing or non-positive.
func positiveQuery(r *http.Request, name string, defaultValue int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || value <= 0 {
		return defaultValue
	}

	return value
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}

	return id, true
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	page := positiveQuery(r, "page", 1)
	perPage := positiveQuery(r, "per_page", DefaultPerPage)

	writeJSONResponse(w, http.StatusOK, paginate(users, page, perPage))
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	u, ok := findUser(id)
	if !ok {
		writeNotFound(w)
		return
	}

	writeJSONResponse(w, http.StatusOK, Single[User]{Data: u, Support: support()})
}

func (s *Server) listResources(w http.ResponseWriter, r *http.Request) {
	page := positiveQuery(r, "page", 1)
	perPage := positiveQuery(r, "per_page", DefaultPerPage)

	writeJSONResponse(w, http.StatusOK, paginate(resources, page, perPage))
}

func (s *Server) getResource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	resource, ok := findResource(id)
	if !ok {
		writeNotFound(w)
		return
	}

	writeJSONResponse(w, http.StatusOK, Single[Resource]{Data: resource, Support: support()})
}

// decodeObject reads an arbitrary JSON object, the service echoes back
// whatever it was sent.
func decodeObject(r *http.Request) (map[string]any, bool) {
	object := map[string]any{}

	if err := json.NewDecoder(r.Body).Decode(&object); err != nil {
		return nil, false
	}

	// A literal null decodes without error but leaves no object.
	if object == nil {
		return nil, false
	}

	return object, true
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	object, ok := decodeObject(r)
	if !ok {
		writeError(w, "invalid request body")
		return
	}

	object["id"] = strconv.FormatInt(s.nextID.Add(1), 10)
	object["createdAt"] = time.Now().UTC().Format(timestampFormat)

	writeJSONResponse(w, http.StatusCreated, object)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	object, ok := decodeObject(r)
	if !ok {
		writeError(w, "invalid request body")
		return
	}

	object["updatedAt"] = time.Now().UTC().Format(timestampFormat)

	writeJSONResponse(w, http.StatusOK, object)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

type credentials struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func decodeCredentials(r *http.Request) (*credentials, string) {
	var c credentials

	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		return nil, "invalid request body"
	}

	if c.Email == "" && c.Username == "" {
		return nil, "Missing email or username"
	}

	if c.Password == "" {
		return nil, "Missing password"
	}

	return &c, ""
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	c, reason := decodeCredentials(r)
	if c == nil {
		writeError(w, reason)
		return
	}

	u, ok := findUserByEmail(c.Email)
	if !ok {
		writeError(w, "Note: Only defined users succeed registration")
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"id":    u.ID,
		"token": Token,
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	c, reason := decodeCredentials(r)
	if c == nil {
		writeError(w, reason)
		return
	}

	if _, ok := findUserByEmail(c.Email); !ok {
		writeError(w, "user not found")
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"token": Token,
	})
}
