// Package ui serves a small web interface for generating passwords.
package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strconv"

	"github.com/dhamidi/pafw/generate"
	"github.com/dhamidi/pafw/words"
)

//go:embed static templates
var embeddedFS embed.FS

const maxCount = 100

type Server struct {
	store      *words.Store
	staticFS   fs.FS
	mux        *http.ServeMux
	templateFS fs.FS
	funcMap    template.FuncMap
}

type Option func(*Server)

// WithStore backs the UI with an existing word store.
func WithStore(store *words.Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

func NewServer(opts ...Option) (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	funcMap := template.FuncMap{
		"inc": func(n int) int {
			return n + 1
		},
	}

	if _, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html"); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		staticFS:   staticFS,
		mux:        http.NewServeMux(),
		templateFS: templateFS,
		funcMap:    funcMap,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = words.NewStore()
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("POST /generate", s.handleGenerate)
	s.mux.HandleFunc("GET /generate", s.handleGenerate)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// render re-parses templates on every request so the ui/templates overlay
// directory can be edited without restarting the server.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	tmpl.ExecuteTemplate(w, name, data)
}

type indexData struct {
	Patterns []words.Pattern
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	patterns, err := s.store.Patterns()
	if err != nil {
		patterns = nil
	}
	s.render(w, "index.html", indexData{Patterns: patterns})
}

// Result is one generated password together with the template that produced
// it.
type Result struct {
	Password string `json:"password"`
	Pattern  string `json:"pattern"`
}

type resultsData struct {
	Pattern     string
	ShowPattern bool
	Results     []Result
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
		return
	}

	p := r.FormValue("pattern")
	count := parseCount(r.FormValue("count"))

	g := generate.New(generate.WithStore(s.store))

	results := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		password := g.Generate(p)
		results = append(results, Result{
			Password: password,
			Pattern:  g.LastPattern,
		})
	}

	if r.Header.Get("Accept") == "application/json" {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
		return
	}

	s.render(w, "results.html", resultsData{
		Pattern:     p,
		ShowPattern: r.FormValue("show_pattern") != "",
		Results:     results,
	})
}

func parseCount(value string) int {
	count, err := strconv.Atoi(value)
	if err != nil || count < 1 {
		return 1
	}
	if count > maxCount {
		return maxCount
	}
	return count
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

// overlayFS prefers files from a local directory and falls back to the
// embedded copies.
func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}
