// Package web serves the HTML pages of the farewell application: the public
// per-person farewell page and a read-only admin dashboard.
//
// Pages are rendered server-side with html/template from templates embedded in
// the binary. Mutations happen through the REST API or the CLI; the dashboard
// only links out to pages and QR codes.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/desertthunder/farewell/internal/models"
	"github.com/desertthunder/farewell/internal/shared"
	"github.com/desertthunder/farewell/internal/store"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Pages renders the server-side HTML views over a [store.Storage].
type Pages struct {
	store     store.Storage
	logger    *log.Logger
	baseURL   string
	templates *template.Template
}

// personView is the template payload for the public farewell page.
type personView struct {
	Person     models.Person
	Paragraphs []string
	QRCodeURL  string
	PageURL    string
}

// dashboardView is the template payload for the admin dashboard.
type dashboardView struct {
	Persons []models.Person
	BaseURL string
}

// New creates the page renderer. Template parse failures are programmer
// errors and panic at startup rather than at request time.
func New(s store.Storage, logger *log.Logger, baseURL string) *Pages {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Pages{
		store:     s,
		logger:    logger,
		baseURL:   baseURL,
		templates: template.Must(template.ParseFS(templateFiles, "templates/*.html")),
	}
}

// RegisterRoutes mounts the HTML routes on the router.
func (p *Pages) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/person/{id}", p.handlePerson).Methods(http.MethodGet)
	r.HandleFunc("/", p.handleDashboard).Methods(http.MethodGet)
}

func (p *Pages) handlePerson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}

	person, found, err := p.store.GetPerson(id)
	if err != nil {
		p.logger.Error("failed to fetch person for page", "id", id, "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	if !found {
		http.NotFound(w, r)
		return
	}

	view := personView{
		Person:     person,
		Paragraphs: splitParagraphs(person.Message),
		QRCodeURL:  p.baseURL + "/api/persons/" + strconv.Itoa(id) + "/qr",
		PageURL:    p.baseURL + "/person/" + strconv.Itoa(id),
	}
	p.render(w, "person.html", view)
}

func (p *Pages) handleDashboard(w http.ResponseWriter, r *http.Request) {
	persons, err := p.store.GetAllPersons()
	if err != nil {
		p.logger.Error("failed to fetch persons for dashboard", "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	p.render(w, "dashboard.html", dashboardView{Persons: persons, BaseURL: p.baseURL})
}

func (p *Pages) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.templates.ExecuteTemplate(w, name, data); err != nil {
		// Headers are already out; all that is left is logging.
		p.logger.Error("failed to render template", "template", name, "error", err)
	}
}

// splitParagraphs breaks a farewell message on blank lines, dropping empty
// segments so stray whitespace never renders as an empty paragraph.
func splitParagraphs(message string) []string {
	parts := strings.Split(strings.ReplaceAll(message, "\r\n", "\n"), "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}
