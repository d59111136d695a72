package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/models/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

const defaultGuests = 2

// BookingCreator submits guest bookings to the booking API.
type BookingCreator interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingSummary, error)
}

// BookingForm holds the submitted form values so they can be re-rendered.
type BookingForm struct {
	Name    string
	Email   string
	Phone   string
	Date    string
	Time    string
	Guests  int
	Message string
}

type pageData struct {
	Content
	Form      BookingForm
	Error     string
	Confirmed *dto.BookingSummary
	Email     string
}

// Site renders the café page and relays booking submissions.
type Site struct {
	content Content
	client  BookingCreator
	tmpl    *template.Template
	mux     *http.ServeMux
}

// NewSite parses the embedded templates and registers the page routes.
func NewSite(content Content, client BookingCreator) (*Site, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	s := &Site{content: content, client: client, tmpl: tmpl, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /book", s.handleBook)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("/", s.handleNotFound)
	return s, nil
}

func (s *Site) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Site) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pageData{Content: s.content, Form: BookingForm{Guests: defaultGuests}})
}

func (s *Site) handleBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, pageData{Content: s.content, Form: BookingForm{Guests: defaultGuests}, Error: "Invalid form submission"})
		return
	}
	form := parseForm(r)
	data := pageData{Content: s.content, Form: form}

	if form.Name == "" || form.Email == "" || form.Phone == "" || form.Date == "" || form.Time == "" {
		data.Error = "Please fill in all required fields"
		s.render(w, r, http.StatusBadRequest, data)
		return
	}

	summary, err := s.client.CreateBooking(r.Context(), form.request())
	if err != nil {
		status := http.StatusBadGateway
		data.Error = "Failed to create booking. Please try again."
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if apiErr.Status < http.StatusInternalServerError {
				status = apiErr.Status
			}
			data.Error = apiErr.Message
		}
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("booking submission failed")
		s.render(w, r, status, data)
		return
	}

	zerolog.Ctx(r.Context()).Info().Int64("booking_id", summary.ID).Msg("booking submitted")
	s.render(w, r, http.StatusOK, pageData{
		Content:   s.content,
		Form:      BookingForm{Guests: defaultGuests},
		Confirmed: &summary,
		Email:     form.Email,
	})
}

func (s *Site) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Site) handleNotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "page not found", http.StatusNotFound)
}

// render executes into a buffer first so a template failure still yields a
// clean 500.
func (s *Site) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func parseForm(r *http.Request) BookingForm {
	guests, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("guests")))
	if err != nil {
		guests = defaultGuests
	}
	return BookingForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Date:    strings.TrimSpace(r.PostFormValue("date")),
		Time:    strings.TrimSpace(r.PostFormValue("time")),
		Guests:  guests,
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
}

func (f BookingForm) request() dto.CreateBookingRequest {
	guests := f.Guests
	req := dto.CreateBookingRequest{
		Name:           f.Name,
		Email:          f.Email,
		Phone:          f.Phone,
		Date:           f.Date,
		Time:           f.Time,
		NumberOfPeople: &guests,
	}
	if f.Message != "" {
		msg := f.Message
		req.SpecialRequest = &msg
	}
	return req
}
