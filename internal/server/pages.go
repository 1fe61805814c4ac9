package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/johanna-sandberg/restaurant-booking/internal/models"
	"github.com/johanna-sandberg/restaurant-booking/internal/validation"
	"github.com/johanna-sandberg/restaurant-booking/internal/webui"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"datetext": webui.DateTimeText,
}).ParseFS(templatesFS, "templates/*.html"))

type bookTablePageData struct {
	Form *webui.Form
}

type adminPageData struct {
	Err        string
	NoBookings bool
	View       *webui.AdminView
	PrevURL    string
	NextURL    string
}

// HomePageHandler renders the landing page.
func (s *Server) HomePageHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "home.html", nil)
}

// BookTablePageHandler shows the empty booking form.
func (s *Server) BookTablePageHandler(w http.ResponseWriter, r *http.Request) {
	form := webui.NewForm(s.submitBooking).WithClock(s.now)
	form.Mount()
	s.renderPage(w, "book_table.html", bookTablePageData{Form: form})
}

// BookTableSubmitHandler runs the form state machine over a posted form and
// re-renders it with either field errors or the outcome banner.
func (s *Server) BookTableSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := webui.NewForm(s.submitBooking).WithClock(s.now)
	form.Mount()
	for _, field := range []string{"name", "email", "guests", "dateTime"} {
		form.SetField(field, r.PostFormValue(field))
	}
	form.Submit()

	s.renderPage(w, "book_table.html", bookTablePageData{Form: form})
}

// submitBooking is the form's creation callback; it shares the store path
// with the JSON endpoint.
func (s *Server) submitBooking(result validation.Result) (*models.Booking, error) {
	booking := &models.Booking{
		Name:     result.Name,
		Email:    result.Email,
		Guests:   result.Guests,
		DateTime: result.DateTime,
	}
	if err := s.db.CreateBooking(booking); err != nil {
		s.log.Error().Err(err).Msg("creating booking failed")
		return nil, err
	}
	return booking, nil
}

// AdminPageHandler fetches the booking list once and renders the filtered,
// paginated view. Filter and page travel in the query string.
func (s *Server) AdminPageHandler(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.db.GetAllBookings()
	if err != nil {
		s.log.Error().Err(err).Msg("listing bookings failed")
		s.renderPage(w, "admin.html", adminPageData{Err: "Failed to fetch bookings"})
		return
	}
	if len(bookings) == 0 {
		s.renderPage(w, "admin.html", adminPageData{NoBookings: true})
		return
	}

	view := webui.NewAdminView(bookings)
	view.SetFilter(r.URL.Query().Get("date"))
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		view.SetPage(page)
	}

	s.renderPage(w, "admin.html", adminPageData{
		View:    view,
		PrevURL: adminURL(view.Filter(), view.Page()-1),
		NextURL: adminURL(view.Filter(), view.Page()+1),
	})
}

func adminURL(date string, page int) string {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	q.Set("page", strconv.Itoa(page))
	return "/admin?" + q.Encode()
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("rendering page failed")
		fmt.Fprint(w, "Internal server error")
	}
}
