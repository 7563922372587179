package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/stretch/internal/middleware"
	"github.com/joshua-takyi/stretch/internal/models"
	"github.com/joshua-takyi/stretch/internal/services"
	"github.com/joshua-takyi/stretch/internal/testutil"
	"github.com/joshua-takyi/stretch/internal/views"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	repo   *models.SQLiteRepo
	exec   func(query string, args ...any)
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, db := testutil.NewTestRepo(t)
	es := services.NewEventService(repo, testutil.FixedClock())
	ss := services.NewSettingsService(repo)

	r := gin.New()
	r.SetHTMLTemplate(views.MustLoad())
	r.Use(middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))

	r.GET("/", Home())
	r.GET("/organiser-home", OrganiserHome(es, ss))
	r.POST("/events/create", CreateEvent(es))
	r.GET("/events/:id/edit", EditEvent(es))
	r.POST("/events/:id/publish", PublishEvent(es))
	r.POST("/events/:id/update", UpdateEvent(es))
	r.POST("/events/:id/delete", DeleteEvent(es))
	r.GET("/site-settings", SiteSettingsPage(ss))
	r.POST("/site-settings", UpdateSiteSettings(ss))
	r.GET("/attendee", AttendeeHome(es, ss))

	return &testServer{
		router: r,
		repo:   repo,
		exec: func(query string, args ...any) {
			_, err := db.ExecContext(context.Background(), query, args...)
			require.NoError(t, err)
		},
	}
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *testServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func updateForm() url.Values {
	return url.Values{
		"title":              {"Sunrise Flow"},
		"description":        {"Gentle morning class"},
		"date":               {"2025-07-04"},
		"fullQuantity":       {"20"},
		"fullPrice":          {"12.50"},
		"concessionQuantity": {"5"},
		"concessionPrice":    {"8"},
	}
}

func TestHome(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/organiser-home")
}

func TestCreateEvent_RedirectsToEdit(t *testing.T) {
	s := newTestServer(t)

	rec := s.post("/events/create", nil)
	require.Equal(t, http.StatusFound, rec.Code)

	var id int64
	_, err := fmt.Sscanf(rec.Header().Get("Location"), "/events/%d/edit", &id)
	require.NoError(t, err)

	event, err := s.repo.GetEventByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "New Event", event.Title)
	assert.Equal(t, "2025-12-31", event.Date)
	assert.Equal(t, models.StatusDraft, event.Status)
	assert.Nil(t, event.PublishedAt)

	edit := s.get(rec.Header().Get("Location"))
	assert.Equal(t, http.StatusOK, edit.Code)
	assert.Contains(t, edit.Body.String(), `value="New Event"`)
}

func TestEditEvent_NotFound(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/events/404/edit")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Event not found", rec.Body.String())
}

func TestEditEvent_InvalidID(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/events/abc/edit")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditEvent_MalformedTicketsShowSkeleton(t *testing.T) {
	s := newTestServer(t)
	id := testutil.InsertEvent(t, s.repo, "Broken", "2025-03-03")
	s.exec("UPDATE events SET tickets = '{{{' WHERE id = ?", id)

	rec := s.get(fmt.Sprintf("/events/%d/edit", id))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="fullQuantity" value="0"`)
	assert.Contains(t, body, `name="concessionQuantity" value="0"`)
}

func TestUpdateEvent(t *testing.T) {
	s := newTestServer(t)
	id := testutil.InsertEvent(t, s.repo, models.PlaceholderTitle, models.PlaceholderDate)

	rec := s.post(fmt.Sprintf("/events/%d/update", id), updateForm())
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/organiser-home", rec.Header().Get("Location"))

	event, err := s.repo.GetEventByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Sunrise Flow", event.Title)
	assert.Equal(t, "2025-07-04", event.Date)
	assert.Equal(t, 20, event.Tickets.Tier(models.TierFull).Quantity)
	assert.True(t, decimal.RequireFromString("12.5").Equal(event.Tickets.Tier(models.TierFull).Price))
	require.NotNil(t, event.ModifiedAt)
}

func TestUpdateEvent_ValidationFailure(t *testing.T) {
	s := newTestServer(t)
	id := testutil.InsertEvent(t, s.repo, "Keep me", "2025-03-03")

	form := updateForm()
	form.Set("title", "")

	rec := s.post(fmt.Sprintf("/events/%d/update", id), form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields required", rec.Body.String())

	form = updateForm()
	form.Set("fullQuantity", "many")

	rec = s.post(fmt.Sprintf("/events/%d/update", id), form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	event, err := s.repo.GetEventByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Keep me", event.Title)
}

func TestUpdateEvent_NotFound(t *testing.T) {
	s := newTestServer(t)

	rec := s.post("/events/99/update", updateForm())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublishEvent(t *testing.T) {
	s := newTestServer(t)
	id := testutil.InsertEvent(t, s.repo, "Flow", "2025-03-03")

	for i := 0; i < 2; i++ {
		rec := s.post(fmt.Sprintf("/events/%d/publish", id), nil)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/organiser-home", rec.Header().Get("Location"))
	}

	event, err := s.repo.GetEventByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, event.Status)
	require.NotNil(t, event.PublishedAt)
}

func TestPublishEvent_MissingIDStillRedirects(t *testing.T) {
	s := newTestServer(t)

	rec := s.post("/events/5/publish", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/organiser-home", rec.Header().Get("Location"))
}

func TestDeleteEvent(t *testing.T) {
	s := newTestServer(t)
	id := testutil.InsertEvent(t, s.repo, "Gone soon", "2025-03-03")

	rec := s.post(fmt.Sprintf("/events/%d/delete", id), nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/organiser-home", rec.Header().Get("Location"))

	edit := s.get(fmt.Sprintf("/events/%d/edit", id))
	assert.Equal(t, http.StatusNotFound, edit.Code)

	again := s.post(fmt.Sprintf("/events/%d/delete", id), nil)
	assert.Equal(t, http.StatusFound, again.Code)
}

func TestOrganiserHome(t *testing.T) {
	s := newTestServer(t)
	testutil.InsertEvent(t, s.repo, "Draft Class", "2025-05-05")
	testutil.InsertPublishedEvent(t, s.repo, "Live Class", "2025-04-04")

	rec := s.get("/organiser-home")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, models.DefaultSiteName)
	assert.Contains(t, body, "Draft Class")
	assert.Contains(t, body, "Live Class")
	assert.Less(t, strings.Index(body, "Live Class"), strings.Index(body, "Draft Class"))
}

func TestOrganiserHome_SelfHealsSettings(t *testing.T) {
	s := newTestServer(t)
	s.exec("DELETE FROM site_settings")

	rec := s.get("/organiser-home")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), models.DefaultSiteName)
}

func TestSiteSettingsPage(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/site-settings")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), models.DefaultSiteDescription)
}

func TestSiteSettingsPage_MissingRowRedirectsToSelf(t *testing.T) {
	s := newTestServer(t)
	s.exec("DELETE FROM site_settings")

	rec := s.get("/site-settings")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/site-settings", rec.Header().Get("Location"))

	follow := s.get("/site-settings")
	assert.Equal(t, http.StatusOK, follow.Code)
}

func TestUpdateSiteSettings(t *testing.T) {
	s := newTestServer(t)

	rec := s.post("/site-settings", url.Values{"name": {"Bend"}, "description": {"Flexible classes"}})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/organiser-home", rec.Header().Get("Location"))

	settings, err := s.repo.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bend", settings.Name)
	assert.Equal(t, "Flexible classes", settings.Description)
}

func TestUpdateSiteSettings_RejectsBlank(t *testing.T) {
	s := newTestServer(t)

	rec := s.post("/site-settings", url.Values{"name": {"Bend"}, "description": {""}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please fill in all fields", rec.Body.String())

	settings, err := s.repo.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), *settings)
}

func TestAttendeeHome(t *testing.T) {
	s := newTestServer(t)
	testutil.InsertPublishedEvent(t, s.repo, "Autumn Flow", "2025-10-01")
	testutil.InsertEvent(t, s.repo, "Secret Draft", "2025-01-01")
	testutil.InsertPublishedEvent(t, s.repo, "Spring Flow", "2025-04-01")

	rec := s.get("/attendee")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.NotContains(t, body, "Secret Draft")
	assert.Less(t, strings.Index(body, "Spring Flow"), strings.Index(body, "Autumn Flow"))
	assert.Contains(t, body, models.DefaultSiteName)
}

func TestStorageFailure_IsServerError(t *testing.T) {
	s := newTestServer(t)
	s.exec("DROP TABLE events")

	rec := s.get("/attendee")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", rec.Body.String())
}
