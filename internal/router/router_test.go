package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/course-booking-api/internal/service"
	"github.com/noah-isme/course-booking-api/pkg/config"
)

var (
	userCols         = []string{"id", "firstName", "lastName", "email", "birthdate", "createdAt", "updatedAt"}
	courseCols       = []string{"id", "name", "price", "description", "category", "userId", "createdAt", "updatedAt"}
	availabilityCols = []string{"id", "date", "startTime", "endTime", "isAvailable", "userId", "createdAt", "updatedAt"}
	reservationCols  = []string{"id", "isCancelled", "isReviewed", "courseId", "userId", "availabilityId", "createdAt", "updatedAt"}
	reviewCols       = []string{"id", "rating", "comment", "reservationId", "createdAt", "updatedAt"}
)

type testServer struct {
	engine *gin.Engine
	mock   sqlmock.Sqlmock
}

func newTestServer(t *testing.T, mutate func(*config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp), sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db := sqlx.NewDb(sqlDB, "sqlmock")

	cfg := &config.Config{Env: config.EnvTest, Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	if mutate != nil {
		mutate(cfg)
	}
	metrics := service.NewMetricsService()
	engine := New(cfg, zap.NewNop(), metrics, Wire(db, metrics, zap.NewNop()))
	return &testServer{engine: engine, mock: mock}
}

func (s *testServer) do(t *testing.T, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" && bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("{")) {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w.Code, decoded
}

func TestBookingScenario(t *testing.T) {
	s := newTestServer(t, nil)
	now := time.Date(2024, 6, 18, 8, 0, 0, 0, time.UTC)

	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Users"`)).
		WithArgs("John", "Doe", "john@example.com", "1990-01-01", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, "John", "Doe", "john@example.com", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), now, now))
	status, body := s.do(t, http.MethodPost, "/users", `{"firstName":"John","lastName":"Doe","email":"john@example.com","birthdate":"1990-01-01"}`)
	require.Equal(t, http.StatusCreated, status)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, float64(1), user["id"])

	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Courses"`)).
		WillReturnRows(sqlmock.NewRows(courseCols).AddRow(1, "Math 101", 100, "Basic", "Math", 1, now, now))
	status, body = s.do(t, http.MethodPost, "/courses", `{"name":"Math 101","price":100,"description":"Basic","category":"Math","userId":1}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Math 101", body["course"].(map[string]interface{})["name"])

	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Availabilities"`)).
		WithArgs("2024-06-18", "09:00:00", "12:00:00", true, int64(1), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(availabilityCols).AddRow(1, time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC), "09:00:00", "12:00:00", true, 1, now, now))
	status, body = s.do(t, http.MethodPost, "/availabilities", `{"date":"2024-06-18","startTime":"09:00:00","endTime":"12:00:00","userId":1}`)
	require.Equal(t, http.StatusCreated, status)
	availability := body["availability"].(map[string]interface{})
	assert.Equal(t, true, availability["isAvailable"])
	assert.Equal(t, "2024-06-18", availability["date"])

	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Reservations"`)).
		WillReturnRows(sqlmock.NewRows(reservationCols).AddRow(1, false, false, 1, 1, 1, now, now))
	status, body = s.do(t, http.MethodPost, "/reservations", `{"courseId":1,"userId":1,"availabilityId":1}`)
	require.Equal(t, http.StatusCreated, status)
	reservation := body["reservation"].(map[string]interface{})
	assert.Equal(t, false, reservation["isCancelled"])
	assert.Equal(t, false, reservation["isReviewed"])

	for i := 0; i < 2; i++ {
		s.mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "Reservations" SET "isCancelled" = TRUE`)).
			WillReturnRows(sqlmock.NewRows(reservationCols).AddRow(1, true, false, 1, 1, 1, now, now))
		status, body = s.do(t, http.MethodPut, "/reservations/cancel/1", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Reservation cancelled successfully", body["message"])
		assert.Equal(t, true, body["reservation"].(map[string]interface{})["isCancelled"])
	}

	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Reviews"`)).
		WillReturnRows(sqlmock.NewRows(reviewCols).AddRow(1, 5, "Great!", 1, now, now))
	status, body = s.do(t, http.MethodPost, "/reviews", `{"rating":5,"comment":"Great!","reservationId":1}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(5), body["review"].(map[string]interface{})["rating"])

	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestDoubleBookingLeavesAvailabilityUntouched(t *testing.T) {
	s := newTestServer(t, nil)
	now := time.Now().UTC()

	for id := 1; id <= 2; id++ {
		s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Reservations"`)).
			WillReturnRows(sqlmock.NewRows(reservationCols).AddRow(id, false, false, 1, id, 7, now, now))
		status, _ := s.do(t, http.MethodPost, "/reservations", `{"courseId":1,"userId":1,"availabilityId":7}`)
		require.Equal(t, http.StatusCreated, status)
	}

	// Only the two inserts ran; nothing touched "Availabilities".
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestInvalidIdentifierNeverReachesStore(t *testing.T) {
	s := newTestServer(t, nil)

	paths := []struct{ method, path, msg string }{
		{http.MethodGet, "/users/abc", "Invalid user ID"},
		{http.MethodGet, "/courses/-3", "Invalid course ID"},
		{http.MethodGet, "/courses/avg-rating/x", "Invalid course ID"},
		{http.MethodDelete, "/availabilities/0", "Invalid availability ID"},
		{http.MethodPut, "/reservations/cancel/nope", "Invalid reservation ID"},
		{http.MethodGet, "/reservations/user/u1", "Invalid user ID"},
		{http.MethodGet, "/reviews/1e3", "Invalid review ID"},
	}
	for _, p := range paths {
		status, body := s.do(t, p.method, p.path, "")
		assert.Equal(t, http.StatusBadRequest, status, p.path)
		assert.Equal(t, p.msg, body["error"], p.path)
	}
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	s := newTestServer(t, nil)

	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "Courses" WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	status, body := s.do(t, http.MethodDelete, "/courses/4", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Course deleted successfully", body["message"])

	s.mock.ExpectQuery(regexp.QuoteMeta(`FROM "Courses" WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(courseCols))
	status, body = s.do(t, http.MethodGet, "/courses/4", "")
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found", body["error"])

	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestAverageRatingThroughRouter(t *testing.T) {
	s := newTestServer(t, nil)
	now := time.Now().UTC()

	s.mock.ExpectQuery(regexp.QuoteMeta(`FROM "Reservations" WHERE "courseId" = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(reservationCols).
			AddRow(1, false, true, 1, 1, 1, now, now).
			AddRow(2, false, true, 1, 2, 1, now, now))
	s.mock.ExpectQuery(regexp.QuoteMeta(`FROM "Reviews" WHERE "reservationId" = ANY($1)`)).
		WillReturnRows(sqlmock.NewRows(reviewCols).
			AddRow(1, 5, "Great", 1, now, now).
			AddRow(2, 4, "Good", 2, now, now))

	status, body := s.do(t, http.MethodGet, "/courses/avg-rating/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4.5, body["averageRating"])
	assert.Equal(t, float64(1), body["courseId"])
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestStaticRoutesWinOverIdentifiers(t *testing.T) {
	s := newTestServer(t, nil)
	now := time.Now().UTC()

	s.mock.ExpectQuery(regexp.QuoteMeta(`FROM "Reservations" WHERE "isCancelled" = FALSE`)).
		WillReturnRows(sqlmock.NewRows(reservationCols).AddRow(1, false, false, 1, 1, 1, now, now))
	status, body := s.do(t, http.MethodGet, "/reservations/active", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["reservations"], 1)

	s.mock.ExpectQuery(regexp.QuoteMeta(`WHERE LOWER(email) = LOWER($1)`)).
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, "John", "Doe", "john@example.com", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), now, now))
	status, body = s.do(t, http.MethodGet, "/users/email/john@example.com", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "John", body["user"].(map[string]interface{})["firstName"])

	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestReservationsByMalformedDate(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodGet, "/reservations/date/18-06-2024", "")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid date format, expected YYYY-MM-DD", body["error"])
}

func TestOpsRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	s.mock.ExpectPing()
	status, _ = s.do(t, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusOK, status)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `path="/health"`)
}

func TestAPIPrefix(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) { cfg.APIPrefix = "/api/v1" })
	now := time.Now().UTC()

	s.mock.ExpectQuery(regexp.QuoteMeta(`FROM "Reviews" ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(reviewCols).AddRow(1, 5, nil, nil, now, now))
	status, body := s.do(t, http.MethodGet, "/api/v1/reviews", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["reviews"], 1)

	status, _ = s.do(t, http.MethodGet, "/reviews", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestNonPositiveBodyIDsNeverReachStore(t *testing.T) {
	s := newTestServer(t, nil)

	requests := []struct{ method, path, body string }{
		{http.MethodPost, "/reservations", `{"courseId":0,"userId":0,"availabilityId":0}`},
		{http.MethodPut, "/reservations/1", `{"courseId":1,"userId":-2,"availabilityId":3}`},
		{http.MethodPost, "/courses", `{"name":"Math","price":10,"description":"Basic","userId":0}`},
		{http.MethodPost, "/availabilities", `{"date":"2024-06-18","startTime":"09:00","endTime":"10:00","userId":-1}`},
		{http.MethodPost, "/reviews", `{"rating":5,"comment":"Great","reservationId":0}`},
	}
	for _, r := range requests {
		status, body := s.do(t, r.method, r.path, r.body)
		assert.Equal(t, http.StatusBadRequest, status, r.path)
		assert.Equal(t, "Missing required fields", body["error"], r.path)
	}
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestUnmatchedRequestsUseErrorBody(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodGet, "/nowhere", "")
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route not found", body["error"])

	status, body = s.do(t, http.MethodPatch, "/users/1", "")
	require.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "Method not allowed", body["error"])
}

func TestPanicRecoveredWithErrorBody(t *testing.T) {
	s := newTestServer(t, nil)
	s.engine.GET("/boom", func(c *gin.Context) { panic("boom") })

	status, body := s.do(t, http.MethodGet, "/boom", "")
	require.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["error"])
}
