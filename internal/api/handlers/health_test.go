package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"skills-tracker-backend/internal/api/handlers"
	"skills-tracker-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db, mock
}

func healthRouter(db *gorm.DB) *testutils.HTTPTestSuite {
	h := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(db)
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)
	h.Router.GET("/health/live", handler.Live)
	return h
}

func TestHealth(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing()

		w := healthRouter(db).MakeRequest(http.MethodGet, "/health", nil)

		var got handlers.HealthResponse
		testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "healthy", got.Status)
		assert.Equal(t, "healthy", got.Services["database"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		w := healthRouter(db).MakeRequest(http.MethodGet, "/health", nil)

		var got handlers.HealthResponse
		testutils.AssertJSONResponse(t, w, http.StatusServiceUnavailable, &got)
		assert.Equal(t, "unhealthy", got.Status)
		assert.Contains(t, got.Services["database"], "connection refused")
	})
}

func TestReady(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectPing().WillReturnError(errors.New("starting up"))

	w := healthRouter(db).MakeRequest(http.MethodGet, "/health/ready", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"ready":false`)
}

func TestLive(t *testing.T) {
	db, _ := newMockDB(t)

	w := healthRouter(db).MakeRequest(http.MethodGet, "/health/live", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alive":true`)
}
