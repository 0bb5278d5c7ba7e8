package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"todoapp/infras/database/databasetest"
	"todoapp/internal/handlers/health"
	"todoapp/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func check(t *testing.T, handler health.Handler) (int, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	body := map[string]string{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body["message"]
}

func TestHealth_Check(t *testing.T) {
	_, conn := databasetest.New(t)
	handler := health.New(conn)

	code, message := check(t, handler)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, constant.ResponseHealthy, message)

	require.NoError(t, conn.Close())

	code, message = check(t, handler)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, constant.ResponseErrorUnhealthy, message)
}

func TestHealth_CheckWithoutDatabase(t *testing.T) {
	code, message := check(t, health.New(nil))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, constant.ResponseErrorUnhealthy, message)
}
