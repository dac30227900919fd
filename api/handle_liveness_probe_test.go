package api

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestHandleLivenessProbe(t *testing.T) {
	router, pool := newDbBackedRouter(t)

	pool.ExpectQuery(regexp.QuoteMeta("SELECT 1")).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/liveness", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
