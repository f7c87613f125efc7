package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached(t *testing.T) {
	var calls int
	status := http.StatusInternalServerError

	h := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"calls":1}`))
	})

	do := func() *httptest.ResponseRecorder {
		r, err := http.NewRequest(http.MethodGet, "/v1/stats", nil)
		require.NoError(t, err)
		r.RequestURI = "/v1/stats"

		w := httptest.NewRecorder()
		h(w, r)
		return w
	}

	w := do()
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	status = http.StatusOK

	w = do()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = do()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"calls":1}`, w.Body.String())

	assert.Equal(t, 2, calls)
}
