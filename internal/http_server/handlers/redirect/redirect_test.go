package redirect_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"contact_service/internal/http_server/handlers/redirect"
	"contact_service/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
)

func TestRedirect(t *testing.T) {
	h := redirect.New(slogdiscard.NewDiscardLogger(), "http://example.com")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "http://example.com", rr.Header().Get("Location"))
}
