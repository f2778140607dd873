package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bike-shop/models"
	"bike-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContact struct {
	got []models.ContactRequest
	err error
}

func (s *stubContact) Submit(req models.ContactRequest) error {
	s.got = append(s.got, req)
	return s.err
}

func newContactRouter(contact ContactSubmitter) *gin.Engine {
	r := gin.New()
	r.POST("/contact", NewContactController(contact).Submit)
	return r
}

func Test_ContactSubmit_JSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCalls  int
	}{
		{name: "accepted", body: `{"name":"Asha","email":"asha@example.com","message":"hi"}`, wantStatus: http.StatusAccepted, wantCalls: 1},
		{name: "missing message", body: `{"name":"Asha","email":"asha@example.com"}`, wantStatus: http.StatusBadRequest},
		{name: "bad email", body: `{"name":"Asha","email":"asha","message":"hi"}`, wantStatus: http.StatusBadRequest},
		{name: "disabled", body: `{"name":"Asha","email":"asha@example.com","message":"hi"}`, err: services.ErrContactUnavailable, wantStatus: http.StatusServiceUnavailable, wantCalls: 1},
		{name: "smtp failure", body: `{"name":"Asha","email":"asha@example.com","message":"hi"}`, err: errors.New("dial"), wantStatus: http.StatusInternalServerError, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := &stubContact{err: tt.err}

			w := serve(newContactRouter(contact), http.MethodPost, "/contact", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Len(t, contact.got, tt.wantCalls)
		})
	}
}

func Test_ContactSubmit_FormRedirects(t *testing.T) {
	contact := &stubContact{}
	form := url.Values{"name": {"Asha"}, "email": {"asha@example.com"}, "message": {"Do you service Yezdi?"}}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	newContactRouter(contact).ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?sent=1#contact", w.Header().Get("Location"))
	require.Len(t, contact.got, 1)
	assert.Equal(t, "Do you service Yezdi?", contact.got[0].Message)
}
