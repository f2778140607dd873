package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bike-shop/models"
	"bike-shop/storefront/view"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getPage(t *testing.T, items *stubItemService, target string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	r := gin.New()
	r.GET("/", NewStorefrontController(items).Index)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	return w, doc
}

func Test_Index_RendersCatalogAndSlides(t *testing.T) {
	w, doc := getPage(t, &stubItemService{items: models.StarterItems()}, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 9, doc.Find(".bike-card").Length())
	assert.Equal(t, 5, doc.Find(".carousel-slide").Length())
	assert.Equal(t, "light", doc.Find("body").AttrOr("data-theme", ""))
	assert.Equal(t, "₹0.00", doc.Find("#cart-total").Text())
	assert.Equal(t, "₹1,93,000", doc.Find(".bike-card .price").First().Text())
}

func Test_Index_Search(t *testing.T) {
	_, doc := getPage(t, &stubItemService{items: models.StarterItems()}, "/?search=Cruiser")

	assert.Equal(t, 3, doc.Find(".bike-card").Length())
	assert.Equal(t, 5, doc.Find(".carousel-slide").Length())
}

func Test_Index_NoResults(t *testing.T) {
	_, doc := getPage(t, &stubItemService{items: models.StarterItems()}, "/?search=tractor")

	assert.Equal(t, 0, doc.Find(".bike-card").Length())
	assert.Equal(t, view.MsgNoResults, doc.Find("#catalog-message").Text())
}

func Test_Index_LoadError(t *testing.T) {
	w, doc := getPage(t, &stubItemService{listErr: errors.New("down")}, "/")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, view.MsgLoadError, doc.Find("#catalog-message").Text())
	assert.Equal(t, 0, doc.Find(".carousel-slide").Length())
}

func Test_Index_Theme(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		cookie     *http.Cookie
		wantTheme  string
		wantCookie string
	}{
		{name: "default", target: "/", wantTheme: "light"},
		{name: "query sets cookie", target: "/?theme=yellow", wantTheme: "yellow", wantCookie: "yellow"},
		{name: "cookie", target: "/", cookie: &http.Cookie{Name: ThemeCookie, Value: "dark"}, wantTheme: "dark"},
		{name: "invalid cookie", target: "/", cookie: &http.Cookie{Name: ThemeCookie, Value: "neon"}, wantTheme: "light"},
		{name: "query wins", target: "/?theme=light", cookie: &http.Cookie{Name: ThemeCookie, Value: "dark"}, wantTheme: "light", wantCookie: "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cookies []*http.Cookie
			if tt.cookie != nil {
				cookies = append(cookies, tt.cookie)
			}

			w, doc := getPage(t, &stubItemService{items: models.StarterItems()}, tt.target, cookies...)

			assert.Equal(t, tt.wantTheme, doc.Find("body").AttrOr("data-theme", ""))
			var got string
			for _, c := range w.Result().Cookies() {
				if c.Name == ThemeCookie {
					got = c.Value
				}
			}
			assert.Equal(t, tt.wantCookie, got)
		})
	}
}

func Test_Index_DarkThemeIcon(t *testing.T) {
	_, doc := getPage(t, &stubItemService{items: models.StarterItems()}, "/?theme=dark")

	assert.Equal(t, "fas fa-star", doc.Find("#theme-toggle i").AttrOr("class", ""))
	assert.Contains(t, doc.Find("#theme-toggle").AttrOr("href", ""), "theme=light")
	assert.True(t, doc.Find("html").HasClass("dark"))
}

func Test_Index_ContactForm(t *testing.T) {
	_, doc := getPage(t, &stubItemService{items: models.StarterItems()}, "/")

	assert.Equal(t, "/contact", doc.Find("#contact-form").AttrOr("action", ""))
	assert.Equal(t, 0, doc.Find("#contact-message").Length())

	_, doc = getPage(t, &stubItemService{items: models.StarterItems()}, "/?sent=1")

	assert.Equal(t, view.MsgContactSent, doc.Find("#contact-message").Text())
}
