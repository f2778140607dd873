package controllers

import (
	"net/http"

	"bike-shop/storefront/cart"
	"bike-shop/storefront/catalog"
	"bike-shop/storefront/theme"
	"bike-shop/storefront/view"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

const (
	ThemeCookie       = "theme"
	themeCookieMaxAge = 365 * 24 * 60 * 60
)

// StorefrontController serves the server-rendered shop page.
type StorefrontController struct {
	catalog catalog.Service
}

func NewStorefrontController(service catalog.Service) *StorefrontController {
	return &StorefrontController{catalog: service}
}

// Index godoc
// @Summary Storefront page
// @Description HTML page with hero slides, the (optionally filtered) catalog and an empty cart
// @Tags Storefront
// @Produce html
// @Param search query string false "Filter by name or type"
// @Param theme query string false "light, yellow or dark; remembered in the theme cookie"
// @Success 200 {string} string "HTML page"
// @Failure 500 {string} string "HTML page with the load error message"
// @Router / [get]
func (ctrl *StorefrontController) Index(c *gin.Context) {
	t := ctrl.theme(c)

	store := catalog.NewStore(ctrl.catalog)
	status := http.StatusOK
	if err := store.Load(c.Request.Context()); err != nil {
		status = http.StatusInternalServerError
	} else if search := c.Query("search"); search != "" {
		store.Search(search)
	}

	page := view.Page(
		t,
		view.Catalog(store),
		view.Cart(cart.New(store)),
		view.StaticCarousel(store.Items()),
	)
	if c.Query("sent") == "1" {
		page.Contact = view.MsgContactSent
	}

	c.Render(status, render.HTML{
		Template: view.Template(),
		Name:     view.PageTemplate,
		Data:     page,
	})
}

// theme resolves the theme from ?theme= (remembering it in the cookie), then
// the cookie, then the default.
func (ctrl *StorefrontController) theme(c *gin.Context) theme.Theme {
	if requested := c.Query("theme"); requested != "" {
		t := theme.Parse(requested)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(ThemeCookie, t.String(), themeCookieMaxAge, "/", "", false, false)
		return t
	}

	if stored, err := c.Cookie(ThemeCookie); err == nil {
		return theme.Parse(stored)
	}
	return theme.Default
}
