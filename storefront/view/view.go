// Package view turns storefront state into view models. Everything here is a
// pure function of its inputs; renderers only format the result.
package view

import (
	"bike-shop/models"
	"bike-shop/storefront/carousel"
	"bike-shop/storefront/cart"
	"bike-shop/storefront/catalog"
	"bike-shop/storefront/theme"
	"bike-shop/utils"
)

const (
	MsgNoResults     = "No bikes found matching your search."
	MsgLoadError     = "Could not load bike data. Please make sure the backend server is running."
	MsgLoading       = "Loading bikes..."
	MsgContactSent   = "Thanks! We will get back to you soon."
	MsgEmptyCart     = "Your cart is empty."
	SlideTagline     = "Discover the thrill of the open road."
	PlaceholderImage = "https://placehold.co/600x400/cccccc/333?text=Image+Unavailable"
)

type CatalogSource interface {
	State() catalog.State
	Visible() []models.Item
	Query() string
}

type CartSource interface {
	Lines() []cart.Line
	Totals() cart.Totals
}

type CarouselSource interface {
	Slides() []models.Item
	Current() int
	State() carousel.State
}

type Card struct {
	ID    int
	Name  string
	Type  string
	Image string
	Price string
}

type CatalogView struct {
	State   string
	Query   string
	Cards   []Card
	Message string
	IsError bool
}

type CartLine struct {
	ID        int
	Name      string
	Image     string
	UnitPrice string
	Quantity  int
	Subtotal  string
}

type CartView struct {
	Lines     []CartLine
	ItemCount int
	Total     string
	Empty     bool
}

type Slide struct {
	Index   int
	Name    string
	Image   string
	Tagline string
	Active  bool
}

type CarouselView struct {
	Slides  []Slide
	Current int
	Active  bool
}

type PageView struct {
	Theme     string
	NextTheme string
	Icon      string
	Classes   map[string]string
	Catalog   CatalogView
	Cart      CartView
	Carousel  CarouselView
	Contact   string
}

func Catalog(src CatalogSource) CatalogView {
	v := CatalogView{
		State: src.State().String(),
		Query: src.Query(),
		Cards: []Card{},
	}

	switch src.State() {
	case catalog.Loading:
		v.Message = MsgLoading
		return v
	case catalog.LoadError:
		v.Message = MsgLoadError
		v.IsError = true
		return v
	case catalog.NoResults:
		v.Message = MsgNoResults
		return v
	}

	for _, item := range src.Visible() {
		v.Cards = append(v.Cards, Card{
			ID:    item.ID,
			Name:  item.Name,
			Type:  item.Type,
			Image: imageOrPlaceholder(item.Image),
			Price: utils.FormatINR(item.Price, 0),
		})
	}
	return v
}

func Cart(src CartSource) CartView {
	totals := src.Totals()
	lines := src.Lines()

	v := CartView{
		Lines:     make([]CartLine, 0, len(lines)),
		ItemCount: totals.ItemCount,
		Total:     utils.FormatINR(totals.AmountDue, 2),
		Empty:     len(lines) == 0,
	}
	for _, line := range lines {
		v.Lines = append(v.Lines, CartLine{
			ID:        line.ID,
			Name:      line.Name,
			Image:     imageOrPlaceholder(line.Image),
			UnitPrice: utils.FormatINR(line.Price, 0),
			Quantity:  line.Quantity,
			Subtotal:  utils.FormatINR(line.Subtotal(), 0),
		})
	}
	return v
}

func Carousel(src CarouselSource) CarouselView {
	slides := src.Slides()
	current := src.Current()

	v := CarouselView{
		Slides:  make([]Slide, 0, len(slides)),
		Current: current,
		Active:  src.State() == carousel.Active,
	}
	for i, item := range slides {
		v.Slides = append(v.Slides, Slide{
			Index:   i,
			Name:    item.Name,
			Image:   imageOrPlaceholder(item.Image),
			Tagline: SlideTagline,
			Active:  i == current,
		})
	}
	return v
}

// StaticCarousel is the hero strip for items before any autoplay: the first
// slides with the first one shown.
func StaticCarousel(items []models.Item) CarouselView {
	slides := carousel.Window(items)
	v := CarouselView{
		Slides: make([]Slide, 0, len(slides)),
		Active: len(slides) > 0,
	}
	for i, item := range slides {
		v.Slides = append(v.Slides, Slide{
			Index:   i,
			Name:    item.Name,
			Image:   imageOrPlaceholder(item.Image),
			Tagline: SlideTagline,
			Active:  i == 0,
		})
	}
	return v
}

func Page(t theme.Theme, catalogView CatalogView, cartView CartView, carouselView CarouselView) PageView {
	classes := make(map[string]string)
	for role, c := range theme.Classes(t) {
		classes[string(role)] = c
	}

	return PageView{
		Theme:     t.String(),
		NextTheme: t.Next().String(),
		Icon:      theme.Styles(t, theme.RoleIcon),
		Classes:   classes,
		Catalog:   catalogView,
		Cart:      cartView,
		Carousel:  carouselView,
	}
}

func imageOrPlaceholder(image string) string {
	if image == "" {
		return PlaceholderImage
	}
	return image
}
