// Package storefront assembles the client-side engines into one App and
// drives them from a line-oriented terminal session.
package storefront

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"bike-shop/models"
	"bike-shop/storefront/carousel"
	"bike-shop/storefront/cart"
	"bike-shop/storefront/catalog"
	"bike-shop/storefront/theme"
	"bike-shop/storefront/view"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
)

var ErrUnknownCommand = errors.New("unknown command")

type Options struct {
	Service  catalog.Service
	Prefs    theme.Store
	Clock    clock.Clock
	Interval time.Duration
	Out      io.Writer
	// AnnounceSlides prints every autoplay move.
	AnnounceSlides bool
}

// App owns the storefront state for one session.
type App struct {
	Catalog  *catalog.Store
	Cart     *cart.Cart
	Carousel *carousel.Controller
	Theme    *theme.Switcher

	outMu          sync.Mutex
	out            io.Writer
	announceSlides bool
}

func New(opts Options) *App {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	app := &App{
		out:            out,
		announceSlides: opts.AnnounceSlides,
	}
	app.Catalog = catalog.NewStore(opts.Service)
	app.Cart = cart.New(app.Catalog)
	app.Carousel = carousel.New(opts.Clock, opts.Interval, app.onSlide)
	app.Theme = theme.NewSwitcher(opts.Prefs)

	app.Catalog.OnLoaded(app.Carousel.Setup)
	return app
}

// Start performs the initial catalog load. A failed load is reported on the
// page and returned; the session stays usable.
func (a *App) Start(ctx context.Context) error {
	err := a.Catalog.Load(ctx)
	a.printf("Theme: %s\n", a.Theme.Current())
	a.render(func(w io.Writer) error { return view.RenderCarouselText(w, view.Carousel(a.Carousel)) })
	a.render(func(w io.Writer) error { return view.RenderCatalogText(w, view.Catalog(a.Catalog)) })
	return err
}

// Close stops autoplay.
func (a *App) Close() {
	a.Carousel.Stop()
}

// Page is the full view model for the current state.
func (a *App) Page() view.PageView {
	return view.Page(a.Theme.Current(), view.Catalog(a.Catalog), view.Cart(a.Cart), view.Carousel(a.Carousel))
}

// Run reads commands from in until quit or EOF.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	a.printf("Type 'help' for commands.\n")
	scanner := bufio.NewScanner(in)
	for {
		a.printf("> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		quit, err := a.Execute(ctx, scanner.Text())
		if err != nil {
			a.printf("error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs one command line. quit is true when the session should end.
func (a *App) Execute(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "list", "ls":
		a.Catalog.Search("")
		return false, a.showCatalog()
	case "search":
		a.Catalog.Search(strings.Join(args, " "))
		return false, a.showCatalog()
	case "find":
		if _, err := a.Catalog.SearchRemote(ctx, strings.Join(args, " ")); err != nil {
			return false, err
		}
		return false, a.showCatalog()
	case "reload":
		if err := a.Catalog.Load(ctx); err != nil {
			a.showCatalog()
			return false, err
		}
		return false, a.showCatalog()
	case "add":
		return false, a.add(args)
	case "remove", "rm":
		id, err := intArg(args, 0, "id")
		if err != nil {
			return false, err
		}
		a.Cart.RemoveItem(id)
		return false, a.showCart()
	case "qty":
		id, err := intArg(args, 0, "id")
		if err != nil {
			return false, err
		}
		quantity, err := intArg(args, 1, "quantity")
		if err != nil {
			return false, err
		}
		a.Cart.SetQuantity(id, quantity)
		return false, a.showCart()
	case "cart":
		return false, a.showCart()
	case "slide":
		return false, a.slide(args)
	case "next":
		return false, a.next()
	case "theme":
		next, err := a.Theme.Toggle()
		a.printf("Theme: %s\n", next)
		if err != nil {
			return false, fmt.Errorf("theme not saved: %w", err)
		}
		return false, nil
	case "help", "?":
		a.printf("%s", helpText)
		return false, nil
	case "quit", "exit", "q":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

const helpText = `Commands:
  list                 show all bikes
  search <term>        filter by name or type
  find <term>          search on the server
  reload               fetch the catalog again
  add <id>             add a bike to the cart
  remove <id>          remove a bike from the cart
  qty <id> <n>         set the quantity (0 removes)
  cart                 show the cart
  slide [n]            show or jump to hero slide n (1-based)
  next                 next hero slide
  theme                cycle light, yellow and dark
  quit                 leave
`

func (a *App) add(args []string) error {
	id, err := intArg(args, 0, "id")
	if err != nil {
		return err
	}
	if !a.Cart.AddItem(id) {
		a.printf("Bike %d not found.\n", id)
		return nil
	}
	item, _ := a.Catalog.Find(id)
	v := view.Cart(a.Cart)
	a.printf("Added %s. Cart: %d item(s), %s\n", item.Name, v.ItemCount, v.Total)
	return nil
}

func (a *App) slide(args []string) error {
	if len(args) == 0 {
		return a.showCarousel()
	}
	n, err := intArg(args, 0, "slide")
	if err != nil {
		return err
	}
	if err := a.Carousel.GoTo(n - 1); err != nil {
		return fmt.Errorf("slide %d: %w", n, err)
	}
	if a.announceSlides {
		return nil
	}
	return a.showCarousel()
}

// next is manual navigation, so like GoTo it restarts the autoplay period.
func (a *App) next() error {
	slides := a.Carousel.Slides()
	if len(slides) == 0 {
		return a.showCarousel()
	}
	if err := a.Carousel.GoTo((a.Carousel.Current() + 1) % len(slides)); err != nil {
		return err
	}
	if a.announceSlides {
		return nil
	}
	return a.showCarousel()
}

func (a *App) onSlide(index int, slide models.Item) {
	log.WithFields(log.Fields{"index": index, "item_id": slide.ID}).Debug("Carousel moved")
	if a.announceSlides {
		a.render(func(w io.Writer) error { return view.RenderCarouselText(w, view.Carousel(a.Carousel)) })
	}
}

func (a *App) showCatalog() error {
	return a.render(func(w io.Writer) error { return view.RenderCatalogText(w, view.Catalog(a.Catalog)) })
}

func (a *App) showCart() error {
	return a.render(func(w io.Writer) error { return view.RenderCartText(w, view.Cart(a.Cart)) })
}

func (a *App) showCarousel() error {
	return a.render(func(w io.Writer) error { return view.RenderCarouselText(w, view.Carousel(a.Carousel)) })
}

func (a *App) render(fn func(w io.Writer) error) error {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	return fn(a.out)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func intArg(args []string, i int, name string) (int, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing %s", name)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, args[i])
	}
	return n, nil
}
