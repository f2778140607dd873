package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// RenderCatalogText writes the catalog grid as an aligned table, or the
// state message when there is nothing to list.
func RenderCatalogText(w io.Writer, v CatalogView) error {
	if v.Message != "" {
		_, err := fmt.Fprintln(w, v.Message)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tPRICE")
	for _, c := range v.Cards {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Type, c.Price)
	}
	return tw.Flush()
}

func RenderCartText(w io.Writer, v CartView) error {
	if v.Empty {
		_, err := fmt.Fprintln(w, MsgEmptyCart)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, l := range v.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", l.ID, l.Name, l.UnitPrice, l.Quantity, l.Subtotal)
	}
	fmt.Fprintf(tw, "\t\t\t%d\t%s\n", v.ItemCount, v.Total)
	return tw.Flush()
}

func RenderCarouselText(w io.Writer, v CarouselView) error {
	if len(v.Slides) == 0 {
		_, err := fmt.Fprintln(w, "No slides.")
		return err
	}

	dots := make([]string, len(v.Slides))
	for i, s := range v.Slides {
		dots[i] = "o"
		if s.Active {
			dots[i] = "*"
		}
	}
	current := v.Current
	if current < 0 || current >= len(v.Slides) {
		current = 0
	}
	slide := v.Slides[current]
	_, err := fmt.Fprintf(w, "[%d/%d] %s  %s  %s\n", current+1, len(v.Slides), slide.Name, strings.Join(dots, " "), slide.Tagline)
	return err
}
