package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/pawpantry/storefront-backend/api/validators"
	"github.com/pawpantry/storefront-backend/internal/catalog"
	"github.com/pawpantry/storefront-backend/internal/storefront"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
)

const usage = `usage: storefront <command> [args]

commands:
  list [key=value ...]   filtered page; keys: pet_type meat_type age_group food_type
                         feature price_min price_max q page page_size
  facets                 available filter values
  show <id>              one product
  cart                   cart contents
  add <id>               add one unit
  remove <id>            drop the line
  set <id> <qty>         set the quantity (0 removes)
  inc <id> | dec <id>    change the quantity by one
  clear                  empty the cart`

var errUsage = errors.New(usage)

// run executes one command against the session and writes a table to out.
func run(ctx context.Context, s *storefront.Session, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	args = fs.Args()
	if len(args) == 0 {
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		return list(s, rest, out)
	case "facets":
		return facets(s, out)
	case "show":
		id, err := productArg(rest, 0)
		if err != nil {
			return err
		}
		p, ok := s.Catalog().ProductByID(id)
		if !ok {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"product_id": id})
		}
		writeProducts(out, []catalog.Product{p})
		return nil
	case "cart":
		writeCart(s, out)
		return nil
	case "clear":
		s.ClearCart(ctx)
		writeCart(s, out)
		return nil
	}

	switch cmd {
	case "add", "remove", "inc", "dec", "set":
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
	id, err := productArg(rest, 0)
	if err != nil {
		return err
	}
	switch cmd {
	case "add":
		if err := s.AddToCart(ctx, id); err != nil {
			return err
		}
	case "remove":
		s.RemoveFromCart(ctx, id)
	case "inc":
		s.IncrementCartItem(ctx, id)
	case "dec":
		s.DecrementCartItem(ctx, id)
	case "set":
		if len(rest) < 2 {
			return errUsage
		}
		qty, err := validators.ParseQueryInt(url.Values{"qty": {rest[1]}}, "qty", 0, 0, 1<<20)
		if err != nil {
			return err
		}
		s.UpdateCartQuantity(ctx, id, qty)
	}
	writeCart(s, out)
	return nil
}

func productArg(args []string, i int) (int, error) {
	if len(args) <= i {
		return 0, errUsage
	}
	return validators.ParseProductID(args[i])
}

// list accepts the same keys as the catalog HTTP query, written key=value.
func list(s *storefront.Session, args []string, out io.Writer) error {
	values := url.Values{}
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return fmt.Errorf("expected key=value, got %q", arg)
		}
		values.Add(k, v)
	}

	q, err := validators.ParseCatalogQuery(values, validators.CatalogQueryDefaults{PageSize: s.PageSize()})
	if err != nil {
		return err
	}

	patch := catalog.FilterPatch{
		PetTypes:  &q.Filters.PetTypes,
		MeatTypes: &q.Filters.MeatTypes,
		AgeGroups: &q.Filters.AgeGroups,
		FoodTypes: &q.Filters.FoodTypes,
		Features:  &q.Filters.Features,
		Query:     &q.Filters.Query,
	}
	if q.Filters.PriceRange != nil {
		patch.PriceRange = q.Filters.PriceRange
	}
	if err := s.SetFilters(patch); err != nil {
		return err
	}
	s.SetPageSize(q.PageSize)
	if err := s.SetPage(q.Page); err != nil {
		return err
	}

	page := s.View()
	writeProducts(out, page.Items)
	fmt.Fprintf(out, "page %d of %d (%d products)\n", page.Page, max(page.TotalPages, 1), page.Total)
	return nil
}

func facets(s *storefront.Session, out io.Writer) error {
	f := s.Catalog().Facets()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "pet_type\t%s\n", joinValues(f.PetTypes))
	fmt.Fprintf(tw, "meat_type\t%s\n", joinValues(f.MeatTypes))
	fmt.Fprintf(tw, "age_group\t%s\n", joinValues(f.AgeGroups))
	fmt.Fprintf(tw, "food_type\t%s\n", joinValues(f.FoodTypes))
	fmt.Fprintf(tw, "feature\t%s\n", strings.Join(f.Features, ", "))
	fmt.Fprintf(tw, "price\t%.2f - %.2f\n", f.PriceRange.Min, f.PriceRange.Max)
	return tw.Flush()
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func writeProducts(out io.Writer, products []catalog.Product) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPET\tFOOD\tSIZE\tPRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.2f\n", p.ID, p.Name, p.PetType, p.FoodType, p.PackageSize, p.Price)
	}
	tw.Flush()
}

func writeCart(s *storefront.Session, out io.Writer) {
	c := s.Cart()
	entries := c.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(out, "cart is empty")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tSUBTOTAL")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", e.ID, e.Name, e.Count, e.Subtotal().StringFixed(2))
	}
	tw.Flush()
	fmt.Fprintf(out, "%d items, total %.2f\n", c.TotalCount(), c.TotalValue())
}
