// cmd/storefront/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codr1/qlick/internal/client"
	"github.com/codr1/qlick/internal/menu"
	"github.com/codr1/qlick/internal/models"
	"github.com/codr1/qlick/internal/terminal"
	"github.com/codr1/qlick/internal/themeprovider"
)

const defaultAPIURL = "http://localhost:8080"

var errUsage = errors.New("usage: storefront [-api URL] [-timeout D] <menu|theme|schedule|add-food|order> [flags]")

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(log.Logger.WithContext(ctx), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, errUsage)
			os.Exit(2)
		}
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

type app struct {
	client   *client.Client
	catalog  *models.Catalog
	provider *themeprovider.Provider
	out      io.Writer
	lg       *lipgloss.Renderer
}

func run(ctx context.Context, args []string, out io.Writer) error {
	global := flag.NewFlagSet("storefront", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	apiURL := global.String("api", envOr("QLICK_API_URL", defaultAPIURL), "storefront API base URL")
	timeout := global.Duration("timeout", client.DefaultTimeout, "per-request timeout")
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		return errUsage
	}

	catalog, err := models.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load theme catalog: %w", err)
	}
	api := client.New(*apiURL, *timeout)
	a := &app{
		client:   api,
		catalog:  catalog,
		provider: themeprovider.New(catalog, api),
		out:      out,
		lg:       lipgloss.NewRenderer(out),
	}

	command, rest := global.Arg(0), global.Args()[1:]
	switch command {
	case "menu":
		return a.runMenu(ctx, rest)
	case "theme":
		return a.runTheme(ctx)
	case "schedule":
		return a.runSchedule(ctx, rest)
	case "add-food":
		return a.runAddFood(ctx, rest)
	case "order":
		return a.runOrder(ctx, rest)
	default:
		return fmt.Errorf("unknown command %q: %w", command, errUsage)
	}
}

func (a *app) runMenu(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("menu", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	filter := fs.String("filter", "", "Nearest, Rating or Offers")
	order := fs.String("sort", string(menu.SortRelevance), "relevance, rating, time, price_lth or price_htl")
	seed := fs.Int64("seed", time.Now().UnixNano(), "seed for demo ratings and delivery times")
	if err := fs.Parse(args); err != nil {
		return err
	}

	renderer := terminal.New(a.lg, a.provider.Ready(ctx))

	foods, err := a.client.Foods(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("Failed to fetch menu")
		foods = nil
	}

	f, s := menu.ParseFilter(*filter), menu.ParseSort(*order)
	listings := menu.Apply(menu.Enrich(foods, rand.New(rand.NewSource(*seed))), f, s)
	_, err = fmt.Fprintln(a.out, renderer.Menu(listings, f, s))
	return err
}

func (a *app) runTheme(ctx context.Context) error {
	theme := a.provider.Ready(ctx)
	renderer := terminal.New(a.lg, theme)
	_, err := fmt.Fprintln(a.out, renderer.ThemeSummary())
	return err
}

func (a *app) runSchedule(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	themeName := fs.String("theme", "", "theme name, one of: "+strings.Join(a.catalog.SortedNames(), ", "))
	start := fs.String("start", "", "first day, YYYY-MM-DD")
	end := fs.String("end", "", "last day, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, ok := a.catalog.Lookup(*themeName); !ok {
		log.Ctx(ctx).Warn().Str("theme", *themeName).Msg("Theme is not in the catalog; clients will show Default")
	}

	schedule, err := a.client.ScheduleTheme(ctx, client.ScheduleThemeRequest{
		ThemeName: *themeName,
		StartDate: *start,
		EndDate:   *end,
	})
	if err != nil {
		return err
	}
	renderer := terminal.New(a.lg, a.provider.Ready(ctx))
	_, err = fmt.Fprintln(a.out, renderer.Feedback(fmt.Sprintf(
		"Theme Scheduled! %s from %s to %s (#%d)", schedule.ThemeName, schedule.StartDate, schedule.EndDate, schedule.ID,
	), true))
	return err
}

func (a *app) runAddFood(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-food", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "item name")
	price := fs.Float64("price", 0, "price in rupees")
	image := fs.String("image", "", "image URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	food, err := a.client.AddFood(ctx, client.AddFoodRequest{Name: *name, Price: *price, Image: *image})
	if err != nil {
		return err
	}
	renderer := terminal.New(a.lg, a.provider.Ready(ctx))
	_, err = fmt.Fprintln(a.out, renderer.Feedback(fmt.Sprintf("Food Added! %s (#%d)", food.Name, food.ID), true))
	return err
}

func (a *app) runOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	foodID := fs.Int64("food", 0, "food ID to order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	message, err := a.client.Order(ctx, *foodID)
	if err != nil {
		return err
	}
	renderer := terminal.New(a.lg, a.provider.Ready(ctx))
	_, err = fmt.Fprintln(a.out, renderer.Feedback(message, true))
	return err
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
