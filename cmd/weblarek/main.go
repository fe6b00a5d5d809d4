package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/larekdev/weblarek/internal/adapters/export"
	"github.com/larekdev/weblarek/internal/adapters/larekapi"
	"github.com/larekdev/weblarek/internal/adapters/memory"
	"github.com/larekdev/weblarek/internal/app"
	"github.com/larekdev/weblarek/internal/domain"
	"github.com/larekdev/weblarek/internal/events"
	"github.com/larekdev/weblarek/internal/views"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	exportPath := flag.String("export", "", "write the catalog to an xlsx file and exit")
	flag.Parse()

	var service domain.ProductService
	if apiURL := os.Getenv("API_URL"); apiURL != "" {
		cdnURL := os.Getenv("CDN_URL")
		if cdnURL == "" {
			cdnURL = apiURL
		}
		service = larekapi.New(apiURL, cdnURL)
	} else {
		zlog.Info().Msg("API_URL not set, using seeded in-memory catalog")
		service = memory.Seeded()
	}

	bus := events.NewBus()
	a := app.New(bus, service, zlog.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	err := a.Bootstrap(ctx)
	cancel()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to fetch catalog")
	}

	if *exportPath != "" {
		if err := export.Catalog(a.State().Catalog(), *exportPath); err != nil {
			zlog.Fatal().Err(err).Msg("catalog export failed")
		}
		zlog.Info().Str("path", *exportPath).Msg("catalog exported")
		return
	}

	runShell(a)
}

// runShell drives the same bus events a DOM frontend would, from stdin.
func runShell(a *app.App) {
	fmt.Println("веб-ларёк — commands: list, show N, toggle, basket, checkout, payment card|cash, address X, next, email X, phone X, submit, close, quit")

	var lastPayload domain.OrderPayload
	var lastResult domain.OrderResult
	a.Bus().Subscribe(events.OrderSuccess, func(e events.Event) {
		lastResult = e.Payload.(domain.OrderResult)
	})

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		switch cmd {
		case "list":
			for i, c := range a.Page.Catalog {
				fmt.Printf("%2d. %s [%s] %s\n", i+1, c.Title, c.Category, priceLabel(c.Price))
			}
			fmt.Printf("basket: %d item(s)\n", a.Page.Counter)
		case "show":
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 || n > len(a.Page.Catalog) {
				fmt.Println("usage: show N")
				continue
			}
			a.Page.Catalog[n-1].Select()
			c := a.PreviewCard
			fmt.Printf("%s — %s\n%s\nin basket: %v\n", c.Title, priceLabel(c.Price), c.Description, c.Selected)
		case "toggle":
			if a.PreviewCard == nil {
				fmt.Println("nothing previewed, use show N first")
				continue
			}
			a.PreviewCard.Toggle()
			fmt.Printf("in basket: %v\n", a.PreviewCard.Selected)
		case "basket":
			a.Page.OpenBasket()
			for _, row := range a.Basket.Rows {
				fmt.Printf("%2d. %s %s\n", row.Index, row.Title, priceLabel(row.Price))
			}
			fmt.Printf("total: %.0f синапсов\n", a.Basket.Total)
		case "checkout":
			a.Basket.Checkout()
			fmt.Printf("payment=%q address=%q errors=%q\n", a.Order.Payment, a.Order.Address, a.Order.Errors)
		case "payment":
			a.Order.SetPayment(domain.Payment(arg))
			fmt.Printf("errors=%q\n", a.Order.Errors)
		case "address":
			a.Order.SetAddress(arg)
			fmt.Printf("errors=%q\n", a.Order.Errors)
		case "next":
			a.Order.Submit()
			if a.Order.Valid {
				fmt.Printf("email=%q phone=%q errors=%q\n", a.Contacts.Email, a.Contacts.Phone, a.Contacts.Errors)
			} else {
				fmt.Printf("fix the order form first: %s\n", a.Order.Errors)
			}
		case "email":
			a.Contacts.SetEmail(arg)
			fmt.Printf("errors=%q\n", a.Contacts.Errors)
		case "phone":
			a.Contacts.SetPhone(arg)
			fmt.Printf("errors=%q\n", a.Contacts.Errors)
		case "submit":
			lastPayload = a.State().BuildSubmission()
			a.Contacts.Submit()
			if a.Modal.Content == views.ContentSuccess {
				fmt.Printf("списано %.0f синапсов\n", a.Success.Total)
				writeReceipt(lastResult, lastPayload)
			} else {
				fmt.Printf("not submitted: %s%s\n", a.Contacts.Errors, a.Order.Errors)
			}
		case "close":
			a.Modal.Close()
		case "quit", "exit":
			return
		case "":
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

func writeReceipt(res domain.OrderResult, payload domain.OrderPayload) {
	dir := os.Getenv("RECEIPT_DIR")
	if dir == "" {
		return
	}
	path := fmt.Sprintf("%s/receipt-%d.xlsx", strings.TrimRight(dir, "/"), time.Now().Unix())
	if err := export.Receipt(res, payload, path); err != nil {
		zlog.Error().Err(err).Msg("receipt export failed")
		return
	}
	zlog.Info().Str("path", path).Msg("receipt written")
}

func priceLabel(p *float64) string {
	if p == nil {
		return "бесценно"
	}
	return fmt.Sprintf("%.0f синапсов", *p)
}
