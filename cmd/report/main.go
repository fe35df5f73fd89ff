package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"hoodbook/internal/app"
	"hoodbook/internal/config"
	"hoodbook/internal/modules/booking"
	"hoodbook/internal/modules/cart"
	"hoodbook/internal/modules/catalog"
	"hoodbook/internal/pkg/money"
)

func main() {
	clearCart := flag.Bool("clear-cart", false, "empty a stale pending cart")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	store, err := app.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("state store: %v", err)
	}
	defer store.Close()

	ledger := booking.NewLedger(ctx, store)
	t := ledger.Totals()
	log.Printf("ledger report: bookings=%d gross=%s checked_in=%d pending=%d",
		t.Count, money.FormatMYR(t.Gross), t.CheckedIn, t.Count-t.CheckedIn)

	perClass := map[string]int{}
	for _, b := range ledger.List() {
		perClass[b.ClassID]++
	}
	for _, o := range catalog.NewService().Offerings() {
		if n := perClass[o.ID]; n > 0 {
			log.Printf("class=%s title=%q bookings=%d", o.ID, o.Title, n)
		}
	}

	if *clearCart {
		m := cart.NewManager(ctx, store, catalog.NewService(), nil, cfg.Location())
		n := len(m.Items())
		if err := m.Clear(ctx); err != nil {
			log.Fatalf("clear cart: %v", err)
		}
		log.Printf("cart cleared: items=%d", n)
	}
}
