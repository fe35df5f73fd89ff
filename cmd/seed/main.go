package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"hoodbook/internal/app"
	"hoodbook/internal/config"
	"hoodbook/internal/domain"
	"hoodbook/internal/modules/profile"
	"hoodbook/internal/modules/settings"
)

func main() {
	demo := flag.Bool("demo-profile", false, "also store a demo user profile")
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

	s, err := settings.NewService(ctx, store).Reset(ctx)
	if err != nil {
		log.Fatalf("seed settings: %v", err)
	}
	log.Printf("settings seeded: bank=%s account_no=%s wa=%s", s.BankName, s.AccountNo, s.WANumber)

	if *demo {
		p, err := profile.NewStore(ctx, store).Set(ctx, domain.UserProfile{
			FullName:         "Demo Dancer",
			StageName:        "DD",
			Phone:            "+60123456789",
			Email:            "demo@thehoodfam.my",
			Instagram:        "@demo.dancer",
			EmergencyContact: "Parent +60129876543",
		})
		if err != nil {
			log.Fatalf("seed profile: %v", err)
		}
		log.Printf("demo profile seeded: name=%s missing=%v", p.FullName, profile.Missing(p))
	}
}
