package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/leeboklee/rsvshop-sub002/internal/app/config"
	apphttp "github.com/leeboklee/rsvshop-sub002/internal/app/http"
	"github.com/leeboklee/rsvshop-sub002/internal/app/http/handlers"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/booking"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
	pdfgen "github.com/leeboklee/rsvshop-sub002/internal/domain/report/pdf/gofpdf"
	"github.com/leeboklee/rsvshop-sub002/internal/infra/db/postgres"
)

func Run() {
	cfg := config.MustLoad()

	db, err := postgres.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	store := postgres.NewStore(db)
	engine := pricing.NewEngine(store)
	bookings := booking.NewManager(engine, store)

	h := handlers.New(store, cfg, engine, bookings, pdfgen.New())
	router := apphttp.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
