package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
	"storefront/pkg/infrastructure/catalog"
	"storefront/pkg/infrastructure/config"
	"storefront/pkg/infrastructure/email"
	"storefront/pkg/infrastructure/event"
	"storefront/pkg/infrastructure/mysql"
	"storefront/pkg/infrastructure/transport"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:  "storefront",
		Usage: "single-storefront checkout service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("storefront terminated")
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var dispatcher service.EventDispatcher = event.LogDispatcher{}
	if cfg.AMQPURL != "" {
		conn, err := amqp.Dial(cfg.AMQPURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		amqpDispatcher, err := event.NewAMQPDispatcher(conn, cfg.AMQPExchange)
		if err != nil {
			return err
		}
		defer amqpDispatcher.Close()
		dispatcher = amqpDispatcher
		log.WithField("exchange", cfg.AMQPExchange).Info("publishing events to AMQP")
	}

	var products model.CatalogRepository = catalog.NewStaticCatalog()
	if cfg.DatabaseDSN != "" {
		db, err := mysql.Connect(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := mysql.Migrate(db); err != nil {
			return err
		}
		products = mysql.NewCatalogRepository(db)
		log.Info("serving catalog from mysql")
	}

	cart := service.NewCartService(cfg.DeliveryFeeCents, dispatcher)
	gateway := service.NewMockGateway(service.GatewayConfig{
		Delay:        cfg.GatewayDelay,
		ApprovalRate: cfg.GatewayApprovalRate,
	})
	payments := service.NewPaymentService(gateway, dispatcher, nil)
	notifier := email.NewEmailJSSender(email.EmailJSConfig{
		BaseURL:    cfg.EmailBaseURL,
		ServiceID:  cfg.EmailServiceID,
		TemplateID: cfg.EmailTemplateID,
		PublicKey:  cfg.EmailPublicKey,
	})
	checkout := service.NewCheckoutService(cart, payments, notifier, dispatcher)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: transport.Router(products, cart, checkout),
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", cfg.HTTPAddr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
