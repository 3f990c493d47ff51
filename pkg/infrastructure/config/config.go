package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config carries everything overridable from the environment, prefixed
// with STOREFRONT_ (e.g. STOREFRONT_DELIVERY_FEE_CENTS).
type Config struct {
	HTTPAddr         string `envconfig:"HTTP_ADDR" default:":8080"`
	DeliveryFeeCents int64  `envconfig:"DELIVERY_FEE_CENTS" default:"2000"`

	GatewayDelay        time.Duration `envconfig:"GATEWAY_DELAY" default:"2s"`
	GatewayApprovalRate float64       `envconfig:"GATEWAY_APPROVAL_RATE" default:"0.7"`

	// When empty the static in-memory catalog is served.
	DatabaseDSN string `envconfig:"DATABASE_DSN"`

	// When empty domain events are logged instead of published.
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"storefront.events"`

	EmailBaseURL    string `envconfig:"EMAILJS_BASE_URL" default:"https://api.emailjs.com"`
	EmailServiceID  string `envconfig:"EMAILJS_SERVICE_ID" default:"service_ecommerce"`
	EmailTemplateID string `envconfig:"EMAILJS_TEMPLATE_ID" default:"template_order"`
	EmailPublicKey  string `envconfig:"EMAILJS_PUBLIC_KEY"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("storefront", &cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	return &cfg, nil
}
