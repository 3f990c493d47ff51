package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"storefront/pkg/domain/model"
)

// EmailJSConfig holds the transactional-email provider settings.
type EmailJSConfig struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// EmailJSSender delivers order confirmations through the EmailJS REST
// API. It makes a single attempt; retries are not its concern.
type EmailJSSender struct {
	cfg    EmailJSConfig
	client *http.Client
}

var _ model.ConfirmationSender = (*EmailJSSender)(nil)

func NewEmailJSSender(cfg EmailJSConfig) *EmailJSSender {
	return &EmailJSSender{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	ToName       string `json:"to_name"`
	ToEmail      string `json:"to_email"`
	OrderDetails string `json:"order_details"`
	TotalAmount  string `json:"total_amount"`
}

func (s *EmailJSSender) SendConfirmation(ctx context.Context, customerName, customerEmail, orderDetails, totalAmount string) error {
	if s.cfg.ServiceID == "" || s.cfg.TemplateID == "" || s.cfg.PublicKey == "" {
		return errors.New("emailjs configuration is incomplete")
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:  s.cfg.ServiceID,
		TemplateID: s.cfg.TemplateID,
		UserID:     s.cfg.PublicKey,
		TemplateParams: templateParams{
			ToName:       customerName,
			ToEmail:      customerEmail,
			OrderDetails: orderDetails,
			TotalAmount:  totalAmount,
		},
	})
	if err != nil {
		return errors.Wrap(err, "encode confirmation email")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/api/v1.0/email/send", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build confirmation request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send confirmation email")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("emailjs responded %d: %s", resp.StatusCode, detail)
	}
	return nil
}
