package workflows

import (
	"context"
	"fmt"

	"github.com/hypernova-labs/billing-admin-service/internal/config"
	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/inngest/inngestgo"
	"github.com/sirupsen/logrus"
)

// InngestClient maneja el despacho de eventos de facturación hacia Inngest
type InngestClient struct {
	client inngestgo.Client
	logger *logrus.Logger
}

// NewInngestClient crea una nueva instancia del cliente
func NewInngestClient(cfg *config.Config, logger *logrus.Logger) (*InngestClient, error) {
	// Verificar que las credenciales estén configuradas
	if cfg.Inngest.EventKey == "" {
		return nil, fmt.Errorf("INNGEST_EVENT_KEY not configured")
	}

	if cfg.Inngest.SigningKey == "" {
		return nil, fmt.Errorf("INNGEST_SIGNING_KEY not configured")
	}

	client, err := inngestgo.NewClient(inngestgo.ClientOpts{
		EventKey:   &cfg.Inngest.EventKey,
		SigningKey: &cfg.Inngest.SigningKey,
		AppID:      cfg.Inngest.AppID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating Inngest client: %w", err)
	}

	return &InngestClient{
		client: client,
		logger: logger,
	}, nil
}

// SendInvoiceSentEvent despacha el evento de resultado de envío de una factura.
// El evento alimenta workflows posteriores (reintentos, notificaciones); un
// fallo al despachar no afecta el resultado del envío.
func (c *InngestClient) SendInvoiceSentEvent(ctx context.Context, invoiceID int64, vendorID int64, status models.BillingStatus) error {
	eventID, err := c.client.Send(ctx, inngestgo.Event{
		Name: "billing/invoice.sent",
		Data: map[string]interface{}{
			"invoice_id": invoiceID,
			"vendor_id":  vendorID,
			"status":     string(status),
		},
	})
	if err != nil {
		return fmt.Errorf("error sending invoice event: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"event_id":   eventID,
		"invoice_id": invoiceID,
		"status":     status,
	}).Info("Invoice sent event dispatched")

	return nil
}
