package email

import (
	"fmt"

	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
)

// ResendService maneja el envío de correos electrónicos usando Resend API
type ResendService struct {
	client    *resend.Client
	fromEmail string
	baseURL   string
	logger    *logrus.Logger
}

// NewResendService crea una nueva instancia de ResendService
func NewResendService(apiKey, fromEmail, baseURL string, logger *logrus.Logger) *ResendService {
	return &ResendService{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// SendBillingEmail envía el correo de cobro de una factura al contacto del socio
func (s *ResendService) SendBillingEmail(invoice *models.BillingInvoiceWithVendor) error {
	name := ""
	if invoice.VendorName != nil {
		name = *invoice.VendorName
	}

	var total float64
	for _, item := range invoice.Details.Items {
		total += item.Total
	}

	subject := fmt.Sprintf("Billing Invoice %s - %s", invoice.BillingMonth, name)

	// Template HTML del email
	htmlContent := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Billing Invoice</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #f8f9fa; padding: 20px; text-align: center; border-radius: 8px; }
        .content { padding: 20px; }
        .button { display: inline-block; padding: 12px 24px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px; margin: 10px 5px; }
        .button:hover { background-color: #0056b3; }
        .footer { margin-top: 30px; padding: 20px; background-color: #f8f9fa; border-radius: 8px; font-size: 14px; color: #666; }
        .total { font-size: 18px; font-weight: bold; color: #007bff; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Billing Invoice</h1>
            <p>Billing month: %s</p>
        </div>

        <div class="content">
            <h2>Hello %s,</h2>

            <p>Your invoice for this billing period is ready:</p>

            <ul>
                <li><strong>Vendor:</strong> %s</li>
                <li><strong>Billing month:</strong> %s</li>
                <li><strong>Total:</strong> <span class="total">%.2f</span></li>
            </ul>

            <div style="text-align: center; margin: 20px 0;">
                <a href="%s/v1/billing-invoices/%d/files" class="button">View invoice files</a>
            </div>
        </div>

        <div class="footer">
            <p>This is an automated email from the billing system.</p>
        </div>
    </div>
</body>
</html>`,
		invoice.BillingMonth,
		name,
		name,
		invoice.BillingMonth,
		total,
		s.baseURL,
		invoice.ID)

	// Crear request para Resend
	request := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{invoice.Email},
		Subject: subject,
		Html:    htmlContent,
	}

	// Enviar email
	result, err := s.client.Emails.Send(request)
	if err != nil {
		return fmt.Errorf("error sending email via Resend: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"email_id":   result.Id,
		"to":         invoice.Email,
		"invoice_id": invoice.ID,
	}).Info("Billing email sent successfully via Resend")

	return nil
}
