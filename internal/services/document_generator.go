package services

import (
	"bytes"
	"fmt"

	"github.com/hypernova-labs/billing-admin-service/internal/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
)

// DocumentGenerator maneja la generación del PDF de una factura
type DocumentGenerator struct {
	logger *logrus.Logger
}

// NewDocumentGenerator crea una nueva instancia del generador
func NewDocumentGenerator(logger *logrus.Logger) *DocumentGenerator {
	return &DocumentGenerator{
		logger: logger,
	}
}

// GenerateBillingPDF genera el PDF de cobro de una factura. Las secciones
// visibles se toman del snapshot de la plantilla capturado al crear la factura.
func (d *DocumentGenerator) GenerateBillingPDF(invoice *models.BillingInvoiceWithVendor, supplier *models.SupplierInfo) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Encabezado
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Billing Invoice - %s", invoice.BillingMonth))
	pdf.Ln(12)

	// Datos del socio
	pdf.SetFont("Arial", "", 11)
	if invoice.VendorName != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Vendor: %s", *invoice.VendorName))
		pdf.Ln(7)
	}
	if invoice.VendorCode != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Business code: %s", *invoice.VendorCode))
		pdf.Ln(7)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Email: %s", invoice.Email))
	pdf.Ln(10)

	// Datos del emisor
	if supplier != nil {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Supplier")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 7, fmt.Sprintf("%s (%s)", supplier.CompanyName, supplier.BusinessNumber))
		pdf.Ln(7)
		pdf.Cell(0, 7, fmt.Sprintf("CEO: %s", supplier.CEO))
		pdf.Ln(10)
	}

	snapshot := invoice.FormSnapshot

	if snapshot.OrderNumber && invoice.Details.OrderNumber != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 7, fmt.Sprintf("Order number: %s", invoice.Details.OrderNumber))
		pdf.Ln(10)
	}

	// Tabla de líneas de cobro
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(80, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	var total float64
	for _, item := range invoice.Details.Items {
		pdf.CellFormat(80, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", item.Total), "1", 1, "R", false, 0, "")
		total += item.Total
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(145, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", total), "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	if snapshot.PaymentInfo && invoice.PaymentInfo != nil {
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("Payment: %s", *invoice.PaymentInfo), "", "L", false)
		pdf.Ln(4)
	}

	if snapshot.Contact && invoice.Details.Contact != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Contact: %s", invoice.Details.Contact))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error generating billing PDF: %w", err)
	}

	d.logger.WithFields(logrus.Fields{
		"invoice_id": invoice.ID,
		"size":       buf.Len(),
	}).Info("Billing PDF generated")

	return buf.Bytes(), nil
}
