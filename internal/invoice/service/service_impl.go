package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/config"
	"github.com/ventia/ventia/internal/invoice/domain"
	"github.com/ventia/ventia/internal/providers/email"
	"github.com/ventia/ventia/internal/providers/pdf"
	"github.com/ventia/ventia/internal/providers/storage"
	"github.com/ventia/ventia/internal/tasks"
)

type Params struct {
	fx.In

	Config   config.Config
	DB       *gorm.DB
	Log      *zap.Logger
	Company  *config.CompanyProvider
	Renderer pdf.Renderer
	Storage  storage.Provider
	Email    email.Provider
	Tasks    *tasks.Queue
}

type Service struct {
	cfg      config.Config
	db       *gorm.DB
	log      *zap.Logger
	company  *config.CompanyProvider
	renderer pdf.Renderer
	storage  storage.Provider
	email    email.Provider
	tasks    *tasks.Queue
}

func New(p Params) domain.Service {
	return &Service{
		cfg:      p.Config,
		db:       p.DB,
		log:      p.Log.Named("invoice.service"),
		company:  p.Company,
		renderer: p.Renderer,
		storage:  p.Storage,
		email:    p.Email,
		tasks:    p.Tasks,
	}
}

// Generate runs the pipeline: assemble, render, persist, return. The email
// send is queued after the PDF is persisted, so the attachment always exists
// by the time the task runs.
func (s *Service) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Invoice, error) {
	if req.TaxRate < 0 || req.TaxRate > 1 {
		return nil, domain.ErrInvalidTaxRate
	}

	inv, err := s.assemble(ctx, req.OrderID, req.TaxRate)
	if err != nil {
		return nil, err
	}

	company := s.company.Profile()
	pdfBytes, err := s.renderer.RenderInvoice(inv, company)
	if err != nil {
		return nil, fmt.Errorf("invoice: render pdf: %w", err)
	}

	key := fmt.Sprintf("%s/%d/invoice_%d.pdf",
		s.cfg.Storage.InvoiceFolder, inv.Client.ID, inv.Number)
	if err := s.storage.Put(ctx, key, "application/pdf", bytes.NewReader(pdfBytes), int64(len(pdfBytes))); err != nil {
		return nil, fmt.Errorf("invoice: persist pdf: %w", err)
	}
	inv.PDFKey = key

	s.queueEmail(inv, company, pdfBytes)
	return inv, nil
}

func (s *Service) assemble(ctx context.Context, orderID int64, taxRate float64) (*domain.Invoice, error) {
	var order struct {
		ID       int64
		ClientID int64
	}
	err := s.db.WithContext(ctx).Raw(
		`SELECT id, client_id FROM orders WHERE id = ?`, orderID,
	).Scan(&order).Error
	if err != nil {
		return nil, err
	}
	if order.ID == 0 {
		return nil, domain.ErrOrderNotFound
	}

	var client struct {
		ID         int64
		FirstName  string
		LastName   string
		Email      string
		Phone      string
		DocumentID *string
	}
	err = s.db.WithContext(ctx).Raw(
		`SELECT id, first_name, last_name, email, phone, documentid AS document_id
		 FROM clients WHERE id = ?`,
		order.ClientID,
	).Scan(&client).Error
	if err != nil {
		return nil, err
	}
	if client.ID == 0 {
		return nil, domain.ErrClientNotFound
	}

	// Items are stable-ordered: products first, then services, each by
	// ascending line id.
	type lineRow struct {
		Name     string
		Quantity int
		Price    float64
	}

	var productRows []lineRow
	err = s.db.WithContext(ctx).Raw(
		`SELECT p.name, op.quantity, p.price
		 FROM order_products op
		 JOIN products p ON p.id = op.product_id
		 WHERE op.order_id = ?
		 ORDER BY op.product_id ASC`,
		orderID,
	).Scan(&productRows).Error
	if err != nil {
		return nil, err
	}

	var serviceRows []lineRow
	err = s.db.WithContext(ctx).Raw(
		`SELECT sv.name, os.quantity, sv.price
		 FROM order_services os
		 JOIN services sv ON sv.id = os.service_id
		 WHERE os.order_id = ?
		 ORDER BY os.service_id ASC`,
		orderID,
	).Scan(&serviceRows).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(productRows)+len(serviceRows))
	subtotal := 0.0
	for _, row := range append(productRows, serviceRows...) {
		amount := float64(row.Quantity) * row.Price
		subtotal += amount
		items = append(items, domain.Item{
			Name:      row.Name,
			Quantity:  row.Quantity,
			UnitPrice: row.Price,
			Amount:    amount,
		})
	}

	taxAmount := subtotal * taxRate
	doc := ""
	if client.DocumentID != nil {
		doc = *client.DocumentID
	}

	return &domain.Invoice{
		Number: order.ID,
		Date:   time.Now().UTC(),
		Client: domain.ClientInfo{
			ID:         client.ID,
			Name:       strings.TrimSpace(client.FirstName + " " + client.LastName),
			Email:      client.Email,
			Phone:      client.Phone,
			DocumentID: doc,
		},
		Items:     items,
		TaxRate:   taxRate,
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal + taxAmount,
	}, nil
}

// queueEmail schedules the send on the deferred queue. Failures are logged
// only; the invoice has already been returned by then.
func (s *Service) queueEmail(inv *domain.Invoice, company config.CompanyProfile, pdfBytes []byte) {
	if inv.Client.Email == "" {
		return
	}

	body, err := email.RenderTemplate(s.cfg.TemplatesDir, "invoice", map[string]any{
		"CompanyName":    company.Name,
		"CompanyAddress": company.Address,
		"CompanyPhone":   company.Phone,
		"CompanyEmail":   company.Email,
		"FooterMessage":  company.FooterMessage,
		"Number":         inv.Number,
		"Date":           inv.Date.Format("2006-01-02"),
		"ClientName":     inv.Client.Name,
		"Items":          inv.Items,
		"Subtotal":       inv.Subtotal,
		"TaxPercent":     inv.TaxRate * 100,
		"TaxAmount":      inv.TaxAmount,
		"Total":          inv.Total,
	})
	if err != nil {
		s.log.Error("invoice email skipped", zap.Int64("order_id", inv.Number), zap.Error(err))
		return
	}

	to := inv.Client.Email
	subject := fmt.Sprintf("Invoice #%d from %s", inv.Number, company.Name)
	attachment := email.Attachment{
		Filename:    fmt.Sprintf("invoice_%d.pdf", inv.Number),
		ContentType: "application/pdf",
		Data:        pdfBytes,
	}

	s.tasks.Enqueue(tasks.Task{
		Name: fmt.Sprintf("invoice-email-%d", inv.Number),
		Run: func(ctx context.Context) error {
			return s.email.Send(ctx, []string{to}, subject, body, attachment)
		},
	})
	inv.EmailQueued = true
}
