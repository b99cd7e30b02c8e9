package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	appconfig "github.com/neuraq/gasdesk/internal/config"
	saledomain "github.com/neuraq/gasdesk/internal/sale/domain"
)

const receiptDateLayout = "02/01/2006"

// Provider renders delivery receipts for ledger entries.
type Provider interface {
	GenerateSaleReceipt(ctx context.Context, sale saledomain.Sale) (io.Reader, error)
}

type PDFProvider struct {
	shop appconfig.ShopConfig
}

func NewProvider(cfg appconfig.Config) Provider {
	return &PDFProvider{shop: cfg.Shop}
}

func (p *PDFProvider) GenerateSaleReceipt(ctx context.Context, sale saledomain.Sale) (io.Reader, error) {
	cfg := config.NewBuilder().Build()
	m := maroto.New(cfg)

	// Shop header
	m.AddRow(10,
		text.NewCol(12, p.shop.Name, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(14,
		col.New(12).Add(
			text.New(p.shop.Address, props.Text{Size: 9, Align: align.Center}),
			text.New("Ph: "+p.shop.Phone, props.Text{Size: 9, Align: align.Center, Top: 4}),
			text.New(fmt.Sprintf("Distributor: %s  GSTIN: %s", p.shop.DistributorCode, p.shop.GSTIN),
				props.Text{Size: 8, Align: align.Center, Top: 8}),
		),
	)
	m.AddRow(4, line.NewCol(12))

	// Receipt meta
	m.AddRow(14,
		col.New(6).Add(
			text.New("Receipt no: "+sale.Code, props.Text{Size: 9}),
			text.New("Date: "+sale.SaleDate.Format(receiptDateLayout), props.Text{Size: 9, Top: 5}),
		),
		col.New(6).Add(
			text.New("Customer: "+sale.CustomerName, props.Text{Size: 9}),
			text.New("Code: "+sale.CustomerCode, props.Text{Size: 9, Top: 5}),
			text.New(sale.CustomerAddress, props.Text{Size: 8, Top: 10}),
		),
	)
	m.AddRow(4, line.NewCol(12))

	// Line item
	m.AddRow(8,
		text.NewCol(6, "Item", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		text.NewCol(6, sale.ProductName, props.Text{Size: 9}),
		text.NewCol(2, fmt.Sprintf("%d", sale.SalesQuantity), props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, sale.ProductPrice.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, sale.TodayCredit.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
	)
	if sale.EmptyQuantity > 0 {
		m.AddRow(8,
			text.NewCol(12, fmt.Sprintf("Empty cylinders returned: %d", sale.EmptyQuantity),
				props.Text{Size: 8}),
		)
	}
	m.AddRow(4, line.NewCol(12))

	// Ledger block
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Previous balance", props.Text{Size: 8}),
		text.NewCol(2, sale.PreviousBalance.StringFixed(2), props.Text{Size: 8, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Today's credit", props.Text{Size: 8}),
		text.NewCol(2, sale.TodayCredit.StringFixed(2), props.Text{Size: 8, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Amount received", props.Text{Size: 8}),
		text.NewCol(2, sale.TotalAmountReceived.StringFixed(2), props.Text{Size: 8, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Balance due", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(2, sale.TotalBalance.StringFixed(2), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)

	if p.shop.FooterNote != "" {
		m.AddRow(12,
			text.NewCol(12, p.shop.FooterNote, props.Text{Size: 8, Align: align.Center, Top: 4}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}
