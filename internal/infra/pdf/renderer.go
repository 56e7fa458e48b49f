package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/roothome/esign-bridge/internal/entity"
)

// QuotationRenderer produces the PDF attached to the signature-request
// email. The layout mirrors the "Root Home Quotation" print format.
type QuotationRenderer struct {
	CompanyName string
}

func NewQuotationRenderer(companyName string) *QuotationRenderer {
	return &QuotationRenderer{CompanyName: companyName}
}

func (r *QuotationRenderer) RenderQuotation(q *entity.Quotation) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New(r.CompanyName, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(10).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Quotation %s", q.ID), props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		line.NewRow(4),
		labelValueRow("Customer", q.CustomerName),
		labelValueRow("Email", q.ContactEmail),
		labelValueRow("Company", q.Company),
		labelValueRow("Date", q.CreatedAt.Format("2006-01-02")),
		line.NewRow(4),
		row.New(10).Add(
			col.New(12).Add(
				text.New("This quotation is pending your electronic signature.", props.Text{
					Size:  10,
					Style: fontstyle.Italic,
				}),
			),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func labelValueRow(label, value string) core.Row {
	return row.New(8).Add(
		col.New(3).Add(text.New(label, props.Text{Size: 10, Style: fontstyle.Bold})),
		col.New(9).Add(text.New(value, props.Text{Size: 10})),
	)
}
