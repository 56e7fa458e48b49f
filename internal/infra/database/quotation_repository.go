package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/roothome/esign-bridge/internal/entity"
)

type QuotationRepository struct {
	DB *sql.DB
}

func NewQuotationRepository(db *sql.DB) *QuotationRepository {
	return &QuotationRepository{DB: db}
}

const quotationColumns = `
	id, customer_name, contact_email, company,
	esignature_template, signature_sent, contract_id, signing_url,
	signed_pdf_url, signature_date, document_signed,
	created_at, updated_at
`

func (r *QuotationRepository) FindByID(ctx context.Context, id string) (*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE id = $1`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *QuotationRepository) FindByContractID(ctx context.Context, contractID string) (*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE contract_id = $1`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, contractID))
}

func (r *QuotationRepository) MarkSignatureSent(ctx context.Context, id, contractID, signingURL string) error {
	query := `
		UPDATE quotations
		SET signature_sent = TRUE, contract_id = $2, signing_url = $3, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query, id, contractID, signingURL)
	if err != nil {
		log.Printf("quotation update failed: %v", err)
		return err
	}

	return requireOneRow(res)
}

func (r *QuotationRepository) MarkSigned(ctx context.Context, id, pdfURL, signatureDate string) error {
	// Single statement so the three signed fields never diverge.
	query := `
		UPDATE quotations
		SET signed_pdf_url = $2, signature_date = $3, document_signed = TRUE, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query, id, pdfURL, signatureDate)
	if err != nil {
		log.Printf("quotation update failed: %v", err)
		return err
	}

	return requireOneRow(res)
}

func (r *QuotationRepository) scanOne(row *sql.Row) (*entity.Quotation, error) {
	var q entity.Quotation
	var contractID, signingURL, signedPDFURL, signatureDate sql.NullString

	err := row.Scan(
		&q.ID, &q.CustomerName, &q.ContactEmail, &q.Company,
		&q.ESignatureTemplate, &q.SignatureSent, &contractID, &signingURL,
		&signedPDFURL, &signatureDate, &q.DocumentSigned,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrQuotationNotFound
		}
		return nil, err
	}

	q.ContractID = contractID.String
	q.SigningURL = signingURL.String
	q.SignedPDFURL = signedPDFURL.String
	q.SignatureDate = signatureDate.String

	return &q, nil
}

func requireOneRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrQuotationNotFound
	}
	return nil
}
