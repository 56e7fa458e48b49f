package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/roothome/esign-bridge/internal/entity"
	"github.com/roothome/esign-bridge/internal/infra/integration/esignatures"
)

type SendForSignatureUseCase struct {
	QuotationRepo entity.QuotationRepositoryInterface
	Gateway       SignatureGateway
	Renderer      PDFRenderer
	EmailService  EmailService
}

func NewSendForSignatureUseCase(
	quotationRepo entity.QuotationRepositoryInterface,
	gateway SignatureGateway,
	renderer PDFRenderer,
	emailService EmailService,
) *SendForSignatureUseCase {
	return &SendForSignatureUseCase{
		QuotationRepo: quotationRepo,
		Gateway:       gateway,
		Renderer:      renderer,
		EmailService:  emailService,
	}
}

func (uc *SendForSignatureUseCase) Execute(ctx context.Context, input SendForSignatureInput) (*SendForSignatureOutput, error) {
	quotation, err := uc.QuotationRepo.FindByID(ctx, input.QuotationID)
	if err != nil {
		if errors.Is(err, entity.ErrQuotationNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Quotation %s not found", input.QuotationID)}
		}
		return nil, err
	}

	// Fail before any network call when no template was picked.
	if quotation.ESignatureTemplate == "" {
		return nil, &ValidationError{Message: "no e-signature template selected"}
	}

	// The quotation's own contact wins; caller values are fallbacks only.
	signerName := quotation.CustomerName
	if signerName == "" {
		signerName = input.SignerName
	}
	signerEmail := quotation.ContactEmail
	if signerEmail == "" {
		signerEmail = input.SignerEmail
	}

	contract, err := uc.Gateway.CreateContract(ctx, esignatures.CreateContractInput{
		TemplateID:  quotation.ESignatureTemplate,
		SignerName:  signerName,
		SignerEmail: signerEmail,
		QuotationID: quotation.ID,
		Company:     quotation.Company,
	})
	if err != nil {
		return nil, err
	}

	pdfBytes, err := uc.Renderer.RenderQuotation(quotation)
	if err != nil {
		return nil, fmt.Errorf("failed to render quotation pdf: %w", err)
	}

	// The upstream contract already exists at this point; an email failure
	// surfaces to the caller but rolls nothing back.
	if err := uc.EmailService.SendSignatureRequest(signerEmail, signerName, quotation.ID, contract.SigningURL, pdfBytes); err != nil {
		return nil, err
	}

	if err := uc.QuotationRepo.MarkSignatureSent(ctx, quotation.ID, contract.ContractID, contract.SigningURL); err != nil {
		return nil, err
	}

	log.Printf("🚀 Signature request sent for quotation %s (contract %s)", quotation.ID, contract.ContractID)

	return &SendForSignatureOutput{
		Status:     "Email sent with quotation and signing link.",
		SigningURL: contract.SigningURL,
	}, nil
}
