package usecase

import (
	"context"

	"github.com/roothome/esign-bridge/internal/entity"
	"github.com/roothome/esign-bridge/internal/infra/integration/esignatures"
)

type SignatureGateway interface {
	ListTemplates(ctx context.Context) ([]esignatures.Template, error)
	CreateContract(ctx context.Context, input esignatures.CreateContractInput) (*esignatures.ContractResult, error)
}

type PDFRenderer interface {
	RenderQuotation(q *entity.Quotation) ([]byte, error)
}

type EmailService interface {
	SendSignatureRequest(to, name, quotationID, signingURL string, pdf []byte) error
	SendNotification(to, subject, message string) error
}
