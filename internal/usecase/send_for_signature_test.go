package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/roothome/esign-bridge/internal/entity"
	"github.com/roothome/esign-bridge/internal/infra/integration/esignatures"
)

func signableQuotation() *entity.Quotation {
	return &entity.Quotation{
		ID:                 "QTN-0042",
		CustomerName:       "Alice Moreau",
		ContactEmail:       "alice@example.com",
		Company:            "Root Home",
		ESignatureTemplate: "tpl-7",
	}
}

func TestSendForSignatureHappyPath(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockQuotationRepository)
	mockGateway := new(MockSignatureGateway)
	mockRenderer := new(MockPDFRenderer)
	mockEmail := new(MockEmailService)

	quotation := signableQuotation()
	pdf := []byte("%PDF-1.7 fake")

	mockRepo.On("FindByID", ctx, "QTN-0042").Return(quotation, nil)
	mockGateway.On("CreateContract", ctx, mock.MatchedBy(func(in esignatures.CreateContractInput) bool {
		return in.TemplateID == "tpl-7" &&
			in.SignerName == "Alice Moreau" &&
			in.SignerEmail == "alice@example.com" &&
			in.QuotationID == "QTN-0042" &&
			in.Company == "Root Home"
	})).Return(&esignatures.ContractResult{
		ContractID: "ctr-999",
		SigningURL: "https://esign.example/sign/ctr-999",
	}, nil)
	mockRenderer.On("RenderQuotation", quotation).Return(pdf, nil)
	mockEmail.On("SendSignatureRequest",
		"alice@example.com", "Alice Moreau", "QTN-0042",
		"https://esign.example/sign/ctr-999", pdf,
	).Return(nil)
	mockRepo.On("MarkSignatureSent", ctx, "QTN-0042", "ctr-999", "https://esign.example/sign/ctr-999").Return(nil)

	uc := NewSendForSignatureUseCase(mockRepo, mockGateway, mockRenderer, mockEmail)

	output, err := uc.Execute(ctx, SendForSignatureInput{QuotationID: "QTN-0042"})

	assert.NoError(t, err)
	assert.Equal(t, "https://esign.example/sign/ctr-999", output.SigningURL)
	assert.Equal(t, "Email sent with quotation and signing link.", output.Status)

	// Exactly one persisted field update and one email.
	mockRepo.AssertNumberOfCalls(t, "MarkSignatureSent", 1)
	mockEmail.AssertNumberOfCalls(t, "SendSignatureRequest", 1)
}

func TestSendForSignatureFailsBeforeNetworkWithoutTemplate(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockQuotationRepository)
	mockGateway := new(MockSignatureGateway)
	mockRenderer := new(MockPDFRenderer)
	mockEmail := new(MockEmailService)

	quotation := signableQuotation()
	quotation.ESignatureTemplate = ""

	mockRepo.On("FindByID", ctx, "QTN-0042").Return(quotation, nil)

	uc := NewSendForSignatureUseCase(mockRepo, mockGateway, mockRenderer, mockEmail)

	output, err := uc.Execute(ctx, SendForSignatureInput{QuotationID: "QTN-0042"})

	assert.Nil(t, output)
	assert.True(t, IsValidationError(err))
	assert.EqualError(t, err, "no e-signature template selected")

	// No network call of any kind may happen.
	mockGateway.AssertNotCalled(t, "CreateContract", mock.Anything, mock.Anything)
	mockEmail.AssertNotCalled(t, "SendSignatureRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "MarkSignatureSent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendForSignatureUsesCallerFallbacks(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockQuotationRepository)
	mockGateway := new(MockSignatureGateway)
	mockRenderer := new(MockPDFRenderer)
	mockEmail := new(MockEmailService)

	quotation := signableQuotation()
	quotation.CustomerName = ""
	quotation.ContactEmail = ""

	mockRepo.On("FindByID", ctx, "QTN-0042").Return(quotation, nil)
	mockGateway.On("CreateContract", ctx, mock.MatchedBy(func(in esignatures.CreateContractInput) bool {
		return in.SignerName == "Jane" && in.SignerEmail == "jane@x.com"
	})).Return(&esignatures.ContractResult{ContractID: "ctr-1", SigningURL: "https://esign.example/sign/ctr-1"}, nil)
	mockRenderer.On("RenderQuotation", quotation).Return([]byte("pdf"), nil)
	mockEmail.On("SendSignatureRequest", "jane@x.com", "Jane", "QTN-0042", "https://esign.example/sign/ctr-1", mock.Anything).Return(nil)
	mockRepo.On("MarkSignatureSent", ctx, "QTN-0042", "ctr-1", "https://esign.example/sign/ctr-1").Return(nil)

	uc := NewSendForSignatureUseCase(mockRepo, mockGateway, mockRenderer, mockEmail)

	_, err := uc.Execute(ctx, SendForSignatureInput{
		QuotationID: "QTN-0042",
		SignerName:  "Jane",
		SignerEmail: "jane@x.com",
	})

	assert.NoError(t, err)
	mockGateway.AssertExpectations(t)
	mockEmail.AssertExpectations(t)
}

func TestSendForSignatureQuotationContactWinsOverFallback(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockQuotationRepository)
	mockGateway := new(MockSignatureGateway)
	mockRenderer := new(MockPDFRenderer)
	mockEmail := new(MockEmailService)

	quotation := signableQuotation()

	mockRepo.On("FindByID", ctx, "QTN-0042").Return(quotation, nil)
	mockGateway.On("CreateContract", ctx, mock.MatchedBy(func(in esignatures.CreateContractInput) bool {
		return in.SignerName == "Alice Moreau" && in.SignerEmail == "alice@example.com"
	})).Return(&esignatures.ContractResult{ContractID: "ctr-2", SigningURL: "https://esign.example/sign/ctr-2"}, nil)
	mockRenderer.On("RenderQuotation", quotation).Return([]byte("pdf"), nil)
	mockEmail.On("SendSignatureRequest", "alice@example.com", "Alice Moreau", "QTN-0042", "https://esign.example/sign/ctr-2", mock.Anything).Return(nil)
	mockRepo.On("MarkSignatureSent", ctx, "QTN-0042", "ctr-2", "https://esign.example/sign/ctr-2").Return(nil)

	uc := NewSendForSignatureUseCase(mockRepo, mockGateway, mockRenderer, mockEmail)

	_, err := uc.Execute(ctx, SendForSignatureInput{
		QuotationID: "QTN-0042",
		SignerName:  "Someone Else",
		SignerEmail: "else@x.com",
	})

	assert.NoError(t, err)
	mockGateway.AssertExpectations(t)
}

func TestSendForSignatureUpstreamFailureWritesNothing(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockQuotationRepository)
	mockGateway := new(MockSignatureGateway)
	mockRenderer := new(MockPDFRenderer)
	mockEmail := new(MockEmailService)

	mockRepo.On("FindByID", ctx, "QTN-0042").Return(signableQuotation(), nil)
	mockGateway.On("CreateContract", ctx, mock.Anything).Return(nil, &esignatures.UpstreamError{
		StatusCode: 422,
		Body:       `{"error":"template archived"}`,
		Message:    "failed to create contract",
	})

	uc := NewSendForSignatureUseCase(mockRepo, mockGateway, mockRenderer, mockEmail)

	output, err := uc.Execute(ctx, SendForSignatureInput{QuotationID: "QTN-0042"})

	assert.Nil(t, output)
	assert.True(t, esignatures.IsUpstreamError(err))
	assert.Contains(t, err.Error(), "template archived")

	mockEmail.AssertNotCalled(t, "SendSignatureRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "MarkSignatureSent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendForSignatureEmailFailureSurfacesAndSkipsPersist(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockQuotationRepository)
	mockGateway := new(MockSignatureGateway)
	mockRenderer := new(MockPDFRenderer)
	mockEmail := new(MockEmailService)

	quotation := signableQuotation()

	mockRepo.On("FindByID", ctx, "QTN-0042").Return(quotation, nil)
	mockGateway.On("CreateContract", ctx, mock.Anything).Return(&esignatures.ContractResult{
		ContractID: "ctr-3",
		SigningURL: "https://esign.example/sign/ctr-3",
	}, nil)
	mockRenderer.On("RenderQuotation", quotation).Return([]byte("pdf"), nil)
	mockEmail.On("SendSignatureRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	uc := NewSendForSignatureUseCase(mockRepo, mockGateway, mockRenderer, mockEmail)

	output, err := uc.Execute(ctx, SendForSignatureInput{QuotationID: "QTN-0042"})

	assert.Nil(t, output)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "MarkSignatureSent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendForSignatureUnknownQuotation(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockQuotationRepository)
	mockRepo.On("FindByID", ctx, "QTN-nope").Return(nil, entity.ErrQuotationNotFound)

	uc := NewSendForSignatureUseCase(mockRepo, new(MockSignatureGateway), new(MockPDFRenderer), new(MockEmailService))

	output, err := uc.Execute(ctx, SendForSignatureInput{QuotationID: "QTN-nope"})

	assert.Nil(t, output)
	assert.True(t, IsNotFoundError(err))
}
