package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/roothome/esign-bridge/internal/entity"
	"github.com/roothome/esign-bridge/internal/infra/integration/esignatures"
	"github.com/roothome/esign-bridge/internal/infra/queue"
)

type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) FindByID(ctx context.Context, id string) (*entity.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) FindByContractID(ctx context.Context, contractID string) (*entity.Quotation, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) MarkSignatureSent(ctx context.Context, id, contractID, signingURL string) error {
	args := m.Called(ctx, id, contractID, signingURL)
	return args.Error(0)
}

func (m *MockQuotationRepository) MarkSigned(ctx context.Context, id, pdfURL, signatureDate string) error {
	args := m.Called(ctx, id, pdfURL, signatureDate)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindEnabledByRole(ctx context.Context, role string) ([]entity.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *entity.NotificationLog) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockSignatureGateway struct {
	mock.Mock
}

func (m *MockSignatureGateway) ListTemplates(ctx context.Context) ([]esignatures.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]esignatures.Template), args.Error(1)
}

func (m *MockSignatureGateway) CreateContract(ctx context.Context, input esignatures.CreateContractInput) (*esignatures.ContractResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*esignatures.ContractResult), args.Error(1)
}

type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) RenderQuotation(q *entity.Quotation) ([]byte, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendSignatureRequest(to, name, quotationID, signingURL string, pdf []byte) error {
	args := m.Called(to, name, quotationID, signingURL, pdf)
	return args.Error(0)
}

func (m *MockEmailService) SendNotification(to, subject, message string) error {
	args := m.Called(to, subject, message)
	return args.Error(0)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishSigned(ctx context.Context, payload queue.SignedEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
