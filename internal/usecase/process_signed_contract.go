package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/roothome/esign-bridge/internal/entity"
	"github.com/roothome/esign-bridge/internal/infra/queue"
)

type ProcessSignedContractUseCase struct {
	QuotationRepo    entity.QuotationRepositoryInterface
	UserRepo         entity.UserRepositoryInterface
	NotificationRepo entity.NotificationRepositoryInterface
	EmailService     EmailService
	Queue            queue.QueueProducerInterface
}

func NewProcessSignedContractUseCase(
	quotationRepo entity.QuotationRepositoryInterface,
	userRepo entity.UserRepositoryInterface,
	notificationRepo entity.NotificationRepositoryInterface,
	emailService EmailService,
	producer queue.QueueProducerInterface,
) *ProcessSignedContractUseCase {
	return &ProcessSignedContractUseCase{
		QuotationRepo:    quotationRepo,
		UserRepo:         userRepo,
		NotificationRepo: notificationRepo,
		EmailService:     emailService,
		Queue:            producer,
	}
}

// Execute handles a verified signed-contract webhook: correlates the
// contract to a quotation, writes the signed fields and fans out the
// notifications. There is no dedup: a redelivered webhook runs the whole
// thing again, notifications included.
func (uc *ProcessSignedContractUseCase) Execute(ctx context.Context, input ProcessSignedContractInput) (*ProcessSignedContractOutput, error) {
	quotation, err := uc.QuotationRepo.FindByContractID(ctx, input.ContractKey)
	if err != nil {
		if errors.Is(err, entity.ErrQuotationNotFound) {
			return nil, &NotFoundError{
				Message: fmt.Sprintf("No Quotation found for contract ID %s", input.ContractKey),
			}
		}
		return nil, err
	}

	signatureDate := signatureDateFrom(input.Timestamp)

	if err := uc.QuotationRepo.MarkSigned(ctx, quotation.ID, input.SignedPDFURL, signatureDate); err != nil {
		return nil, err
	}

	notified, failed := uc.notifyRecipients(ctx, quotation.ID)

	// Best-effort: the quotation is already signed in the database, a queue
	// outage must not turn the webhook into a failure.
	if uc.Queue != nil {
		payload := queue.SignedEventPayload{
			QuotationID:   quotation.ID,
			ContractID:    input.ContractID,
			CustomerName:  quotation.CustomerName,
			ContactEmail:  quotation.ContactEmail,
			Company:       quotation.Company,
			SignedPDFURL:  input.SignedPDFURL,
			SignatureDate: signatureDate,
			Origin:        "WEBHOOK_ESIGNATURES",
		}
		if err := uc.Queue.PublishSigned(ctx, payload); err != nil {
			log.Printf("⚠️ signed event for %s not published: %v", quotation.ID, err)
		}
	}

	return &ProcessSignedContractOutput{
		QuotationID: quotation.ID,
		ContractID:  input.ContractID,
		Timestamp:   input.Timestamp,
		Notified:    notified,
		Failed:      failed,
	}, nil
}

// notifyRecipients delivers one notification record plus one email to every
// enabled holder of the e-signature role. One bad recipient never blocks
// the rest; the tallies go back to the caller.
func (uc *ProcessSignedContractUseCase) notifyRecipients(ctx context.Context, quotationID string) (notified, failed int) {
	users, err := uc.UserRepo.FindEnabledByRole(ctx, entity.ESignatureRole)
	if err != nil {
		log.Printf("❌ failed to list notification recipients: %v", err)
		return 0, 0
	}

	subject := fmt.Sprintf("Quotation %s Signed", quotationID)
	message := fmt.Sprintf("The Quotation <b>%s</b> has been signed.", quotationID)

	for _, user := range users {
		ok := true

		notification := entity.NewNotificationLog(user.ID, subject, message, quotationID)
		if err := uc.NotificationRepo.Create(ctx, notification); err != nil {
			log.Printf("❌ notification record for %s failed: %v", user.Email, err)
			ok = false
		}

		if err := uc.EmailService.SendNotification(user.Email, subject, message); err != nil {
			log.Printf("❌ notification email to %s failed: %v", user.Email, err)
			ok = false
		}

		if ok {
			notified++
		} else {
			failed++
		}
	}

	return notified, failed
}

func signatureDateFrom(timestamp string) string {
	if len(timestamp) >= 10 {
		return timestamp[:10]
	}
	return time.Now().Format("2006-01-02")
}
