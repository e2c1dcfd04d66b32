package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bitefeed/config"
	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/domain/service"
	"bitefeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultRejectionReason is recorded when the reviewer rejects without one.
const defaultRejectionReason = "Payment could not be verified"

// subscriptionService implements the SubscriptionUsecase interface: the
// per-user approval state machine over subscription requests. The request
// record is the source of truth; the cached subscriptionStatus on the user
// profile is a materialized view written in the same logical step. The two
// writes are not atomic — a failure of the projection write is logged and the
// operation still succeeds, mirroring the counter ledger policy.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	blobStore        service.BlobStore
	qrService        service.PaymentQRService
	publisher        service.EventPublisher
	cfg              *config.Config
	logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	userRepo repository.UserRepository,
	blobStore service.BlobStore,
	qrService service.PaymentQRService,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		blobStore:        blobStore,
		qrService:        qrService,
		publisher:        publisher,
		cfg:              cfg,
		logger:           logger,
	}
}

// Submit creates a pending subscription request for the acting user.
func (srv *subscriptionService) Submit(ctx context.Context, principal *entity.Principal, referenceCode string, proof []byte) (*entity.SubscriptionRequest, error) {
	if !principal.IsEndUser() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only end users can submit subscription requests")
	}

	code := strings.TrimSpace(referenceCode)
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("UTR reference code is required")
	}
	if len(proof) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment screenshot is required")
	}

	// At most one request in {pending, approved} per user.
	existing, err := srv.subscriptionRepo.FindActiveByUser(ctx, principal.ID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to check for an active subscription request")
	}
	if existing != nil {
		if existing.Status == entity.SubscriptionApproved {
			return nil, domainerrors.ErrDuplicatePendingRequest.WithDetails("you already have an active subscription")
		}

		return nil, domainerrors.ErrDuplicatePendingRequest.WithDetails("a subscription request is already awaiting approval")
	}

	// Upload first: if it fails, no request record is created at all.
	proofURL, err := srv.blobStore.Upload(ctx, proof, "payment_"+uuid.NewString())
	if err != nil {
		srv.logger.Error("payment screenshot upload failed",
			"userID", principal.ID,
			"error", err,
		)

		return nil, domainerrors.ErrUploadFailed.WrapMessage("screenshot upload failed")
	}

	request := &entity.SubscriptionRequest{
		ID:            uuid.New(),
		UserID:        principal.ID,
		Status:        entity.SubscriptionPending,
		ReferenceCode: code,
		ProofURL:      proofURL,
		Amount:        srv.cfg.Subscription.Amount,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := srv.subscriptionRepo.Create(ctx, request); err != nil {
		if errors.Is(err, repository.ErrDuplicateActiveSubscription) {
			// Lost a race against a concurrent submit; same outcome as the
			// pre-check above.
			return nil, domainerrors.ErrDuplicatePendingRequest.WithDetails("a subscription request is already awaiting approval")
		}

		return nil, errors.Wrap(err, "failed to create subscription request")
	}

	srv.projectStatus(ctx, principal.ID, request.ID, entity.SubscriptionPending)
	srv.publishTransition(ctx, service.EventSubscriptionSubmitted, request)

	return request, nil
}

// GetStatus returns the user's latest request and the status derived from it.
func (srv *subscriptionService) GetStatus(ctx context.Context, principal *entity.Principal) (*usecase.SubscriptionStatusOutput, error) {
	if !principal.IsEndUser() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only end users have a subscription status")
	}

	latest, err := srv.subscriptionRepo.FindLatestByUser(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return &usecase.SubscriptionStatusOutput{Status: entity.SubscriptionNone}, nil
		}

		return nil, errors.Wrap(err, "failed to load latest subscription request")
	}

	// Derive from the request record, not the cached projection, so a stale
	// projection cannot be served back.
	return &usecase.SubscriptionStatusOutput{
		Status:  latest.Status,
		Request: latest,
	}, nil
}

// ListPending returns all requests awaiting review, newest first.
func (srv *subscriptionService) ListPending(ctx context.Context) ([]*entity.SubscriptionRequest, error) {
	requests, err := srv.subscriptionRepo.ListByStatus(ctx, entity.SubscriptionPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending subscription requests")
	}

	return requests, nil
}

// ListAll returns every request regardless of state, newest first.
func (srv *subscriptionService) ListAll(ctx context.Context) ([]*entity.SubscriptionRequest, error) {
	requests, err := srv.subscriptionRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscription requests")
	}

	return requests, nil
}

// Approve transitions the request to approved. Approval is terminal:
// approving an already approved request fails and changes nothing.
func (srv *subscriptionService) Approve(ctx context.Context, requestID uuid.UUID, reviewer *entity.Principal) (*entity.SubscriptionRequest, error) {
	if !reviewer.IsPartner() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only partners can approve subscription requests")
	}

	request, err := srv.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.Status == entity.SubscriptionApproved {
		return nil, domainerrors.ErrAlreadyApproved.WrapMessage("subscription is already approved")
	}

	reviewerID := reviewer.ID
	if err := srv.subscriptionRepo.UpdateReview(ctx, requestID, entity.SubscriptionApproved, &reviewerID, ""); err != nil {
		return nil, errors.Wrap(err, "failed to approve subscription request")
	}

	request.Status = entity.SubscriptionApproved
	request.ReviewedBy = &reviewerID
	request.UpdatedAt = time.Now()

	srv.projectStatus(ctx, request.UserID, request.ID, entity.SubscriptionApproved)
	srv.publishTransition(ctx, service.EventSubscriptionApproved, request)

	return request, nil
}

// Reject transitions the request to rejected unless it is already approved.
func (srv *subscriptionService) Reject(ctx context.Context, requestID uuid.UUID, reason string) (*entity.SubscriptionRequest, error) {
	request, err := srv.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.Status == entity.SubscriptionApproved {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("cannot reject an already approved subscription")
	}

	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		trimmed = defaultRejectionReason
	}

	if err := srv.subscriptionRepo.UpdateReview(ctx, requestID, entity.SubscriptionRejected, nil, trimmed); err != nil {
		return nil, errors.Wrap(err, "failed to reject subscription request")
	}

	request.Status = entity.SubscriptionRejected
	request.RejectionReason = trimmed
	request.UpdatedAt = time.Now()

	srv.projectStatus(ctx, request.UserID, request.ID, entity.SubscriptionRejected)
	srv.publishTransition(ctx, service.EventSubscriptionRejected, request)

	return request, nil
}

// PaymentQR renders the UPI payment QR for the configured amount.
func (srv *subscriptionService) PaymentQR(ctx context.Context) ([]byte, error) {
	sub := srv.cfg.Subscription

	png, err := srv.qrService.GeneratePaymentQR(sub.PayeeVPA, sub.PayeeName, sub.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}

func (srv *subscriptionService) findRequest(ctx context.Context, requestID uuid.UUID) (*entity.SubscriptionRequest, error) {
	request, err := srv.subscriptionRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound.WrapMessage("subscription request not found")
		}

		return nil, errors.Wrap(err, "failed to load subscription request")
	}

	return request, nil
}

// projectStatus rewrites the cached subscriptionStatus on the owning user.
// The request record is authoritative; if this second write fails the
// operation still succeeds and the divergence is logged for correction.
func (srv *subscriptionService) projectStatus(ctx context.Context, userID, requestID uuid.UUID, status entity.SubscriptionStatus) {
	if err := srv.userRepo.UpdateSubscriptionStatus(ctx, userID, status); err != nil {
		srv.logger.Error("subscription status projection update failed, profile is stale",
			"userID", userID,
			"requestID", requestID,
			"status", status,
			"error", err,
		)
	}
}

func (srv *subscriptionService) publishTransition(ctx context.Context, eventType string, request *entity.SubscriptionRequest) {
	if srv.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		Type:       eventType,
		SubjectID:  request.UserID.String(),
		OccurredAt: time.Now(),
		Attributes: map[string]string{
			"request_id": request.ID.String(),
			"status":     request.Status.String(),
		},
	}

	if err := srv.publisher.PublishEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish subscription event",
			"type", eventType,
			"requestID", request.ID,
			"error", err,
		)
	}
}
