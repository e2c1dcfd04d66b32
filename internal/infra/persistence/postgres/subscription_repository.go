package postgres

import (
	"context"

	"bitefeed/internal/domain/entity"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository
// interface using GORM. The one-active-request-per-user invariant lives in a
// partial unique index (see model.SubscriptionRequestModel); Create maps a
// violation of it to ErrDuplicateActiveSubscription.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create persists a new subscription request.
func (repo *subscriptionRepository) Create(ctx context.Context, request *entity.SubscriptionRequest) error {
	requestM := fromSubscriptionDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActiveSubscription
		}

		return storeError(err, "failed to create subscription request")
	}

	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByID retrieves a request by its unique ID.
func (repo *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionRequest, error) {
	var requestM model.SubscriptionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, storeError(err, "failed to find subscription request by id")
	}

	return toSubscriptionDomain(&requestM), nil
}

// FindActiveByUser retrieves the user's request with status in
// {pending, approved}. The partial unique index guarantees at most one row.
func (repo *subscriptionRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionRequest, error) {
	var requestM model.SubscriptionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []string{
			entity.SubscriptionPending.String(),
			entity.SubscriptionApproved.String(),
		}).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, storeError(err, "failed to find active subscription request")
	}

	return toSubscriptionDomain(&requestM), nil
}

// FindLatestByUser retrieves the user's most recently created request.
func (repo *subscriptionRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionRequest, error) {
	var requestM model.SubscriptionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, storeError(err, "failed to find latest subscription request")
	}

	return toSubscriptionDomain(&requestM), nil
}

// ListByStatus retrieves all requests in the given state, newest first.
func (repo *subscriptionRepository) ListByStatus(ctx context.Context, status entity.SubscriptionStatus) ([]*entity.SubscriptionRequest, error) {
	var requestModels []*model.SubscriptionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, storeError(err, "failed to list subscription requests by status")
	}

	return toSubscriptionDomainSlice(requestModels), nil
}

// ListAll retrieves all requests regardless of state, newest first.
func (repo *subscriptionRepository) ListAll(ctx context.Context) ([]*entity.SubscriptionRequest, error) {
	var requestModels []*model.SubscriptionRequestModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, storeError(err, "failed to list subscription requests")
	}

	return toSubscriptionDomainSlice(requestModels), nil
}

// UpdateReview rewrites the review outcome columns only. ReferenceCode,
// ProofURL and Amount are never touched after submission.
func (repo *subscriptionRepository) UpdateReview(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus, reviewedBy *uuid.UUID, reason string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionRequestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           status.String(),
			"reviewed_by":      reviewedBy,
			"rejection_reason": reason,
		})

	if result.Error != nil {
		return storeError(result.Error, "failed to update subscription review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionRequestModel to a domain entity.
func toSubscriptionDomain(data *model.SubscriptionRequestModel) *entity.SubscriptionRequest {
	if data == nil {
		return nil
	}

	return &entity.SubscriptionRequest{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          entity.SubscriptionStatus(data.Status),
		ReferenceCode:   data.ReferenceCode,
		ProofURL:        data.ProofURL,
		Amount:          data.Amount,
		ReviewedBy:      data.ReviewedBy,
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toSubscriptionDomainSlice(models []*model.SubscriptionRequestModel) []*entity.SubscriptionRequest {
	requests := make([]*entity.SubscriptionRequest, 0, len(models))
	for _, requestM := range models {
		requests = append(requests, toSubscriptionDomain(requestM))
	}

	return requests
}

// fromSubscriptionDomain converts a domain entity to a GORM SubscriptionRequestModel.
func fromSubscriptionDomain(data *entity.SubscriptionRequest) *model.SubscriptionRequestModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionRequestModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          data.Status.String(),
		ReferenceCode:   data.ReferenceCode,
		ProofURL:        data.ProofURL,
		Amount:          data.Amount,
		ReviewedBy:      data.ReviewedBy,
		RejectionReason: data.RejectionReason,
	}
}
