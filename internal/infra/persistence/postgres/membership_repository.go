package postgres

import (
	"context"

	"bitefeed/internal/domain/entity"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// membershipRepository implements the repository.MembershipRepository
// interface using GORM. Each operation is a single statement against the
// membership table; set semantics come from the composite primary key.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{
		db: db,
	}
}

// AddMember inserts the item into the user's set. A duplicate insert hits
// the primary key and is dropped, keeping the operation idempotent.
func (repo *membershipRepository) AddMember(ctx context.Context, userID, itemID uuid.UUID, set entity.MembershipSet) error {
	memberM := &model.MembershipModel{
		UserID:  userID,
		ItemID:  itemID,
		SetType: set.String(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(memberM).Error; err != nil {
		return storeError(err, "failed to add set member")
	}

	return nil
}

// RemoveMember deletes the item from the user's set. Removing an absent
// member affects zero rows and is not an error.
func (repo *membershipRepository) RemoveMember(ctx context.Context, userID, itemID uuid.UUID, set entity.MembershipSet) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ? AND set_type = ?", userID, itemID, set.String()).
		Delete(&model.MembershipModel{}).Error; err != nil {
		return storeError(err, "failed to remove set member")
	}

	return nil
}

// Contains reports whether the item is currently in the user's set.
func (repo *membershipRepository) Contains(ctx context.Context, userID, itemID uuid.UUID, set entity.MembershipSet) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("user_id = ? AND item_id = ? AND set_type = ?", userID, itemID, set.String()).
		Count(&count).Error; err != nil {
		return false, storeError(err, "failed to check set membership")
	}

	return count > 0, nil
}

// ListMembers returns the item ids in the user's set, newest first.
func (repo *membershipRepository) ListMembers(ctx context.Context, userID uuid.UUID, set entity.MembershipSet) ([]uuid.UUID, error) {
	var memberModels []*model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND set_type = ?", userID, set.String()).
		Order("created_at DESC").
		Find(&memberModels).Error; err != nil {
		return nil, storeError(err, "failed to list set members")
	}

	itemIDs := make([]uuid.UUID, 0, len(memberModels))
	for _, memberM := range memberModels {
		itemIDs = append(itemIDs, memberM.ItemID)
	}

	return itemIDs, nil
}
