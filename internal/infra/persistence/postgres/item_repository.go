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

// itemRepository implements the repository.ItemRepository interface using
// GORM. Counter adjustments run as single UPDATE statements with the clamp
// expressed in SQL, so concurrent writers serialize on the row instead of
// racing a read-modify-write pair in Go.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// FindByID retrieves a single item by its unique ID.
func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error) {
	var itemM model.FoodItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, storeError(err, "failed to find item by id")
	}

	return toItemDomain(&itemM), nil
}

// FindByIDs retrieves the items for the given ids. Items that no longer
// exist are silently dropped from the result.
func (repo *itemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.FoodItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var itemModels []*model.FoodItemModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&itemModels).Error; err != nil {
		return nil, storeError(err, "failed to find items by ids")
	}

	// Preserve the caller's ordering, which carries the set's recency order.
	byID := make(map[uuid.UUID]*entity.FoodItem, len(itemModels))
	for _, itemM := range itemModels {
		byID[itemM.ID] = toItemDomain(itemM)
	}

	items := make([]*entity.FoodItem, 0, len(itemModels))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}

	return items, nil
}

// AdjustLikeCount atomically applies delta to the like counter, clamping at
// zero, and returns the resulting value.
func (repo *itemRepository) AdjustLikeCount(ctx context.Context, id uuid.UUID, delta int64) (int64, error) {
	return repo.adjustCounter(ctx, id, "like_count", delta)
}

// IncrementShareCount atomically increments the share counter and returns
// the resulting value.
func (repo *itemRepository) IncrementShareCount(ctx context.Context, id uuid.UUID) (int64, error) {
	return repo.adjustCounter(ctx, id, "share_count", 1)
}

// adjustCounter runs the clamped counter update as one statement. GREATEST
// keeps a stale decrement from driving the counter negative.
func (repo *itemRepository) adjustCounter(ctx context.Context, id uuid.UUID, column string, delta int64) (int64, error) {
	var counts []int64

	err := repo.db.WithContext(ctx).
		Raw("UPDATE food_items SET "+column+" = GREATEST("+column+" + ?, 0), updated_at = NOW() WHERE id = ? RETURNING "+column,
			delta, id).
		Scan(&counts).Error
	if err != nil {
		return 0, storeError(err, "failed to adjust "+column)
	}
	if len(counts) == 0 {
		return 0, repository.ErrItemNotFound
	}

	return counts[0], nil
}

// AppendComment appends a comment row and returns the total count after the
// append. The database assigns the sequence number and timestamp.
func (repo *itemRepository) AppendComment(ctx context.Context, comment *entity.Comment) (int64, error) {
	commentM := &model.CommentModel{
		ItemID:      comment.ItemID,
		AuthorID:    comment.AuthorID,
		AuthorLabel: comment.AuthorLabel,
		Text:        comment.Text,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return 0, repository.ErrItemNotFound
		}

		return 0, storeError(err, "failed to append comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("item_id = ?", comment.ItemID).
		Count(&total).Error; err != nil {
		return 0, storeError(err, "failed to count comments")
	}

	return total, nil
}

// ListComments returns one page of the comment log, newest first, together
// with the total count. Timestamp ties break on the sequence number.
func (repo *itemRepository) ListComments(ctx context.Context, itemID uuid.UUID, offset, limit int) ([]*entity.Comment, int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("item_id = ?", itemID).
		Count(&total).Error; err != nil {
		return nil, 0, storeError(err, "failed to count comments")
	}

	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&commentModels).Error; err != nil {
		return nil, 0, storeError(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, total, nil
}

// --- Mapper Functions ---

// toItemDomain converts a GORM FoodItemModel to a domain FoodItem entity.
func toItemDomain(data *model.FoodItemModel) *entity.FoodItem {
	if data == nil {
		return nil
	}

	return &entity.FoodItem{
		ID:           data.ID,
		PartnerID:    data.PartnerID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		Category:     data.Category,
		VideoURL:     data.VideoURL,
		ThumbnailURL: data.ThumbnailURL,
		IsReel:       data.IsReel,
		IsAvailable:  data.IsAvailable,
		LikeCount:    data.LikeCount,
		ShareCount:   data.ShareCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:          data.ID,
		ItemID:      data.ItemID,
		AuthorID:    data.AuthorID,
		AuthorLabel: data.AuthorLabel,
		Text:        data.Text,
		CreatedAt:   data.CreatedAt,
	}
}
