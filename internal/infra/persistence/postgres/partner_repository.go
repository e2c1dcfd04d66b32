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

// partnerRepository implements the repository.PartnerRepository interface using GORM.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{
		db: db,
	}
}

// FindByID retrieves a single partner by their unique ID.
func (repo *partnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodPartner, error) {
	var partnerM model.FoodPartnerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, storeError(err, "failed to find partner by id")
	}

	return toPartnerDomain(&partnerM), nil
}

// FindByEmail retrieves a single partner by their email address.
func (repo *partnerRepository) FindByEmail(ctx context.Context, email string) (*entity.FoodPartner, error) {
	var partnerM model.FoodPartnerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, storeError(err, "failed to find partner by email")
	}

	return toPartnerDomain(&partnerM), nil
}

// Create persists a new partner entity to the database.
func (repo *partnerRepository) Create(ctx context.Context, partner *entity.FoodPartner) error {
	partnerM := fromPartnerDomain(partner)

	if err := repo.db.WithContext(ctx).Create(partnerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePartner
		}

		return storeError(err, "failed to create partner")
	}

	partner.CreatedAt = partnerM.CreatedAt
	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toPartnerDomain converts a GORM FoodPartnerModel to a domain FoodPartner entity.
func toPartnerDomain(data *model.FoodPartnerModel) *entity.FoodPartner {
	if data == nil {
		return nil
	}

	return &entity.FoodPartner{
		ID:           data.ID,
		Name:         data.Name,
		ContactName:  data.ContactName,
		Phone:        data.Phone,
		Address:      data.Address,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromPartnerDomain converts a domain FoodPartner entity to a GORM FoodPartnerModel.
func fromPartnerDomain(data *entity.FoodPartner) *model.FoodPartnerModel {
	if data == nil {
		return nil
	}

	return &model.FoodPartnerModel{
		ID:           data.ID,
		Name:         data.Name,
		ContactName:  data.ContactName,
		Phone:        data.Phone,
		Address:      data.Address,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
	}
}
