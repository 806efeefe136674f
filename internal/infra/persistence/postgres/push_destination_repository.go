package postgres

import (
	"context"

	"spoolmeter/internal/domain/entity"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pushDestinationRepository implements the repository.PushDestinationRepository interface.
type pushDestinationRepository struct {
	db *gorm.DB
}

// NewPushDestinationRepository is the constructor for pushDestinationRepository.
func NewPushDestinationRepository(db *gorm.DB) repository.PushDestinationRepository {
	return &pushDestinationRepository{
		db: db,
	}
}

// CreatePushDestination persists a new destination for an account.
func (repo *pushDestinationRepository) CreatePushDestination(ctx context.Context, destination *entity.PushDestination) error {
	if destination.ID == uuid.Nil {
		destination.ID = uuid.New()
	}
	destM := fromPushDestinationDomain(destination)

	if err := repo.db.WithContext(ctx).Create(destM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePushDestination
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required destination information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create push destination")
	}

	destination.CreatedAt = destM.CreatedAt

	return nil
}

// FindPushDestinationByID retrieves a destination by its unique ID.
func (repo *pushDestinationRepository) FindPushDestinationByID(ctx context.Context, id uuid.UUID) (*entity.PushDestination, error) {
	var destM model.PushDestinationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&destM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPushDestinationNotFound
		}

		return nil, errors.Wrap(err, "failed to find push destination by ID")
	}

	return toPushDestinationDomain(&destM), nil
}

// FindPushDestinationsByAccount lists an account's destinations, oldest first.
func (repo *pushDestinationRepository) FindPushDestinationsByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.PushDestination, error) {
	var destModels []*model.PushDestinationModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&destModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push destinations by account")
	}

	destinations := make([]*entity.PushDestination, 0, len(destModels))
	for _, destM := range destModels {
		destinations = append(destinations, toPushDestinationDomain(destM))
	}

	return destinations, nil
}

// DeletePushDestination removes a destination by ID.
func (repo *pushDestinationRepository) DeletePushDestination(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PushDestinationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete push destination")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPushDestinationNotFound
	}

	return nil
}

// DeletePushDestinationByToken removes a destination by token. Unknown tokens are ignored.
func (repo *pushDestinationRepository) DeletePushDestinationByToken(ctx context.Context, token string) error {
	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.PushDestinationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete push destination by token")
	}

	return nil
}

func fromPushDestinationDomain(data *entity.PushDestination) *model.PushDestinationModel {
	return &model.PushDestinationModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		Platform:  string(data.Platform),
		Token:     data.Token,
		P256dhKey: data.P256dhKey,
		AuthKey:   data.AuthKey,
		CreatedAt: data.CreatedAt,
	}
}

func toPushDestinationDomain(data *model.PushDestinationModel) *entity.PushDestination {
	return &entity.PushDestination{
		ID:        data.ID,
		AccountID: data.AccountID,
		Platform:  entity.PushPlatform(data.Platform),
		Token:     data.Token,
		P256dhKey: data.P256dhKey,
		AuthKey:   data.AuthKey,
		CreatedAt: data.CreatedAt,
	}
}
