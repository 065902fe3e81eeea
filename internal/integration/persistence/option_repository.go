package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookmate/backend/internal/application/adapter"
	"github.com/bookmate/backend/internal/domain/entity"
	domainerror "github.com/bookmate/backend/internal/domain/error"
	"github.com/bookmate/backend/internal/integration/persistence/model"
)

// optionRepository implements the adapter.OptionRepository interface.
type optionRepository struct {
	db *gorm.DB
}

// NewOptionRepository creates a new option set repository instance.
func NewOptionRepository(db *gorm.DB) adapter.OptionRepository {
	return &optionRepository{
		db: db,
	}
}

// FindByField retrieves the stored option set for one field.
func (r *optionRepository) FindByField(ctx context.Context, field entity.OptionField) (*entity.OptionSet, error) {
	var optionModel model.OptionSetModel
	result := r.db.WithContext(ctx).Where("field = ?", string(field)).First(&optionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOptionSetNotFound
		}
		return nil, result.Error
	}
	return optionModel.ToEntity()
}

// FindAll retrieves every stored option set.
func (r *optionRepository) FindAll(ctx context.Context) ([]*entity.OptionSet, error) {
	var optionModels []model.OptionSetModel
	result := r.db.WithContext(ctx).Order("field ASC").Find(&optionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sets := make([]*entity.OptionSet, len(optionModels))
	for i, om := range optionModels {
		set, err := om.ToEntity()
		if err != nil {
			return nil, err
		}
		sets[i] = set
	}
	return sets, nil
}

// Replace overwrites the option set for a field. The field column is unique,
// so an upsert keyed on it keeps one row per field.
func (r *optionRepository) Replace(ctx context.Context, set *entity.OptionSet) error {
	optionModel, err := model.OptionSetFromEntity(set)
	if err != nil {
		return err
	}
	optionModel.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "field"}},
		DoUpdates: clause.AssignmentColumns([]string{"values", "keywords", "updated_at"}),
	}).Create(optionModel)
	return result.Error
}

// EnsureDefaults seeds the built-in option sets for any field that has no
// stored set yet.
func (r *optionRepository) EnsureDefaults(ctx context.Context) error {
	fields := []entity.OptionField{
		entity.OptionFieldProperty,
		entity.OptionFieldOperation,
		entity.OptionFieldPayment,
	}

	for _, field := range fields {
		_, err := r.FindByField(ctx, field)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainerror.ErrOptionSetNotFound) {
			return err
		}

		optionModel, err := model.OptionSetFromEntity(entity.DefaultOptionSet(field))
		if err != nil {
			return err
		}
		if err := r.db.WithContext(ctx).Create(optionModel).Error; err != nil {
			return err
		}
	}
	return nil
}
