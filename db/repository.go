package db

import (
	"encoding/json"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"travel-planner-server/model"
)

// Filter restricts a List call to rows whose column value is in Values. It is
// only used for foreign key scoping, so Field always comes from code, never
// from a request.
type Filter struct {
	Field  string
	Values []any
}

// Repository is the storage surface of one entity type. The preload list
// names the relationships loaded eagerly on every read.
type Repository[T model.Entity] struct {
	db       *gorm.DB
	preloads []string
}

func NewRepository[T model.Entity](db *gorm.DB, preloads ...string) *Repository[T] {
	return &Repository[T]{db: db, preloads: preloads}
}

func (repository *Repository[T]) query() *gorm.DB {
	query := repository.db
	for _, preload := range repository.preloads {
		query = query.Preload(preload)
	}
	return query
}

func (repository *Repository[T]) GetById(id int) (T, error) {
	var entity T
	result := repository.query().First(&entity, id)
	if result.Error != nil {
		var zero T
		return zero, result.Error
	}
	return entity, nil
}

func (repository *Repository[T]) List(filters ...Filter) ([]T, error) {
	entities := make([]T, 0)
	query := repository.query()
	for _, filter := range filters {
		query = query.Where(filter.Field+" IN ?", filter.Values)
	}
	result := query.Find(&entities)
	return entities, result.Error
}

func (repository *Repository[T]) Add(entity T) (T, error) {
	result := repository.db.Create(&entity)
	if result.Error != nil {
		var zero T
		return zero, result.Error
	}

	// reload so the configured relationship preloads appear in the stored entity
	return repository.GetById(entity.EntityID())
}

// GetAndUpdate applies the supplied fields to the stored entity. Fields absent
// from the map keep their current value.
func (repository *Repository[T]) GetAndUpdate(id int, fields map[string]any) (T, error) {
	var zero T

	entity, err := repository.GetById(id)
	if err != nil {
		return zero, err
	}

	merged, err := mergeFields(entity, fields)
	if err != nil {
		return zero, err
	}

	// relationships are never touched by a partial update
	result := repository.db.Omit(clause.Associations).Save(&merged)
	if result.Error != nil {
		return zero, result.Error
	}

	return merged, nil
}

func (repository *Repository[T]) Delete(id int) error {
	var entity T
	result := repository.db.Delete(&entity, id)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// mergeFields overlays the supplied fields onto the json form of the entity,
// so field types are checked by the final unmarshal.
func mergeFields[T model.Entity](entity T, fields map[string]any) (T, error) {
	var merged T

	raw, err := json.Marshal(entity)
	if err != nil {
		return merged, err
	}
	current := make(map[string]any)
	err = json.Unmarshal(raw, &current)
	if err != nil {
		return merged, err
	}

	for name, value := range fields {
		current[name] = value
	}

	raw, err = json.Marshal(current)
	if err != nil {
		return merged, err
	}
	err = json.Unmarshal(raw, &merged)
	if err != nil {
		return merged, err
	}

	return merged, nil
}
