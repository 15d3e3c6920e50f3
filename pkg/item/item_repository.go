package item

import (
	"Inventory-API/entities"
	"context"
	"strings"

	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		Insert(ctx context.Context, item *entities.Item) error
		Delete(ctx context.Context, phoneNumber string, seq uint) error
		Get(ctx context.Context, phoneNumber string, seq uint) (*entities.Item, error)
		Update(ctx context.Context, phoneNumber string, seq uint, updates map[string]any) error
		List(ctx context.Context, phoneNumber string, page int) ([]*entities.Item, error)
		Search(ctx context.Context, phoneNumber string, keyword string, page int) ([]*entities.Item, error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

// Pages are zero-based with a fixed size of 10, ordered by seq ascending so
// listing follows insertion order.
const pageSize = 10

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Insert(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) Delete(ctx context.Context, phoneNumber string, seq uint) error {
	result := r.db.WithContext(ctx).
		Where("phone_number = ? AND seq = ?", phoneNumber, seq).
		Delete(&entities.Item{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepository) Get(ctx context.Context, phoneNumber string, seq uint) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).
		Where("phone_number = ? AND seq = ?", phoneNumber, seq).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Update(ctx context.Context, phoneNumber string, seq uint, updates map[string]any) error {
	result := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("phone_number = ? AND seq = ?", phoneNumber, seq).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepository) List(ctx context.Context, phoneNumber string, page int) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		Order("seq asc").
		Offset(page * pageSize).
		Limit(pageSize).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// likeEscaper neutralizes LIKE metacharacters so a keyword containing % or _
// matches those characters literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches a case-sensitive prefix against either the literal name or
// the derived search_initial, so a keyword of bare initials still hits.
func (r *itemRepository) Search(ctx context.Context, phoneNumber string, keyword string, page int) ([]*entities.Item, error) {
	var items []*entities.Item
	prefix := likeEscaper.Replace(keyword) + "%"
	if err := r.db.WithContext(ctx).
		Where("phone_number = ? AND (name LIKE ? OR search_initial LIKE ?)", phoneNumber, prefix, prefix).
		Order("seq asc").
		Offset(page * pageSize).
		Limit(pageSize).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
