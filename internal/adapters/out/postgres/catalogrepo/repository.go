package catalogrepo

import (
	"context"
	"errors"

	"foodexpress/internal/core/domain/model/catalog"
	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.ID) (*catalog.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.Int64())
		}
		return nil, err
	}

	return customerToDomain(dto), nil
}

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.ID) (*catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.Int64())
		}
		return nil, err
	}

	return restaurantToDomain(dto), nil
}

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// GetByIDs retrieves the menu items that exist among the given ids. Missing
// ids are absent from the result rather than reported as errors.
func (r *GormMenuItemRepository) GetByIDs(ctx context.Context, ids []kernel.ID) ([]*catalog.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Int64())
	}

	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*catalog.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, menuItemToDomain(dto))
	}

	return items, nil
}

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetCart retrieves the customer's current cart. A customer with no cart
// lines gets a cart with no items, not an error.
func (r *GormCartRepository) GetCart(ctx context.Context, customerID kernel.ID) (*catalog.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Int64()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	cart := &catalog.Cart{CustomerID: customerID}
	for _, dto := range dtos {
		cart.RestaurantID = kernel.ID(dto.RestaurantID)
		cart.Items = append(cart.Items, catalog.CartItem{
			MenuItemID: kernel.ID(dto.MenuItemID),
			Name:       dto.Name,
			Price:      dto.Price,
			Quantity:   dto.Quantity,
		})
	}

	return cart, nil
}

// Clear removes every line from the customer's cart.
func (r *GormCartRepository) Clear(ctx context.Context, customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Int64()).
		Delete(&CartItemDTO{}).Error
}
