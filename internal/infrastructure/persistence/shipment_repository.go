package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/erp/carrier-mrw/internal/domain/shared"
	"github.com/erp/carrier-mrw/internal/domain/shipping"
	"github.com/erp/carrier-mrw/internal/infrastructure/persistence/models"
)

// GormShipmentRepository implements shipping.ShipmentRepository using GORM.
// Transaction boundaries are explicit here: MarkSent wraps its single
// record update in a transaction, MarkPrinted issues one batch update.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// FindByIDForTenant finds a shipment by ID within a tenant
func (r *GormShipmentRepository) FindByIDForTenant(ctx context.Context, tenantID, shipmentID uuid.UUID) (*shipping.Shipment, error) {
	var model models.ShipmentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, shipmentID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a shipment by its number within a tenant
func (r *GormShipmentRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*shipping.Shipment, error) {
	var model models.ShipmentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND number = ?", tenantID, number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// MarkSent writes the carrier tracking metadata onto one shipment as a
// single transactional update.
func (r *GormShipmentRepository) MarkSent(ctx context.Context, shipmentID uuid.UUID, update shipping.TrackingUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ShipmentModel{}).
			Where("id = ?", shipmentID).
			Updates(map[string]any{
				"tracking_ref":  update.TrackingRef,
				"service_sent":  update.Service,
				"delivered":     update.Delivered,
				"send_date":     update.SendDate,
				"send_operator": update.Operator,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// MarkPrinted flags the given shipments as printed in one batch update.
func (r *GormShipmentRepository) MarkPrinted(ctx context.Context, shipmentIDs []uuid.UUID) error {
	if len(shipmentIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.ShipmentModel{}).
		Where("id IN ?", shipmentIDs).
		Update("printed", true).Error
}
