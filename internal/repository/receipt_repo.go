package repository

import (
	"context"

	"github.com/Eursukkul/venue-booking/internal/models"
	"gorm.io/gorm"
)

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *models.Receipt) error
	FindByBookingID(ctx context.Context, bookingID string) (*models.Receipt, error)
	ListRecent(ctx context.Context, limit int) ([]models.Receipt, error)
}

type receiptRepository struct {
	db *gorm.DB
}

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *models.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) FindByBookingID(ctx context.Context, bookingID string) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&receipt).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) ListRecent(ctx context.Context, limit int) ([]models.Receipt, error) {
	var receipts []models.Receipt
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}
