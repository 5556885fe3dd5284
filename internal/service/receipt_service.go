package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/venue-booking/internal/booking"
	"github.com/Eursukkul/venue-booking/internal/models"
	"github.com/Eursukkul/venue-booking/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const RoutingKeyBookingCreated = "booking.created"

var (
	ErrReceiptNotFound  = errors.New("receipt not found")
	ErrReceiptsDisabled = errors.New("receipt storage is not configured")
)

type Publisher interface {
	Publish(routingKey string, payload any) error
}

type ReceiptService interface {
	Record(ctx context.Context, r booking.Receipt) error
	GetReceipt(ctx context.Context, bookingID string) (*models.Receipt, error)
	ListRecent(ctx context.Context, limit int) ([]models.Receipt, error)
}

type receiptService struct {
	repo      repository.ReceiptRepository
	publisher Publisher
	log       *zap.Logger
}

// NewReceiptService accepts a nil repository (no storage) and a nil publisher
// (no broker); each half is skipped when absent.
func NewReceiptService(repo repository.ReceiptRepository, publisher Publisher, log *zap.Logger) ReceiptService {
	if log == nil {
		log = zap.NewNop()
	}
	return &receiptService{repo: repo, publisher: publisher, log: log}
}

func (s *receiptService) Record(ctx context.Context, r booking.Receipt) error {
	receipt := &models.Receipt{
		BookingID:     r.BookingID,
		EventDate:     r.Form.EventDate,
		EventTime:     r.Form.EventTime,
		EventDuration: r.Form.EventDuration,
		GuestsCount:   r.Form.GuestsCount,
		EventType:     r.Form.EventType,
		Services:      append([]string{}, r.Form.Services...),
		BaseCost:      r.Price.BaseCost,
		ServicesCost:  r.Price.ServicesCost,
		TotalCost:     r.Price.TotalCost,
	}

	// Receipts are looked up by booking id, so one without an id is not stored.
	if s.repo != nil && receipt.BookingID != "" {
		if err := s.repo.Create(ctx, receipt); err != nil {
			return fmt.Errorf("save receipt %s: %w", r.BookingID, err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(RoutingKeyBookingCreated, receipt); err != nil {
			return fmt.Errorf("publish %s: %w", RoutingKeyBookingCreated, err)
		}
	}

	s.log.Info("booking recorded",
		zap.String("booking_id", receipt.BookingID),
		zap.Int64("total_cost", receipt.TotalCost))
	return nil
}

func (s *receiptService) GetReceipt(ctx context.Context, bookingID string) (*models.Receipt, error) {
	if s.repo == nil {
		return nil, ErrReceiptsDisabled
	}
	receipt, err := s.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiptNotFound
		}
		return nil, err
	}
	return receipt, nil
}

func (s *receiptService) ListRecent(ctx context.Context, limit int) ([]models.Receipt, error) {
	if s.repo == nil {
		return nil, ErrReceiptsDisabled
	}
	return s.repo.ListRecent(ctx, limit)
}
