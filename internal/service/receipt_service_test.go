package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Eursukkul/venue-booking/internal/booking"
	"github.com/Eursukkul/venue-booking/internal/form"
	"github.com/Eursukkul/venue-booking/internal/models"
	"github.com/Eursukkul/venue-booking/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- Mock ReceiptRepository ---

type mockReceiptRepo struct {
	createFn func(ctx context.Context, r *models.Receipt) error
	findFn   func(ctx context.Context, bookingID string) (*models.Receipt, error)
	listFn   func(ctx context.Context, limit int) ([]models.Receipt, error)
}

func (m *mockReceiptRepo) Create(ctx context.Context, r *models.Receipt) error {
	return m.createFn(ctx, r)
}
func (m *mockReceiptRepo) FindByBookingID(ctx context.Context, bookingID string) (*models.Receipt, error) {
	return m.findFn(ctx, bookingID)
}
func (m *mockReceiptRepo) ListRecent(ctx context.Context, limit int) ([]models.Receipt, error) {
	return m.listFn(ctx, limit)
}

// --- Mock Publisher ---

type mockPublisher struct {
	keys     []string
	payloads []any
	err      error
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.keys = append(m.keys, routingKey)
	m.payloads = append(m.payloads, payload)
	return m.err
}

// --- Tests ---

func sampleReceipt() booking.Receipt {
	return booking.Receipt{
		BookingID: "17",
		Form: form.BookingForm{
			EventDate:     "2026-10-25",
			EventTime:     "14:00",
			EventDuration: 3,
			GuestsCount:   10,
			EventType:     "birthday",
			Services:      []string{"photographer"},
		},
		Price: pricing.PriceBreakdown{BaseCost: 15000, ServicesCost: 2500, TotalCost: 17500},
	}
}

func TestRecord_SavesAndPublishes(t *testing.T) {
	var saved *models.Receipt
	repo := &mockReceiptRepo{
		createFn: func(ctx context.Context, r *models.Receipt) error {
			saved = r
			return nil
		},
	}
	pub := &mockPublisher{}

	err := NewReceiptService(repo, pub, nil).Record(context.Background(), sampleReceipt())

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "17", saved.BookingID)
	assert.Equal(t, int64(17500), saved.TotalCost)
	assert.Equal(t, []string{"photographer"}, saved.Services)
	assert.Equal(t, []string{RoutingKeyBookingCreated}, pub.keys)
}

func TestRecord_NilDependencies(t *testing.T) {
	err := NewReceiptService(nil, nil, nil).Record(context.Background(), sampleReceipt())

	assert.NoError(t, err)
}

func TestRecord_SkipsStorageWithoutBookingID(t *testing.T) {
	repo := &mockReceiptRepo{
		createFn: func(ctx context.Context, r *models.Receipt) error {
			t.Fatal("receipt without booking id must not be stored")
			return nil
		},
	}
	pub := &mockPublisher{}
	r := sampleReceipt()
	r.BookingID = ""

	err := NewReceiptService(repo, pub, nil).Record(context.Background(), r)

	assert.NoError(t, err)
	assert.Len(t, pub.keys, 1)
}

func TestRecord_RepoError(t *testing.T) {
	repo := &mockReceiptRepo{
		createFn: func(ctx context.Context, r *models.Receipt) error {
			return errors.New("db connection failed")
		},
	}
	pub := &mockPublisher{}

	err := NewReceiptService(repo, pub, nil).Record(context.Background(), sampleReceipt())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db connection failed")
	assert.Empty(t, pub.keys)
}

func TestRecord_PublishError(t *testing.T) {
	pub := &mockPublisher{err: errors.New("channel closed")}

	err := NewReceiptService(nil, pub, nil).Record(context.Background(), sampleReceipt())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), RoutingKeyBookingCreated)
}

func TestGetReceipt_NotFound(t *testing.T) {
	repo := &mockReceiptRepo{
		findFn: func(ctx context.Context, bookingID string) (*models.Receipt, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	_, err := NewReceiptService(repo, nil, nil).GetReceipt(context.Background(), "99")

	assert.ErrorIs(t, err, ErrReceiptNotFound)
}

func TestGetReceipt_Disabled(t *testing.T) {
	_, err := NewReceiptService(nil, nil, nil).GetReceipt(context.Background(), "17")

	assert.ErrorIs(t, err, ErrReceiptsDisabled)
}

func TestGetReceipt_Success(t *testing.T) {
	repo := &mockReceiptRepo{
		findFn: func(ctx context.Context, bookingID string) (*models.Receipt, error) {
			return &models.Receipt{ID: 1, BookingID: bookingID, TotalCost: 17500}, nil
		},
	}

	r, err := NewReceiptService(repo, nil, nil).GetReceipt(context.Background(), "17")

	require.NoError(t, err)
	assert.Equal(t, "17", r.BookingID)
}

func TestListRecent(t *testing.T) {
	repo := &mockReceiptRepo{
		listFn: func(ctx context.Context, limit int) ([]models.Receipt, error) {
			assert.Equal(t, 5, limit)
			return []models.Receipt{{BookingID: "2"}, {BookingID: "1"}}, nil
		},
	}

	list, err := NewReceiptService(repo, nil, nil).ListRecent(context.Background(), 5)

	require.NoError(t, err)
	assert.Len(t, list, 2)
}
