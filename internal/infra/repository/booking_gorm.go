package repository

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/skinlab011/salon-booking/internal/domain/booking"
	"github.com/skinlab011/salon-booking/internal/httperr"
	"github.com/skinlab011/salon-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Treatment
// --------------------------------------------------

func (r *BookingGormRepository) GetTreatment(
	ctx context.Context,
	id uint,
) (*models.Treatment, error) {

	var treatment models.Treatment
	if err := r.db.WithContext(ctx).First(&treatment, id).Error; err != nil {
		return nil, err
	}
	return &treatment, nil
}

func (r *BookingGormRepository) UpdateTreatment(
	ctx context.Context,
	t *models.Treatment,
) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// --------------------------------------------------
// Booking (availability / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookingsForDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"booking_date = ? AND status IN ('pending', 'confirmed')",
			date,
		).
		Order("start_minute ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// CreateBookingInSlot re-runs the overlap check and inserts the row in
// one serializable transaction, locking the day's active bookings. The
// btree_gist exclusion constraint (see internal/db) backstops the
// check against anything this transaction cannot see.
func (r *BookingGormRepository) CreateBookingInSlot(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"booking_date = ? AND status IN ('pending', 'confirmed')"+
					" AND start_minute < ? AND start_minute + COALESCE(duration_minutes, 60) > ?",
				b.BookingDate,
				b.EndMinute(),
				b.StartMinute,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(b).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil && strings.Contains(err.Error(), "bookings_no_overlap") {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByBookingID(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Booking (admin reads)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForRange(
	ctx context.Context,
	from string,
	to string,
	status string,
	limit int,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Where("booking_date >= ? AND booking_date < ?", from, to)

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var bookings []models.Booking
	if err := q.
		Order("booking_date DESC").
		Order("booking_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListConfirmedBookingsThrough(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Treatment").
		Where("status = 'confirmed' AND booking_date <= ?", date).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
