package repository

import (
	"context"
	"time"

	"guesthub/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              string    `gorm:"column:id;primaryKey;size:36"`
	UserID          *int64    `gorm:"column:user_id;index"`
	FullName        string    `gorm:"column:full_name"`
	Email           string    `gorm:"column:email"`
	Phone           string    `gorm:"column:phone"`
	RoomType        string    `gorm:"column:room_type"`
	CheckIn         time.Time `gorm:"column:check_in"`
	CheckOut        time.Time `gorm:"column:check_out"`
	NumberOfGuests  int       `gorm:"column:number_of_guests"`
	SpecialRequests *string   `gorm:"column:special_requests;type:text"`
	TotalPrice      int64     `gorm:"column:total_price"`
	BookingDate     time.Time `gorm:"column:booking_date"`
	Status          string    `gorm:"column:status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) domain.Booking {
	var notes string
	if m.SpecialRequests != nil {
		notes = *m.SpecialRequests
	}

	return domain.Booking{
		ID:              m.ID,
		UserID:          m.UserID,
		FullName:        m.FullName,
		Email:           m.Email,
		Phone:           m.Phone,
		RoomType:        m.RoomType,
		CheckIn:         m.CheckIn,
		CheckOut:        m.CheckOut,
		NumberOfGuests:  m.NumberOfGuests,
		SpecialRequests: notes,
		TotalPrice:      m.TotalPrice,
		BookingDate:     m.BookingDate,
		Status:          domain.BookingStatus(m.Status),
		CreatedAt:       m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes *string
	if b.SpecialRequests != "" {
		v := b.SpecialRequests
		notes = &v
	}

	return bookingModel{
		ID:              b.ID,
		UserID:          b.UserID,
		FullName:        b.FullName,
		Email:           b.Email,
		Phone:           b.Phone,
		RoomType:        b.RoomType,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		NumberOfGuests:  b.NumberOfGuests,
		SpecialRequests: notes,
		TotalPrice:      b.TotalPrice,
		BookingDate:     b.BookingDate,
		Status:          string(b.Status),
	}
}

func (r *BookingRepository) Migrate() error {
	return r.db.AutoMigrate(&bookingModel{})
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	b.CreatedAt = m.CreatedAt
	return nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *BookingRepository) find(q *gorm.DB) ([]domain.Booking, error) {
	var rows []bookingModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&bookingModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
