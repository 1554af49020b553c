package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"guesthub/internal/config"
	"guesthub/internal/database"
	"guesthub/internal/domain"
	"guesthub/internal/modules/catalog"
	"guesthub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	email, password, name string
	role                  domain.UserRole
}

// One account per role, matching the demo credentials of the front end.
var users = []seedUser{
	{"admin@guesthub.test", "admin123", "Admin", domain.RoleAdmin},
	{"manager@guesthub.test", "manager123", "Morgan Manager", domain.RoleManagement},
	{"staff@guesthub.test", "staff123", "Sam Staff", domain.RoleStaff},
	{"guest@guesthub.test", "guest123", "Jane Guest", domain.RoleGuest},
}

func main() {
	config.LoadDotEnv()
	cfg, err := config.LoadServerConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	if err := userRepo.Migrate(); err != nil {
		log.Fatal("migrate users failed:", err)
	}
	if err := bookingRepo.Migrate(); err != nil {
		log.Fatal("migrate bookings failed:", err)
	}

	ctx := context.Background()
	var guest *domain.User
	for _, su := range users {
		u, err := ensureUser(ctx, userRepo, su)
		if err != nil {
			log.Fatalf("seed user %s failed: %v", su.email, err)
		}
		if u.Role == domain.RoleGuest {
			guest = u
		}
	}

	rooms := catalog.DefaultCatalog().All()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < 5; i++ {
		room := rooms[rand.IntN(len(rooms))]
		checkIn := today.AddDate(0, 0, 7+rand.IntN(30))
		checkOut := checkIn.AddDate(0, 0, 1+rand.IntN(5))
		uid := guest.ID

		b := &domain.Booking{
			UserID:         &uid,
			FullName:       guest.Name,
			Email:          guest.Email,
			Phone:          "5551234567",
			RoomType:       room.ID,
			CheckIn:        checkIn,
			CheckOut:       checkOut,
			NumberOfGuests: 1 + rand.IntN(3),
			TotalPrice:     catalog.ComputeTotal(checkIn, checkOut, room.ID, catalog.DefaultCatalog()),
			BookingDate:    time.Now().UTC(),
			Status:         domain.BookingPending,
		}
		if err := bookingRepo.Create(ctx, b); err != nil {
			log.Fatalf("seed booking failed: %v", err)
		}
	}

	fmt.Println("Seed completed: users and sample bookings created")
}

func ensureUser(ctx context.Context, repo *repository.UserRepository, su seedUser) (*domain.User, error) {
	existing, err := repo.GetByEmail(ctx, su.email)
	if err == nil {
		log.Printf("seed: user exists email=%s", su.email)
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{Email: su.email, PasswordHash: string(hash), Name: su.name, Role: su.role}
	if err := repo.Create(ctx, u); err != nil {
		return nil, err
	}
	log.Printf("seed: created user email=%s role=%s", u.Email, u.Role)
	return u, nil
}
