package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"kindkart/internal/database"
	"kindkart/internal/domain"
	"kindkart/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("kindkart.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM donations")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	donationRepo := repository.NewDonationRepository(db)

	log.Println("Creating users...")

	admin := seedUser(ctx, userRepo, "Admin", "admin@kindkart.org", "admin123", domain.RoleAdmin)
	log.Println("Admin created:", admin.Email, "/ admin123")

	donors := []*domain.User{
		seedUser(ctx, userRepo, "Green Bistro", "bistro@kindkart.org", "donor123", domain.RoleDonor),
		seedUser(ctx, userRepo, "City Bakery", "bakery@kindkart.org", "donor123", domain.RoleDonor),
		seedUser(ctx, userRepo, "Campus Canteen", "canteen@kindkart.org", "donor123", domain.RoleDonor),
	}

	ngos := []*domain.User{
		seedUser(ctx, userRepo, "Food For All", "foodforall@kindkart.org", "ngo123", domain.RoleNGO),
		seedUser(ctx, userRepo, "Shelter Kitchen", "shelter@kindkart.org", "ngo123", domain.RoleNGO),
	}

	log.Println("Creating donations...")

	foods := []struct {
		name     string
		quantity string
		location string
	}{
		{"Rice and curry", "40", "Main Street 12"},
		{"Bread rolls", "25", "Baker Lane 3"},
		{"Vegetable soup", "60", "Campus Hall A"},
		{"Sandwiches", "15", "Main Street 12"},
		{"Fruit boxes", "30", "Market Square 7"},
	}

	for i, f := range foods {
		donor := donors[i%len(donors)]
		d := &domain.Donation{
			DonorID:  donor.ID,
			FoodName: f.name,
			Quantity: f.quantity,
			Location: f.location,
			Status:   domain.DonationPending,
		}
		if i%2 == 1 {
			exp := time.Now().Add(48 * time.Hour)
			d.ExpiryTime = &exp
		}
		if err := donationRepo.Create(ctx, d); err != nil {
			log.Fatal("seed donation failed:", err)
		}

		// move some donations along the lifecycle for realistic listings
		switch i % 3 {
		case 1:
			ngo := ngos[i%len(ngos)]
			mustUpdate(ctx, donationRepo, d.ID, map[string]any{
				"status": string(domain.DonationAccepted),
				"ngo_id": ngo.ID,
			})
		case 2:
			ngo := ngos[i%len(ngos)]
			mustUpdate(ctx, donationRepo, d.ID, map[string]any{
				"status": string(domain.DonationCollected),
				"ngo_id": ngo.ID,
			})
		}
	}

	log.Println("Seed complete")
}

func seedUser(ctx context.Context, repo *repository.UserRepository, name, email, password string, role domain.UserRole) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash failed:", err)
	}

	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        fmt.Sprintf("+1 555 01%02d", len(name)),
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatal("seed user failed:", err)
	}
	return u
}

func mustUpdate(ctx context.Context, repo *repository.DonationRepository, id string, updates map[string]any) {
	if err := repo.UpdateFields(ctx, id, updates); err != nil {
		log.Fatal("seed update failed:", err)
	}
}
