package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"

	"github.com/niroggyan/healthcare-api/config"
	"github.com/niroggyan/healthcare-api/internal/domain/entity"
	"github.com/niroggyan/healthcare-api/internal/infrastructure/postgres"
	"github.com/niroggyan/healthcare-api/pkg/helpers"
)

var specializations = []string{
	"Cardiology",
	"Dermatology",
	"Pediatrics",
	"Orthopedics",
	"Neurology",
	"General Medicine",
	"Gynecology",
	"Psychiatry",
}

var availabilities = []string{
	entity.AvailabilityToday,
	entity.AvailabilityFullyBooked,
	entity.AvailabilityOnLeave,
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	gofakeit.Seed(time.Now().UnixNano())

	// Demo patient
	email := "patient@niroggyan.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, "Demo Patient").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	// Doctors across every specialization
	repo := postgres.NewDoctorRepository(pool)
	count := 0
	for _, spec := range specializations {
		for i := 0; i < 3; i++ {
			d := &entity.Doctor{
				Name:           "Dr. " + gofakeit.Name(),
				Specialization: spec,
				Email:          gofakeit.Email(),
				Phone:          gofakeit.Phone(),
				ProfileImage:   "https://via.placeholder.com/150",
				Availability:   availabilities[gofakeit.Number(0, len(availabilities)-1)],
				Experience:     gofakeit.Number(2, 30),
				Description:    "Experienced healthcare professional",
				WorkStart:      "09:00",
				WorkEnd:        "17:00",
			}
			if err := repo.Create(ctx, d); err != nil {
				log.Fatalf("failed to seed doctor: %v", err)
			}
			count++
		}
	}
	fmt.Printf("seeded %d doctors across %d specializations\n", count, len(specializations))
}
