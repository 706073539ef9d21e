// Package seed loads the demo dataset: ten sample clients and their
// appointments. All fixture accounts share the password "password123".
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/spec-kit/pharmacy-booking/internal/auth"
	"github.com/spec-kit/pharmacy-booking/internal/domain"
	"github.com/spec-kit/pharmacy-booking/internal/store"
)

// FixturePassword is the shared password of every demo client.
const FixturePassword = "password123"

type client struct {
	id        string
	name      string
	email     string
	phone     string
	createdAt string
}

type appointment struct {
	id        string
	userID    string
	date      string
	time      string
	service   string
	status    domain.AppointmentStatus
	createdAt string
}

var sampleClients = []client{
	{"1700000001", "Mario Rossi", "mario.rossi@email.it", "333 123 4567", "2025-11-20T10:00:00Z"},
	{"1700000002", "Laura Bianchi", "laura.bianchi@email.it", "347 234 5678", "2025-11-20T11:30:00Z"},
	{"1700000003", "Giuseppe Verdi", "giuseppe.verdi@email.it", "340 345 6789", "2025-11-21T09:15:00Z"},
	{"1700000004", "Anna Ferrari", "anna.ferrari@email.it", "338 456 7890", "2025-11-21T14:20:00Z"},
	{"1700000005", "Marco Colombo", "marco.colombo@email.it", "349 567 8901", "2025-11-22T08:45:00Z"},
	{"1700000006", "Francesca Romano", "francesca.romano@email.it", "335 678 9012", "2025-11-22T16:30:00Z"},
	{"1700000007", "Alessandro Greco", "alessandro.greco@email.it", "342 789 0123", "2025-11-23T10:10:00Z"},
	{"1700000008", "Sofia Marino", "sofia.marino@email.it", "348 890 1234", "2025-11-23T13:50:00Z"},
	{"1700000009", "Luca Ricci", "luca.ricci@email.it", "339 901 2345", "2025-11-24T09:00:00Z"},
	{"1700000010", "Elena Costa", "elena.costa@email.it", "346 012 3456", "2025-11-24T15:25:00Z"},
}

var sampleAppointments = []appointment{
	{"2700000001", "1700000001", "2025-11-26", "09:00", "Consulenza Farmaceutica", domain.StatusConfirmed, "2025-11-20T10:15:00Z"},
	{"2700000002", "1700000002", "2025-11-26", "10:00", "Misurazione Pressione", domain.StatusConfirmed, "2025-11-20T11:45:00Z"},
	{"2700000003", "1700000003", "2025-11-26", "14:00", "Vaccinazione", domain.StatusPending, "2025-11-21T09:30:00Z"},
	{"2700000004", "1700000004", "2025-11-27", "09:00", "Test Rapido", domain.StatusConfirmed, "2025-11-21T14:35:00Z"},
	{"2700000005", "1700000005", "2025-11-27", "11:00", "Consulenza Farmaceutica", domain.StatusPending, "2025-11-22T09:00:00Z"},
	{"2700000006", "1700000006", "2025-11-27", "15:00", "Misurazione Glicemia", domain.StatusConfirmed, "2025-11-22T16:45:00Z"},
	{"2700000007", "1700000007", "2025-11-28", "10:00", "Vaccinazione", domain.StatusPending, "2025-11-23T10:25:00Z"},
	{"2700000008", "1700000008", "2025-11-28", "14:00", "Consulenza Farmaceutica", domain.StatusConfirmed, "2025-11-23T14:05:00Z"},
	{"2700000009", "1700000009", "2025-11-29", "09:00", "Test Rapido", domain.StatusCancelled, "2025-11-24T09:15:00Z"},
	{"2700000010", "1700000010", "2025-11-29", "16:00", "Misurazione Pressione", domain.StatusPending, "2025-11-24T15:40:00Z"},
}

// Load writes the demo dataset into both collections, overwriting whatever is
// there. It returns the number of accounts and appointments written.
func Load(ctx context.Context, collections *store.Collections, hasher auth.Hasher) (int, int, error) {
	hash, err := hasher.Hash(FixturePassword)
	if err != nil {
		return 0, 0, fmt.Errorf("hash fixture password: %w", err)
	}

	accounts := make([]domain.Account, 0, len(sampleClients))
	for _, c := range sampleClients {
		createdAt, err := time.Parse(time.RFC3339, c.createdAt)
		if err != nil {
			return 0, 0, fmt.Errorf("fixture %s: %w", c.id, err)
		}
		accounts = append(accounts, domain.Account{
			ID:           c.id,
			Name:         c.name,
			Email:        c.email,
			Phone:        c.phone,
			PasswordHash: hash,
			CreatedAt:    createdAt,
		})
	}

	appointments := make([]domain.Appointment, 0, len(sampleAppointments))
	for _, a := range sampleAppointments {
		createdAt, err := time.Parse(time.RFC3339, a.createdAt)
		if err != nil {
			return 0, 0, fmt.Errorf("fixture %s: %w", a.id, err)
		}
		appointments = append(appointments, domain.Appointment{
			ID:        a.id,
			UserID:    a.userID,
			Date:      a.date,
			Time:      a.time,
			Service:   a.service,
			Status:    a.status,
			CreatedAt: createdAt,
		})
	}

	if err := collections.SaveAccounts(ctx, accounts); err != nil {
		return 0, 0, fmt.Errorf("save accounts: %w", err)
	}
	if err := collections.SaveAppointments(ctx, appointments); err != nil {
		return 0, 0, fmt.Errorf("save appointments: %w", err)
	}
	return len(accounts), len(appointments), nil
}
