package appointment

import (
	"time"

	"github.com/barberrock/booking-api/internal/auth"
	"github.com/barberrock/booking-api/internal/models"
	"github.com/barberrock/booking-api/internal/timezone"
)

var loc = timezone.Location(timezone.DefaultTimezone)

const (
	barberID      uint = 1
	otherBarberID uint = 2
	barberUserID  uint = 10
	clientID      uint = 1
	clientUserID  uint = 20

	haircutID  uint = 1
	inactiveID uint = 2
	beardID    uint = 3

	comboID uint = 1
	emptyID uint = 2

	waxID    uint = 1
	shampoo  uint = 2
	retiredP uint = 3
)

func clientPrincipal() auth.Principal {
	return auth.Principal{UserID: clientUserID, Role: auth.RoleClient}
}

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

func localAt(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, loc)
}

// newFixture seeds a barber working Mon-Sat 09:00-20:00 and a plain client.
func newFixture() *fakeRepo {
	f := newFakeRepo()

	qr := "qr-token-1"
	f.barbers[barberID] = &models.BarberProfile{
		ID:          barberID,
		UserID:      barberUserID,
		User:        models.User{ID: barberUserID, Username: "carlos", FirstName: "Carlos", LastName: "Mena"},
		StartTime:   "09:00",
		EndTime:     "20:00",
		WorkingDays: "[1,2,3,4,5,6]",
		Active:      true,
		QRToken:     &qr,
	}
	f.barbers[otherBarberID] = &models.BarberProfile{
		ID:          otherBarberID,
		UserID:      11,
		User:        models.User{ID: 11, Username: "luis"},
		StartTime:   "09:00",
		EndTime:     "18:00",
		WorkingDays: `"[\"1\",\"2\",\"3\",\"4\",\"5\"]"`,
		Active:      true,
	}

	f.services[haircutID] = &models.Service{ID: haircutID, Name: "Corte clásico", DurationMin: 45, Price: 200, Active: true}
	f.services[inactiveID] = &models.Service{ID: inactiveID, Name: "Tinte", DurationMin: 90, Active: false}
	f.services[beardID] = &models.Service{ID: beardID, Name: "Barba", DurationMin: 30, Price: 120, Active: true}

	f.products[waxID] = &models.Product{ID: waxID, Name: "Cera", Price: 150, Active: true}
	f.products[shampoo] = &models.Product{ID: shampoo, Name: "Shampoo", Price: 180, Active: true}
	f.products[retiredP] = &models.Product{ID: retiredP, Name: "Gel", Price: 90, Active: false}

	f.packages[comboID] = &models.Package{
		ID:       comboID,
		Name:     "Combo barba",
		Services: []models.Service{*f.services[beardID], *f.services[haircutID]},
		Products: []models.Product{*f.products[waxID]},
		Active:   true,
	}
	f.packages[emptyID] = &models.Package{ID: emptyID, Name: "Día de spa", Active: true}

	f.clients[clientID] = &models.ClientProfile{
		ID:     clientID,
		UserID: clientUserID,
		User: models.User{
			ID:        clientUserID,
			Username:  "ana",
			FirstName: "Ana",
			LastName:  "Ruiz",
			Email:     "ana@example.com",
			Phone:     "+52 55 1234 5678",
		},
		PromotionThreshold: 5,
	}

	return f
}

// addClient registers another client profile and returns its principal.
func (f *fakeRepo) addClient(id uint) auth.Principal {
	f.mu.Lock()
	defer f.mu.Unlock()

	userID := 1000 + id
	f.clients[id] = &models.ClientProfile{
		ID:                 id,
		UserID:             userID,
		User:               models.User{ID: userID, Username: "client"},
		PromotionThreshold: 5,
	}
	return auth.Principal{UserID: userID, Role: auth.RoleClient}
}
