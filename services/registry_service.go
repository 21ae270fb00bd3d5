package services

import (
	"errors"
	"sync"

	"hotel-frontdesk/models"
)

var (
	ErrInvalidRoom     = errors.New("invalid_room")
	ErrAlreadyOccupied = errors.New("already_occupied")
	ErrRoomVacant      = errors.New("room_vacant")
	ErrUnknownMeal     = errors.New("unknown_meal")
)

// RegistryService owns the in-memory map of occupancy records and is the
// sole authority on booking, rate and billing rules. The mutex serializes
// mutating operations when the registry sits behind HTTP handlers.
type RegistryService struct {
	mu    sync.RWMutex
	rooms map[int]models.OccupancyRecord
}

func NewRegistryService() *RegistryService {
	return &RegistryService{rooms: make(map[int]models.OccupancyRecord)}
}

// Status reports whether a room is vacant, occupied, or outside 1-100.
func (s *RegistryService) Status(roomNumber int) models.RoomStatus {
	if _, ok := models.ClassForRoom(roomNumber); !ok {
		return models.StatusOutOfRange
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.rooms[roomNumber]; ok {
		return models.StatusOccupied
	}
	return models.StatusVacant
}

// Book creates the occupancy record for a vacant room. stayDays is stored
// as given; non-positive values are not rejected.
func (s *RegistryService) Book(roomNumber int, name, address, phone string, stayDays int) (*models.OccupancyRecord, error) {
	class, ok := models.ClassForRoom(roomNumber)
	if !ok {
		return nil, ErrInvalidRoom
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rooms[roomNumber]; exists {
		return nil, ErrAlreadyOccupied
	}

	record := models.OccupancyRecord{
		RoomNumber:   roomNumber,
		GuestName:    name,
		GuestAddress: address,
		GuestPhone:   phone,
		StayDays:     stayDays,
		RoomClass:    class,
		RoomCost:     stayDays * class.DailyRate(),
		FoodBill:     0,
	}
	s.rooms[roomNumber] = record
	return &record, nil
}

// Find returns a copy of the record for the room, or false when vacant.
func (s *RegistryService) Find(roomNumber int) (*models.OccupancyRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.rooms[roomNumber]
	if !ok {
		return nil, false
	}
	return &record, true
}

// ListAll snapshots every occupied room. Order is unspecified; callers must
// not rely on it.
func (s *RegistryService) ListAll() []models.OccupancyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]models.OccupancyRecord, 0, len(s.rooms))
	for _, record := range s.rooms {
		records = append(records, record)
	}
	return records
}

func (s *RegistryService) SetName(roomNumber int, name string) error {
	return s.update(roomNumber, func(r *models.OccupancyRecord) {
		r.GuestName = name
	})
}

func (s *RegistryService) SetAddress(roomNumber int, address string) error {
	return s.update(roomNumber, func(r *models.OccupancyRecord) {
		r.GuestAddress = address
	})
}

func (s *RegistryService) SetPhone(roomNumber int, phone string) error {
	return s.update(roomNumber, func(r *models.OccupancyRecord) {
		r.GuestPhone = phone
	})
}

// SetStayDays replaces the stay length and recomputes the room cost from
// the room's fixed class.
func (s *RegistryService) SetStayDays(roomNumber int, days int) error {
	return s.update(roomNumber, func(r *models.OccupancyRecord) {
		r.StayDays = days
		r.RoomCost = days * r.RoomClass.DailyRate()
	})
}

// AddFoodCharge adds rate(meal) x people to the room's food bill. The
// people count is stored as given; a negative count reduces the bill.
func (s *RegistryService) AddFoodCharge(roomNumber int, meal models.MealKind, people int) (*models.OccupancyRecord, error) {
	rate, ok := meal.PerPersonRate()
	if !ok {
		return nil, ErrUnknownMeal
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.rooms[roomNumber]
	if !exists {
		return nil, ErrRoomVacant
	}
	record.FoodBill += rate * people
	s.rooms[roomNumber] = record
	return &record, nil
}

// PreviewCheckout computes the final bill without removing the record, so
// the caller can abort after seeing the total.
func (s *RegistryService) PreviewCheckout(roomNumber int) (*models.FinalBill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, exists := s.rooms[roomNumber]
	if !exists {
		return nil, ErrRoomVacant
	}
	return finalBill(record), nil
}

// ConfirmCheckout removes the record and returns the bill it settled. The
// room is vacant afterwards; no trace of the stay is retained.
func (s *RegistryService) ConfirmCheckout(roomNumber int) (*models.FinalBill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, exists := s.rooms[roomNumber]
	if !exists {
		return nil, ErrRoomVacant
	}
	delete(s.rooms, roomNumber)
	return finalBill(record), nil
}

// Snapshot copies the registry contents for persistence.
func (s *RegistryService) Snapshot() []models.OccupancyRecord {
	return s.ListAll()
}

// Restore replaces the registry contents with loaded records. Records with
// an out-of-range room number or a duplicate key are dropped so the
// registry invariants hold regardless of file content.
func (s *RegistryService) Restore(records []models.OccupancyRecord) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rooms = make(map[int]models.OccupancyRecord, len(records))
	kept := 0
	for _, record := range records {
		if _, ok := models.ClassForRoom(record.RoomNumber); !ok {
			continue
		}
		if _, dup := s.rooms[record.RoomNumber]; dup {
			continue
		}
		s.rooms[record.RoomNumber] = record
		kept++
	}
	return kept
}

func (s *RegistryService) update(roomNumber int, apply func(*models.OccupancyRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, exists := s.rooms[roomNumber]
	if !exists {
		return ErrRoomVacant
	}
	apply(&record)
	s.rooms[roomNumber] = record
	return nil
}

func finalBill(record models.OccupancyRecord) *models.FinalBill {
	return &models.FinalBill{
		RoomNumber: record.RoomNumber,
		GuestName:  record.GuestName,
		RoomCost:   record.RoomCost,
		FoodBill:   record.FoodBill,
		GrandTotal: record.GrandTotal(),
	}
}
