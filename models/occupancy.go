package models

// RoomClass is fixed by the room-number band and determines the daily rate.
type RoomClass string

const (
	Deluxe       RoomClass = "Deluxe"
	Executive    RoomClass = "Executive"
	Presidential RoomClass = "Presidential"
)

// ClassForRoom maps a room number to its class. The second return is false
// when the number is outside 1-100.
func ClassForRoom(roomNumber int) (RoomClass, bool) {
	switch {
	case roomNumber >= 1 && roomNumber <= 50:
		return Deluxe, true
	case roomNumber >= 51 && roomNumber <= 80:
		return Executive, true
	case roomNumber >= 81 && roomNumber <= 100:
		return Presidential, true
	default:
		return "", false
	}
}

// DailyRate returns the per-day room charge for the class.
func (c RoomClass) DailyRate() int {
	switch c {
	case Deluxe:
		return 10000
	case Executive:
		return 12500
	case Presidential:
		return 15000
	}
	return 0
}

// MealKind is a restaurant meal billed per person.
type MealKind string

const (
	Breakfast MealKind = "Breakfast"
	Lunch     MealKind = "Lunch"
	Dinner    MealKind = "Dinner"
)

// PerPersonRate returns the per-person charge for the meal, false for an
// unknown meal kind.
func (m MealKind) PerPersonRate() (int, bool) {
	switch m {
	case Breakfast:
		return 500, true
	case Lunch:
		return 1000, true
	case Dinner:
		return 1200, true
	}
	return 0, false
}

// RoomStatus is the occupancy state of a room number.
type RoomStatus string

const (
	StatusVacant     RoomStatus = "vacant"
	StatusOccupied   RoomStatus = "occupied"
	StatusOutOfRange RoomStatus = "out_of_range"
)

// OccupancyRecord is the full state of one currently-booked room.
// RoomNumber and RoomClass are fixed at booking; StayDays drives RoomCost.
type OccupancyRecord struct {
	RoomNumber   int       `json:"roomNumber"`
	GuestName    string    `json:"guestName"`
	GuestAddress string    `json:"guestAddress"`
	GuestPhone   string    `json:"guestPhone"`
	StayDays     int       `json:"stayDays"`
	RoomClass    RoomClass `json:"roomClass"`
	RoomCost     int       `json:"roomCost"`
	FoodBill     int       `json:"foodBill"`
}

// GrandTotal is the room cost plus the accumulated food bill.
func (r OccupancyRecord) GrandTotal() int {
	return r.RoomCost + r.FoodBill
}

// FinalBill is the checkout preview shown to the caller before the record
// is removed.
type FinalBill struct {
	RoomNumber int    `json:"roomNumber"`
	GuestName  string `json:"guestName"`
	RoomCost   int    `json:"roomCost"`
	FoodBill   int    `json:"foodBill"`
	GrandTotal int    `json:"grandTotal"`
}
