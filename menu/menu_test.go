package menu

import (
	"bytes"
	"strings"
	"testing"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
)

func runSession(t *testing.T, registry *services.RegistryService, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	New(registry, in, &out).Run()
	return out.String()
}

func TestBookThroughMenu(t *testing.T) {
	registry := services.NewRegistryService()
	out := runSession(t, registry,
		"1",                // Book A Room
		"25",               // room number
		"Ada Lovelace",     // name
		"1 Analytical Way", // address
		"555-0100",         // phone
		"3",                // days
		"6",                // Exit
	)

	if !strings.Contains(out, "Room 25 has been booked for Ada Lovelace.") {
		t.Errorf("booking confirmation missing from output:\n%s", out)
	}

	record, found := registry.Find(25)
	if !found {
		t.Fatal("menu booking did not create a record")
	}
	if record.RoomClass != models.Deluxe || record.RoomCost != 30000 {
		t.Errorf("booked record = %s/%d, expected Deluxe/30000", record.RoomClass, record.RoomCost)
	}
}

func TestBookRejections(t *testing.T) {
	registry := services.NewRegistryService()
	if _, err := registry.Book(90, "Ada", "", "", 1); err != nil {
		t.Fatal(err)
	}

	out := runSession(t, registry,
		"1", "90", // already booked, prompt loop returns to menu
		"1", "101", // out of range
		"6",
	)
	if !strings.Contains(out, "Room 90 is already booked.") {
		t.Errorf("missing already-booked message:\n%s", out)
	}
	if !strings.Contains(out, "Room 101 does not exist (valid range 1-100).") {
		t.Errorf("missing out-of-range message:\n%s", out)
	}
	record, _ := registry.Find(90)
	if record.GuestName != "Ada" {
		t.Error("failed booking must leave the original record untouched")
	}
}

func TestCustomerInformation(t *testing.T) {
	registry := services.NewRegistryService()
	if _, err := registry.Book(65, "Grace", "2 Navy Yard", "555-0199", 2); err != nil {
		t.Fatal(err)
	}

	out := runSession(t, registry, "2", "65", "2", "66", "6")
	if !strings.Contains(out, "Room Type: Executive") || !strings.Contains(out, "Total Room Cost: 25000") {
		t.Errorf("customer details missing:\n%s", out)
	}
	if !strings.Contains(out, "Room 66 is Vacant or does not exist.") {
		t.Errorf("vacant lookup message missing:\n%s", out)
	}
}

func TestModifyDaysRecomputesCost(t *testing.T) {
	registry := services.NewRegistryService()
	if _, err := registry.Book(65, "Grace", "", "", 2); err != nil {
		t.Fatal(err)
	}

	runSession(t, registry,
		"4", // Edit Customer Details
		"1", // Modify Customer Information
		"4", // Modify Number of Days of Stay
		"65",
		"5",
		"6",
	)

	record, _ := registry.Find(65)
	if record.StayDays != 5 || record.RoomCost != 62500 {
		t.Errorf("record after modify = %d days/%d cost, expected 5/62500", record.StayDays, record.RoomCost)
	}
}

func TestOrderFoodThroughMenu(t *testing.T) {
	registry := services.NewRegistryService()
	if _, err := registry.Book(25, "Ada", "", "", 3); err != nil {
		t.Fatal(err)
	}

	out := runSession(t, registry,
		"5",  // Order Food
		"25", // room
		"2",  // Lunch
		"2",  // people
		"6",
	)
	if !strings.Contains(out, "Food bill for Room 25 is now 2000.") {
		t.Errorf("food order confirmation missing:\n%s", out)
	}
}

func TestCheckoutConfirmAndCancel(t *testing.T) {
	registry := services.NewRegistryService()
	if _, err := registry.Book(25, "Ada", "", "", 3); err != nil {
		t.Fatal(err)
	}
	if _, err := registry.AddFoodCharge(25, models.Lunch, 2); err != nil {
		t.Fatal(err)
	}

	// Cancel first: the record must survive the preview.
	out := runSession(t, registry, "4", "2", "25", "n", "6")
	if !strings.Contains(out, "Grand Total: 32000") {
		t.Errorf("bill preview missing:\n%s", out)
	}
	if !strings.Contains(out, "Check out cancelled.") {
		t.Errorf("cancel message missing:\n%s", out)
	}
	if _, found := registry.Find(25); !found {
		t.Fatal("cancelled checkout must keep the record")
	}

	// Confirm: the record is removed.
	out = runSession(t, registry, "4", "2", "25", "y", "6")
	if !strings.Contains(out, "Room 25 is now vacant.") {
		t.Errorf("checkout confirmation missing:\n%s", out)
	}
	if _, found := registry.Find(25); found {
		t.Error("confirmed checkout must remove the record")
	}
	if registry.Status(25) != models.StatusVacant {
		t.Error("room should be vacant after checkout")
	}
}

func TestListRoomsThroughMenu(t *testing.T) {
	registry := services.NewRegistryService()
	out := runSession(t, registry, "3", "6")
	if !strings.Contains(out, "No rooms currently allotted.") {
		t.Errorf("empty list message missing:\n%s", out)
	}

	if _, err := registry.Book(3, "Ada", "1 Main St", "555-0100", 1); err != nil {
		t.Fatal(err)
	}
	out = runSession(t, registry, "3", "6")
	if !strings.Contains(out, "Ada") || !strings.Contains(out, "Deluxe") {
		t.Errorf("allotted room missing from list:\n%s", out)
	}
}

func TestWrongChoiceLoops(t *testing.T) {
	registry := services.NewRegistryService()
	out := runSession(t, registry, "9", "6")
	if !strings.Contains(out, "Wrong choice. Please try again.") {
		t.Errorf("wrong-choice message missing:\n%s", out)
	}
	if !strings.Contains(out, "Exiting. Goodbye!") {
		t.Errorf("session should continue to exit after a wrong choice:\n%s", out)
	}
}

func TestRunStopsOnInputEnd(t *testing.T) {
	registry := services.NewRegistryService()
	var out bytes.Buffer
	New(registry, strings.NewReader(""), &out).Run()
	// No input at all: Run returns instead of looping.
	if !strings.Contains(out.String(), "MAIN MENU") {
		t.Errorf("menu should print once before input ends:\n%s", out.String())
	}
}
