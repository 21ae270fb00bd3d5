// Package menu implements the line-based front-desk console: booking,
// lookup, listing, edits, food orders and checkout against the registry.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
)

// Menu drives the interactive session. Input and output are plain streams
// so a session can be scripted in tests.
type Menu struct {
	Registry *services.RegistryService
	in       *bufio.Scanner
	out      io.Writer
}

func New(registry *services.RegistryService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		Registry: registry,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops over the main menu until the user exits or input ends.
func (m *Menu) Run() {
	for {
		fmt.Fprint(m.out, "\n********* MAIN MENU *********\n"+
			" 1. Book A Room\n"+
			" 2. Customer Information\n"+
			" 3. Rooms Allotted\n"+
			" 4. Edit Customer Details\n"+
			" 5. Order Food from Restaurant\n"+
			" 6. Exit\n"+
			" Enter Your Choice: ")

		choice, ok := m.readInt()
		if !ok {
			return
		}

		switch choice {
		case 1:
			m.bookRoom()
		case 2:
			m.showRoom()
		case 3:
			m.listRooms()
		case 4:
			m.editDetails()
		case 5:
			m.orderFood()
		case 6:
			fmt.Fprintln(m.out, "\nExiting. Goodbye!")
			return
		default:
			fmt.Fprintln(m.out, "\nWrong choice. Please try again.")
		}
	}
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) readInt() (int, bool) {
	line, ok := m.readLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, true
	}
	return n, true
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

func (m *Menu) promptInt(label string) (int, bool) {
	fmt.Fprint(m.out, label)
	return m.readInt()
}

func (m *Menu) bookRoom() {
	fmt.Fprint(m.out, "\n | Rooms  | Room Type    |\n"+
		" | 1-50   | Deluxe       |\n"+
		" | 51-80  | Executive    |\n"+
		" | 81-100 | Presidential |\n")

	number, ok := m.promptInt("\n Room Number (1-100): ")
	if !ok {
		return
	}

	switch m.Registry.Status(number) {
	case models.StatusOccupied:
		fmt.Fprintf(m.out, "\n Sorry, Room %d is already booked.\n", number)
		return
	case models.StatusOutOfRange:
		fmt.Fprintf(m.out, "\n Sorry, Room %d does not exist (valid range 1-100).\n", number)
		return
	}

	name, ok := m.prompt(" Name: ")
	if !ok {
		return
	}
	address, ok := m.prompt(" Address: ")
	if !ok {
		return
	}
	phone, ok := m.prompt(" Phone Number: ")
	if !ok {
		return
	}
	days, ok := m.promptInt(" Number of Days: ")
	if !ok {
		return
	}

	record, err := m.Registry.Book(number, name, address, phone, days)
	if err != nil {
		fmt.Fprintf(m.out, "\n Booking failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "\n Room %d has been booked for %s.\n", record.RoomNumber, record.GuestName)
}

func (m *Menu) showRoom() {
	number, ok := m.promptInt("\n Enter Room Number to display: ")
	if !ok {
		return
	}

	record, found := m.Registry.Find(number)
	if !found {
		fmt.Fprintf(m.out, "\n Room %d is Vacant or does not exist.\n", number)
		return
	}

	fmt.Fprintf(m.out, "\n Customer Details\n"+
		" Room Number: %d\n"+
		" Name: %s\n"+
		" Address: %s\n"+
		" Phone Number: %s\n"+
		" Staying for: %d days.\n"+
		" Room Type: %s\n"+
		" Total Room Cost: %d\n"+
		" Total Food Bill: %d\n"+
		" Grand Total: %d\n",
		record.RoomNumber, record.GuestName, record.GuestAddress, record.GuestPhone,
		record.StayDays, record.RoomClass, record.RoomCost, record.FoodBill, record.GrandTotal())
}

func (m *Menu) listRooms() {
	records := m.Registry.ListAll()

	fmt.Fprintln(m.out, "\n LIST OF ALLOTTED ROOMS")
	if len(records) == 0 {
		fmt.Fprintln(m.out, " No rooms currently allotted.")
		return
	}

	fmt.Fprintf(m.out, " %-8s %-17s %-16s %-13s %-13s %-5s %-10s\n",
		"Room No", "Guest Name", "Address", "Room Type", "Contact No.", "Days", "Total")
	for _, record := range records {
		fmt.Fprintf(m.out, " %-8d %-17s %-16s %-13s %-13s %-5d %-10d\n",
			record.RoomNumber, record.GuestName, record.GuestAddress,
			record.RoomClass, record.GuestPhone, record.StayDays, record.GrandTotal())
	}
}

func (m *Menu) editDetails() {
	choice, ok := m.promptInt("\n EDIT MENU:\n"+
		" 1. Modify Customer Information.\n"+
		" 2. Customer Check Out.\n"+
		" Enter your choice: ")
	if !ok {
		return
	}

	switch choice {
	case 1:
		m.modifyInfo()
	case 2:
		m.checkout()
	default:
		fmt.Fprintln(m.out, "\n Wrong Choice. Please try again.")
	}
}

func (m *Menu) modifyInfo() {
	choice, ok := m.promptInt("\n MODIFY MENU:\n"+
		" 1. Modify Name\n"+
		" 2. Modify Address\n"+
		" 3. Modify Phone Number\n"+
		" 4. Modify Number of Days of Stay\n"+
		" Enter Your Choice: ")
	if !ok {
		return
	}

	number, ok := m.promptInt("\n Enter Room Number to modify: ")
	if !ok {
		return
	}

	var err error
	switch choice {
	case 1:
		var name string
		if name, ok = m.prompt("\n Enter New Name: "); !ok {
			return
		}
		err = m.Registry.SetName(number, name)
	case 2:
		var address string
		if address, ok = m.prompt("\n Enter New Address: "); !ok {
			return
		}
		err = m.Registry.SetAddress(number, address)
	case 3:
		var phone string
		if phone, ok = m.prompt("\n Enter New Phone Number: "); !ok {
			return
		}
		err = m.Registry.SetPhone(number, phone)
	case 4:
		var days int
		if days, ok = m.promptInt("\n Enter New Number of Days: "); !ok {
			return
		}
		err = m.Registry.SetStayDays(number, days)
	default:
		fmt.Fprintln(m.out, "\n Wrong Choice. Please try again.")
		return
	}

	if err != nil {
		fmt.Fprintf(m.out, "\n Sorry, Room %d is vacant or does not exist.\n", number)
		return
	}
	fmt.Fprintln(m.out, "\n Record updated.")
}

// checkout previews the bill first and only removes the record after an
// explicit confirmation.
func (m *Menu) checkout() {
	number, ok := m.promptInt("\n Enter Room Number to check out: ")
	if !ok {
		return
	}

	bill, err := m.Registry.PreviewCheckout(number)
	if err != nil {
		fmt.Fprintf(m.out, "\n Sorry, Room %d is vacant or does not exist.\n", number)
		return
	}

	fmt.Fprintf(m.out, "\n Final Bill for Room %d (%s)\n"+
		" Room Cost: %d\n"+
		" Food Bill: %d\n"+
		" Grand Total: %d\n",
		bill.RoomNumber, bill.GuestName, bill.RoomCost, bill.FoodBill, bill.GrandTotal)

	answer, ok := m.prompt("\n Confirm check out? (y/n): ")
	if !ok {
		return
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		fmt.Fprintln(m.out, "\n Check out cancelled.")
		return
	}

	if _, err := m.Registry.ConfirmCheckout(number); err != nil {
		fmt.Fprintf(m.out, "\n Sorry, Room %d is vacant or does not exist.\n", number)
		return
	}
	fmt.Fprintf(m.out, "\n Room %d is now vacant.\n", number)
}

func (m *Menu) orderFood() {
	number, ok := m.promptInt("\n Enter Room Number: ")
	if !ok {
		return
	}
	if _, found := m.Registry.Find(number); !found {
		fmt.Fprintf(m.out, "\n Sorry, Room %d is vacant or does not exist.\n", number)
		return
	}

	choice, ok := m.promptInt("\n RESTAURANT MENU:\n"+
		" 1. Breakfast (500 per person)\n"+
		" 2. Lunch (1000 per person)\n"+
		" 3. Dinner (1200 per person)\n"+
		" Enter Your Choice: ")
	if !ok {
		return
	}

	var meal models.MealKind
	switch choice {
	case 1:
		meal = models.Breakfast
	case 2:
		meal = models.Lunch
	case 3:
		meal = models.Dinner
	default:
		fmt.Fprintln(m.out, "\n Wrong Choice. Please try again.")
		return
	}

	people, ok := m.promptInt(" Number of People: ")
	if !ok {
		return
	}

	record, err := m.Registry.AddFoodCharge(number, meal, people)
	if err != nil {
		fmt.Fprintf(m.out, "\n Order failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "\n Order placed. Food bill for Room %d is now %d.\n", record.RoomNumber, record.FoodBill)
}
