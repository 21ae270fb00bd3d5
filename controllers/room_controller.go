package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

// RoomController exposes the registry's booking, lookup and edit operations.
type RoomController struct {
	Registry *services.RegistryService
}

func NewRoomController(registry *services.RegistryService) *RoomController {
	return &RoomController{Registry: registry}
}

type bookRequest struct {
	RoomNumber int    `json:"roomNumber"`
	GuestName  string `json:"guestName"`
	Address    string `json:"guestAddress"`
	Phone      string `json:"guestPhone"`
	StayDays   int    `json:"stayDays"`
}

type updateRoomRequest struct {
	GuestName    *string `json:"guestName"`
	GuestAddress *string `json:"guestAddress"`
	GuestPhone   *string `json:"guestPhone"`
	StayDays     *int    `json:"stayDays"`
}

func roomNumberParam(c *gin.Context) (int, bool) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room number must be an integer")
		return 0, false
	}
	return number, true
}

// GetRooms handles GET /api/rooms. The list is a snapshot in no particular
// order.
func (rc *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Registry.ListAll())
}

// GetRoom handles GET /api/rooms/:number.
func (rc *RoomController) GetRoom(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}

	record, found := rc.Registry.Find(number)
	if !found {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d is vacant or does not exist", number))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, record)
}

// GetRoomStatus handles GET /api/rooms/:number/status.
func (rc *RoomController) GetRoomStatus(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"roomNumber": number,
		"status":     rc.Registry.Status(number),
	})
}

// BookRoom handles POST /api/rooms.
func (rc *RoomController) BookRoom(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	record, err := rc.Registry.Book(req.RoomNumber, req.GuestName, req.Address, req.Phone, req.StayDays)
	switch {
	case errors.Is(err, services.ErrInvalidRoom):
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("room %d does not exist (valid range 1-100)", req.RoomNumber))
	case errors.Is(err, services.ErrAlreadyOccupied):
		utils.JSONError(c, http.StatusConflict, fmt.Sprintf("room %d is already booked", req.RoomNumber))
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusCreated, record)
	}
}

// UpdateRoom handles PATCH /api/rooms/:number. Only the fields present in
// the payload change; stayDays triggers a cost recompute.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}

	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	apply := func(err error) bool {
		if errors.Is(err, services.ErrRoomVacant) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d is vacant or does not exist", number))
			return false
		}
		return true
	}

	if req.GuestName != nil {
		if !apply(rc.Registry.SetName(number, *req.GuestName)) {
			return
		}
	}
	if req.GuestAddress != nil {
		if !apply(rc.Registry.SetAddress(number, *req.GuestAddress)) {
			return
		}
	}
	if req.GuestPhone != nil {
		if !apply(rc.Registry.SetPhone(number, *req.GuestPhone)) {
			return
		}
	}
	if req.StayDays != nil {
		if !apply(rc.Registry.SetStayDays(number, *req.StayDays)) {
			return
		}
	}

	record, found := rc.Registry.Find(number)
	if !found {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d is vacant or does not exist", number))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, record)
}
