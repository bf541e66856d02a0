package controllers

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/hostel/internal/app/services"
	"github.com/yigit/hostel/internal/app/views"
	"github.com/yigit/hostel/internal/pkg/apperrors"
	"github.com/yigit/hostel/internal/pkg/console"
)

// RoomController handles room allocation menu entries
type RoomController struct {
	roomService *services.RoomService
	prompt      *console.Prompt
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService *services.RoomService, prompt *console.Prompt) *RoomController {
	return &RoomController{
		roomService: roomService,
		prompt:      prompt,
	}
}

func (c *RoomController) askRoomNumber() (int, bool, error) {
	lo, hi := c.roomService.RoomRange()
	n, err := c.prompt.AskInt(fmt.Sprintf("Enter room number (%d-%d): ", lo, hi))
	if errors.Is(err, apperrors.ErrInvalidNumber) {
		c.prompt.Println("Invalid room number format. Please enter a numeric value.")
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// Allocate places a student into a room. A full room is reported before the roll number is asked.
func (c *RoomController) Allocate(ctx context.Context) error {
	number, ok, err := c.askRoomNumber()
	if err != nil || !ok {
		return err
	}
	if _, err := c.roomService.OpenRoom(ctx, number); err != nil {
		HandleConsoleError(c.prompt, err)
		return nil
	}

	roll, ok, err := askRollNumber(c.prompt, "Enter roll number of the student to allocate: ")
	if err != nil || !ok {
		return err
	}

	if err := c.roomService.Allocate(ctx, number, roll); err != nil {
		HandleConsoleError(c.prompt, err)
		return nil
	}
	c.prompt.Println("Student allocated to the room successfully.")
	return nil
}

// Deallocate takes a student out of a room
func (c *RoomController) Deallocate(ctx context.Context) error {
	number, ok, err := c.askRoomNumber()
	if err != nil || !ok {
		return err
	}
	if _, err := c.roomService.FindRoom(ctx, number); err != nil {
		HandleConsoleError(c.prompt, err)
		return nil
	}

	roll, ok, err := askRollNumber(c.prompt, "Enter roll number of the student to remove: ")
	if err != nil || !ok {
		return err
	}

	if err := c.roomService.Deallocate(ctx, number, roll); err != nil {
		HandleConsoleError(c.prompt, err)
		return nil
	}
	c.prompt.Println("Student removed from the room successfully.")
	return nil
}

// Report prints every room with its occupants and their attendance
func (c *RoomController) Report(ctx context.Context) error {
	views.RoomReport(c.prompt.Out(), c.roomService.Report(ctx))
	return nil
}
