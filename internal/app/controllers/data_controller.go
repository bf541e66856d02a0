package controllers

import (
	"context"
	"strings"

	"github.com/yigit/hostel/internal/app/services"
	"github.com/yigit/hostel/internal/pkg/console"
)

// DataController handles loading and wiping hostel data
type DataController struct {
	dataService *services.DataService
	prompt      *console.Prompt
}

// NewDataController creates a new DataController
func NewDataController(dataService *services.DataService, prompt *console.Prompt) *DataController {
	return &DataController{
		dataService: dataService,
		prompt:      prompt,
	}
}

// Load reads both stores into memory and reports each step
func (c *DataController) Load(ctx context.Context) error {
	_, errs := c.dataService.Load(ctx)
	if errs.Students != nil {
		HandleConsoleError(c.prompt, errs.Students)
	}
	if errs.Attendance != nil {
		HandleConsoleError(c.prompt, errs.Attendance)
		return nil
	}
	c.prompt.Println("Attendance data loaded successfully.")
	return nil
}

// DeleteAll wipes every student and attendance record, asking for the warden PIN when one is configured
func (c *DataController) DeleteAll(ctx context.Context) error {
	var pin string
	if c.dataService.RequiresPIN() {
		answer, err := c.prompt.Ask("Enter warden PIN: ")
		if err != nil {
			return err
		}
		pin = strings.TrimSpace(answer)
	}

	if err := c.dataService.DeleteAll(ctx, pin); err != nil {
		HandleConsoleError(c.prompt, err)
		return nil
	}
	c.prompt.Println("All data deleted successfully.")
	return nil
}
