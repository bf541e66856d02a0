package controllers

import (
	"context"
	"errors"

	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/app/services"
	"github.com/yigit/hostel/internal/app/views"
	"github.com/yigit/hostel/internal/pkg/apperrors"
	"github.com/yigit/hostel/internal/pkg/console"
)

// StudentController handles the registry menu entries
type StudentController struct {
	studentService *services.StudentService
	prompt         *console.Prompt
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, prompt *console.Prompt) *StudentController {
	return &StudentController{
		studentService: studentService,
		prompt:         prompt,
	}
}

// askRollNumber reads a numeric roll number for lookups. ok is false when
// the answer was not numeric and the message was already printed.
func askRollNumber(p *console.Prompt, question string) (roll models.RollNumber, ok bool, err error) {
	n, err := p.AskInt(question)
	if errors.Is(err, apperrors.ErrInvalidNumber) {
		p.Println("Invalid roll number format. Please enter a numeric value.")
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return models.RollNumber(n), true, nil
}

// AddStudent registers a student. The roll number is asked until it has five
// digits; name and department are asked until valid.
func (c *StudentController) AddStudent(ctx context.Context) error {
	var rollInput string
	for {
		answer, err := c.prompt.Ask("Enter roll number (5 digits): ")
		if err != nil {
			return err
		}
		_, err = c.studentService.CheckNewRollNumber(ctx, answer)
		if errors.Is(err, apperrors.ErrInvalidRollNumber) {
			HandleConsoleError(c.prompt, err)
			continue
		}
		if err != nil {
			HandleConsoleError(c.prompt, err)
			return nil
		}
		rollInput = answer
		break
	}

	name, err := c.prompt.Ask("Enter student name: ")
	if err != nil {
		return err
	}
	for services.ValidateName(name) != nil {
		name, err = c.prompt.Ask("Invalid name. Please enter a valid name (alphabetic characters only): ")
		if err != nil {
			return err
		}
	}

	var department string
	for {
		department, err = c.prompt.Ask("Enter department (AIE, CSE, or CYS): ")
		if err != nil {
			return err
		}
		if _, err := services.ValidateDepartment(department); err != nil {
			HandleConsoleError(c.prompt, err)
			continue
		}
		break
	}

	if _, err := c.studentService.Add(ctx, rollInput, name, department); err != nil {
		HandleConsoleError(c.prompt, err)
		if !errors.Is(err, apperrors.ErrPersistence) {
			return nil
		}
	}
	c.prompt.Println("Student added successfully.")
	return nil
}

// DisplayAll prints the full registry
func (c *StudentController) DisplayAll(ctx context.Context) error {
	views.AllStudents(c.prompt.Out(), c.studentService.List(ctx))
	return nil
}

// Search looks a student up by name or roll number
func (c *StudentController) Search(ctx context.Context) error {
	term, err := c.prompt.Ask("Enter student name or roll number to search: ")
	if err != nil {
		return err
	}

	student, err := c.studentService.Search(ctx, term)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			c.prompt.Println("No student found with the given search term.")
			return nil
		}
		HandleConsoleError(c.prompt, err)
		return nil
	}
	views.StudentFound(c.prompt.Out(), student)
	return nil
}

// Modify replaces a student's name and department
func (c *StudentController) Modify(ctx context.Context) error {
	roll, ok, err := askRollNumber(c.prompt, "Enter roll number of the student to modify: ")
	if err != nil || !ok {
		return err
	}
	if _, err := c.studentService.Get(ctx, roll); err != nil {
		HandleConsoleError(c.prompt, err)
		return nil
	}

	name, err := c.prompt.Ask("Enter new name: ")
	if err != nil {
		return err
	}
	department, err := c.prompt.Ask("Enter new department (AIE, CSE, or CYS): ")
	if err != nil {
		return err
	}

	if _, err := c.studentService.Modify(ctx, roll, name, department); err != nil {
		HandleConsoleError(c.prompt, err)
		if !errors.Is(err, apperrors.ErrPersistence) {
			return nil
		}
	}
	c.prompt.Println("Student details modified successfully.")
	return nil
}

// Remove deletes a student from the registry and from every room
func (c *StudentController) Remove(ctx context.Context) error {
	roll, ok, err := askRollNumber(c.prompt, "Enter roll number of the student to remove: ")
	if err != nil || !ok {
		return err
	}

	if err := c.studentService.Remove(ctx, roll); err != nil {
		HandleConsoleError(c.prompt, err)
		if !errors.Is(err, apperrors.ErrPersistence) {
			return nil
		}
	}
	c.prompt.Println("Student removed successfully.")
	return nil
}

// DisplayByDepartment prints one table per department
func (c *StudentController) DisplayByDepartment(ctx context.Context) error {
	views.StudentsByDepartment(c.prompt.Out(), c.studentService.ListByDepartment(ctx))
	return nil
}
