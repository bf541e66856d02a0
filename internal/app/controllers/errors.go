package controllers

import (
	"errors"
	"strings"
	"unicode"

	"github.com/yigit/hostel/internal/pkg/apperrors"
	"github.com/yigit/hostel/internal/pkg/console"
	"github.com/yigit/hostel/internal/pkg/logger"
)

// HandleConsoleError prints the user-facing message for err
func HandleConsoleError(p *console.Prompt, err error) {
	var custom *apperrors.CustomError
	switch {
	case errors.As(err, &custom) && len(custom.Details) > 0:
		logger.Debug().Err(err).Fields(custom.Details).Msg("Console request rejected")
	case apperrors.IsInputError(err):
		logger.Debug().Err(err).Msg("Console input rejected")
	}
	p.Println(ConsoleMessage(err))
}

// ConsoleMessage maps service errors to the sentences shown on the console
func ConsoleMessage(err error) string {
	var custom *apperrors.CustomError

	switch {
	case errors.Is(err, apperrors.ErrInvalidSearchTerm):
		return "Invalid search term. Please enter a student name or a numeric roll number."
	case errors.Is(err, apperrors.ErrInvalidPIN):
		return "Invalid PIN. Data not deleted."
	case errors.As(err, &custom) && custom.Message != "":
		// Persistence and range errors carry their own wording; causes are logged, not shown
		return sentence(custom.Message)
	default:
		return sentence(err.Error())
	}
}

// sentence capitalizes msg and ends it with a full stop
func sentence(msg string) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return "Unknown error."
	}
	r := []rune(msg)
	r[0] = unicode.ToUpper(r[0])
	msg = string(r)
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}
