package cli

import (
	"errors"
	"fmt"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/staffdesk/internal/controllers"
)

// ConfirmFunc asks the user a yes/no question
type ConfirmFunc func(title, message string) (bool, error)

// Dialogs is the headless surface the controllers report to when they run
// from the command line. Errors are collected for the command to report;
// confirmations go through Ask unless Force is set.
type Dialogs struct {
	Force bool
	Ask   ConfirmFunc

	Shown []string
	last  error
	err   error
}

var _ controllers.Dialogs = (*Dialogs)(nil)

// NewDialogs returns dialogs that confirm through an interactive huh prompt
func NewDialogs(force bool) *Dialogs {
	return &Dialogs{Force: force, Ask: HuhConfirm}
}

// ShowError records a controller error dialog
func (d *Dialogs) ShowError(title, header, message string) {
	d.Shown = append(d.Shown, title)
	if header != "" {
		title += ": " + header
	}
	d.last = fmt.Errorf("%s: %s", title, message)
}

// LastError returns the most recent error dialog as an error, or nil
func (d *Dialogs) LastError() error {
	return d.last
}

// Confirm runs onConfirm when forced or when the user accepts
func (d *Dialogs) Confirm(title, message string, onConfirm func()) {
	if d.Force {
		onConfirm()
		return
	}

	ok, err := d.Ask(title, message)
	if err != nil {
		d.err = err
		return
	}
	if ok {
		onConfirm()
	}
}

// Err returns the prompt error of the last Confirm, if any
func (d *Dialogs) Err() error {
	return d.err
}

// HuhConfirm shows a yes/no prompt on the terminal
func HuhConfirm(title, message string) (bool, error) {
	var confirmed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(message).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return confirmed, err
}
