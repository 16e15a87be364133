package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Qendolin/log-overlay/pkg/logging"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type DialogManager struct {
	app AppInterface
}

func NewDialogManager(app AppInterface) *DialogManager {
	return &DialogManager{app: app}
}

// ShowErrorDialog displays a modal dialog with an error message.
func (m *DialogManager) ShowErrorDialog(title, message string, err error, onDismiss func()) {
	text := message
	if err != nil {
		text += "\n\n" + formatErrorChain(err)
	}
	modal := newDialog(title, text, []string{"Dismiss"}, func(int, string) {
		go m.app.QueueUpdateDraw(func() {
			m.app.Navigation().RemoveModal(PageErrorID)
			if onDismiss != nil {
				onDismiss()
			}
		})
	})
	modal.SetTextColor(tcell.ColorWhite).
		SetBackgroundColor(tcell.ColorDarkRed)
	modal.SetBorderColor(tcell.ColorWhite).
		SetTitleColor(tcell.ColorWhite)
	m.app.Navigation().ShowModal(PageErrorID, NewModalPage(modal))
}

// ShowQuitDialog displays a confirmation dialog before quitting.
func (m *DialogManager) ShowQuitDialog() {
	if m.app.Navigation().HasModal(PageQuitID) {
		return
	}
	modal := newDialog("Quit", "Are you sure you want to quit?", []string{"Cancel", "Quit"}, func(buttonIndex int, _ string) {
		go m.app.QueueUpdateDraw(func() {
			m.app.Navigation().RemoveModal(PageQuitID)
			if buttonIndex == 1 {
				logging.Info("App: Quitting.")
				m.app.Stop()
			}
		})
	})
	m.app.Navigation().ShowModal(PageQuitID, NewModalPage(modal))
}

// ShowInfoDialog displays a modal dialog with a neutral informational message.
func (m *DialogManager) ShowInfoDialog(title, message string, onDismiss func()) {
	modal := newDialog(title, message, []string{"Dismiss"}, func(int, string) {
		go m.app.QueueUpdateDraw(func() {
			m.app.Navigation().RemoveModal(PageInfoID)
			if onDismiss != nil {
				onDismiss()
			}
		})
	})
	m.app.Navigation().ShowModal(PageInfoID, NewModalPage(modal))
}

// newDialog builds a tview.Modal with a left-aligned title.
// Escape arrives from tview as index -1 and is treated like the first button.
func newDialog(title, text string, buttons []string, done func(buttonIndex int, buttonLabel string)) *tview.Modal {
	modal := tview.NewModal().
		SetText(text).
		AddButtons(buttons).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonIndex < 0 {
				buttonIndex, buttonLabel = 0, buttons[0]
			}
			done(buttonIndex, buttonLabel)
		})
	modal.SetTitle(" " + title + " ").SetTitleAlign(tview.AlignLeft)
	return modal
}

// ModalPage is a simple wrapper around a tview.Modal to conform to the Page interface.
type ModalPage struct {
	*tview.Modal
}

// NewModalPage creates a new ModalPage.
func NewModalPage(modal *tview.Modal) *ModalPage {
	return &ModalPage{Modal: modal}
}

// GetActionPrompts returns an empty list as modals have their own buttons.
func (p *ModalPage) GetActionPrompts() []ActionPrompt {
	return []ActionPrompt{}
}

// GetStatusPrimitive returns the tview.Primitive that displays the page's status
func (p *ModalPage) GetStatusPrimitive() *tview.TextView {
	return nil
}

// formatErrorChain unwraps a chain of Go errors and formats them
// into a multi-line string, with each level of the error on a new line.
func formatErrorChain(err error) string {
	var b strings.Builder
	indent := ""
	for err != nil {
		next := errors.Unwrap(err)
		msg := err.Error()
		if next != nil {
			nextMsg := next.Error()
			if i := strings.LastIndex(msg, nextMsg); i > 0 {
				msg = strings.TrimSuffix(strings.TrimSpace(msg[:i]), ":")
			}
		}
		fmt.Fprintf(&b, "%s- %s", indent, msg)
		if next != nil {
			b.WriteRune('\n')
		}
		indent += " "
		err = next
	}

	return b.String()
}
