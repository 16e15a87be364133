package ui

import (
	"fmt"
	"strings"

	"github.com/Qendolin/log-overlay/pkg/logging"
	"github.com/Qendolin/log-overlay/pkg/logstore"
	"github.com/Qendolin/log-overlay/pkg/ui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// LogPage is the overlay listing the store's entries. The list is built from
// a single snapshot taken when the page is created and does not update.
type LogPage struct {
	*tview.Flex
	app        AppInterface
	entries    []logstore.LogEntry
	table      *tview.Table
	frame      *widgets.TitleFrame
	statusText *tview.TextView
}

// RowText renders an entry as the two cells of a log row. Newlines in the
// message are folded so each entry occupies one row.
func RowText(e logstore.LogEntry) (timestamp, message string) {
	timestamp = e.Timestamp.Format(logstore.TimestampLayout)
	message = strings.ReplaceAll(strings.TrimRight(e.Message, "\n"), "\n", " ⏎ ")
	return timestamp, message
}

// NewLogPage creates the overlay from the current contents of the app's store.
func NewLogPage(app AppInterface) *LogPage {
	store := app.GetStore()
	p := &LogPage{
		Flex:       tview.NewFlex().SetDirection(tview.FlexRow),
		app:        app,
		entries:    store.Snapshot(),
		table:      tview.NewTable(),
		statusText: tview.NewTextView().SetDynamicColors(true),
	}

	p.table.SetSelectable(true, false).
		SetSelectedStyle(widgets.LogSelectedStyle).
		SetSelectedFunc(func(row, _ int) { p.shareRow(row) })
	p.populate()

	p.frame = widgets.NewTitleFrame(p.table, store.Title()).
		SetAnnotation(fmt.Sprintf("%d entries", len(p.entries)))

	shareButton := tview.NewButton("Share").SetSelectedFunc(p.shareSelected)
	cancelButton := tview.NewButton("Cancel").SetSelectedFunc(p.dismiss)
	widgets.DefaultStyleButton(shareButton)
	widgets.DefaultStyleButton(cancelButton)

	buttons := tview.NewFlex().
		AddItem(tview.NewBox(), 0, 1, false).
		AddItem(shareButton, 9, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(cancelButton, 10, 0, false).
		AddItem(tview.NewBox(), 1, 0, false)

	p.AddItem(p.frame, 0, 1, true).
		AddItem(buttons, 1, 0, false)

	p.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape:
			p.dismiss()
			return nil
		case event.Key() == tcell.KeyRune && (event.Rune() == 's' || event.Rune() == 'S'):
			p.shareSelected()
			return nil
		}
		return event
	})

	p.statusText.SetText(fmt.Sprintf("Viewing %d log entries.", len(p.entries)))
	return p
}

// populate fills the table with one row per entry and selects the newest one.
func (p *LogPage) populate() {
	p.table.Clear()
	if len(p.entries) == 0 {
		p.table.SetCell(0, 0, tview.NewTableCell("No log entries yet.").
			SetTextColor(tcell.ColorGray).
			SetSelectable(false).
			SetExpansion(1))
		return
	}

	for i, e := range p.entries {
		ts, msg := RowText(e)
		bg := widgets.LogRowColor(i)
		p.table.SetCell(i, 0, tview.NewTableCell(tview.Escape(ts)).
			SetTextColor(tcell.ColorDarkCyan).
			SetBackgroundColor(bg))
		p.table.SetCell(i, 1, tview.NewTableCell(tview.Escape(msg)).
			SetTextColor(widgets.LogTextColor).
			SetBackgroundColor(bg).
			SetExpansion(1))
	}
	p.table.Select(len(p.entries)-1, 0)
	p.table.ScrollToEnd()
}

// dismiss asks the store to hide the overlay; the app removes the page.
func (p *LogPage) dismiss() {
	p.app.GetStore().RequestHide()
}

func (p *LogPage) shareSelected() {
	row, _ := p.table.GetSelection()
	p.shareRow(row)
}

// shareRow exports the entry shown in the given row.
func (p *LogPage) shareRow(row int) {
	if row < 0 || row >= len(p.entries) {
		p.statusText.SetText("[yellow]Nothing to share.")
		return
	}
	exporter := p.app.GetExporter()
	if exporter == nil {
		p.statusText.SetText("[yellow]Sharing is disabled.")
		return
	}

	dest, err := exporter.Export(p.entries[row].ShareText())
	if err != nil {
		logging.Errorf("LogPage: Failed to share entry %d: %v", row, err)
		p.app.Dialogs().ShowErrorDialog("Share Failed", fmt.Sprintf("Could not share entry %d.", row+1), err, nil)
		return
	}
	logging.Infof("LogPage: Shared entry %d to %s", row, dest)
	p.statusText.SetText(fmt.Sprintf("Entry %d shared to [darkcyan]%s[-].", row+1, tview.Escape(dest)))
}

// Entries returns the snapshot the page was built from.
func (p *LogPage) Entries() []logstore.LogEntry {
	return p.entries
}

// GetActionPrompts returns the key actions for the log page.
func (p *LogPage) GetActionPrompts() []ActionPrompt {
	return []ActionPrompt{
		{"↑/↓", "Scroll"},
		{"Enter/S", "Share Entry"},
		{"Esc", "Close"},
	}
}

// GetStatusPrimitive returns the status line shown while the overlay is open.
func (p *LogPage) GetStatusPrimitive() *tview.TextView {
	return p.statusText
}
