package ui

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Qendolin/log-overlay/pkg/logging"
	"github.com/rivo/tview"
)

const (
	burstWriters   = 4
	burstPerWriter = 25
)

// DemoPage is the host screen the overlay is opened over. It produces log
// entries on request so the overlay has something to show.
type DemoPage struct {
	*tview.Flex
	app        AppInterface
	form       *tview.Form
	intro      *tview.TextView
	statusText *tview.TextView

	presses atomic.Int64
	bursts  atomic.Int64
}

// NewDemoPage creates the demo page.
func NewDemoPage(app AppInterface) *DemoPage {
	p := &DemoPage{
		Flex:       tview.NewFlex().SetDirection(tview.FlexRow),
		app:        app,
		form:       tview.NewForm(),
		intro:      tview.NewTextView().SetDynamicColors(true).SetWordWrap(true),
		statusText: tview.NewTextView().SetDynamicColors(true),
	}

	p.form.AddButton("Add entry", p.addEntry).
		AddButton(fmt.Sprintf("Burst (%d×%d)", burstWriters, burstPerWriter), p.burst).
		AddButton("Show logs", p.showLogs).
		AddButton("Quit", app.Dialogs().ShowQuitDialog)
	p.form.SetButtonsAlign(tview.AlignCenter)

	p.AddItem(p.intro, 0, 1, false).
		AddItem(p.form, 3, 0, true)

	return p
}

// addEntry appends a single entry.
func (p *DemoPage) addEntry() {
	n := p.presses.Add(1)
	p.app.GetStore().Appendf("Button pressed %d time(s)", n)
	p.refresh()
}

// burst appends from several goroutines at once.
func (p *DemoPage) burst() {
	id := p.bursts.Add(1)
	store := p.app.GetStore()

	var wg sync.WaitGroup
	for w := 0; w < burstWriters; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < burstPerWriter; i++ {
				store.Appendf("Burst %d: writer %d entry %d", id, w, i)
			}
		}(w)
	}

	go func() {
		wg.Wait()
		logging.Infof("Demo: Burst %d finished, store holds %d entries.", id, store.Len())
		p.app.QueueUpdateDraw(p.refresh)
	}()
}

// showLogs opens the overlay without a gesture.
func (p *DemoPage) showLogs() {
	if !p.app.GetStore().RequestShow() {
		logging.Debugf("Demo: Overlay already shown.")
	}
}

// refresh updates the description and status texts. It must run on the UI goroutine.
func (p *DemoPage) refresh() {
	store := p.app.GetStore()
	p.intro.SetText(fmt.Sprintf(
		"\n[::b]%s[::-]\n\nOpen the log overlay with: [darkcyan]%s[-]\n"+
			"Close it with [darkcyan]Cancel[-] or [darkcyan]Esc[-].\n\n"+
			"Entries are only added, never removed, and the overlay shows the\n"+
			"list as it was when it opened.",
		tview.Escape(store.Title()), tview.Escape(fmt.Sprint(store.Gesture()))))
	p.statusText.SetText(fmt.Sprintf("%d entries logged, overlay %s.", store.Len(), store.Visibility()))
}

// OnPageActivated implements PageActivator.
func (p *DemoPage) OnPageActivated() {
	p.refresh()
}

// GetActionPrompts returns the key actions for the demo page.
func (p *DemoPage) GetActionPrompts() []ActionPrompt {
	return []ActionPrompt{
		{"Tab", "Next Button"},
		{"Enter", "Press"},
	}
}

// GetStatusPrimitive returns the status line of the demo page.
func (p *DemoPage) GetStatusPrimitive() *tview.TextView {
	return p.statusText
}
