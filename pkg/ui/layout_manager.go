package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Qendolin/log-overlay/pkg/logging"
	"github.com/Qendolin/log-overlay/pkg/logstore"
	"github.com/rivo/tview"
)

// counterState is what the header counters last displayed.
type counterState struct {
	entries    int
	warnings   int
	errors     int
	visibility logstore.Visibility
}

// LayoutManager handles the overall visual structure of the application.
type LayoutManager struct {
	app        AppInterface
	root       *tview.Flex
	header     *tview.Flex
	status     *tview.Flex
	statusText *tview.TextView
	footer     *tview.Flex
	pages      *tview.Pages

	counters     *tview.TextView
	prevCounters counterState
}

// NewLayoutManager creates and initializes the UI layout manager.
func NewLayoutManager(app AppInterface, ctx context.Context) *LayoutManager {
	lm := &LayoutManager{
		app:          app,
		pages:        tview.NewPages(),
		root:         tview.NewFlex().SetDirection(tview.FlexRow),
		header:       tview.NewFlex(),
		footer:       tview.NewFlex(),
		counters:     tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignRight),
		prevCounters: counterState{entries: -1},
	}
	lm.setupLayout()
	go lm.startCounterPolling(ctx)
	return lm
}

// RootPrimitive returns the main primitive that should be set as the application's root.
func (lm *LayoutManager) RootPrimitive() tview.Primitive {
	return lm.root
}

// Pages returns the tview.Pages container for content.
func (lm *LayoutManager) Pages() *tview.Pages {
	return lm.pages
}

// ScreenSize returns the size of the area the layout was last drawn into.
func (lm *LayoutManager) ScreenSize() (width, height int) {
	_, _, width, height = lm.root.GetRect()
	return width, height
}

func (lm *LayoutManager) setupLayout() {
	lm.status = tview.NewFlex().SetDirection(tview.FlexRow)
	lm.SetHeader(nil)

	// Use boxes instead of padding to avoid transparent gap
	lm.header.AddItem(tview.NewBox(), 1, 0, false).
		AddItem(lm.status, 0, 1, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(lm.counters, 46, 0, false).
		AddItem(tview.NewBox(), 1, 0, false)

	lm.root.SetBorder(true).
		SetTitle(" Log Overlay ").
		SetTitleAlign(tview.AlignLeft)

	lm.root.AddItem(lm.header, 1, 0, false).
		AddItem(lm.pages, 0, 1, true).
		AddItem(lm.footer, 1, 0, false)

	lm.setCounters(counterState{})
}

// startCounterPolling periodically refreshes the header counters until ctx is done.
func (lm *LayoutManager) startCounterPolling(ctx context.Context) {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	last := counterState{entries: -1}
	for {
		select {
		case <-ticker.C:
			last = lm.updateCounters(last)
		case <-ctx.Done():
			logging.Debugf("LayoutManager: Stopping counter polling.")
			return
		}
	}
}

// updateCounters reads the store and logger and queues a redraw when the
// values differ from last. It returns the values it saw.
func (lm *LayoutManager) updateCounters(last counterState) counterState {
	store := lm.app.GetStore()
	if store == nil {
		return last
	}
	state := counterState{
		entries:    store.Len(),
		visibility: store.Visibility(),
	}
	if logger := lm.app.GetLogger(); logger != nil {
		state.warnings, state.errors = logger.Counts()
	}

	// prevent unnecessary draws
	if state != last {
		lm.app.QueueUpdateDraw(func() {
			lm.setCounters(state)
		})
	}
	return state
}

// setCounters renders the header counters. It must run on the UI goroutine.
func (lm *LayoutManager) setCounters(state counterState) {
	if lm.prevCounters == state {
		return
	}
	lm.prevCounters = state

	warnColors := "white:black"
	if state.warnings > 0 {
		warnColors = "black:yellow"
	}
	errorColors := "white:black"
	if state.errors > 0 {
		errorColors = "black:red"
	}
	overlay := ""
	if state.visibility == logstore.Shown {
		overlay = "[black:green]OVERLAY[-:-:-] "
	}
	lm.counters.SetText(fmt.Sprintf("%s[white]Entries: %d [yellow]Warn: [%s]%d[-:-:-] [red]Err: [%s]%d[-:-:-]",
		overlay, state.entries, warnColors, state.warnings, errorColors, state.errors))
}

// SetFooter updates the action hints flexbox.
func (lm *LayoutManager) SetFooter(prompts []ActionPrompt) {
	lm.footer.Clear()
	if prompts == nil {
		return
	}
	globalPrompts := []ActionPrompt{{"Ctrl+C", "Quit"}}
	allPrompts := append(globalPrompts, prompts...)

	var sb strings.Builder
	for i, prompt := range allPrompts {
		sb.WriteString(fmt.Sprintf("[darkcyan::b]%s[-:-:-]: %s", prompt.Input, prompt.Action))
		if i != len(allPrompts)-1 {
			sb.WriteString(" | ")
		}
	}
	lm.footer.AddItem(tview.NewTextView().SetDynamicColors(true).SetText(sb.String()), 0, 1, false)
}

// SetHeader updates the status bar
func (lm *LayoutManager) SetHeader(p *tview.TextView) {
	if p == nil {
		p = tview.NewTextView().SetDynamicColors(true)
	}
	lm.statusText = p
	lm.status.Clear()
	lm.status.AddItem(p, 0, 1, false)
}

func (lm *LayoutManager) SetStatusText(text string) {
	lm.statusText.SetText(text)
}
