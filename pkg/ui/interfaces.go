package ui

import (
	"github.com/Qendolin/log-overlay/pkg/logging"
	"github.com/Qendolin/log-overlay/pkg/logstore"
	"github.com/rivo/tview"
)

// AppInterface defines methods the UI layer needs to access from the main App struct.
// It acts as a facade for UI components to interact with the application's core.
type AppInterface interface {
	// --- UI methods & Managers ---
	QueueUpdateDraw(f func()) *tview.Application
	Stop()
	Navigation() *NavigationManager
	Dialogs() *DialogManager
	Layout() *LayoutManager
	GetFocus() tview.Primitive
	SetFocus(tview.Primitive) *tview.Application

	// --- Core ---
	GetLogger() *logging.Logger
	GetStore() *logstore.LogStore
	GetExporter() Exporter
}
