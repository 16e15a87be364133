package app

import (
	"context"
	"sync"
	"time"

	"github.com/Qendolin/log-overlay/pkg/logging"
	"github.com/Qendolin/log-overlay/pkg/logstore"
	"github.com/Qendolin/log-overlay/pkg/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App orchestrates the TUI application and hosts the log overlay.
type App struct {
	*tview.Application
	layoutManager *ui.LayoutManager
	navManager    *ui.NavigationManager
	dialogManager *ui.DialogManager
	logger        *logging.Logger
	store         *logstore.LogStore
	settings      *Settings

	demoPage *ui.DemoPage

	appCtx    context.Context
	cancelApp context.CancelFunc
	stopOnce  sync.Once

	shutdownWg sync.WaitGroup
}

// NewApp creates and initializes the TUI application around store.
func NewApp(logger *logging.Logger, store *logstore.LogStore, settings *Settings) *App {
	appCtx, cancelApp := context.WithCancel(context.Background())

	a := &App{
		Application: tview.NewApplication(),
		appCtx:      appCtx,
		cancelApp:   cancelApp,
		logger:      logger,
		store:       store,
		settings:    settings,
	}

	store.Configure(settings.Gesture, settings.Title)
	store.OnShow(a.presentLogPage)
	store.OnHide(a.dismissLogPage)

	a.layoutManager = ui.NewLayoutManager(a, appCtx)
	a.navManager = ui.NewNavigationManager(a, a.layoutManager.Pages())
	a.dialogManager = ui.NewDialogManager(a)
	a.SetRoot(a.layoutManager.RootPrimitive(), true).EnableMouse(true)

	a.demoPage = ui.NewDemoPage(a)
	a.navManager.Register(ui.PageDemoID, a.demoPage)

	a.setupGlobalInputCapture()

	return a
}

// setupGlobalInputCapture routes every key and mouse event past the overlay
// gesture before the focused primitive sees it.
func (a *App) setupGlobalInputCapture() {
	a.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			go a.QueueUpdateDraw(a.dialogManager.ShowQuitDialog)
			return nil
		}
		if a.routeGesture(event) {
			return nil
		}
		return event
	})
	a.SetMouseCapture(func(event *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
		if a.routeGesture(event) {
			return nil, action
		}
		return event, action
	})
}

func (a *App) routeGesture(event tcell.Event) bool {
	width, height := a.layoutManager.ScreenSize()
	if !a.store.HandleEvent(event, width, height) {
		return false
	}
	logging.Debugf("App: Overlay gesture recognized.")
	return true
}

// presentLogPage runs after the store switched to Shown.
// It may be called from the UI goroutine, so the update is queued from a new one.
func (a *App) presentLogPage() {
	go a.QueueUpdateDraw(func() {
		logging.Debugf("App: Presenting log overlay with %d entries.", a.store.Len())
		a.navManager.ShowModal(ui.PageLogID, ui.NewLogPage(a))
	})
}

// dismissLogPage runs after the store switched to Hidden.
func (a *App) dismissLogPage() {
	go a.QueueUpdateDraw(func() {
		logging.Debugf("App: Dismissing log overlay.")
		a.navManager.RemoveModal(ui.PageLogID)
	})
}

// startHeartbeat appends a periodic entry until the app stops.
func (a *App) startHeartbeat(interval time.Duration) {
	if interval <= 0 {
		return
	}
	a.shutdownWg.Add(1)
	go func() {
		defer a.shutdownWg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		beat := 0
		for {
			select {
			case <-a.appCtx.Done():
				return
			case <-ticker.C:
				beat++
				a.store.Appendf("Heartbeat %d", beat)
			}
		}
	}()
}

// Run starts the tview application event loop.
func (a *App) Run() error {
	a.navManager.SwitchTo(ui.PageDemoID)
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	screen.SetTitle(a.store.Title()) // tview doesn't expose this
	a.EnableMouse(true)
	a.EnablePaste(true)
	a.SetScreen(screen)
	a.startHeartbeat(a.settings.Heartbeat)
	return a.Application.Run()
}

// Stop gracefully stops the application.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		a.cancelApp()
		a.shutdownWg.Wait()
		a.store.OnShow(nil)
		a.store.OnHide(nil)
		a.Application.Stop()
	})
}

// AppInterface methods to be called by UI components
func (a *App) GetApplicationContext() context.Context { return a.appCtx }
func (a *App) GetLogger() *logging.Logger             { return a.logger }
func (a *App) GetStore() *logstore.LogStore           { return a.store }
func (a *App) GetExporter() ui.Exporter               { return a.settings.Exporter }
func (a *App) Navigation() *ui.NavigationManager      { return a.navManager }
func (a *App) Dialogs() *ui.DialogManager             { return a.dialogManager }
func (a *App) Layout() *ui.LayoutManager              { return a.layoutManager }
