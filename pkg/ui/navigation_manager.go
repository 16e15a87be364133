package ui

import (
	"github.com/Qendolin/log-overlay/pkg/logging"
	"github.com/rivo/tview"
)

// NavigationManager handles page state and transitions using a hybrid model
// of persistent "workspace" pages and transient "modal" overlays.
type NavigationManager struct {
	app             AppInterface
	pages           *tview.Pages // The tview.Pages primitive from the layout
	persistentPages map[string]Page
	modalStack      []modalEntry
}

type modalEntry struct {
	id   string
	page Page
}

// NewNavigationManager creates a new manager for page navigation.
func NewNavigationManager(app AppInterface, pages *tview.Pages) *NavigationManager {
	return &NavigationManager{
		app:             app,
		pages:           pages,
		persistentPages: make(map[string]Page),
		modalStack:      make([]modalEntry, 0),
	}
}

// Register adds a persistent page to the manager. These pages are created
// once and switched to by their ID.
func (n *NavigationManager) Register(pageID string, page Page) {
	if _, exists := n.persistentPages[pageID]; exists {
		logging.Errorf("NavigationManager: A page with ID '%s' is already registered. It will be replaced.", pageID)
		n.pages.RemovePage(pageID)
	}

	n.persistentPages[pageID] = page
	n.pages.AddPage(pageID, page, true, false) // Add but don't make visible yet
}

// updateUIForPage is a helper to set the footer, header, and focus.
func (n *NavigationManager) updateUIForPage(page Page) {
	if page == nil {
		n.app.Layout().SetFooter(nil)
		n.app.Layout().SetHeader(nil)
		return
	}
	n.app.Layout().SetFooter(page.GetActionPrompts())
	n.app.Layout().SetHeader(page.GetStatusPrimitive())
	n.app.SetFocus(page)
}

// SwitchTo changes the main visible page to the one specified by pageID.
func (n *NavigationManager) SwitchTo(pageID string) {
	page, ok := n.persistentPages[pageID]
	if !ok {
		return // Do not switch to an unregistered page
	}

	n.pages.SwitchToPage(pageID)
	n.updateUIForPage(page)

	if activator, ok := page.(PageActivator); ok {
		activator.OnPageActivated()
	}
}

// ShowModal displays a transient page over the current view. A modal that is
// already open under the same ID is replaced.
func (n *NavigationManager) ShowModal(pageID string, page Page) {
	n.dropFromStack(pageID)
	n.pages.AddPage(pageID, page, true, true)
	n.modalStack = append(n.modalStack, modalEntry{id: pageID, page: page})
	n.updateUIForPage(page)
}

// CloseModal removes the top-most modal page.
func (n *NavigationManager) CloseModal() {
	if len(n.modalStack) == 0 {
		return
	}
	n.RemoveModal(n.modalStack[len(n.modalStack)-1].id)
}

// RemoveModal removes the modal with the given ID wherever it is in the stack.
func (n *NavigationManager) RemoveModal(pageID string) {
	if !n.dropFromStack(pageID) {
		return
	}
	n.pages.RemovePage(pageID)

	// Update UI for the page that is now in front
	n.updateUIForPage(n.GetCurrentPage())

	// Does not cause OnPageActivated invocations
}

// HasModal reports whether a modal with the given ID is open.
func (n *NavigationManager) HasModal(pageID string) bool {
	for _, m := range n.modalStack {
		if m.id == pageID {
			return true
		}
	}
	return false
}

func (n *NavigationManager) dropFromStack(pageID string) bool {
	for i, m := range n.modalStack {
		if m.id == pageID {
			n.modalStack = append(n.modalStack[:i], n.modalStack[i+1:]...)
			return true
		}
	}
	return false
}

// GetCurrentPage returns the Page interface of the front-most primitive.
func (n *NavigationManager) GetCurrentPage() Page {
	if len(n.modalStack) > 0 {
		return n.modalStack[len(n.modalStack)-1].page
	}

	// If no modal, get the persistent page
	pageID, _ := n.pages.GetFrontPage()
	if page, ok := n.persistentPages[pageID]; ok {
		return page
	}

	return nil
}
