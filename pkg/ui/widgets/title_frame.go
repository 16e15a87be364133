package widgets

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TitleFrame wraps another primitive and draws a horizontal rule above it
// carrying a title on the left and an optional annotation on the right.
type TitleFrame struct {
	*tview.Box
	content    tview.Primitive
	title      string
	annotation string
	color      tcell.Color
}

// NewTitleFrame creates a new TitleFrame.
func NewTitleFrame(content tview.Primitive, title string) *TitleFrame {
	return &TitleFrame{
		Box:     tview.NewBox(),
		content: content,
		title:   title,
		color:   tcell.ColorWhite,
	}
}

// SetTitle changes the title shown on the rule.
func (f *TitleFrame) SetTitle(title string) *TitleFrame {
	f.title = title
	return f
}

// SetAnnotation changes the right-aligned text shown on the rule.
func (f *TitleFrame) SetAnnotation(text string) *TitleFrame {
	f.annotation = text
	return f
}

// SetColor sets the color of the rule and its texts.
func (f *TitleFrame) SetColor(color tcell.Color) *TitleFrame {
	f.color = color
	return f
}

// Draw draws the TitleFrame.
func (f *TitleFrame) Draw(screen tcell.Screen) {
	f.Box.DrawForSubclass(screen, f)

	x, y, width, height := f.GetRect()
	if width <= 0 || height <= 0 {
		return
	}

	lineRune := tview.BoxDrawingsLightHorizontal
	if f.HasFocus() {
		lineRune = tview.BoxDrawingsHeavyHorizontal
	}
	style := tcell.StyleDefault.Background(tview.Styles.PrimitiveBackgroundColor).Foreground(f.color)
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, lineRune, nil, style)
	}

	if f.title != "" {
		titleText := " " + tview.Escape(f.title) + " "
		if f.HasFocus() {
			titleText = fmt.Sprintf("%s[::ur]%s[-:-:-]%s", string(tview.BlockRightHalfBlock), tview.Escape(f.title), string(tview.BlockLeftHalfBlock))
		}
		tview.Print(screen, titleText, x+1, y, width-2, tview.AlignLeft, f.color)
	}
	if f.annotation != "" {
		tview.Print(screen, " "+tview.Escape(f.annotation)+" ", x+1, y, width-2, tview.AlignRight, f.color)
	}

	// The content starts 1 row below the rule.
	if height <= 1 || f.content == nil {
		return
	}
	f.content.SetRect(x, y+1, width, height-1)
	f.content.Draw(screen)
}

// Focus is called when this primitive receives focus.
func (f *TitleFrame) Focus(delegate func(p tview.Primitive)) {
	if f.content != nil {
		delegate(f.content)
	} else {
		f.Box.Focus(delegate)
	}
}

// HasFocus returns whether or not this primitive has focus.
func (f *TitleFrame) HasFocus() bool {
	if f.content == nil {
		return f.Box.HasFocus()
	}
	return f.content.HasFocus()
}

// MouseHandler returns the mouse handler for this primitive.
func (f *TitleFrame) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return f.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if !f.InRect(event.Position()) {
			return false, nil
		}
		if f.content != nil {
			if consumed, capture = f.content.MouseHandler()(action, event, setFocus); consumed {
				return true, capture
			}
		}
		if action == tview.MouseLeftDown {
			setFocus(f)
			consumed = true
		}
		return
	})
}

// InputHandler returns the handler for this primitive.
func (f *TitleFrame) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return f.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if f.content == nil {
			return
		}
		if handler := f.content.InputHandler(); handler != nil {
			handler(event, setFocus)
		}
	})
}
