package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	DefaultButtonStyle         = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	DefaultButtonActiveStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue).Underline(true)
	DefaultButtonDisabledStyle = tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorDarkGray)
)

// Log rows alternate between these two backgrounds.
var (
	LogRowDarkColor  = tcell.NewRGBColor(18, 18, 18)
	LogRowLightColor = tcell.NewRGBColor(48, 48, 48)
	LogTextColor     = tcell.ColorWhite
	LogSelectedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSteelBlue)
)

func DefaultStyleButton(button *tview.Button) {
	button.SetStyle(DefaultButtonStyle)
	button.SetActivatedStyle(DefaultButtonActiveStyle)
	button.SetDisabledStyle(DefaultButtonDisabledStyle)
}

// LogRowColor returns the background for the log row at index i.
func LogRowColor(i int) tcell.Color {
	if i%2 == 0 {
		return LogRowDarkColor
	}
	return LogRowLightColor
}
