// Package widgets provides immediate-mode widgets for small displays.
//
// Widgets are plain values built fresh every frame and handed to
// [ui.Ui.Add]. They are configured with WithX methods that return modified
// copies:
//
//	resp := u.Add(widgets.IconButtonOf(icon.Home).
//	    WithLabel("Home").
//	    WithContext(theme.ContextPrimary).
//	    WithSmartstate(states.Next()))
//	if resp.Clicked {
//	    goHome()
//	}
//
// # Redraw suppression
//
// A widget only repaints when its visual state differs from the one stored
// in its smartstate cell. Without a cell (WithSmartstate never called, or a
// nil cell from an exhausted provider) the widget repaints every frame,
// which is slower but always correct.
//
// Text and icons are not part of the visual state. When they change, reset
// the widget's cell so it repaints.
package widgets
