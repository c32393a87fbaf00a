package cmd

import (
	"fmt"

	"github.com/ElectronicKiwi/kolibri/pkg/icon"
	"github.com/ElectronicKiwi/kolibri/pkg/input"
	"github.com/ElectronicKiwi/kolibri/pkg/smartstate"
	"github.com/ElectronicKiwi/kolibri/pkg/theme"
	"github.com/ElectronicKiwi/kolibri/pkg/ui"
	"github.com/ElectronicKiwi/kolibri/pkg/widgets"
)

// demo is the application shown by run and snapshot: a counter with
// increment and decrement buttons, a lock toggle and a theme switch.
type demo struct {
	states *smartstate.Provider
	themes []string

	count     int
	locked    bool
	themeIdx  int
	switchTo  *theme.Style
	texts     map[int]string
	needClear bool
}

func newDemo(capacity int, current string) *demo {
	d := &demo{
		states:    smartstate.NewProvider(capacity),
		themes:    theme.BuiltinNames(),
		texts:     map[int]string{},
		needClear: true,
	}
	for i, name := range d.themes {
		if name == current {
			d.themeIdx = i
		}
	}
	return d
}

// textCell returns the next cell, reset when the text drawn with it changed
// since the last frame.
func (d *demo) textCell(text string) *smartstate.Smartstate {
	i := d.states.Position()
	cell := d.states.Next()
	if prev, ok := d.texts[i]; !ok || prev != text {
		d.texts[i] = text
		if cell != nil {
			cell.Reset()
		}
	}
	return cell
}

// frame evaluates one frame and reports whether application state changed,
// in which case the caller should evaluate another frame to show it.
func (d *demo) frame(u *ui.Ui, sample input.Sample) (bool, error) {
	if d.switchTo != nil {
		u.SetStyle(d.switchTo)
		d.switchTo = nil
		d.states.ForceRedrawAll()
		d.needClear = true
	}
	if d.needClear {
		if err := u.ClearScreen(); err != nil {
			return false, err
		}
		d.needClear = false
	}

	d.states.Restart()
	u.BeginFrame(sample)
	changed := false

	u.Add(widgets.LabelOf(fmt.Sprintf("count %4d", d.count)).WithSmartstate(d.textCell(fmt.Sprint(d.count))))

	minus := widgets.IconButtonOf(icon.Minus).WithEnabled(!d.locked).WithSmartstate(d.states.Next())
	if u.AddHorizontal(minus).Clicked {
		d.count--
		changed = true
	}
	plus := widgets.IconButtonOf(icon.Add).WithContext(theme.ContextPrimary).WithEnabled(!d.locked).WithSmartstate(d.states.Next())
	if u.AddHorizontal(plus).Clicked {
		d.count++
		changed = true
	}
	u.NewRow()

	lockText := "Lock"
	if d.locked {
		lockText = "Unlock"
	}
	lock := widgets.ButtonOf(lockText).WithContext(theme.ContextSecondary).WithMinWidth(64).WithSmartstate(d.textCell(lockText))
	if u.AddHorizontal(lock).Clicked {
		d.locked = !d.locked
		changed = true
	}
	name := d.themes[d.themeIdx]
	switcher := widgets.IconButtonOf(icon.Settings).WithLabel(name).WithSmartstate(d.textCell(name))
	if u.AddHorizontal(switcher).Clicked {
		d.themeIdx = (d.themeIdx + 1) % len(d.themes)
		d.switchTo, _ = theme.Builtin(d.themes[d.themeIdx])
		changed = true
	}
	u.NewRow()
	return changed, nil
}

// step runs frame and, if the application changed, a second frame with the
// same sample so the change is visible right away.
func (d *demo) step(u *ui.Ui, sample input.Sample) error {
	changed, err := d.frame(u, sample)
	if err != nil || !changed {
		return err
	}
	_, err = d.frame(u, sample)
	return err
}
