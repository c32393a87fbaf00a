// Package smartstate gates widget redraws on slow displays.
//
// A [Smartstate] records which visual variant a widget slot was last drawn
// in. Widgets are rebuilt every frame, so the cell that survives between
// frames is owned by the caller and lent to the widget through a
// [Container] for the duration of one Draw call:
//
//	states := smartstate.NewProvider(16)
//	for {
//		states.Restart()
//		ui.BeginFrame(sample)
//		ui.Add(widgets.IconButtonOf(icon.Add).WithSmartstate(states.Next()))
//	}
//
// A widget computes a candidate state from its [Key], draws only when
// [Container.ShouldDraw] reports a change, and commits the candidate after
// the draw succeeded.
package smartstate
