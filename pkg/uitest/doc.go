// Package uitest drives kolibri frames in tests without a display.
//
// A [Tester] renders into a [graphics.Recorder], so tests can count the
// primitives each frame issued and inspect what was drawn:
//
//	func TestCounter(t *testing.T) {
//	    tester := uitest.NewTesterWithT(t, theme.Bootstrap())
//	    count := 0
//	    tester.SetBuild(func(f *uitest.Frame) {
//	        if f.Add(widgets.IconButtonOf(icon.Add).WithSmartstate(f.States.Next())).Clicked {
//	            count++
//	        }
//	    })
//
//	    tester.Pump(input.None())
//	    tester.TapAt(tester.Response(0).Area.Center())
//	    if count != 1 {
//	        t.Errorf("count = %d, want 1", count)
//	    }
//	}
//
// Pointer helpers such as [Tester.TapAt] and [Tester.DragFrom] pump one
// frame per sample, the same way a device polls its touch controller.
package uitest
