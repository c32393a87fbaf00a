package smartstate

import (
	"github.com/ElectronicKiwi/kolibri/pkg/input"
	"github.com/ElectronicKiwi/kolibri/pkg/theme"
)

// Key is everything that selects a widget's visual variant.
type Key struct {
	Context theme.Context
	Enabled bool
	// Modified is set when the caller touched a layout-affecting parameter
	// (minimum width, enabled flag, context) while constructing the widget.
	Modified bool
	Bucket   input.Bucket
}

// codesPerContext is the size of the code block for one context:
// 3 buckets x 2 modified states when enabled, plus 2 when disabled.
const codesPerContext = 8

// Normalize clears fields that do not change the pixels: a disabled widget
// looks the same whatever the pointer does.
func (k Key) Normalize() Key {
	if !k.Enabled {
		k.Bucket = input.BucketNone
	}
	return k
}

// Code maps the key to a state code. Within the normal context the codes are
// 1..8: enabled idle 1/2, hover 3/4, active 5/6 and disabled 7/8, odd when
// modified. Other contexts are offset by 8 per context.
func (k Key) Code() uint32 {
	k = k.Normalize()
	var code uint32
	if k.Enabled {
		code = 1 + 2*uint32(k.Bucket)
	} else {
		code = 7
	}
	if !k.Modified {
		code++
	}
	return code + codesPerContext*uint32(k.Context)
}

// State returns the tagged state for the key.
func (k Key) State() Smartstate {
	return State(k.Code())
}
