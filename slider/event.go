package slider

import "github.com/fieldkit/curve"

// Event is an input event delivered to a control's Update method.
type Event interface {
	isEvent()
}

// DragChanged reports the current location of an ongoing drag, in the same
// coordinate space as the control's paths.
type DragChanged struct {
	Location curve.Point
}

// DragEnded reports that the drag was released.
type DragEnded struct{}

func (DragChanged) isEvent() {}
func (DragEnded) isEvent()   {}

// Message is what a control reports back from Update.
type Message interface {
	isMessage()
}

// ValueChanged reports a new value during a drag.
type ValueChanged struct {
	Value float64
}

// DragFinished reports the value at the end of a drag.
type DragFinished struct {
	Value float64
}

// RangeChanged reports a new value of a [RangeSlider] during a drag.
type RangeChanged struct {
	Value Range
}

// RangeFinished reports the value of a [RangeSlider] at the end of a drag.
type RangeFinished struct {
	Value Range
}

func (ValueChanged) isMessage()  {}
func (DragFinished) isMessage()  {}
func (RangeChanged) isMessage()  {}
func (RangeFinished) isMessage() {}
