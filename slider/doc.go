// Package slider holds the state and geometry of controls whose thumb moves
// along a path: free-form path sliders, horizontal and vertical sliders,
// closed-range sliders and angle editors.
//
// Nothing in this package draws. Controls consume drag events and report
// value changes, and they hand out the paths and points a renderer needs.
// Controls are not safe for concurrent use.
package slider
