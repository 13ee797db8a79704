// Package host models the environment a view runs in: a drawing surface,
// a "run before the next repaint" scheduler, and pointer/resize notifications.
//
// Everything runs on the render goroutine. The game loop drives a Window by
// calling SetSurface, MovePointer and Advance once per tick.
package host

import "time"

// Surface describes the drawing surface in device pixels.
type Surface struct {
	Width, Height int
	Scale         float64 // device pixels per logical pixel
}

// Available reports whether there is anything to draw on.
func (s Surface) Available() bool { return s.Width > 0 && s.Height > 0 }

// FrameFunc runs before the next repaint. now is the time since the window started.
type FrameFunc func(now time.Duration)

// Handle identifies a requested frame. The zero Handle is never issued.
type Handle uint64

type frameReq struct {
	id Handle
	fn FrameFunc
}

type pointerListener struct {
	id int
	fn func(x, y float64)
}

type resizeListener struct {
	id int
	fn func(Surface)
}

// Window is a single-threaded host for one view.
type Window struct {
	surface Surface
	mounted bool

	nextHandle Handle
	queue      []frameReq

	nextListener int
	pointer      []pointerListener
	resize       []resizeListener

	now time.Duration
}

// NewWindow returns a window with no surface attached.
func NewWindow() *Window {
	return &Window{}
}

// Surface returns the current surface and whether it is mounted and non-empty.
func (w *Window) Surface() (Surface, bool) {
	return w.surface, w.mounted && w.surface.Available()
}

// Now returns the timestamp of the last Advance.
func (w *Window) Now() time.Duration { return w.now }

// RequestFrame schedules fn to run on the next Advance.
func (w *Window) RequestFrame(fn FrameFunc) Handle {
	w.nextHandle++
	w.queue = append(w.queue, frameReq{id: w.nextHandle, fn: fn})
	return w.nextHandle
}

// CancelFrame drops a pending frame. Unknown or already-run handles are ignored.
func (w *Window) CancelFrame(h Handle) {
	for i, req := range w.queue {
		if req.id == h {
			w.queue = append(w.queue[:i], w.queue[i+1:]...)
			return
		}
	}
}

// OnPointerMove registers fn for pointer moves and returns its remover.
func (w *Window) OnPointerMove(fn func(x, y float64)) (remove func()) {
	w.nextListener++
	id := w.nextListener
	w.pointer = append(w.pointer, pointerListener{id: id, fn: fn})
	return func() {
		for i, l := range w.pointer {
			if l.id == id {
				w.pointer = append(w.pointer[:i], w.pointer[i+1:]...)
				return
			}
		}
	}
}

// OnResize registers fn for surface changes and returns its remover.
func (w *Window) OnResize(fn func(Surface)) (remove func()) {
	w.nextListener++
	id := w.nextListener
	w.resize = append(w.resize, resizeListener{id: id, fn: fn})
	return func() {
		for i, l := range w.resize {
			if l.id == id {
				w.resize = append(w.resize[:i], w.resize[i+1:]...)
				return
			}
		}
	}
}

// SetSurface mounts the surface and notifies resize listeners when it changed.
func (w *Window) SetSurface(s Surface) {
	changed := !w.mounted || s != w.surface
	w.surface = s
	w.mounted = true
	if !changed {
		return
	}
	for _, l := range append([]resizeListener(nil), w.resize...) {
		l.fn(s)
	}
}

// Unmount detaches the surface. Pending frames stay queued until cancelled.
func (w *Window) Unmount() {
	w.mounted = false
}

// MovePointer notifies pointer listeners.
func (w *Window) MovePointer(x, y float64) {
	for _, l := range append([]pointerListener(nil), w.pointer...) {
		l.fn(x, y)
	}
}

// Advance runs every frame requested before the call. Frames requested from
// inside a callback run on the following Advance. It returns how many ran.
func (w *Window) Advance(now time.Duration) int {
	w.now = now
	batch := w.queue
	w.queue = nil
	for _, req := range batch {
		req.fn(now)
	}
	return len(batch)
}

// Pending returns the number of queued frames.
func (w *Window) Pending() int { return len(w.queue) }

// Listeners returns the number of registered pointer and resize listeners.
func (w *Window) Listeners() int { return len(w.pointer) + len(w.resize) }
