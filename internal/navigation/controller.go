package navigation

import (
	"go.uber.org/zap"
)

// Controller is the List/Detail/Form state machine. Forward transitions
// set the view and push a history entry; every return to List goes through
// History.Back so the on-screen back button and the host's back gesture
// behave the same. OnNavigated is the only place that moves the view
// backwards.
//
// A Controller is not safe for concurrent use; callers serialize events.
type Controller[T any] struct {
	history     History
	unsubscribe func()
	logger      *zap.Logger

	view        View
	selected    T
	hasSelected bool
	scrollTop   int
	manageMode  bool
}

func NewController[T any](history History, logger ...*zap.Logger) *Controller[T] {
	l := zap.L().Named("navigation")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("navigation")
	}
	c := &Controller[T]{history: history, logger: l, view: List}
	c.unsubscribe = history.Subscribe(c.OnNavigated)
	return c
}

// Close detaches the controller from its history.
func (c *Controller[T]) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *Controller[T]) View() View {
	return c.view
}

// Selected is the payload of the last List→Detail transition.
func (c *Controller[T]) Selected() (T, bool) {
	return c.selected, c.hasSelected
}

// ScrollTop is the secondary panel's scroll offset.
func (c *Controller[T]) ScrollTop() int {
	return c.scrollTop
}

func (c *Controller[T]) SetScrollTop(offset int) {
	if offset < 0 {
		offset = 0
	}
	c.scrollTop = offset
}

func (c *Controller[T]) ManageMode() bool {
	return c.manageMode
}

// Mounted lists the views that are rendered. List stays mounted underneath
// the active secondary view so it can slide back in.
func (c *Controller[T]) Mounted() []View {
	if c.view == List {
		return []View{List}
	}
	return []View{List, c.view}
}

// Select opens item in the Detail view. It is ignored unless List is
// active and manage mode is off.
func (c *Controller[T]) Select(item T) bool {
	if c.view != List || c.manageMode {
		return false
	}
	c.selected = item
	c.hasSelected = true
	c.forward(Detail)
	return true
}

// Apply opens the Form view. It is ignored unless List is active.
func (c *Controller[T]) Apply() bool {
	if c.view != List || c.manageMode {
		return false
	}
	c.forward(Form)
	return true
}

// ToggleManage flips the list's delete mode. Only meaningful on List.
func (c *Controller[T]) ToggleManage() bool {
	if c.view != List {
		return false
	}
	c.manageMode = !c.manageMode
	return true
}

// Back is the header's back button. On a secondary view it asks the host
// to go back; on List it only leaves manage mode.
func (c *Controller[T]) Back() {
	if c.view != List {
		c.history.Back()
		return
	}
	if c.manageMode {
		c.manageMode = false
	}
}

// Cancel abandons the form.
func (c *Controller[T]) Cancel() {
	if c.view == Form {
		c.history.Back()
	}
}

// Submitted returns to List after the form's draft was stored.
func (c *Controller[T]) Submitted() {
	if c.view == Form {
		c.history.Back()
	}
}

// OnNavigated adopts the view named by the now-active history entry.
// Anything unrecognized, including an empty back stack, means List.
func (c *Controller[T]) OnNavigated(tag string, ok bool) {
	next := List
	if ok {
		if v, known := ParseView(tag); known {
			next = v
		}
	}
	if next == Detail && !c.hasSelected {
		next = List
	}
	if next != List {
		c.scrollTop = 0
	}

	c.logger.Debug("navigated",
		zap.String("tag", tag),
		zap.Stringer("from", c.view),
		zap.Stringer("to", next),
	)
	c.view = next
}

func (c *Controller[T]) forward(to View) {
	c.scrollTop = 0
	c.logger.Debug("navigate forward", zap.Stringer("from", c.view), zap.Stringer("to", to))
	c.view = to
	c.history.Push(to.Tag())
}
