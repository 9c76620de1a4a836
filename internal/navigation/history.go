package navigation

// History is the host's navigation stack, e.g. the browser's
// pushState/back/popstate trio.
type History interface {
	// Push records a new entry tagged tag. It does not notify.
	Push(tag string)
	// Back asks the host to go back one entry. The result arrives through
	// the Subscribe callback, never as a return value.
	Back()
	// Subscribe registers fn for "navigated" notifications. ok is false
	// when the now-active entry carries no tag.
	Subscribe(fn func(tag string, ok bool)) (unsubscribe func())
}

type subscriber struct {
	id int
	fn func(tag string, ok bool)
}

// StackHistory is an in-memory History. Entry 0 is the untagged page the
// app was opened on. It is not safe for concurrent use.
type StackHistory struct {
	entries []string
	index   int
	subs    []subscriber
	nextID  int
}

func NewStackHistory() *StackHistory {
	return &StackHistory{entries: []string{""}}
}

// Push drops any forward entries, like a browser does after navigating
// from the middle of its history.
func (h *StackHistory) Push(tag string) {
	h.entries = append(h.entries[:h.index+1], tag)
	h.index++
}

// Back on the root entry still notifies, with no tag, so listeners can
// fall back to their default state.
func (h *StackHistory) Back() {
	if h.index == 0 {
		h.notify("", false)
		return
	}
	h.index--
	tag := h.entries[h.index]
	h.notify(tag, tag != "")
}

// Forward re-enters the next entry if there is one.
func (h *StackHistory) Forward() {
	if h.index+1 >= len(h.entries) {
		return
	}
	h.index++
	tag := h.entries[h.index]
	h.notify(tag, tag != "")
}

// Navigate delivers a notification that originated outside this stack,
// e.g. a popstate event relayed from a browser. The stack itself is left
// untouched.
func (h *StackHistory) Navigate(tag string) {
	h.notify(tag, tag != "")
}

// Current returns the active entry's tag.
func (h *StackHistory) Current() (string, bool) {
	tag := h.entries[h.index]
	return tag, tag != ""
}

// Depth is the number of entries behind the active one.
func (h *StackHistory) Depth() int {
	return h.index
}

func (h *StackHistory) Subscribe(fn func(tag string, ok bool)) func() {
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range h.subs {
			if s.id == id {
				h.subs = append(h.subs[:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

func (h *StackHistory) notify(tag string, ok bool) {
	subs := make([]subscriber, len(h.subs))
	copy(subs, h.subs)
	for _, s := range subs {
		s.fn(tag, ok)
	}
}
