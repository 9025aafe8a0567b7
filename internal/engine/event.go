package engine

// ListenerID identifies a single registered listener so that exactly that
// listener can be removed later. Zero is never handed out.
type ListenerID uint64

// Event is a multi-cast event with no argument.
type Event struct {
	inner EventWithArg[struct{}]
}

// AddListener adds a callback to be invoked when the event fires
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	return e.inner.AddListener(func(struct{}) { callback() })
}

// RemoveListener removes the listener registered under id. Unknown ids are ignored.
func (e *Event) RemoveListener(id ListenerID) bool {
	return e.inner.RemoveListener(id)
}

// RemoveAllListeners clears all listeners
func (e *Event) RemoveAllListeners() {
	e.inner.RemoveAllListeners()
}

// Invoke calls all registered listeners
func (e *Event) Invoke() {
	e.inner.Invoke(struct{}{})
}

// GetListenerCount returns the number of registered listeners (for debugging)
func (e *Event) GetListenerCount() int {
	return e.inner.GetListenerCount()
}

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// EventWithArg is a generic event with one argument.
//
// Listeners may add or remove listeners (including themselves) while the
// event is being invoked. Invoke works on a snapshot taken when it starts,
// but a listener removed mid-dispatch is not called afterwards.
type EventWithArg[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
	removed   map[ListenerID]struct{}
	invoking  int
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

// RemoveListener removes exactly the listener registered under id.
func (e *EventWithArg[T]) RemoveListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id != id {
			continue
		}
		e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
		if e.invoking > 0 {
			if e.removed == nil {
				e.removed = make(map[ListenerID]struct{})
			}
			e.removed[id] = struct{}{}
		}
		return true
	}
	return false
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	if e.invoking > 0 {
		if e.removed == nil {
			e.removed = make(map[ListenerID]struct{})
		}
		for _, l := range e.listeners {
			e.removed[l.id] = struct{}{}
		}
	}
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	snapshot := e.listeners
	e.invoking++
	defer func() {
		e.invoking--
		if e.invoking == 0 {
			e.removed = nil
		}
	}()
	for _, l := range snapshot {
		if _, gone := e.removed[l.id]; gone {
			continue
		}
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
