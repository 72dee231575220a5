// internal/event/event.go
package event

import "slices"

// EventType — тип события
type EventType string

// Event — событие симуляции. Data зависит от типа, см. types.go.
type Event struct {
	Type EventType
	Data any
}

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=./mocks/listener_mock.go -package=mocks . Listener

// Listener — подписчик на события.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию. Отписать её нельзя: функции не сравниваются.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher рассылает события синхронно, в порядке подписки.
// Писатель один (кадр игры), поэтому без блокировок.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener сразу на несколько типов.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe снимает первую подписку listener на eventType.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	if i := slices.Index(listeners, listener); i >= 0 {
		d.listeners[eventType] = slices.Delete(slices.Clone(listeners), i, i+1)
	}
}

// Listeners — сколько подписчиков у типа.
func (d *Dispatcher) Listeners(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Dispatch вызывает подписчиков на момент вызова. Подписки и отписки изнутри
// обработчика вступают в силу со следующего события.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
