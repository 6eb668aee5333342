package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingListener struct {
	calls int
}

func (c *countingListener) OnDataChanged() {
	c.calls++
}

func TestPublisher_NotifyInOrder(t *testing.T) {
	var p Publisher
	var order []string

	p.Subscribe(DataChangeFunc(func() { order = append(order, "first") }))
	p.Subscribe(DataChangeFunc(func() { order = append(order, "second") }))
	p.Subscribe(DataChangeFunc(func() { order = append(order, "third") }))

	p.Notify()

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestPublisher_EachListenerOncePerNotify(t *testing.T) {
	var p Publisher
	a := &countingListener{}
	b := &countingListener{}
	p.Subscribe(a)
	p.Subscribe(b)

	p.Notify()

	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestPublisher_IgnoresNil(t *testing.T) {
	var p Publisher
	p.Subscribe(nil)
	assert.Equal(t, 0, p.Len())

	// Notify with no listeners is a no-op
	p.Notify()
}
