package safe

import (
	"fmt"
	"sync"
	"testing"

	"github.com/samber/hashring/pkg/base"
	"github.com/samber/hashring/pkg/consistent"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type node = base.StringNode

// mockRing implements base.Ring for testing. It is not a consistent ring:
// every item resolves to the first registered node.
type mockRing[N base.Node[N]] struct {
	order []N
	nodes map[string]N
}

func newMockRing[N base.Node[N]]() *mockRing[N] {
	return &mockRing[N]{
		nodes: map[string]N{},
	}
}

func (m *mockRing[N]) Add(n N) {
	if _, ok := m.nodes[string(n.Bytes())]; ok {
		return
	}
	m.nodes[string(n.Bytes())] = n
	m.order = append(m.order, n)
}

func (m *mockRing[N]) Remove(n N) {
	if _, ok := m.nodes[string(n.Bytes())]; !ok {
		return
	}
	delete(m.nodes, string(n.Bytes()))
	order := make([]N, 0, len(m.order))
	for _, o := range m.order {
		if string(o.Bytes()) != string(n.Bytes()) {
			order = append(order, o)
		}
	}
	m.order = order
}

func (m *mockRing[N]) Get(item base.Hashable) (N, error) {
	if len(m.order) == 0 {
		var zero N
		return zero, base.ErrNoServerNodes
	}
	return m.order[0], nil
}

func (m *mockRing[N]) Has(n N) bool {
	_, ok := m.nodes[string(n.Bytes())]
	return ok
}

func (m *mockRing[N]) Set(nodes ...N) {
	m.Purge()
	for _, n := range nodes {
		m.Add(n)
	}
}

func (m *mockRing[N]) Members() []N {
	return append([]N{}, m.order...)
}

func (m *mockRing[N]) Purge() {
	m.order = nil
	m.nodes = map[string]N{}
}

func (m *mockRing[N]) Count() int {
	return len(m.order)
}

func (m *mockRing[N]) Len() int {
	return len(m.order)
}

func (m *mockRing[N]) Replicas() uint32 {
	return 1
}

func (m *mockRing[N]) Spread() uint32 {
	return 7
}

func (m *mockRing[N]) SizeBytes() int64 {
	return int64(len(m.order))
}

func TestNewSafeRing(t *testing.T) {
	is := assert.New(t)

	mock := newMockRing[node]()
	ring := NewSafeRing[node](mock)
	is.NotNil(ring)

	safe, ok := ring.(*SafeRing[node])
	is.True(ok)
	is.Equal(mock, safe.Ring)
}

func TestSafeRing_BasicOperations(t *testing.T) {
	is := assert.New(t)

	ring := NewSafeRing[node](newMockRing[node]())

	_, err := ring.Get(node("item"))
	is.ErrorIs(err, base.ErrNoServerNodes)

	ring.Add("a")
	ring.Add("b")
	ring.Add("a")
	is.Equal(2, ring.Count())
	is.Equal(2, ring.Len())
	is.True(ring.Has("a"))
	is.Equal([]node{"a", "b"}, ring.Members())
	is.Equal(uint32(1), ring.Replicas())
	is.Equal(uint32(7), ring.Spread())
	is.Equal(int64(2), ring.SizeBytes())

	n, err := ring.Get(node("item"))
	is.NoError(err)
	is.Equal(node("a"), n)

	ring.Remove("a")
	is.False(ring.Has("a"))
	n, err = ring.Get(node("item"))
	is.NoError(err)
	is.Equal(node("b"), n)

	ring.Set("c", "d")
	is.Equal([]node{"c", "d"}, ring.Members())

	ring.Purge()
	is.Equal(0, ring.Count())
}

func TestSafeRing_ConcurrentAccess(t *testing.T) {
	is := assert.New(t)

	ring := NewSafeRing[node](consistent.New[node](consistent.DefaultConfig()))
	ring.Add("server0")

	const numGoroutines = 10
	const numOperations = 100

	var wg sync.WaitGroup

	// concurrent membership changes
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				n := node(fmt.Sprintf("server-%d-%d", id, j))
				ring.Add(n)
				if j%2 == 1 {
					ring.Remove(n)
				}
			}
		}(i)
	}

	// concurrent lookups
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				_, err := ring.Get(node(fmt.Sprintf("item-%d-%d", id, j)))
				is.NoError(err)
				_ = ring.Count()
			}
		}(i)
	}

	wg.Wait()

	is.Equal(1+numGoroutines*numOperations/2, ring.Count())
	is.Equal((1+numGoroutines*numOperations/2)*11, ring.Len())
}

func TestSafeRing_WithConsistentHash(t *testing.T) {
	is := assert.New(t)

	inner := consistent.New[node](consistent.DefaultConfig())
	ring := NewSafeRing[node](inner)

	for i := 1; i <= 6; i++ {
		ring.Add(node(fmt.Sprintf("server%d", i)))
	}

	for i := 0; i < 100; i++ {
		item := node(fmt.Sprintf("item%d", i))
		expected, err := inner.Get(item)
		is.NoError(err)
		got, err := ring.Get(item)
		is.NoError(err)
		is.Equal(expected, got)
	}
}
