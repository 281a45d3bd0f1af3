package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picolog/picolog/core"
)

func TestSpill_PushThenPop(t *testing.T) {
	q := NewSpill()

	for i := int64(0); i < 10; i++ {
		rec := recordWith(i)
		q.Push(&rec)
		assert.Zero(t, rec.Len(), "push must move the record out")
	}

	var out core.Record
	for i := int64(0); i < 10; i++ {
		require.True(t, q.TryPop(&out))
		assert.Equal(t, i, seqOf(t, &out))
	}
	assert.False(t, q.TryPop(&out))
}

func TestSpill_EmptyPop(t *testing.T) {
	q := NewSpill()
	var out core.Record
	assert.False(t, q.TryPop(&out))
}

func TestSpill_InterleavedPushPop(t *testing.T) {
	q := NewSpill()
	var out core.Record

	rec := recordWith(0)
	q.Push(&rec)
	require.True(t, q.TryPop(&out))
	assert.Equal(t, int64(0), seqOf(t, &out))

	// Pushes that arrive while the consumer holds a drained batch are
	// picked up on the next swap.
	rec = recordWith(1)
	q.Push(&rec)
	rec = recordWith(2)
	q.Push(&rec)
	require.True(t, q.TryPop(&out))
	assert.Equal(t, int64(1), seqOf(t, &out))
	require.True(t, q.TryPop(&out))
	assert.Equal(t, int64(2), seqOf(t, &out))
	assert.False(t, q.TryPop(&out))
}

func TestSpill_NeverDropsAndKeepsProducerOrder(t *testing.T) {
	const producers = 4
	const perProducer = 2500

	q := NewSpill()
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				rec := recordWith(int64(p*perProducer + i))
				q.Push(&rec)
			}
		}(p)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	lastSeen := make([]int64, producers)
	for i := range lastSeen {
		lastSeen[i] = -1
	}
	count := 0
	var out core.Record
	for {
		if q.TryPop(&out) {
			v := rawSeq(&out)
			p := int(v / perProducer)
			require.Less(t, p, producers)
			assert.Greater(t, v, lastSeen[p], "producer %d reordered", p)
			lastSeen[p] = v
			count++
			if count == producers*perProducer {
				break
			}
			continue
		}
		select {
		case <-done:
			// Producers are finished; one final drain decides.
			if !q.TryPop(&out) {
				require.Equal(t, producers*perProducer, count, "spill queue dropped records")
				return
			}
			v := rawSeq(&out)
			p := int(v / perProducer)
			lastSeen[p] = v
			count++
			if count == producers*perProducer {
				return
			}
		default:
		}
	}
}

func TestSpill_MovesGrownRecords(t *testing.T) {
	q := NewSpill()

	rec := core.NewRecord(core.InfoLevel, "spill_test.go", "TestSpill_MovesGrownRecords", 1)
	for i := 0; i < 100; i++ {
		rec.AppendString("grow past the inline buffer")
	}
	require.True(t, rec.OnHeap())
	wantLen := rec.Len()

	q.Push(&rec)
	assert.False(t, rec.OnHeap(), "push left heap ownership behind")

	var out core.Record
	require.True(t, q.TryPop(&out))
	assert.Equal(t, wantLen, out.Len())
	assert.True(t, out.OnHeap())
}

func BenchmarkRingPush(b *testing.B) {
	q := NewRing(4 * 1024 * 4)
	var drain core.Record
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			rec := recordWith(1)
			q.Push(&rec)
		}
	})
	for q.TryPop(&drain) {
	}
}

func BenchmarkSpillPush(b *testing.B) {
	q := NewSpill()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			rec := recordWith(1)
			q.Push(&rec)
		}
	})
}
