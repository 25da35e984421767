package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSuggester struct {
	mu      sync.Mutex
	queries []string
	delay   time.Duration
	err     error
	results []string
}

func (f *fakeSuggester) Suggest(ctx context.Context, query string) ([]string, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	delay := f.delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.results != nil {
		return f.results, nil
	}
	return []string{query + " deals", query + " under 50"}, nil
}

func (f *fakeSuggester) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.queries))
	copy(out, f.queries)
	return out
}

func newPipeline(s *fakeSuggester) *Pipeline {
	return NewPipeline(s, PipelineConfig{
		Debounce:       40 * time.Millisecond,
		MinQueryLength: 3,
		MaxSuggestions: 5,
	})
}

func TestPipeline_RapidTypingCoalescesToOneRequest(t *testing.T) {
	s := &fakeSuggester{}
	p := newPipeline(s)

	p.Input("abc")
	time.Sleep(10 * time.Millisecond)
	p.Input("abcd")
	time.Sleep(10 * time.Millisecond)
	p.Input("abcde")

	time.Sleep(100 * time.Millisecond)

	require.Equal(t, []string{"abcde"}, s.calls())
	assert.Equal(t, []string{"abcde deals", "abcde under 50"}, p.Suggestions())
}

func TestPipeline_IdleGapTriggersSecondRequest(t *testing.T) {
	s := &fakeSuggester{}
	p := newPipeline(s)

	p.Input("abc")
	time.Sleep(80 * time.Millisecond)
	p.Input("abcd")
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, []string{"abc", "abcd"}, s.calls())
}

func TestPipeline_ShortQueryClearsWithoutRequest(t *testing.T) {
	s := &fakeSuggester{}
	p := newPipeline(s)

	p.Input("abc")
	time.Sleep(80 * time.Millisecond)
	require.NotEmpty(t, p.Suggestions())

	p.Input("ab")

	assert.Empty(t, p.Suggestions())
	assert.False(t, p.Searching())
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []string{"abc"}, s.calls())
}

func TestPipeline_ErrorDegradesToEmpty(t *testing.T) {
	s := &fakeSuggester{err: errors.New("upstream unavailable")}
	p := newPipeline(s)

	p.Input("abc")
	time.Sleep(80 * time.Millisecond)

	assert.Empty(t, p.Suggestions())
	assert.False(t, p.Searching())
}

func TestPipeline_StaleResponseNeverOverwritesNewer(t *testing.T) {
	var slowStarted int32
	p := NewPipeline(suggesterFunc(func(ctx context.Context, query string) ([]string, error) {
		if query == "slow" {
			atomic.StoreInt32(&slowStarted, 1)
			select {
			case <-time.After(200 * time.Millisecond):
				return []string{"slow result"}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		return []string{"fast result"}, nil
	}), PipelineConfig{Debounce: 20 * time.Millisecond, MinQueryLength: 3, MaxSuggestions: 5})

	p.Input("slow")
	// 等第一个请求进入在途状态
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&slowStarted) == 1
	}, time.Second, 5*time.Millisecond)

	p.Input("fast")
	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, []string{"fast result"}, p.Suggestions())
}

func TestPipeline_SearchingFlagWhilePending(t *testing.T) {
	s := &fakeSuggester{delay: 100 * time.Millisecond}
	p := newPipeline(s)

	p.Input("abc")
	time.Sleep(60 * time.Millisecond)
	assert.True(t, p.Searching())

	time.Sleep(150 * time.Millisecond)
	assert.False(t, p.Searching())
}

func TestPipeline_TruncatesToMaxSuggestions(t *testing.T) {
	s := &fakeSuggester{results: []string{"a", "b", "c", "d", "e", "f", "g"}}
	p := newPipeline(s)

	p.Input("abc")
	time.Sleep(80 * time.Millisecond)

	assert.Len(t, p.Suggestions(), 5)
}

type suggesterFunc func(ctx context.Context, query string) ([]string, error)

func (f suggesterFunc) Suggest(ctx context.Context, query string) ([]string, error) {
	return f(ctx, query)
}
