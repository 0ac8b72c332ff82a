package status

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Metric keys written by the game loop and frontends
const (
	KeyFrames      = "loop.frames"
	KeyFPS         = "loop.fps"
	KeyScreen      = "fsm.screen"
	KeyMatches     = "match.started"
	KeyPointsLeft  = "match.points.left"
	KeyPointsRight = "match.points.right"
	KeyPaddleHits  = "match.paddle_hits"
)

// Gauge is a float64 stored as bits, the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }
func (g *Gauge) Get() float64 { return math.Float64frombits(g.bits.Load()) }

// Label holds a short string such as a screen name, the zero value reads ""
type Label struct {
	ptr atomic.Pointer[string]
}

func (l *Label) Store(v string) { l.ptr.Store(&v) }

func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// metrics lazily creates one T per key, pointers stay valid for the registry's lifetime
type metrics[T any] struct {
	mu    sync.Mutex
	items map[string]*T
}

func (m *metrics[T]) get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items == nil {
		m.items = make(map[string]*T)
	}
	ptr, ok := m.items[key]
	if !ok {
		ptr = new(T)
		m.items[key] = ptr
	}
	return ptr
}

// appendSorted formats every item in key order
func (m *metrics[T]) appendSorted(parts []string, format func(key string, v *T) string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, format(k, m.items[k]))
	}
	return parts
}

// Registry is the central metrics facade
// Writers cache pointers once; the frame loop writes directly to atomics
type Registry struct {
	counters metrics[atomic.Int64]
	gauges   metrics[Gauge]
	labels   metrics[Label]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Counter(key string) *atomic.Int64 { return r.counters.get(key) }
func (r *Registry) Gauge(key string) *Gauge { return r.gauges.get(key) }
func (r *Registry) Label(key string) *Label { return r.labels.get(key) }

// GameMetrics are the cached pointers the screen machine writes every frame
type GameMetrics struct {
	Frames      *atomic.Int64
	Matches     *atomic.Int64
	PointsLeft  *atomic.Int64
	PointsRight *atomic.Int64
	PaddleHits  *atomic.Int64
	Screen      *Label
}

// Game resolves the game loop's metrics
func (r *Registry) Game() GameMetrics {
	return GameMetrics{
		Frames:      r.Counter(KeyFrames),
		Matches:     r.Counter(KeyMatches),
		PointsLeft:  r.Counter(KeyPointsLeft),
		PointsRight: r.Counter(KeyPointsRight),
		PaddleHits:  r.Counter(KeyPaddleHits),
		Screen:      r.Label(KeyScreen),
	}
}

// Summary renders counters, gauges then labels as sorted key=value pairs for log lines
func (r *Registry) Summary() string {
	var parts []string
	parts = r.counters.appendSorted(parts, func(k string, v *atomic.Int64) string {
		return fmt.Sprintf("%s=%d", k, v.Load())
	})
	parts = r.gauges.appendSorted(parts, func(k string, v *Gauge) string {
		return fmt.Sprintf("%s=%.1f", k, v.Get())
	})
	parts = r.labels.appendSorted(parts, func(k string, v *Label) string {
		return fmt.Sprintf("%s=%s", k, v.Load())
	})
	return strings.Join(parts, " ")
}
