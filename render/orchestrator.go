package render

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	layers   []layerEntry
	regCount int
}

// NewRenderOrchestrator creates an empty orchestrator
func NewRenderOrchestrator() *RenderOrchestrator {
	return &RenderOrchestrator{
		layers: make([]layerEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers every layer of the game's three screens
func NewDefaultOrchestrator() *RenderOrchestrator {
	o := NewRenderOrchestrator()
	o.Register(MenuLayer{}, PriorityUI)
	o.Register(ScoreLayer{}, PriorityBackground)
	o.Register(DividerLayer{}, PriorityField)
	o.Register(PaddleLayer{}, PriorityEntities)
	o.Register(BallLayer{}, PriorityEntities)
	o.Register(WinnerLayer{}, PriorityUI)
	return o
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// RenderFrame clears the surface and runs all visible layers in priority order
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext, s Surface) {
	s.Clear()
	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.layer.Render(ctx, s)
	}
}
