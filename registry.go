package datepicker

import (
	"fmt"
	"sort"
	"sync"
)

// ElementID identifies the host element a picker is attached to.
type ElementID string

// Registry keeps at most one controller per element. The host owns it; the
// controllers themselves stay single owner.
type Registry struct {
	mu        sync.RWMutex
	instances map[ElementID]*Controller
}

func NewRegistry() *Registry {
	return &Registry{instances: make(map[ElementID]*Controller)}
}

// Attach returns the controller already bound to id, or creates one. The
// second result is true when a new controller was created.
func (r *Registry) Attach(id ElementID, cfg *Config, opts ...ControllerOption) (*Controller, bool, error) {
	r.mu.RLock()
	existing, ok := r.instances[id]
	r.mu.RUnlock()
	if ok {
		return existing, false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.instances[id]; ok {
		return existing, false, nil
	}

	ctrl, err := New(cfg, opts...)
	if err != nil {
		return nil, false, err
	}
	if r.instances == nil {
		r.instances = make(map[ElementID]*Controller)
	}
	r.instances[id] = ctrl
	return ctrl, true, nil
}

// Get returns the controller bound to id.
func (r *Registry) Get(id ElementID) (*Controller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctrl, ok := r.instances[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstance, id)
	}
	return ctrl, nil
}

// Detach forgets id and reports whether it was attached.
func (r *Registry) Detach(id ElementID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.instances[id]
	delete(r.instances, id)
	return ok
}

// IDs lists attached elements in sorted order.
func (r *Registry) IDs() []ElementID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]ElementID, 0, len(r.instances))
	for id := range r.instances {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ReplaceConfig applies cfg to every attached controller and returns the
// outcome per element.
func (r *Registry) ReplaceConfig(cfg *Config) map[ElementID]Outcome {
	outcomes := make(map[ElementID]Outcome)
	for _, id := range r.IDs() {
		ctrl, err := r.Get(id)
		if err != nil {
			continue
		}
		outcomes[id] = ctrl.ReplaceConfig(cfg)
	}
	return outcomes
}

// DismissOthers hides every open picker except keep, so only one popup is
// shown at a time.
func (r *Registry) DismissOthers(keep ElementID) {
	for _, id := range r.IDs() {
		if id == keep {
			continue
		}
		ctrl, err := r.Get(id)
		if err != nil || !ctrl.IsOpen() {
			continue
		}
		ctrl.Hide()
	}
}
