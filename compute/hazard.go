package compute

import "fmt"

// Tracker checks a command stream for synchronization hazards as commands
// are recorded. Each resource remembers its last write and the scopes that
// write has been made visible to, plus the reads issued since then. A
// Tracker starts from the state at the beginning of a submission, where all
// earlier work is complete and visible.
type Tracker struct {
	state map[Resource]*resourceState
}

type resourceState struct {
	written bool
	writer  Scope
	visible Scope
	reads   Scope
}

// NewTracker returns a tracker with no outstanding accesses.
func NewTracker() *Tracker {
	return &Tracker{state: make(map[Resource]*resourceState)}
}

func (t *Tracker) get(r Resource) *resourceState {
	st := t.state[r]
	if st == nil {
		st = &resourceState{}
		t.state[r] = st
	}
	return st
}

func union(a, b Scope) Scope { return Scope{Access: a.Access | b.Access, Stage: a.Stage | b.Stage} }

// Upload records a host upload followed by an implicit barrier that makes
// it visible to the visible scope.
func (t *Tracker) Upload(r Resource, visible Scope) {
	st := t.get(r)
	*st = resourceState{
		written: true,
		writer:  Scope{Access: AccessTransferWrite, Stage: StageTransfer},
		visible: visible,
	}
}

// CheckRead validates a read of r in scope need.
func (t *Tracker) CheckRead(r Resource, need Scope) error {
	st := t.get(r)
	if st.written && !st.visible.Covers(need) {
		return fmt.Errorf("%w: read-after-write of %s: write %v visible only to %v, read needs %v",
			ErrHazard, r.Name(), st.writer, st.visible, need)
	}
	return nil
}

// CheckWrite validates a write of r in scope w.
func (t *Tracker) CheckWrite(r Resource, w Scope) error {
	st := t.get(r)
	if st.written && !st.visible.Covers(w) {
		return fmt.Errorf("%w: write-after-write of %s: previous write %v visible only to %v",
			ErrHazard, r.Name(), st.writer, st.visible)
	}
	if st.reads.Stage != 0 {
		return fmt.Errorf("%w: write-after-read of %s: reads %v not ordered before write %v",
			ErrHazard, r.Name(), st.reads, w)
	}
	return nil
}

// Read records a read of r. Call after CheckRead succeeded.
func (t *Tracker) Read(r Resource, s Scope) {
	st := t.get(r)
	st.reads = union(st.reads, s)
}

// Write records a write of r. Call after CheckWrite succeeded.
func (t *Tracker) Write(r Resource, s Scope) {
	st := t.get(r)
	*st = resourceState{written: true, writer: s}
}

// Barrier applies b. Reads in stages covered by b.Src are ordered before
// later work. The last write becomes visible to b.Dst if b.Src covers it,
// either directly or by chaining through an earlier barrier whose
// destination stages b.Src includes.
func (t *Tracker) Barrier(b Barrier) {
	st := t.get(b.Resource)
	if st.reads.Stage != 0 && b.Src.Stage&st.reads.Stage == st.reads.Stage {
		st.reads = Scope{}
	}
	if st.written && (b.Src.Covers(st.writer) || b.Src.Stage&st.visible.Stage != 0) {
		st.visible = union(st.visible, b.Dst)
	}
}

// Dispatch validates and records a dispatch of k over set.
func (t *Tracker) Dispatch(k Kernel, set *BindingSet) error {
	bs := set.Bindings()
	for _, b := range bs {
		var err error
		if k.WritesSlot(b.Slot) {
			err = t.CheckWrite(b.Resource, ScopeComputeWrite)
		} else {
			need := ScopeComputeRead
			if b.Slot == SlotGlobals {
				need = ScopeUniformRead
			}
			err = t.CheckRead(b.Resource, need)
		}
		if err != nil {
			return fmt.Errorf("%s kernel slot %d: %w", k.Name, b.Slot, err)
		}
	}
	for _, b := range bs {
		if k.WritesSlot(b.Slot) {
			t.Write(b.Resource, ScopeComputeWrite)
		} else if b.Slot == SlotGlobals {
			t.Read(b.Resource, ScopeUniformRead)
		} else {
			t.Read(b.Resource, ScopeComputeRead)
		}
	}
	return nil
}

// Draw validates and records an indirect draw.
func (t *Tracker) Draw(vertices, args Buffer) error {
	if err := t.CheckRead(args, ScopeIndirectRead); err != nil {
		return fmt.Errorf("draw arguments: %w", err)
	}
	if err := t.CheckRead(vertices, ScopeVertexRead); err != nil {
		return fmt.Errorf("draw vertices: %w", err)
	}
	t.Read(args, ScopeIndirectRead)
	t.Read(vertices, ScopeVertexRead)
	return nil
}
