package cpudev

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/soypat/isoterrain/compute"
	"go.uber.org/zap"
)

type command struct {
	name string
	run  func(ctx context.Context) error
}

// Recorder records commands for a host device. The first command that fails
// validation poisons the recorder and is reported again by Submit.
type Recorder struct {
	dev       *Device
	tracker   *compute.Tracker
	cmds      []command
	err       error
	submitted bool
}

var _ compute.Recorder = (*Recorder)(nil)

// Begin starts a new command recording.
func (d *Device) Begin() compute.Recorder {
	return &Recorder{dev: d, tracker: compute.NewTracker()}
}

func (r *Recorder) fail(err error) error {
	if r.err == nil {
		r.err = err
	}
	return err
}

func (r *Recorder) WriteBuffer(dst compute.Buffer, words []uint32, visible compute.Scope) error {
	buf, err := r.dev.hostBuffer(dst)
	if err != nil {
		return r.fail(err)
	}
	if err := compute.CheckUsage(dst, compute.UsageTransferDst); err != nil {
		return r.fail(err)
	}
	if len(words) > len(buf.words) {
		return r.fail(fmt.Errorf("upload of %d words to %d word buffer %s", len(words), len(buf.words), buf.name))
	}
	data := append([]uint32(nil), words...)
	r.tracker.Upload(dst, visible)
	r.cmds = append(r.cmds, command{name: "write " + buf.name, run: func(context.Context) error {
		copy(buf.words, data)
		return nil
	}})
	return nil
}

func (r *Recorder) WriteImage(dst compute.Image, texels []float32, visible compute.Scope) error {
	img, err := r.dev.hostImage(dst)
	if err != nil {
		return r.fail(err)
	}
	if err := compute.CheckUsage(dst, compute.UsageTransferDst); err != nil {
		return r.fail(err)
	}
	if len(texels) != len(img.texels) {
		return r.fail(fmt.Errorf("upload of %d texels to image %s of extent %v", len(texels), img.name, img.extent))
	}
	data := append([]float32(nil), texels...)
	r.tracker.Upload(dst, visible)
	r.cmds = append(r.cmds, command{name: "write " + img.name, run: func(context.Context) error {
		copy(img.texels, data)
		return nil
	}})
	return nil
}

func (r *Recorder) Dispatch(p compute.Pipeline, set *compute.BindingSet, groups [3]uint32) error {
	pl, ok := p.(*pipeline)
	if !ok {
		return r.fail(fmt.Errorf("pipeline of type %T not created by host device", p))
	}
	if set == nil {
		return r.fail(errors.New("nil binding set"))
	}
	k := pl.kernel
	for _, slot := range k.Writes {
		if _, ok := set.Lookup(slot, 0); !ok {
			return r.fail(fmt.Errorf("%s kernel: written slot %d not bound", k.Name, slot))
		}
	}
	if err := r.tracker.Dispatch(k, set); err != nil {
		return r.fail(err)
	}
	bound := &Bound{dev: r.dev, set: set}
	r.cmds = append(r.cmds, command{name: "dispatch " + k.Name, run: func(ctx context.Context) error {
		inv, err := pl.fn(bound)
		if err != nil {
			return fmt.Errorf("%s kernel: %w", k.Name, err)
		}
		return r.dev.runGroups(ctx, inv, groups, k.Local)
	}})
	return nil
}

func (r *Recorder) Barrier(bs ...compute.Barrier) error {
	for _, b := range bs {
		if b.Resource == nil {
			return r.fail(errors.New("barrier on nil resource"))
		}
		r.tracker.Barrier(b)
	}
	return nil
}

func (r *Recorder) DrawIndirect(vertices, args compute.Buffer) error {
	vbuf, err := r.dev.hostBuffer(vertices)
	if err != nil {
		return r.fail(err)
	}
	abuf, err := r.dev.hostBuffer(args)
	if err != nil {
		return r.fail(err)
	}
	if err := compute.CheckUsage(vertices, compute.UsageVertex); err != nil {
		return r.fail(err)
	}
	if err := compute.CheckUsage(args, compute.UsageIndirect); err != nil {
		return r.fail(err)
	}
	if len(abuf.words) < 4 {
		return r.fail(fmt.Errorf("argument buffer %s too short for a draw", abuf.name))
	}
	if err := r.tracker.Draw(vertices, args); err != nil {
		return r.fail(err)
	}
	r.cmds = append(r.cmds, command{name: "draw " + vbuf.name, run: func(context.Context) error {
		count := atomic.LoadUint32(&abuf.words[0])
		instances := atomic.LoadUint32(&abuf.words[1])
		if limit := uint32(len(vbuf.words) / 4); count > limit {
			return fmt.Errorf("draw of %d vertices from %d vertex buffer %s", count, limit, vbuf.name)
		}
		if r.dev.draw != nil {
			r.dev.draw(vbuf.words[:4*count], count, instances)
		}
		return nil
	}})
	return nil
}

// Submit executes the commands of rec in order and returns once they
// completed. A recorder can be submitted once.
func (d *Device) Submit(ctx context.Context, rec compute.Recorder) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	r, ok := rec.(*Recorder)
	if !ok || r.dev != d {
		return fmt.Errorf("recorder of type %T not begun on this device", rec)
	}
	if r.err != nil {
		return fmt.Errorf("submit of invalid recording: %w", r.err)
	}
	if r.submitted {
		return errors.New("recorder already submitted")
	}
	r.submitted = true
	for _, cmd := range r.cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		if err := cmd.run(ctx); err != nil {
			return err
		}
		d.log.Debug("command done", zap.String("cmd", cmd.name), zap.Duration("elapsed", time.Since(start)))
	}
	return nil
}
