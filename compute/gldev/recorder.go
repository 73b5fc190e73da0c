package gldev

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/soypat/isoterrain/compute"
)

type command struct {
	name string
	run  func() error
}

// Recorder records GL commands. Validation happens at record time with the
// same rules as the host device.
type Recorder struct {
	dev       *Device
	tracker   *compute.Tracker
	cmds      []command
	err       error
	submitted bool
}

var _ compute.Recorder = (*Recorder)(nil)

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
	buf, err := glBuffer(dst)
	if err != nil {
		return r.fail(err)
	}
	if err := compute.CheckUsage(dst, compute.UsageTransferDst); err != nil {
		return r.fail(err)
	}
	if len(words) > buf.words {
		return r.fail(fmt.Errorf("upload of %d words to %d word buffer %s", len(words), buf.words, buf.name))
	}
	if len(words) == 0 {
		return nil
	}
	data := append([]uint32(nil), words...)
	r.tracker.Upload(dst, visible)
	r.cmds = append(r.cmds, command{name: "write " + buf.name, run: func() error {
		gl.BindBuffer(gl.COPY_WRITE_BUFFER, buf.id)
		gl.BufferSubData(gl.COPY_WRITE_BUFFER, 0, 4*len(data), gl.Ptr(&data[0]))
		gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)
		gl.MemoryBarrier(barrierBits(dst, visible))
		return nil
	}})
	return nil
}

func (r *Recorder) WriteImage(dst compute.Image, texels []float32, visible compute.Scope) error {
	img, err := glImage(dst)
	if err != nil {
		return r.fail(err)
	}
	if err := compute.CheckUsage(dst, compute.UsageTransferDst); err != nil {
		return r.fail(err)
	}
	e := img.extent
	if len(texels) != e[0]*e[1]*e[2] {
		return r.fail(fmt.Errorf("upload of %d texels to image %s of extent %v", len(texels), img.name, e))
	}
	data := append([]float32(nil), texels...)
	r.tracker.Upload(dst, visible)
	r.cmds = append(r.cmds, command{name: "write " + img.name, run: func() error {
		gl.BindTexture(gl.TEXTURE_3D, img.id)
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
		gl.TexSubImage3D(gl.TEXTURE_3D, 0, 0, 0, 0, int32(e[0]), int32(e[1]), int32(e[2]), gl.RED, gl.FLOAT, gl.Ptr(&data[0]))
		gl.BindTexture(gl.TEXTURE_3D, 0)
		gl.MemoryBarrier(barrierBits(dst, visible))
		return nil
	}})
	return nil
}

func (r *Recorder) Dispatch(p compute.Pipeline, set *compute.BindingSet, groups [3]uint32) error {
	pl, ok := p.(*pipeline)
	if !ok {
		return r.fail(fmt.Errorf("pipeline of type %T not created by GL device", p))
	}
	if set == nil {
		return r.fail(errors.New("nil binding set"))
	}
	k := pl.kernel
	if err := r.tracker.Dispatch(k, set); err != nil {
		return r.fail(err)
	}
	binds, err := bindCommands(set)
	if err != nil {
		return r.fail(err)
	}
	r.cmds = append(r.cmds, command{name: "dispatch " + k.Name, run: func() error {
		pl.prog.Bind()
		for _, bind := range binds {
			bind()
		}
		gl.DispatchCompute(groups[0], groups[1], groups[2])
		return nil
	}})
	return nil
}

// bindCommands maps every binding to the GL call attaching it.
func bindCommands(set *compute.BindingSet) ([]func(), error) {
	var binds []func()
	for _, b := range set.Bindings() {
		slot, index := uint32(b.Slot), uint32(b.Index)
		switch res := b.Resource.(type) {
		case *buffer:
			target := uint32(gl.SHADER_STORAGE_BUFFER)
			if b.Slot == compute.SlotGlobals {
				target = gl.UNIFORM_BUFFER
			}
			id := res.id
			binds = append(binds, func() { gl.BindBufferBase(target, slot, id) })
		case *image:
			id := res.id
			if b.Slot == compute.SlotNoise {
				binds = append(binds, func() {
					gl.ActiveTexture(gl.TEXTURE0 + index)
					gl.BindTexture(gl.TEXTURE_3D, id)
				})
			} else {
				binds = append(binds, func() { gl.BindImageTexture(slot, id, 0, true, 0, gl.READ_WRITE, gl.R32F) })
			}
		default:
			return nil, fmt.Errorf("slot %d: resource %s not created by GL device", b.Slot, b.Resource.Name())
		}
	}
	return binds, nil
}

// barrierBits returns the glMemoryBarrier bits making writes to res
// visible to the accesses of dst.
func barrierBits(res compute.Resource, dst compute.Scope) uint32 {
	_, isImage := res.(*image)
	var bits uint32
	a := dst.Access
	if a&(compute.AccessShaderRead|compute.AccessShaderWrite) != 0 {
		switch {
		case !isImage:
			bits |= gl.SHADER_STORAGE_BARRIER_BIT
		case res.Usage().Has(compute.UsageSampled):
			bits |= gl.TEXTURE_FETCH_BARRIER_BIT
		default:
			bits |= gl.SHADER_IMAGE_ACCESS_BARRIER_BIT
		}
	}
	if a&compute.AccessUniformRead != 0 {
		bits |= gl.UNIFORM_BARRIER_BIT
	}
	if a&compute.AccessIndirectRead != 0 {
		bits |= gl.COMMAND_BARRIER_BIT
	}
	if a&compute.AccessVertexRead != 0 {
		bits |= gl.SHADER_STORAGE_BARRIER_BIT
	}
	if a&compute.AccessHostRead != 0 {
		bits |= gl.BUFFER_UPDATE_BARRIER_BIT
	}
	if a&compute.AccessTransferWrite != 0 {
		bits |= gl.BUFFER_UPDATE_BARRIER_BIT | gl.TEXTURE_UPDATE_BARRIER_BIT
	}
	return bits
}

func (r *Recorder) Barrier(bs ...compute.Barrier) error {
	var bits uint32
	for _, b := range bs {
		if b.Resource == nil {
			return r.fail(errors.New("barrier on nil resource"))
		}
		r.tracker.Barrier(b)
		if b.Src.Access&(compute.AccessShaderWrite|compute.AccessTransferWrite) != 0 {
			bits |= barrierBits(b.Resource, b.Dst)
		}
	}
	if bits == 0 {
		// Read to write ordering is implicit in GL command order.
		return nil
	}
	r.cmds = append(r.cmds, command{name: "barrier", run: func() error {
		gl.MemoryBarrier(bits)
		return nil
	}})
	return nil
}

func (r *Recorder) DrawIndirect(vertices, args compute.Buffer) error {
	vbuf, err := glBuffer(vertices)
	if err != nil {
		return r.fail(err)
	}
	abuf, err := glBuffer(args)
	if err != nil {
		return r.fail(err)
	}
	if err := compute.CheckUsage(vertices, compute.UsageVertex); err != nil {
		return r.fail(err)
	}
	if err := compute.CheckUsage(args, compute.UsageIndirect); err != nil {
		return r.fail(err)
	}
	if r.dev.drawSetup == nil {
		return r.fail(errors.New("indirect draw without a draw setup"))
	}
	if err := r.tracker.Draw(vertices, args); err != nil {
		return r.fail(err)
	}
	setup := r.dev.drawSetup
	r.cmds = append(r.cmds, command{name: "draw " + vbuf.name, run: func() error {
		if err := setup(); err != nil {
			return fmt.Errorf("draw setup: %w", err)
		}
		gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, compute.SlotTriangles, vbuf.id)
		gl.BindBuffer(gl.DRAW_INDIRECT_BUFFER, abuf.id)
		gl.DrawArraysIndirect(gl.TRIANGLES, gl.PtrOffset(0))
		gl.BindBuffer(gl.DRAW_INDIRECT_BUFFER, 0)
		return nil
	}})
	return nil
}
