// Package compute defines the contract between the terrain generator and the
// device that runs its two compute passes: resources with declared usages,
// a fixed binding table, pipelines, command recording with explicit memory
// barriers, and indirect draws sourced from device memory.
package compute

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrHazard is returned when a command would observe memory that no
	// barrier has made visible to it.
	ErrHazard = errors.New("synchronization hazard")
	// ErrUsage is returned when a resource is used in a way its usage flags do not allow.
	ErrUsage = errors.New("resource usage violation")
	// ErrUnknownKernel is returned for pipelines the device cannot execute.
	ErrUnknownKernel = errors.New("unknown kernel")
)

// Usage declares how a resource may be used.
type Usage uint16

const (
	UsageUniform Usage = 1 << iota
	UsageStorage
	UsageIndirect
	UsageVertex
	UsageSampled
	UsageTransferDst
)

// Has reports whether all flags of f are set in u.
func (u Usage) Has(f Usage) bool { return u&f == f }

// Access is a set of memory access types.
type Access uint16

const (
	AccessTransferWrite Access = 1 << iota
	AccessUniformRead
	AccessShaderRead
	AccessShaderWrite
	AccessIndirectRead
	AccessVertexRead
	AccessHostRead
)

// AccessShaderRW is shader read and write access.
const AccessShaderRW = AccessShaderRead | AccessShaderWrite

var accessNames = []string{"TransferWrite", "UniformRead", "ShaderRead", "ShaderWrite", "IndirectRead", "VertexRead", "HostRead"}

func (a Access) String() string { return flagString(uint16(a), accessNames) }

// Stage is a set of pipeline stages.
type Stage uint16

const (
	StageTop Stage = 1 << iota
	StageTransfer
	StageCompute
	StageDrawIndirect
	StageVertexInput
	StageHost
)

// StageAll covers every stage.
const StageAll = StageTop | StageTransfer | StageCompute | StageDrawIndirect | StageVertexInput | StageHost

var stageNames = []string{"Top", "Transfer", "Compute", "DrawIndirect", "VertexInput", "Host"}

func (s Stage) String() string { return flagString(uint16(s), stageNames) }

func flagString(v uint16, names []string) string {
	if v == 0 {
		return "None"
	}
	var parts []string
	for i, name := range names {
		if v&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Scope is a set of accesses performed in a set of stages.
type Scope struct {
	Access Access
	Stage  Stage
}

// Covers reports whether every access and stage of o is included in s.
func (s Scope) Covers(o Scope) bool {
	return s.Access&o.Access == o.Access && s.Stage&o.Stage == o.Stage
}

func (s Scope) String() string { return "{" + s.Access.String() + " @ " + s.Stage.String() + "}" }

// Common scopes.
var (
	ScopeComputeRead  = Scope{Access: AccessShaderRead, Stage: StageCompute}
	ScopeComputeWrite = Scope{Access: AccessShaderWrite, Stage: StageCompute}
	ScopeComputeRW    = Scope{Access: AccessShaderRW, Stage: StageCompute}
	ScopeIndirectRead = Scope{Access: AccessIndirectRead, Stage: StageDrawIndirect}
	ScopeVertexRead   = Scope{Access: AccessVertexRead, Stage: StageVertexInput}
	ScopeUniformRead  = Scope{Access: AccessUniformRead, Stage: StageCompute}
)

// Barrier orders all Src accesses to Resource before all Dst accesses and
// makes the Src writes visible to Dst.
type Barrier struct {
	Resource Resource
	Src, Dst Scope
}

// Resource is device memory.
type Resource interface {
	Name() string
	Usage() Usage
}

// Buffer is linear device memory of 32-bit words.
type Buffer interface {
	Resource
	Len() int
}

// Image is a 3D single channel float image.
type Image interface {
	Resource
	Extent() [3]int
}

// Pipeline is a compiled kernel.
type Pipeline interface {
	Kernel() Kernel
}

// Recorder accumulates commands for a single submission.
type Recorder interface {
	// WriteBuffer uploads words at the start of dst. The upload is
	// complete and visible to the visible scope before the next command.
	WriteBuffer(dst Buffer, words []uint32, visible Scope) error
	// WriteImage uploads every texel of dst, x varying fastest.
	WriteImage(dst Image, texels []float32, visible Scope) error
	Dispatch(p Pipeline, set *BindingSet, groups [3]uint32) error
	Barrier(bs ...Barrier) error
	// DrawIndirect draws the vertices of a triangle list with the argument
	// block read from args by the device.
	DrawIndirect(vertices, args Buffer) error
}

// Device creates resources and executes recorded commands.
type Device interface {
	NewBuffer(name string, words int, usage Usage) (Buffer, error)
	NewImage3D(name string, extent [3]int, usage Usage) (Image, error)
	NewPipeline(k Kernel) (Pipeline, error)
	Begin() Recorder
	// Submit executes r and waits for completion. Canceling ctx aborts
	// execution between work groups.
	Submit(ctx context.Context, r Recorder) error
	// ReadBuffer copies the start of b into dst once all submitted work completed.
	ReadBuffer(b Buffer, dst []uint32) error
	Close() error
}

// Groups returns the number of work groups needed to cover extent with
// groups of size local.
func Groups(extent [3]int, local [3]uint32) [3]uint32 {
	var g [3]uint32
	for i := range g {
		if extent[i] <= 0 {
			continue
		}
		g[i] = (uint32(extent[i]) + local[i] - 1) / local[i]
	}
	return g
}

// CheckUsage returns an ErrUsage wrapped error if r lacks usage u.
func CheckUsage(r Resource, u Usage) error {
	if !r.Usage().Has(u) {
		return fmt.Errorf("%w: %s lacks usage %#x", ErrUsage, r.Name(), u)
	}
	return nil
}
