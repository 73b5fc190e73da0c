package meshio

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera of a preview. The mesh is fitted to a
// bi-unit cube centered at the origin before rendering.
type View struct {
	// Eye is the camera position.
	Eye r3.Vec
	// LookAt is the point at the center of the image.
	LookAt r3.Vec
	Up     r3.Vec
	Near   float64
	Far    float64
	Width  int
	Height int
	// Supersample renders at this multiple of the output size before
	// downsampling. Values below 1 are treated as 1.
	Supersample int
}

// DefaultView returns a size×size view looking down at the terrain from
// above one corner.
func DefaultView(size int) View {
	return View{
		Eye:         r3.Vec{X: 2.2, Y: 2, Z: 2.2},
		Up:          r3.Vec{Y: 1},
		Near:        1,
		Far:         10,
		Width:       size,
		Height:      size,
		Supersample: 2,
	}
}

var (
	backgroundColor = fauxgl.HexColor("#FFF8E3")
	terrainColor    = fauxgl.HexColor("#468966")
)

func fv(v r3.Vec) fauxgl.Vector { return fauxgl.V(v.X, v.Y, v.Z) }

func fv32(v ms3.Vec) fauxgl.Vector {
	return fauxgl.V(float64(v.X), float64(v.Y), float64(v.Z))
}

// Preview renders tris with a phong shader. Degenerate triangles are skipped.
func Preview(tris []ms3.Triangle, view View) (image.Image, error) {
	ftris := make([]*fauxgl.Triangle, 0, len(tris))
	for _, t := range tris {
		if unitNormal(t) == (ms3.Vec{}) {
			continue
		}
		ftris = append(ftris, fauxgl.NewTriangleForPoints(fv32(t[0]), fv32(t[1]), fv32(t[2])))
	}
	if len(ftris) == 0 {
		return nil, errors.New("no triangles to render")
	}
	return render(fauxgl.NewTriangleMesh(ftris), view)
}

// RenderPNG renders the STL file at stlPath to a PNG file at pngPath.
func RenderPNG(stlPath, pngPath string, view View) error {
	mesh, err := fauxgl.LoadSTL(stlPath)
	if err != nil {
		return err
	}
	img, err := render(mesh, view)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(pngPath, img)
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	return fauxgl.SavePNG(path, img)
}

func render(mesh *fauxgl.Mesh, view View) (image.Image, error) {
	if view.Width <= 0 || view.Height <= 0 {
		return nil, errors.New("invalid preview size")
	}
	const fovy = 30 // vertical field of view in degrees
	scale := max(view.Supersample, 1)
	var (
		eye    = fv(view.Eye)
		center = fv(view.LookAt)
		up     = fv(view.Up)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	mesh.BiUnitCube()
	mesh.SmoothNormalsThreshold(fauxgl.Radians(30))

	ctx := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	ctx.ClearColorBufferWith(backgroundColor)
	ctx.Cull = fauxgl.CullNone
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = terrainColor
	ctx.Shader = shader
	ctx.DrawMesh(mesh)

	img := ctx.Image()
	if scale > 1 {
		img = resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear)
	}
	return img, nil
}
