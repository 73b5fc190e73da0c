package cellgen

import (
	"bytes"
	"strings"
	"testing"
)

func TestDeriveShape(t *testing.T) {
	tbl := Derive()
	if len(tbl.Classes) > 16 {
		t.Fatalf("%d classes do not fit a 4 bit class index", len(tbl.Classes))
	}
	if tbl.ClassOf[0] != 0 || tbl.ClassOf[255] != 0 || tbl.Classes[0].Triangles != 0 {
		t.Error("empty configurations must map to the empty class 0")
	}
	for c, codes := range tbl.Edges {
		class := tbl.Classes[tbl.ClassOf[c]]
		if len(codes) != class.Vertices {
			t.Errorf("config %#x: %d edge codes for %d vertices", c, len(codes), class.Vertices)
		}
		if class.Triangles > 5 || class.Vertices > 12 {
			t.Errorf("config %#x: class too large %+v", c, class)
		}
	}
}

func TestFanTrianglesNonDegenerate(t *testing.T) {
	for c := 0; c < 256; c++ {
		for _, cyc := range contours(uint8(c)) {
			if len(cyc) < 3 {
				t.Fatalf("config %#x: contour of %d edges", c, len(cyc))
			}
			if s := fanScore(uint8(c), cyc); s <= 0 {
				t.Errorf("config %#x: fan score %d", c, s)
			}
		}
	}
}

func TestEdgesSorted(t *testing.T) {
	for i := 1; i < len(cubeEdges); i++ {
		a, b := cubeEdges[i-1], cubeEdges[i]
		if a[0] > b[0] || (a[0] == b[0] && a[1] >= b[1]) {
			t.Errorf("edges %v %v out of order", a, b)
		}
		if d := b[0] ^ b[1]; d != 1 && d != 2 && d != 4 {
			t.Errorf("edge %v joins non adjacent corners", b)
		}
	}
}

func TestWriteGo(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGo(&buf, Derive()); err != nil {
		t.Fatal(err)
	}
	src := buf.String()
	for _, want := range []string{
		"// Code generated by gencells. DO NOT EDIT.",
		"package celltable",
		"var cellClassTable = [256]uint8{",
		"{geometryCounts: 0x31, vertexIndex: [15]uint8{0, 1, 2}},",
		"var edgeVertexTable = [256][12]uint8{\n\t{},\n\t{0x10, 0x20, 0x40},",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}
