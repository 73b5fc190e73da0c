package cellgen

import (
	"bufio"
	"fmt"
	"io"
)

// WriteGo writes t as the Go source of package celltable's tables file.
func WriteGo(w io.Writer, t Tables) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "// Code generated by gencells. DO NOT EDIT.\n\npackage celltable\n\n")

	fmt.Fprint(bw, "var cellClassTable = [256]uint8{\n")
	for row := 0; row < 16; row++ {
		bw.WriteByte('\t')
		for k := 0; k < 16; k++ {
			if k > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "0x%02X,", t.ClassOf[row*16+k])
		}
		bw.WriteByte('\n')
	}
	fmt.Fprint(bw, "}\n\n")

	fmt.Fprint(bw, "var cellDataTable = [...]CellData{\n")
	for _, c := range t.Classes {
		fmt.Fprintf(bw, "\t{geometryCounts: 0x%X%X, vertexIndex: [15]uint8{", c.Vertices, c.Triangles)
		for i, idx := range c.Indices {
			if i > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "%d", idx)
		}
		bw.WriteString("}},\n")
	}
	fmt.Fprint(bw, "}\n\n")

	fmt.Fprint(bw, "var edgeVertexTable = [256][12]uint8{\n")
	for _, codes := range t.Edges {
		bw.WriteString("\t{")
		for i, code := range codes {
			if i > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "0x%02X", code)
		}
		bw.WriteString("},\n")
	}
	fmt.Fprint(bw, "}\n")
	return bw.Flush()
}
