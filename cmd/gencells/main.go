// Command gencells writes the cell class tables of package celltable.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"os"

	"github.com/soypat/isoterrain/internal/cellgen"
	"github.com/soypat/isoterrain/internal/logger"
	"go.uber.org/zap"
)

func main() {
	output := flag.String("o", "tables.go", "output file")
	flag.Parse()
	logger.Init(logger.Config{Level: "info", Console: true})
	defer logger.Sync()
	log := logger.Log.Named("gencells")

	tables := cellgen.Derive()
	var buf bytes.Buffer
	if err := cellgen.WriteGo(&buf, tables); err != nil {
		log.Fatal("writing tables", zap.Error(err))
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal("formatting tables", zap.Error(err))
	}
	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatal("saving tables", zap.Error(err))
	}
	maxTris := 0
	for _, c := range tables.Classes {
		if c.Triangles > maxTris {
			maxTris = c.Triangles
		}
	}
	log.Info("wrote cell tables",
		zap.String("file", *output),
		zap.Int("classes", len(tables.Classes)),
		zap.Int("maxTriangles", maxTris),
	)
}
