package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/boxgen/pkg/geometry"
)

// ParseFile reads an STL file and returns a Mesh.
// Both ASCII and binary formats are detected automatically.
func ParseFile(filename string) (*Mesh, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL file: %w", err)
	}
	return Parse(data)
}

// Parse decodes STL data in either ASCII or binary format
func Parse(data []byte) (*Mesh, error) {
	// ASCII files start with "solid"; binary files with a real triangle
	// payload never parse as ASCII, so a binary file whose 80-byte header
	// happens to start with "solid" is caught by the facet count below.
	if bytes.HasPrefix(data, []byte("solid")) {
		mesh, err := parseASCII(bytes.NewReader(data))
		if err == nil && mesh.TriangleCount() > 0 {
			return mesh, nil
		}
	}
	return parseBinary(bytes.NewReader(data))
}

func parseASCII(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	mesh := NewMesh("")

	var normal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				normal = parseVector(fields[2], fields[3], fields[4])
			}

		case "vertex":
			if len(fields) >= 4 {
				vertices = append(vertices, parseVector(fields[1], fields[2], fields[3]))
			}

		case "endfacet":
			if len(vertices) == 3 {
				mesh.AddTriangle(geometry.NewTriangle(normal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return mesh, nil
}

// binaryFacet matches the 50-byte on-disk triangle record
type binaryFacet struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

func parseBinary(reader io.Reader) (*Mesh, error) {
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read binary STL header: %w", err)
	}

	mesh := NewMesh(string(bytes.TrimRight(header, "\x00 ")))

	var count uint32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < count; i++ {
		var facet binaryFacet
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		mesh.AddTriangle(geometry.NewTriangle(
			toVector(facet.Normal),
			toVector(facet.V1),
			toVector(facet.V2),
			toVector(facet.V3),
		))
	}

	return mesh, nil
}

func parseVector(x, y, z string) geometry.Vector3 {
	fx, _ := strconv.ParseFloat(x, 64)
	fy, _ := strconv.ParseFloat(y, 64)
	fz, _ := strconv.ParseFloat(z, 64)
	return geometry.NewVector3(fx, fy, fz)
}

func toVector(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
