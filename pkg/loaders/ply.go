package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format   string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version  string // Usually "1.0"
	Elements []PLYElement
}

// PLYElement is one element block ("vertex", "face", ...) in file order
type PLYElement struct {
	Name  string
	Count int
	Props []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// PLYData contains the triangle data loaded from a PLY file
type PLYData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // Triangle indices (3 per triangle); polygons are fan-triangulated
}

// LoadPLY loads a PLY file and returns its vertex and face data
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	return ParsePLY(file)
}

// ParsePLY reads an ASCII or binary PLY stream
func ParsePLY(r io.Reader) (*PLYData, error) {
	reader := bufio.NewReader(r)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyValueReader
	switch header.Format {
	case "ascii":
		scanner := bufio.NewScanner(reader)
		scanner.Split(bufio.ScanWords)
		values = &asciiValues{scanner: scanner}
	case "binary_little_endian":
		values = &binaryValues{reader: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryValues{reader: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	data := &PLYData{}
	for _, element := range header.Elements {
		if err := readPLYElement(values, element, data); err != nil {
			return nil, fmt.Errorf("failed to read PLY %s data: %w", element.Name, err)
		}
	}

	return data, nil
}

// parsePLYHeader consumes the header lines up to and including end_header
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	first := true

	for {
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return nil, fmt.Errorf("unexpected end of header: %w", err)
		}
		line = strings.TrimSpace(line)

		if first {
			if line != "ply" {
				return nil, fmt.Errorf("missing ply magic number")
			}
			first = false
			continue
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %q", line)
			}
			header.Format = parts[1]
			header.Version = parts[2]
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property before any element: %q", line)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			current := &header.Elements[len(header.Elements)-1]
			current.Props = append(current.Props, prop)
		default:
			return nil, fmt.Errorf("unknown header keyword %q", parts[0])
		}

		if err == io.EOF {
			return nil, fmt.Errorf("missing end_header")
		}
	}

	if header.Format == "" {
		return nil, fmt.Errorf("missing format line")
	}
	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		return PLYProperty{IsList: true, ListType: parts[1], DataType: parts[2], Name: parts[3]}, nil
	}

	return PLYProperty{Type: parts[0], Name: parts[1]}, nil
}

// readPLYElement reads every instance of element, keeping positions and face indices
func readPLYElement(values plyValueReader, element PLYElement, data *PLYData) error {
	for i := 0; i < element.Count; i++ {
		var position core.Vec3
		for _, prop := range element.Props {
			if prop.IsList {
				count, err := values.next(prop.ListType)
				if err != nil {
					return err
				}
				if count < 0 {
					return fmt.Errorf("negative list length %g", count)
				}
				indices := make([]int, int(count))
				for j := range indices {
					v, err := values.next(prop.DataType)
					if err != nil {
						return err
					}
					indices[j] = int(v)
				}
				if element.Name == "face" && (prop.Name == "vertex_indices" || prop.Name == "vertex_index") {
					if len(indices) < 3 {
						return fmt.Errorf("face %d has %d vertices", i, len(indices))
					}
					// Fan triangulation around the first vertex
					for j := 1; j+1 < len(indices); j++ {
						data.Faces = append(data.Faces, indices[0], indices[j], indices[j+1])
					}
				}
				continue
			}

			v, err := values.next(prop.Type)
			if err != nil {
				return err
			}
			if element.Name == "vertex" {
				switch prop.Name {
				case "x":
					position.X = v
				case "y":
					position.Y = v
				case "z":
					position.Z = v
				}
			}
		}
		if element.Name == "vertex" {
			data.Vertices = append(data.Vertices, position)
		}
	}
	return nil
}

// plyValueReader yields the next scalar of the given PLY type
type plyValueReader interface {
	next(dataType string) (float64, error)
}

type asciiValues struct {
	scanner *bufio.Scanner
}

func (a *asciiValues) next(dataType string) (float64, error) {
	if plyTypeSize(dataType) == 0 {
		return 0, fmt.Errorf("unsupported property type: %s", dataType)
	}
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(a.scanner.Text(), 64)
}

type binaryValues struct {
	reader io.Reader
	order  binary.ByteOrder
	buf    [8]byte
}

func (b *binaryValues) next(dataType string) (float64, error) {
	size := plyTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported property type: %s", dataType)
	}
	raw := b.buf[:size]
	if _, err := io.ReadFull(b.reader, raw); err != nil {
		return 0, err
	}

	switch dataType {
	case "char", "int8":
		return float64(int8(raw[0])), nil
	case "uchar", "uint8":
		return float64(raw[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(raw))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(raw)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(raw))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(raw)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(raw))), nil
	default: // double, float64
		return math.Float64frombits(b.order.Uint64(raw)), nil
	}
}

// plyTypeSize returns the byte size of a PLY scalar type, or 0 if unknown
func plyTypeSize(dataType string) int {
	switch dataType {
	case "char", "int8", "uchar", "uint8":
		return 1
	case "short", "int16", "ushort", "uint16":
		return 2
	case "int", "int32", "uint", "uint32", "float", "float32":
		return 4
	case "double", "float64":
		return 8
	}
	return 0
}
