package resolve

import (
	"archive/zip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
)

const classMagic = 0xCAFEBABE

type AccessFlags uint16

const (
	AccPublic     AccessFlags = 0x0001
	AccFinal      AccessFlags = 0x0010
	AccInterface  AccessFlags = 0x0200
	AccAbstract   AccessFlags = 0x0400
	AccAnnotation AccessFlags = 0x2000
	AccEnum       AccessFlags = 0x4000
)

func (f AccessFlags) IsPublic() bool     { return f&AccPublic != 0 }
func (f AccessFlags) IsFinal() bool      { return f&AccFinal != 0 }
func (f AccessFlags) IsInterface() bool  { return f&AccInterface != 0 }
func (f AccessFlags) IsAbstract() bool   { return f&AccAbstract != 0 }
func (f AccessFlags) IsAnnotation() bool { return f&AccAnnotation != 0 }
func (f AccessFlags) IsEnum() bool       { return f&AccEnum != 0 }

// ClassHeader is the part of a class file that names the class and its
// supertypes. Names use dots as package separators.
type ClassHeader struct {
	MajorVersion uint16
	MinorVersion uint16
	Access       AccessFlags
	Name         string
	Super        string
	Interfaces   []string
}

// KindName is the Java keyword for the kind of type the header declares.
func (h *ClassHeader) KindName() string {
	switch {
	case h.Access.IsAnnotation():
		return "@interface"
	case h.Access.IsInterface():
		return "interface"
	case h.Access.IsEnum():
		return "enum"
	}
	return "class"
}

type classReader struct {
	r   io.Reader
	err error
}

func (r *classReader) u1() uint8 {
	if r.err != nil {
		return 0
	}
	var buf [1]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return buf[0]
}

func (r *classReader) u2() uint16 {
	if r.err != nil {
		return 0
	}
	var buf [2]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint16(buf[:])
}

func (r *classReader) u4() uint32 {
	if r.err != nil {
		return 0
	}
	var buf [4]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

func (r *classReader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	_, r.err = io.ReadFull(r.r, buf)
	return buf
}

func (r *classReader) skip(n int) {
	if r.err != nil {
		return
	}
	_, r.err = io.CopyN(io.Discard, r.r, int64(n))
}

// constantSizes holds the payload size of every fixed-size constant pool
// entry.
var constantSizes = map[uint8]int{
	3:  4, // Integer
	4:  4, // Float
	5:  8, // Long
	6:  8, // Double
	8:  2, // String
	9:  4, // Fieldref
	10: 4, // Methodref
	11: 4, // InterfaceMethodref
	12: 4, // NameAndType
	15: 3, // MethodHandle
	16: 2, // MethodType
	17: 4, // Dynamic
	18: 4, // InvokeDynamic
	19: 2, // Module
	20: 2, // Package
}

const (
	constantUtf8  = 1
	constantClass = 7
)

// ReadClassHeader reads a class file up to and including its interface
// list. Only the UTF-8 and class constants are kept.
func ReadClassHeader(rd io.Reader) (*ClassHeader, error) {
	r := &classReader{r: rd}
	if magic := r.u4(); r.err != nil {
		return nil, fmt.Errorf("reading magic: %w", r.err)
	} else if magic != classMagic {
		return nil, fmt.Errorf("invalid magic number: 0x%X", magic)
	}

	h := &ClassHeader{MinorVersion: r.u2(), MajorVersion: r.u2()}

	count := r.u2()
	utf8 := make(map[uint16]string)
	classes := make(map[uint16]uint16)
	for i := uint16(1); i < count && r.err == nil; i++ {
		tag := r.u1()
		switch tag {
		case constantUtf8:
			utf8[i] = string(r.bytes(int(r.u2())))
		case constantClass:
			classes[i] = r.u2()
		default:
			size, ok := constantSizes[tag]
			if !ok {
				return nil, fmt.Errorf("constant pool entry %d: unknown tag %d", i, tag)
			}
			r.skip(size)
			if tag == 5 || tag == 6 {
				i++
			}
		}
	}
	if r.err != nil {
		return nil, fmt.Errorf("reading constant pool: %w", r.err)
	}

	className := func(index uint16) string {
		if index == 0 {
			return ""
		}
		return strings.ReplaceAll(utf8[classes[index]], "/", ".")
	}

	h.Access = AccessFlags(r.u2())
	h.Name = className(r.u2())
	h.Super = className(r.u2())
	n := r.u2()
	for i := uint16(0); i < n; i++ {
		h.Interfaces = append(h.Interfaces, className(r.u2()))
	}
	if r.err != nil {
		return nil, fmt.Errorf("reading class info: %w", r.err)
	}
	if h.Name == "" {
		return nil, fmt.Errorf("class name is not a class constant")
	}
	return h, nil
}

// Describe reads the class header of a type found on the search path.
func (sp *SearchPath) Describe(loc Location) (*ClassHeader, error) {
	if loc.Kind != ClassFile {
		return nil, fmt.Errorf("%s: not a class file", loc)
	}
	rc, err := open(loc)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	h, err := ReadClassHeader(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loc, err)
	}
	return h, nil
}

type zipEntryReader struct {
	io.ReadCloser
	archive *zip.ReadCloser
}

func (z *zipEntryReader) Close() error {
	err := z.ReadCloser.Close()
	if cerr := z.archive.Close(); err == nil {
		err = cerr
	}
	return err
}

func open(loc Location) (io.ReadCloser, error) {
	if loc.Entry == "" {
		return os.Open(loc.Path)
	}
	archive, err := zip.OpenReader(loc.Path)
	if err != nil {
		return nil, err
	}
	rc, err := archive.Open(loc.Entry)
	if err != nil {
		archive.Close()
		return nil, err
	}
	return &zipEntryReader{ReadCloser: rc, archive: archive}, nil
}
