package pkg

import (
	"bytes"
	"os"
	"path/filepath"
)

type CompressOptions struct {
	Format Format
	// Wrap breaks the text bit block every Wrap characters, 0 keeps it on
	// one line. Ignored by the packed format.
	Wrap int
}

type Stats struct {
	Format         Format
	Symbols        int
	RawSize        int64
	EncodedBits    int
	CompressedSize int64
}

// Ratio is compressed size over raw size.
func (s *Stats) Ratio() float64 {
	if s.RawSize == 0 {
		return 0
	}
	return float64(s.CompressedSize) / float64(s.RawSize)
}

// CompressBytes runs the whole compression pipeline over data.
func CompressBytes(data []byte, opts CompressOptions) ([]byte, *Stats, error) {
	if len(data) == 0 {
		return nil, nil, ErrEmptyInput
	}

	table := CountFrequencies(data)
	root, err := BuildTree(table)
	if err != nil {
		return nil, nil, err
	}
	bits := Encode(data, GenerateCodes(root))

	var out bytes.Buffer
	switch opts.Format {
	case FormatPacked:
		err = WritePacked(&out, table, bits)
	default:
		err = WriteText(&out, table, bits, opts.Wrap)
	}
	if err != nil {
		return nil, nil, err
	}

	return out.Bytes(), &Stats{
		Format:         opts.Format,
		Symbols:        table.Len(),
		RawSize:        int64(len(data)),
		EncodedBits:    len(bits),
		CompressedSize: int64(out.Len()),
	}, nil
}

// DecodePayload rebuilds the tree from the persisted table and decodes the
// bits. The decoded length must match the table total.
func DecodePayload(p *Payload) ([]byte, error) {
	root, err := BuildTree(p.Table)
	if err != nil {
		return nil, err
	}
	out, err := Decode(p.Bits, root)
	if err != nil {
		return nil, err
	}
	if want := p.Table.Total(); int64(len(out)) != want {
		if int64(len(out)) < want {
			return nil, truncated(len(out), want)
		}
		return nil, corrupt(len(out), want)
	}
	return out, nil
}

func DecompressBytes(data []byte) ([]byte, error) {
	p, err := ReadPayload(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return DecodePayload(p)
}

// Compress reads inPath and writes its compressed form to outPath. On error
// no output file is left behind.
func Compress(inPath, outPath string, opts CompressOptions) (*Stats, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return nil, &IOError{Op: "read", Path: inPath, Err: unwrapPathErr(err)}
	}

	out, stats, err := CompressBytes(data, opts)
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(outPath, out); err != nil {
		return nil, err
	}
	return stats, nil
}

// Decompress reads a compressed file in either layout and writes the
// original bytes to outPath. On error no output file is left behind.
func Decompress(inPath, outPath string) (*Stats, error) {
	f, err := os.Open(inPath)
	if err != nil {
		return nil, &IOError{Op: "open", Path: inPath, Err: unwrapPathErr(err)}
	}
	defer f.Close()

	p, err := ReadPayload(f)
	if err != nil {
		return nil, err
	}
	out, err := DecodePayload(p)
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(outPath, out); err != nil {
		return nil, err
	}

	stats := &Stats{
		Format:      p.Format,
		Symbols:     p.Table.Len(),
		RawSize:     int64(len(out)),
		EncodedBits: len(p.Bits),
	}
	if fi, err := f.Stat(); err == nil {
		stats.CompressedSize = fi.Size()
	}
	return stats, nil
}

type InspectEntry struct {
	Symbol Symbol
	Count  int64
	Code   Bits
}

type Report struct {
	Stats
	Entries []InspectEntry
}

// Inspect reads the header and bits of a compressed file without writing
// anything. Entries are in table order.
func Inspect(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: unwrapPathErr(err)}
	}
	defer f.Close()

	p, err := ReadPayload(f)
	if err != nil {
		return nil, err
	}
	root, err := BuildTree(p.Table)
	if err != nil {
		return nil, err
	}
	codes := GenerateCodes(root)

	rep := &Report{Stats: Stats{
		Format:      p.Format,
		Symbols:     p.Table.Len(),
		RawSize:     p.Table.Total(),
		EncodedBits: len(p.Bits),
	}}
	if fi, err := f.Stat(); err == nil {
		rep.CompressedSize = fi.Size()
	}
	for _, e := range p.Table.entries {
		rep.Entries = append(rep.Entries, InspectEntry{Symbol: e.Symbol, Count: e.Count, Code: codes[e.Symbol]})
	}
	return rep, nil
}

// writeFileAtomic writes to a temp file next to path and renames it into
// place once everything is on disk.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: unwrapPathErr(err)}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return &IOError{Op: "write", Path: path, Err: unwrapPathErr(err)}
	}
	if err = tmp.Sync(); err != nil {
		return &IOError{Op: "sync", Path: path, Err: unwrapPathErr(err)}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: unwrapPathErr(err)}
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: unwrapPathErr(err)}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: unwrapPathErr(err)}
	}
	return nil
}

// unwrapPathErr drops the *os.PathError wrapper so IOError does not repeat
// the operation and path.
func unwrapPathErr(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	if le, ok := err.(*os.LinkError); ok {
		return le.Err
	}
	return err
}
