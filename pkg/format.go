package pkg

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/icza/bitio"
)

// Persisted layouts. The text layout is
//
//	<count>
//	<code point> <frequency>   (count lines, table order)
//	<blank line>
//	<bits as '0'/'1', optionally wrapped>
//
// The packed layout carries the same table and bits in binary form behind
// PackedMagic.

var PackedMagic = [4]byte{'H', 'U', 'F', 0x01}

type Format int

const (
	FormatText Format = iota
	FormatPacked
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatPacked:
		return "packed"
	}
	return "unknown"
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "packed":
		return FormatPacked, nil
	}
	return 0, fmt.Errorf("unknown format %q (want text|packed)", s)
}

// Payload is everything a compressed file holds.
type Payload struct {
	Format Format
	Table  *FrequencyTable
	Bits   Bits
}

// WriteText writes the text layout. wrap > 0 breaks the bit block into lines
// of that many characters.
func WriteText(w io.Writer, t *FrequencyTable, bits Bits, wrap int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d\n", t.Len())
	for _, e := range t.entries {
		fmt.Fprintf(bw, "%d %d\n", e.Symbol, e.Count)
	}
	bw.WriteByte('\n')

	s := bits.String()
	if wrap <= 0 {
		bw.WriteString(s)
	} else {
		for len(s) > wrap {
			bw.WriteString(s[:wrap])
			bw.WriteByte('\n')
			s = s[wrap:]
		}
		bw.WriteString(s)
	}

	return bw.Flush()
}

// WritePacked writes the packed layout, bits MSB first.
func WritePacked(w io.Writer, t *FrequencyTable, bits Bits) error {
	hdr := make([]byte, 0, 16+t.Len()*4)
	hdr = append(hdr, PackedMagic[:]...)
	hdr = binary.AppendUvarint(hdr, uint64(t.Len()))
	for _, e := range t.entries {
		hdr = append(hdr, e.Symbol)
		hdr = binary.AppendUvarint(hdr, uint64(e.Count))
	}
	hdr = binary.AppendUvarint(hdr, uint64(len(bits)))
	if _, err := w.Write(hdr); err != nil {
		return err
	}

	bw := bitio.NewWriter(w)
	for _, bit := range bits {
		if err := bw.WriteBool(bit); err != nil {
			return err
		}
	}
	return bw.Close()
}

// ReadPayload reads either layout, picking it from the leading bytes.
func ReadPayload(r io.Reader) (*Payload, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(PackedMagic))
	if err == nil && bytes.Equal(head, PackedMagic[:]) {
		return readPacked(br)
	}
	return readText(br)
}

func readText(br *bufio.Reader) (*Payload, error) {
	line, err := readLine(br)
	if err != nil {
		return nil, headerErr("count line", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, malformed("count %q is not a number", line)
	}
	if n <= 0 || n > 256 {
		return nil, malformed("count %d out of range", n)
	}

	t := NewFrequencyTable()
	for i := 0; i < n; i++ {
		line, err := readLine(br)
		if err != nil {
			return nil, headerErr(fmt.Sprintf("entry %d of %d", i+1, n), err)
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, malformed("entry %d: want \"<code point> <frequency>\", got %q", i+1, line)
		}
		cp, err := strconv.ParseUint(fields[0], 10, 8)
		if err != nil {
			return nil, malformed("entry %d: bad code point %q", i+1, fields[0])
		}
		freq, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || freq < 0 {
			return nil, malformed("entry %d: bad frequency %q", i+1, fields[1])
		}
		if t.Has(Symbol(cp)) {
			return nil, malformed("entry %d: duplicate code point %d", i+1, cp)
		}
		t.Set(Symbol(cp), freq)
	}

	line, err = readLine(br)
	if err != nil {
		return nil, headerErr("separator line", err)
	}
	if strings.TrimSpace(line) != "" {
		return nil, malformed("expected blank line after table, got %q", line)
	}

	rest, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	bits, err := ParseBits(string(rest))
	if err != nil {
		return nil, err
	}

	return &Payload{Format: FormatText, Table: t, Bits: bits}, nil
}

func readPacked(br *bufio.Reader) (*Payload, error) {
	if _, err := br.Discard(len(PackedMagic)); err != nil {
		return nil, err
	}

	n, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, headerErr("entry count", err)
	}
	if n == 0 || n > 256 {
		return nil, malformed("count %d out of range", n)
	}

	t := NewFrequencyTable()
	for i := uint64(0); i < n; i++ {
		sym, err := br.ReadByte()
		if err != nil {
			return nil, headerErr(fmt.Sprintf("entry %d of %d", i+1, n), err)
		}
		freq, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, headerErr(fmt.Sprintf("entry %d of %d", i+1, n), err)
		}
		if freq > math.MaxInt64 {
			return nil, malformed("entry %d: frequency overflows", i+1)
		}
		if t.Has(sym) {
			return nil, malformed("entry %d: duplicate code point %d", i+1, sym)
		}
		t.Set(sym, int64(freq))
	}

	bitCount, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, headerErr("bit count", err)
	}

	r := bitio.NewReader(br)
	var bits Bits
	for i := uint64(0); i < bitCount; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: %d of %d bits present", ErrTruncatedStream, i, bitCount)
			}
			return nil, err
		}
		bits = append(bits, bit)
	}

	return &Payload{Format: FormatPacked, Table: t, Bits: bits}, nil
}

// readLine returns the next line without its terminator. A final line with
// no newline is returned as is; io.EOF only comes back when nothing is left.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func headerErr(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return malformed("unexpected end of input reading %s", what)
	}
	return err
}
