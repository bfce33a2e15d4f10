package pkg

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeInput(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCompressDecompressFiles(t *testing.T) {
	input := bytes.Repeat([]byte("It was the best of times, it was the worst of times.\n"), 40)

	for _, opts := range []CompressOptions{
		{Format: FormatText},
		{Format: FormatText, Wrap: 76},
		{Format: FormatPacked},
	} {
		t.Run(opts.Format.String(), func(t *testing.T) {
			dir := t.TempDir()
			src := writeInput(t, dir, "in.txt", input)
			packed := filepath.Join(dir, "in.huff")
			restored := filepath.Join(dir, "out.txt")

			stats, err := Compress(src, packed, opts)
			if err != nil {
				t.Fatalf("compress: %v", err)
			}
			if stats.RawSize != int64(len(input)) || stats.Symbols == 0 {
				t.Fatalf("stats %+v", stats)
			}
			if opts.Format == FormatPacked && stats.CompressedSize >= stats.RawSize {
				t.Fatalf("packed output not smaller: %+v", stats)
			}

			if _, err := Decompress(packed, restored); err != nil {
				t.Fatalf("decompress: %v", err)
			}
			got, err := os.ReadFile(restored)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, input) {
				t.Fatalf("roundtrip mismatch")
			}
			assertNoTempFiles(t, dir)
		})
	}
}

func TestCompressEmptyInput(t *testing.T) {
	dir := t.TempDir()
	src := writeInput(t, dir, "empty.txt", nil)
	dst := filepath.Join(dir, "empty.huff")

	if _, err := Compress(src, dst, CompressOptions{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
	if _, err := os.Stat(dst); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("output exists: %v", err)
	}
}

func TestCompressMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := Compress(filepath.Join(dir, "nope.txt"), filepath.Join(dir, "out"), CompressOptions{})
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("got %T %v, want *IOError", err, err)
	}
	if ioErr.Op != "read" || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestCompressUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	src := writeInput(t, dir, "in.txt", []byte("abc"))
	_, err := Compress(src, filepath.Join(dir, "missing", "out.huff"), CompressOptions{})
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("got %T %v, want *IOError", err, err)
	}
}

func TestDecompressFailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]struct {
		data []byte
		want error
	}{
		"malformed":  {[]byte("two\n97 1\n\n0"), ErrMalformedTable},
		"mid code":   {[]byte("3\n97 1\n98 1\n99 2\n\n1"), ErrTruncatedStream},
		"short":      {[]byte("2\n97 1\n98 3\n\n1"), ErrTruncatedStream},
		"extra":      {[]byte("2\n97 1\n98 1\n\n011"), ErrCorruptStream},
		"sentinel":   {[]byte("1\n97 3\n\n0"), ErrCorruptStream},
		"empty file": {nil, ErrMalformedTable},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			src := writeInput(t, dir, name+".huff", tc.data)
			dst := filepath.Join(dir, name+".out")
			if _, err := Decompress(src, dst); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if _, err := os.Stat(dst); !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("output exists: %v", err)
			}
		})
	}
	assertNoTempFiles(t, dir)
}

func TestDecompressOverwritesOnlyOnSuccess(t *testing.T) {
	dir := t.TempDir()
	dst := writeInput(t, dir, "out.txt", []byte("previous"))
	src := writeInput(t, dir, "bad.huff", []byte("1\n97 1\n\n01x"))

	if _, err := Decompress(src, dst); err == nil {
		t.Fatalf("expected error")
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "previous" {
		t.Fatalf("existing output modified: %q", got)
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	src := writeInput(t, dir, "in.txt", []byte("aab"))
	dst := filepath.Join(dir, "in.huff")
	if _, err := Compress(src, dst, CompressOptions{}); err != nil {
		t.Fatal(err)
	}

	rep, err := Inspect(dst)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Format != FormatText || rep.Symbols != 2 || rep.RawSize != 3 || rep.EncodedBits != 3 {
		t.Fatalf("report %+v", rep.Stats)
	}
	if rep.CompressedSize != int64(len("2\n97 2\n98 1\n\n110")) {
		t.Fatalf("compressed size %d", rep.CompressedSize)
	}
	if len(rep.Entries) != 2 || rep.Entries[0].Symbol != 'a' || rep.Entries[0].Code.String() != "1" {
		t.Fatalf("entries %+v", rep.Entries)
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Fatalf("temp files left behind: %v", matches)
	}
}
