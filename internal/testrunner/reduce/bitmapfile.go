package reduce

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	semver "github.com/Masterminds/semver/v3"
)

// BitmapFileFormat is the current on-disk format version of fuzz_bitmap.
// Bumping the major component is a breaking change to the header/body
// layout; minor/patch bumps must stay read-compatible.
const BitmapFileFormat = "1.0.0"

// WriteBitmapFile persists bitmap (a MAP_SIZE-byte virgin/trace snapshot)
// to path, prefixed with a "format:<semver>\n" header line so a future
// reader can tell whether it understands the body that follows.
func WriteBitmapFile(path string, bitmap []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	defer f.Close()

	if _, err := fmt.Fprintf(f, "format:%s\n", BitmapFileFormat); err != nil {
		return err
	}

	_, err = f.Write(bitmap)

	return err
}

// ReadBitmapFile loads a fuzz_bitmap file written by WriteBitmapFile,
// rejecting any file whose format header's major version is incompatible
// with BitmapFileFormat's — a fatal-class condition (spec §7): a
// misreadable snapshot silently reinterpreted as raw bytes would corrupt
// the virgin state in a way no later check would catch.
func ReadBitmapFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	r := bufio.NewReader(f)

	header, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}

	fileVer, err := parseFormatHeader(header)
	if err != nil {
		return nil, err
	}

	runningVer, err := semver.NewVersion(BitmapFileFormat)
	if err != nil {
		return nil, err
	}

	if fileVer.Major() != runningVer.Major() {
		return nil, fmt.Errorf("fuzz_bitmap %s: format %s is incompatible with this binary's %s (major version mismatch)",
			path, fileVer, runningVer)
	}

	var body bytes.Buffer
	if _, err := io.Copy(&body, r); err != nil {
		return nil, err
	}

	return body.Bytes(), nil
}

func parseFormatHeader(line string) (*semver.Version, error) {
	const prefix = "format:"

	line = trimNewline(line)

	if len(line) <= len(prefix) || line[:len(prefix)] != prefix {
		return nil, fmt.Errorf("fuzz_bitmap: missing format: header, got %q", line)
	}

	return semver.NewVersion(line[len(prefix):])
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}

	return s
}
