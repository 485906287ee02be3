package trajdata

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	scaleRe  = regexp.MustCompile(`\[(\d+(?:\.\d+)?)\]`)
	sampleRe = regexp.MustCompile(`\((\d+),(\d+),(\d+)\)`)
)

// LoadFile opens a dataset through fsys so callers can pass embed.FS or
// os.DirFS.
func LoadFile(fsys fs.FS, path string) (*Dataset, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, ErrDataUnavailable, err)
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ds, nil
}

// Parse reads a dataset. The first non-empty line holds the scaling factor
// as "[N]"; every following non-empty line is one entity made of "(x,y,f)"
// triples. A line without triples yields an empty path.
func Parse(r io.Reader) (*Dataset, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	ds := &Dataset{}
	lineNo := 0
	haveHeader := false

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if !haveHeader {
			scale, err := parseScale(line, lineNo)
			if err != nil {
				return nil, err
			}
			ds.Scale = scale
			haveHeader = true
			continue
		}

		path, err := parsePath(line, lineNo)
		if err != nil {
			return nil, err
		}
		for _, s := range path {
			if s.X > ds.MaxX {
				ds.MaxX = s.X
			}
			if s.Y > ds.MaxY {
				ds.MaxY = s.Y
			}
		}
		ds.Paths = append(ds.Paths, path)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w: %v", ErrDataUnavailable, err)
	}
	if !haveHeader {
		return nil, fmt.Errorf("read dataset: %w: empty input", ErrDataUnavailable)
	}
	return ds, nil
}

func parseScale(line string, lineNo int) (float64, error) {
	m := scaleRe.FindStringSubmatch(line)
	if m == nil {
		return 0, &ParseError{Line: lineNo, Msg: "missing scaling factor [N]"}
	}
	scale, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, &ParseError{Line: lineNo, Msg: fmt.Sprintf("bad scaling factor %q", m[1])}
	}
	if err := ValidateScale(scale); err != nil {
		return 0, fmt.Errorf("line %d: %w", lineNo, err)
	}
	return scale, nil
}

func parsePath(line string, lineNo int) ([]RawSample, error) {
	matches := sampleRe.FindAllStringSubmatch(line, -1)
	path := make([]RawSample, 0, len(matches))
	for _, m := range matches {
		var v [3]int
		for i := range v {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("bad coordinate in %q", m[0])}
			}
			v[i] = n
		}
		path = append(path, RawSample{X: v[0], Y: v[1], Frame: v[2]})
	}
	return path, nil
}

// ValidateScale rejects scaling factors that would make positions non-finite.
func ValidateScale(scale float64) error {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	return nil
}
