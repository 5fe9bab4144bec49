package catalogfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/samirrijal/parkplanner/internal/core/domain"
)

const fieldsPerLine = 4

// decimalPattern is the plain decimal notation accepted for coordinates.
// strconv.ParseFloat alone would also take digit separators, hex floats,
// Inf and NaN.
var decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// ParseError reports the first rejected line of a park file. It matches
// domain.ErrInvalidCatalog under errors.Is.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return domain.ErrInvalidCatalog
}

// Loader implements ports.CatalogLoader for "id,name,latitude,longitude"
// text files.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a Loader with the park validation rules registered.
// It panics if a rule cannot be registered.
func NewLoader() *Loader {
	v := validator.New()
	if err := v.RegisterValidation("parktoken", validateParkToken); err != nil {
		panic(fmt.Sprintf("register parktoken validation: %v", err))
	}
	return &Loader{validate: v}
}

// Open reads the park file at path. The file is closed before Open returns.
func (l *Loader) Open(path string) (*domain.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogAccess, err)
	}
	defer f.Close()

	catalog, err := l.Parse(f)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			slog.Debug("park file rejected", "path", path, "line", perr.Line, "reason", perr.Reason)
		}
		return nil, err
	}

	slog.Info("park file loaded", "path", path, "parks", catalog.Len())
	return catalog, nil
}

// Parse builds a catalog from r in a single pass. Any rejected line fails
// the whole input; no partial catalog is returned.
func (l *Loader) Parse(r io.Reader) (*domain.Catalog, error) {
	// Honour a UTF-8 or UTF-16 byte-order mark; plain input is UTF-8.
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	sc := bufio.NewScanner(decoded)

	var parks []domain.Park
	seen := make(map[int]int)
	lineNo := 0

	for sc.Scan() {
		lineNo++

		p, err := l.parseLine(sc.Text())
		if err != nil {
			return nil, &ParseError{Line: lineNo, Reason: err.Error()}
		}
		if first, dup := seen[p.ID]; dup {
			return nil, &ParseError{
				Line:   lineNo,
				Reason: fmt.Sprintf("park id %d already used on line %d", p.ID, first),
			}
		}
		seen[p.ID] = lineNo
		parks = append(parks, p)
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{Line: lineNo + 1, Reason: "line too long"}
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogAccess, err)
	}

	if lineNo == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	return domain.NewCatalog(parks)
}

// parseLine converts one line into a park. Fields are taken verbatim;
// surrounding whitespace makes a field invalid. Trailing empty fields are
// dropped, so "1,Alpha,0,0," is the same park as "1,Alpha,0,0".
func (l *Loader) parseLine(line string) (domain.Park, error) {
	// The decoder turns invalid input bytes into utf8.RuneError.
	if strings.ContainsRune(line, utf8.RuneError) {
		return domain.Park{}, errors.New("line is not valid UTF-8")
	}

	fields := splitFields(line)
	if len(fields) != fieldsPerLine {
		return domain.Park{}, fmt.Errorf("expected %d comma-separated fields, got %d", fieldsPerLine, len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Park{}, fmt.Errorf("park id %q is not an integer", fields[0])
	}
	lat, err := parseDecimal(fields[2])
	if err != nil {
		return domain.Park{}, fmt.Errorf("latitude %q is not a number", fields[2])
	}
	lon, err := parseDecimal(fields[3])
	if err != nil {
		return domain.Park{}, fmt.Errorf("longitude %q is not a number", fields[3])
	}

	p := domain.Park{
		ID:       id,
		Name:     fields[1],
		Location: domain.GeoPoint{Lat: lat, Lon: lon},
	}
	if err := l.validate.Struct(p); err != nil {
		return domain.Park{}, describeValidation(err)
	}
	return p, nil
}

// splitFields splits line on commas and drops trailing empty fields. A
// line with nothing but commas keeps a single empty field.
func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	n := len(fields)
	for n > 1 && fields[n-1] == "" {
		n--
	}
	return fields[:n]
}

func parseDecimal(s string) (float64, error) {
	if !decimalPattern.MatchString(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}
