// Package loader scans vendor generated ps7_init sources for field masks.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/retroenv/zynqinit/internal/registry"
)

// The Vivado generated ps7_init.c documents every register write as a three
// line idiom: a field name line, an address+value line and a mask line.
// Everything after the first raw data table is repeated information.
var (
	addrValue = regexp.MustCompile(`.*==> (0X[0-9A-F]+)\[.*\] = 0x([0-9A-F]+)U`)
	fieldName = regexp.MustCompile(`.*\.\. (.*) = [0-9].*`)
	fieldMask = regexp.MustCompile(`.*==> MASK : (0x[0-9A-F]+)U.*`)
)

const dataTableMarker = "unsigned long ps7_pll_init_data_2_0"

// Stats reports the result of one scan.
type Stats struct {
	Resolved   int // fields attached to a catalog register
	Unresolved int // addresses owned by no catalog block
}

// Loader attaches field masks found in ps7_init sources to a registry.
type Loader struct {
	registry *registry.Registry
}

// New creates a new field mask loader.
func New(reg *registry.Registry) *Loader {
	return &Loader{registry: reg}
}

// ScanFile scans a ps7_init.c file.
func (l *Loader) ScanFile(name string) (Stats, error) {
	file, err := os.Open(name)
	if err != nil {
		return Stats{}, fmt.Errorf("opening file %s: %w", name, err)
	}
	defer func() { _ = file.Close() }()

	stats, err := l.Scan(file)
	if err != nil {
		return Stats{}, fmt.Errorf("scanning file %s: %w", name, err)
	}
	return stats, nil
}

// Scan reads the source, extracts every (address, field name, mask) triple
// and inserts it into the registry. Unresolved addresses are counted but do
// not fail the scan.
func (l *Loader) Scan(reader io.Reader) (Stats, error) {
	var lines []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, dataTableMarker) {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return Stats{}, fmt.Errorf("reading source: %w", err)
	}

	var stats Stats
	for i, line := range lines {
		addr := addrValue.FindStringSubmatch(line)
		if addr == nil || i == 0 || i+1 >= len(lines) {
			continue
		}

		name := fieldName.FindStringSubmatch(lines[i-1])
		mask := fieldMask.FindStringSubmatch(lines[i+1])
		if name == nil || mask == nil {
			return stats, fmt.Errorf("malformed field idiom around line %d", i+1)
		}

		entryAddr, err := parseHex(addr[1])
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", i+1, err)
		}
		maskValue, err := parseHex(mask[1])
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", i+2, err)
		}

		if l.registry.Insert(entryAddr, name[1], maskValue) {
			stats.Resolved++
		} else {
			stats.Unresolved++
		}
	}

	return stats, nil
}

func parseHex(s string) (uint32, error) {
	value, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing hex value %s: %w", s, err)
	}
	return uint32(value), nil
}
