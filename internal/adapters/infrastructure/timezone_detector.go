package infrastructure

import (
	"archive/zip"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"
)

// SystemTimezoneDetector implements the TimezoneDetector port from the process environment
type SystemTimezoneDetector struct {
	fallback []string
	sources  []string
	getenv   func(string) string
	local    func() *time.Location

	once  sync.Once
	zones []string
}

// NewSystemTimezoneDetector creates a detector that enumerates the zoneinfo database,
// offering fallback only when no zone can be listed
func NewSystemTimezoneDetector(fallback []string) *SystemTimezoneDetector {
	return &SystemTimezoneDetector{
		fallback: append([]string(nil), fallback...),
		sources:  zoneinfoSources(os.Getenv),
		getenv:   os.Getenv,
		local:    func() *time.Location { return time.Local },
	}
}

// zoneinfoSources lists the places the Go runtime itself reads zone data from
func zoneinfoSources(getenv func(string) string) []string {
	var sources []string
	if dir := getenv("ZONEINFO"); dir != "" {
		sources = append(sources, dir)
	}
	sources = append(sources, "/usr/share/zoneinfo", "/usr/share/lib/zoneinfo", "/usr/lib/locale/TZ")
	return append(sources, filepath.Join(runtime.GOROOT(), "lib", "time", "zoneinfo.zip"))
}

// DetectTimezone returns the IANA name from TZ, else the local zone; unnamed zones map to UTC
func (d *SystemTimezoneDetector) DetectTimezone() string {
	if tz := strings.TrimPrefix(strings.TrimSpace(d.getenv("TZ")), ":"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}

	name := d.local().String()
	if name == "" || name == "Local" {
		return "UTC"
	}
	return name
}

// KnownTimezones returns a sorted copy of the loadable zones from the first source that lists any
func (d *SystemTimezoneDetector) KnownTimezones() []string {
	d.once.Do(func() {
		for _, source := range d.sources {
			if zones := listZones(source); len(zones) > 0 {
				d.zones = zones
				return
			}
		}
		d.zones = d.fallback
	})
	return append([]string(nil), d.zones...)
}

func listZones(source string) []string {
	info, err := os.Stat(source)
	if err != nil {
		return nil
	}

	var names []string
	if info.IsDir() {
		_ = filepath.WalkDir(source, func(p string, entry fs.DirEntry, err error) error {
			if err != nil || entry.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(source, p)
			if err == nil {
				names = append(names, filepath.ToSlash(rel))
			}
			return nil
		})
	} else {
		archive, err := zip.OpenReader(source)
		if err != nil {
			return nil
		}
		defer func() { _ = archive.Close() }()
		for _, file := range archive.File {
			if !file.FileInfo().IsDir() {
				names = append(names, path.Clean(file.Name))
			}
		}
	}

	zones := make([]string, 0, len(names))
	for _, name := range names {
		if !isZoneName(name) {
			continue
		}
		if _, err := time.LoadLocation(name); err == nil {
			zones = append(zones, name)
		}
	}
	sort.Strings(zones)
	return zones
}

// isZoneName filters out tables, posix/right mirrors and aliases such as localtime
func isZoneName(name string) bool {
	if strings.ContainsAny(name, ".") || name == "Factory" || name == "posixrules" {
		return false
	}
	first := []rune(name)
	return len(first) > 0 && unicode.IsUpper(first[0])
}
