package component

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/projtools/projtools/internal/manifest"
)

// DefaultVersion is written to version.py when no version is requested.
const DefaultVersion = "0.1.0"

// FrontendType selects the framework scaffolded by the Frontend component.
type FrontendType string

// Supported frontend frameworks. The values double as Makefile targets.
const (
	React FrontendType = "reactjs"
	Vue   FrontendType = "vue"
)

// ParseFrontendType validates a framework name. Empty means React.
func ParseFrontendType(s string) (FrontendType, error) {
	switch FrontendType(strings.ToLower(strings.TrimSpace(s))) {
	case "", React:
		return React, nil
	case Vue:
		return Vue, nil
	default:
		return "", fmt.Errorf("invalid frontend type %q: must be %q or %q", s, React, Vue)
	}
}

// ErrNoFeature is returned when neither a backend nor a frontend is requested.
var ErrNoFeature = errors.New("please specify at least one of --backend or --frontend")

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Options is the feature selection for one project. It is passed by value,
// so every component holds its own copy.
type Options struct {
	Backend      bool
	Frontend     bool
	FrontendType FrontendType
	EnableProxy  bool
	Version      string
}

// Spec describes the project being created. Build it with NewSpec.
type Spec struct {
	Name        string
	Path        string
	PackageName string
	Options     Options
}

// NewSpec validates the name and options and derives the package name and
// target path (<outputDir>/<name>; outputDir defaults to the working
// directory).
func NewSpec(name, outputDir string, opts Options) (Spec, error) {
	if !namePattern.MatchString(name) {
		return Spec{}, fmt.Errorf("invalid project name %q: must match pattern [A-Za-z_][A-Za-z0-9_-]*", name)
	}
	if !opts.Backend && !opts.Frontend {
		return Spec{}, ErrNoFeature
	}

	ft, err := ParseFrontendType(string(opts.FrontendType))
	if err != nil {
		return Spec{}, err
	}
	opts.FrontendType = ft

	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	v, err := manifest.NormalizeVersion(opts.Version)
	if err != nil {
		return Spec{}, err
	}
	opts.Version = v

	if outputDir == "" {
		outputDir = "."
	}

	return Spec{
		Name:        name,
		Path:        filepath.Join(outputDir, name),
		PackageName: PackageName(name),
		Options:     opts,
	}, nil
}

// PackageName derives the Python package identifier from a project name.
func PackageName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// PackageDir is the directory holding the Python package sources.
func (s Spec) PackageDir() string {
	return filepath.Join(s.Path, "src", s.PackageName)
}
