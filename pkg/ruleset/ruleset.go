package ruleset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Format identifies the encoding of a rule set document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// document is the on-disk shape: two maps of rule name to raw option map.
type document struct {
	Strings map[string]map[string]any `yaml:"strings" json:"strings" toml:"strings"`
	Numbers map[string]map[string]any `yaml:"numbers" json:"numbers" toml:"numbers"`
}

// Set is a read-only collection of named, normalised option sets.
// It is safe for concurrent use.
type Set struct {
	strings map[string]validator.StringOptions
	numbers map[string]validator.NumberOptions
}

// Load reads and parses the rule set at path. The format follows the extension.
func Load(path string, opts ...Option) (*Set, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule set: %w", err)
	}

	cfg := newConfig(opts)
	cfg.logger = cfg.logger.With(slog.String("path", path))
	return parse(data, format, cfg)
}

// Parse decodes data and normalises every rule it defines. The first rule whose
// options are rejected aborts parsing; the error matches ErrInvalidRule and
// still unwraps to the validator's configuration error.
func Parse(data []byte, format Format, opts ...Option) (*Set, error) {
	return parse(data, format, newConfig(opts))
}

func parse(data []byte, format Format, cfg config) (*Set, error) {
	var doc document
	if err := decode(data, format, &doc); err != nil {
		return nil, err
	}

	set := &Set{
		strings: make(map[string]validator.StringOptions, len(doc.Strings)),
		numbers: make(map[string]validator.NumberOptions, len(doc.Numbers)),
	}

	for _, name := range slices.Sorted(maps.Keys(doc.Strings)) {
		opts, err := compileString(doc.Strings[name])
		if err != nil {
			return nil, errors.Join(ErrInvalidRule, fmt.Errorf("strings.%s: %w", name, err))
		}
		set.strings[name] = opts
	}

	for _, name := range slices.Sorted(maps.Keys(doc.Numbers)) {
		opts, err := validator.ParseNumberOptions(doc.Numbers[name])
		if err != nil {
			return nil, errors.Join(ErrInvalidRule, fmt.Errorf("numbers.%s: %w", name, err))
		}
		set.numbers[name] = opts
	}

	cfg.logger.Debug("rule set loaded",
		slog.String("format", string(format)),
		slog.Int("strings", len(set.strings)),
		slog.Int("numbers", len(set.numbers)),
	)

	return set, nil
}

func decode(data []byte, format Format, doc *document) error {
	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(doc); errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.Decode(string(data), doc)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown section %q", undecoded[0].String())
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return errors.Join(ErrInvalidDocument, err)
	}
	return nil
}

// compileString normalises raw and resolves its pattern once, so validation
// never has to look it up again.
func compileString(raw map[string]any) (validator.StringOptions, error) {
	opts, err := validator.ParseStringOptions(raw)
	if err != nil {
		return validator.StringOptions{}, err
	}

	pattern, err := validator.ResolvePattern(opts.RegexPattern)
	if err != nil {
		return validator.StringOptions{}, err
	}
	if pattern != nil {
		opts.RegexPattern = pattern
	}

	return opts, nil
}

// ValidateString validates value with the string rule called name.
func (s *Set) ValidateString(name string, value any) (validator.StringResult, error) {
	opts, ok := s.strings[name]
	if !ok {
		return validator.StringResult{}, fmt.Errorf("%w: strings.%s", ErrRuleNotFound, name)
	}
	return validator.ValidateString(value, opts)
}

// ValidateNumber validates value with the number rule called name.
func (s *Set) ValidateNumber(name string, value any) (validator.NumberResult, error) {
	opts, ok := s.numbers[name]
	if !ok {
		return validator.NumberResult{}, fmt.Errorf("%w: numbers.%s", ErrRuleNotFound, name)
	}
	return validator.ValidateNumber(value, opts)
}

// StringOptions returns the normalised options of a string rule.
func (s *Set) StringOptions(name string) (validator.StringOptions, bool) {
	opts, ok := s.strings[name]
	return opts, ok
}

// NumberOptions returns the normalised options of a number rule.
func (s *Set) NumberOptions(name string) (validator.NumberOptions, bool) {
	opts, ok := s.numbers[name]
	return opts, ok
}

// StringRules lists the string rule names in sorted order.
func (s *Set) StringRules() []string {
	return slices.Sorted(maps.Keys(s.strings))
}

// NumberRules lists the number rule names in sorted order.
func (s *Set) NumberRules() []string {
	return slices.Sorted(maps.Keys(s.numbers))
}

// Len reports the total number of rules.
func (s *Set) Len() int {
	return len(s.strings) + len(s.numbers)
}
