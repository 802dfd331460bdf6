// Package manifest builds a cmdlet tree from a declarative description of a command-line surface.
//
// A manifest lists the options and nested cmdlets of a tool. It can be written as YAML, TOML or
// JSON; the JSON form accepts comments and trailing commas. A YAML manifest looks like:
//
//	summary: Manage remote repositories.
//	options:
//	  - short: v
//	    long: verbose
//	    description: Print more output.
//	cmdlets:
//	  - name: add
//	    syntax: add [options...] <name> <url>
//	    summary: Add a remote.
//	    options:
//	      - long: timeout
//	        type: int
//	        placeholder: SECONDS
//
// Option types name a converter: "string", "int" or "size". An option without type takes no
// argument.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/drobin/nuts-getopts"
)

// Format is the encoding of a manifest.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// ErrUnknownFormat is returned for manifests in an unsupported format.
var ErrUnknownFormat = errors.New("unknown manifest format")

// Manifest describes the root cmdlet of a tool.
type Manifest struct {
	Summary     string      `yaml:"summary,omitempty" toml:"summary,omitempty" json:"summary,omitempty"`
	Description string      `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Options     []OptionDef `yaml:"options,omitempty" toml:"options,omitempty" json:"options,omitempty"`
	Cmdlets     []CmdletDef `yaml:"cmdlets,omitempty" toml:"cmdlets,omitempty" json:"cmdlets,omitempty"`
}

// CmdletDef describes a cmdlet and its children.
type CmdletDef struct {
	Name        string      `yaml:"name" toml:"name" json:"name"`
	Syntax      string      `yaml:"syntax,omitempty" toml:"syntax,omitempty" json:"syntax,omitempty"`
	Summary     string      `yaml:"summary,omitempty" toml:"summary,omitempty" json:"summary,omitempty"`
	Description string      `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Options     []OptionDef `yaml:"options,omitempty" toml:"options,omitempty" json:"options,omitempty"`
	Cmdlets     []CmdletDef `yaml:"cmdlets,omitempty" toml:"cmdlets,omitempty" json:"cmdlets,omitempty"`
}

// OptionDef describes an option. Short is a single character.
type OptionDef struct {
	Short       string `yaml:"short,omitempty" toml:"short,omitempty" json:"short,omitempty"`
	Long        string `yaml:"long,omitempty" toml:"long,omitempty" json:"long,omitempty"`
	Type        string `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty" toml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
}

var types = map[string]getopts.ConverterID{
	"":       getopts.NoValue,
	"string": getopts.StringValue,
	"int":    getopts.IntValue,
	"size":   getopts.SizeValue,
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json", ".jsonc":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Load reads a manifest file. The format is chosen by the file extension.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parsing manifest: unknown key %q", undecoded[0].String())
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &m, nil
}

// Apply declares the options and cmdlets of the manifest below root. It stops at the first
// invalid declaration; cmdlets and options declared up to that point remain in the tree.
func (m *Manifest) Apply(root *getopts.Cmdlet) error {
	if m.Summary != "" {
		root.ShortHelp = m.Summary
	}
	if m.Description != "" {
		root.LongHelp = m.Description
	}
	if err := addOptions(root, m.Options); err != nil {
		return err
	}
	return addCmdlets(root, m.Cmdlets)
}

func addCmdlets(parent *getopts.Cmdlet, defs []CmdletDef) error {
	for _, def := range defs {
		c, err := parent.AddChild(def.Name)
		if err != nil {
			return fmt.Errorf("cmdlet %q: %w", def.Name, err)
		}
		c.Syntax = def.Syntax
		c.ShortHelp = def.Summary
		c.LongHelp = def.Description
		if err := addOptions(c, def.Options); err != nil {
			return fmt.Errorf("cmdlet %q: %w", def.Name, err)
		}
		if err := addCmdlets(c, def.Cmdlets); err != nil {
			return fmt.Errorf("cmdlet %q: %w", def.Name, err)
		}
	}
	return nil
}

func addOptions(c *getopts.Cmdlet, defs []OptionDef) error {
	for _, def := range defs {
		spec, err := def.spec()
		if err != nil {
			return err
		}
		if _, err := c.AddOption(spec); err != nil {
			return fmt.Errorf("option %s: %w", def.name(), err)
		}
	}
	return nil
}

func (d OptionDef) spec() (getopts.OptionSpec, error) {
	conv, ok := types[d.Type]
	if !ok {
		return getopts.OptionSpec{}, fmt.Errorf("option %s: unknown type %q", d.name(), d.Type)
	}
	var short byte
	switch len(d.Short) {
	case 0:
	case 1:
		short = d.Short[0]
	default:
		return getopts.OptionSpec{}, fmt.Errorf("option %s: short name must be a single character", d.name())
	}
	return getopts.OptionSpec{
		Long:        d.Long,
		Short:       short,
		Converter:   conv,
		Description: d.Description,
		Placeholder: d.Placeholder,
	}, nil
}

func (d OptionDef) name() string {
	if d.Long != "" {
		return "--" + d.Long
	}
	return "-" + d.Short
}

// Bind sets fn as the action of root and every cmdlet below it.
func Bind(root *getopts.Cmdlet, fn getopts.Action) {
	root.SetAction(fn)
	for _, child := range root.Children() {
		Bind(child, fn)
	}
}
