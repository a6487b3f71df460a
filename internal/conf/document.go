package conf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	ini "git.sr.ht/~spc/go-ini"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// outputDTO holds the raw values of an output section. Pointers
// distinguish "not set" (nil) from "set to the empty string".
type outputDTO struct {
	File   *string
	Fields *string
}

// update applies the non-nil values of other.
func (d *outputDTO) update(other outputDTO) {
	if other.File != nil {
		d.File = other.File
	}
	if other.Fields != nil {
		d.Fields = other.Fields
	}
}

// resolve turns the raw values into a ResultConfig, applying the default
// field list when none was given.
func (d outputDTO) resolve() (ResultConfig, error) {
	if d.File == nil {
		return ResultConfig{}, fmt.Errorf("%w: output file is missing", ErrMalformedSource)
	}
	fields := DefaultFieldList()
	if d.Fields != nil {
		fields = *d.Fields
	}
	return newResultConfig(*d.File, fields)
}

type decodeFunc func(data []byte) (outputDTO, error)

// decoders maps a document file extension to its decoder.
var decoders = map[string]decodeFunc{
	".xml":  decodeXML,
	".toml": decodeTOML,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".ini":  decodeINI,
}

var errNoOutputSection = fmt.Errorf("%w: no output section", ErrMalformedSource)

type xmlDocument struct {
	XMLName xml.Name   `xml:"config"`
	Output  *xmlOutput `xml:"output"`
}

type xmlOutput struct {
	File   *string    `xml:"file"`
	Fields *xmlFields `xml:"fields"`
}

// xmlFields accepts both <fields>cpath,mgeom</fields> and
// <fields><cpath/><mgeom/></fields>.
type xmlFields struct {
	List     string `xml:",chardata"`
	Elements []struct {
		XMLName xml.Name
	} `xml:",any"`
}

func (f xmlFields) String() string {
	names := []string{f.List}
	for _, e := range f.Elements {
		names = append(names, e.XMLName.Local)
	}
	return strings.Join(names, ",")
}

func decodeXML(data []byte) (outputDTO, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return outputDTO{}, fmt.Errorf("%w: failed to parse XML: %v", ErrMalformedSource, err)
	}
	if doc.Output == nil {
		return outputDTO{}, errNoOutputSection
	}

	dto := outputDTO{File: doc.Output.File}
	if doc.Output.Fields != nil {
		list := doc.Output.Fields.String()
		dto.Fields = &list
	}
	return dto, nil
}

type tomlDocument struct {
	Output *struct {
		File   *string `toml:"file"`
		Fields *string `toml:"fields"`
	} `toml:"output"`
}

func decodeTOML(data []byte) (outputDTO, error) {
	var doc tomlDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return outputDTO{}, fmt.Errorf("%w: failed to parse TOML: %v", ErrMalformedSource, err)
	}
	if doc.Output == nil {
		return outputDTO{}, errNoOutputSection
	}
	return outputDTO{File: doc.Output.File, Fields: doc.Output.Fields}, nil
}

type yamlDocument struct {
	Output *struct {
		File   *string `yaml:"file"`
		Fields *string `yaml:"fields"`
	} `yaml:"output"`
}

func decodeYAML(data []byte) (outputDTO, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return outputDTO{}, fmt.Errorf("%w: failed to parse YAML: %v", ErrMalformedSource, err)
	}
	if doc.Output == nil {
		return outputDTO{}, errNoOutputSection
	}
	return outputDTO{File: doc.Output.File, Fields: doc.Output.Fields}, nil
}

type iniDocument struct {
	Output []struct {
		File   string `ini:"file"`
		Fields string `ini:"fields"`
	} `ini:"output"`
}

var iniOptions = ini.Options{
	AllowEmptyValues:        true,
	AllowNumberSignComments: true,
}

// decodeINI cannot tell an empty key from a missing one, so empty keys
// are treated as unset. When the section repeats, the last one wins.
func decodeINI(data []byte) (outputDTO, error) {
	var doc iniDocument
	if err := ini.UnmarshalWithOptions(normalizeINI(data), &doc, iniOptions); err != nil {
		return outputDTO{}, fmt.Errorf("%w: failed to parse INI: %v", ErrMalformedSource, err)
	}
	if len(doc.Output) == 0 {
		return outputDTO{}, errNoOutputSection
	}

	output := doc.Output[len(doc.Output)-1]
	var dto outputDTO
	if output.File != "" {
		dto.File = &output.File
	}
	if output.Fields != "" {
		dto.Fields = &output.Fields
	}
	return dto, nil
}

// normalizeINI rewrites "key = value" assignments as "key=value". The INI
// decoder keeps whitespace around '=' as part of the key and value.
func normalizeINI(data []byte) []byte {
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.ContainsRune(";#[", rune(trimmed[0])) {
			lines[i] = trimmed
			continue
		}
		if key, value, ok := strings.Cut(trimmed, "="); ok {
			lines[i] = strings.TrimSpace(key) + "=" + strings.TrimSpace(value)
		}
	}
	return []byte(strings.Join(lines, "\n"))
}

func load(r io.Reader, decode decodeFunc) (ResultConfig, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return ResultConfig{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	dto, err := decode(buf.Bytes())
	if err != nil {
		return ResultConfig{}, err
	}
	return dto.resolve()
}

// LoadFromXML reads the output section of an XML document:
//
//	<config>
//	  <output>
//	    <file>mr.txt</file>
//	    <fields>cpath,mgeom</fields>
//	  </output>
//	</config>
func LoadFromXML(r io.Reader) (ResultConfig, error) {
	return load(r, decodeXML)
}

// LoadFromTOML reads the [output] table of a TOML document.
func LoadFromTOML(r io.Reader) (ResultConfig, error) {
	return load(r, decodeTOML)
}

// LoadFromYAML reads the output mapping of a YAML document.
func LoadFromYAML(r io.Reader) (ResultConfig, error) {
	return load(r, decodeYAML)
}

// LoadFromINI reads the [output] section of an INI document.
func LoadFromINI(r io.Reader) (ResultConfig, error) {
	return load(r, decodeINI)
}

// LoadFromDocument loads a single document, choosing the format from the
// file extension.
func LoadFromDocument(path string) (ResultConfig, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return ResultConfig{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return ResultConfig{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	config, err := load(f, decode)
	if err != nil {
		return config, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return config, nil
}

func decoderFor(path string) (decodeFunc, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported document type %q", ErrMalformedSource, filepath.Ext(path))
	}
	return decode, nil
}

func isDocument(name string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(name))]
	return ok
}
