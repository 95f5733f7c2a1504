package document

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML document. The root must be a mapping.
func ParseYAML(data []byte) (map[string]any, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseJSON parses a JSON document. The root must be an object.
// Integral numbers become int64, others float64.
func ParseJSON(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected content after top-level object")
	}
	return root, nil
}

// ParseTOML parses a TOML document.
func ParseTOML(data []byte) (map[string]any, error) {
	var root map[string]any
	if _, err := toml.Decode(string(data), &root); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseINI parses an INI document. Keys before the first section header are
// top level; dotted section names nest ("[environments.production]").
// Values are typed: true/on/yes and false/off/no/none become booleans and
// numeric strings become numbers.
func ParseINI(data []byte) (map[string]any, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		SpaceBeforeInlineComment: true,
		AllowBooleanKeys:         true,
	}, data)
	if err != nil {
		return nil, err
	}

	root := make(map[string]any)
	for _, sec := range f.Sections() {
		target := root
		if sec.Name() != ini.DefaultSection {
			target, err = iniSection(root, sec.Name())
			if err != nil {
				return nil, err
			}
		}
		for _, key := range sec.Keys() {
			if existing, ok := target[key.Name()].(map[string]any); ok && len(existing) > 0 {
				return nil, fmt.Errorf("key %q in section %q collides with a nested section", key.Name(), sec.Name())
			}
			target[key.Name()] = typedScalar(key.String())
		}
	}
	return root, nil
}

// iniSection returns the nested map for a dotted section name, creating it.
func iniSection(root map[string]any, name string) (map[string]any, error) {
	cur := root
	for _, part := range strings.Split(name, ".") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("invalid section name %q", name)
		}
		next, exists := cur[part]
		if !exists {
			m := make(map[string]any)
			cur[part] = m
			cur = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("section %q collides with key %q", name, part)
		}
		cur = m
	}
	return cur, nil
}

// ParseCSV parses a flat key/value table. Rows have either two columns
// (key,value) or three (section,key,value). Blank rows and rows starting
// with '#' are skipped. Values are typed like INI values.
func ParseCSV(data []byte) (map[string]any, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	root := make(map[string]any)
	for line := 1; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch len(record) {
		case 2:
			key := strings.TrimSpace(record[0])
			if key == "" {
				return nil, fmt.Errorf("record %d: empty key", line)
			}
			if _, ok := root[key].(map[string]any); ok {
				return nil, fmt.Errorf("record %d: key %q collides with section", line, key)
			}
			root[key] = typedScalar(record[1])
		case 3:
			section, key := strings.TrimSpace(record[0]), strings.TrimSpace(record[1])
			if section == "" || key == "" {
				return nil, fmt.Errorf("record %d: empty section or key", line)
			}
			m, ok := root[section].(map[string]any)
			if !ok {
				if _, exists := root[section]; exists {
					return nil, fmt.Errorf("record %d: section %q collides with key", line, section)
				}
				m = make(map[string]any)
				root[section] = m
			}
			m[key] = typedScalar(record[2])
		default:
			return nil, fmt.Errorf("record %d: expected 2 or 3 fields, got %d", line, len(record))
		}
	}
	return root, nil
}
