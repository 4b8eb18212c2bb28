// Package transfer imports and exports the group mapping as a standalone
// document: an object of group name to an ordered list of {path, alias}.
package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"pathswitch/internal/errors"
	"pathswitch/internal/model"
)

// DefaultFileName is suggested when exporting.
const DefaultFileName = "pathswitch_config.json"

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the file extension; JSON unless the name
// ends in .yaml or .yml.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Export writes groups to path.
func Export(fs afero.Fs, path string, groups *model.Groups) error {
	b, err := Encode(FormatFor(path), groups)
	if err != nil {
		return errors.Wrap(err, errors.ErrExportWrite, "encode configuration")
	}
	if err := afero.WriteFile(fs, path, b, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrExportWrite, "write %s", path)
	}
	return nil
}

// Import reads a document from path. Nothing is returned unless the whole
// document parses.
func Import(fs afero.Fs, path string) (*model.Groups, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrImportRead, "read %s", path)
	}
	groups, err := Decode(FormatFor(path), b)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrImportParse, "parse %s", path)
	}
	return groups, nil
}

// Encode renders groups in format, keeping group order.
func Encode(format Format, groups *model.Groups) ([]byte, error) {
	switch format {
	case FormatYAML:
		return encodeYAML(groups)
	case FormatJSON:
		return encodeJSON(groups)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Decode parses a document in format.
func Decode(format Format, data []byte) (*model.Groups, error) {
	var (
		records []model.GroupRecord
		err     error
	)
	switch format {
	case FormatYAML:
		records, err = decodeYAML(data)
	case FormatJSON:
		records, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if err := validate(records); err != nil {
		return nil, err
	}
	return model.GroupsFromRecords(records), nil
}

func validate(records []model.GroupRecord) error {
	for _, r := range records {
		if r.Name == "" {
			return fmt.Errorf("group name must not be empty")
		}
		for i, e := range r.Entries {
			if e.Path == "" {
				return fmt.Errorf("group %q entry %d: path must not be empty", r.Name, i)
			}
		}
	}
	return nil
}

func encodeJSON(groups *model.Groups) ([]byte, error) {
	records := groups.Records()
	if len(records) == 0 {
		return []byte("{}\n"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, r := range records {
		key, err := json.Marshal(r.Name)
		if err != nil {
			return nil, err
		}
		entries := r.Entries
		if entries == nil {
			entries = []model.VersionEntry{}
		}
		val, err := json.MarshalIndent(entries, "  ", "  ")
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
		if i < len(records)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// decodeJSON walks the top-level object token by token; decoding into a map
// would lose the group order.
func decodeJSON(data []byte) ([]model.GroupRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected an object of groups, got %v", tok)
	}

	var records []model.GroupRecord
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected a group name, got %v", tok)
		}
		var entries []model.VersionEntry
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		records = append(records, model.GroupRecord{Name: name, Entries: entries})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after the groups object")
	}
	return records, nil
}

func encodeYAML(groups *model.Groups) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, r := range groups.Records() {
		val := &yaml.Node{}
		if err := val.Encode(r.Entries); err != nil {
			return nil, err
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Name},
			val,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeYAML(data []byte) ([]model.GroupRecord, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of groups", root.Line)
	}

	records := make([]model.GroupRecord, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		var entries []model.VersionEntry
		if err := val.Decode(&entries); err != nil {
			return nil, fmt.Errorf("group %q: %w", key.Value, err)
		}
		records = append(records, model.GroupRecord{Name: key.Value, Entries: entries})
	}
	return records, nil
}
