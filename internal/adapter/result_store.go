package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// Format is the serialization of a saved result.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	keyEndpoint  = "endpoint"
	keyQueries   = "queries"
	keyMutations = "mutations"
)

var errMalformedResult = errors.New("malformed result document")

// ParseFormat validates a format name. The empty string selects JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want json or yaml)", name)
	}
}

// FormatForPath picks the format from a file extension, JSON by default.
func FormatForPath(path m.Path) Format {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Extension returns the file extension, dot included, for the format.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}

	return ".json"
}

// ResultStore persists extraction results.
//
// The document has three keys in this order: `endpoint` (string or null),
// `queries` and `mutations`. Both maps are keyed by operation name in
// discovery order and hold `query` (the normalized body) and `variables`
// (names in declaration order, never null).
type ResultStore interface {
	SaveResult(path m.Path, result m.ExtractionResult, format Format) error
	LoadResult(path m.Path) (m.ExtractionResult, error)
	EncodeResult(w io.Writer, result m.ExtractionResult, format Format) error
}

// FileResultStore stores results through a SourceFSAdapter, atomically.
type FileResultStore struct {
	fs SourceFSAdapter
}

// NewResultStore creates a FileResultStore.
func NewResultStore(fs SourceFSAdapter) *FileResultStore {
	return &FileResultStore{fs: fs}
}

type wireOperation struct {
	Query     string   `json:"query" yaml:"query"`
	Variables []string `json:"variables" yaml:"variables"`
}

// SaveResult implements ResultStore.
func (s *FileResultStore) SaveResult(path m.Path, result m.ExtractionResult, format Format) error {
	var buf bytes.Buffer

	if err := s.EncodeResult(&buf, result, format); err != nil {
		return err
	}

	if err := s.fs.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save result %s: %w", path, err)
	}

	return nil
}

// LoadResult implements ResultStore. Loaded records carry variable names only;
// their types are not part of the document.
func (s *FileResultStore) LoadResult(path m.Path) (m.ExtractionResult, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return m.ExtractionResult{}, fmt.Errorf("load result %s: %w", path, err)
	}

	var result m.ExtractionResult

	if FormatForPath(path) == FormatYAML {
		result, err = decodeYAML(data)
	} else {
		result, err = decodeJSON(data)
	}

	if err != nil {
		return m.ExtractionResult{}, fmt.Errorf("load result %s: %w", path, err)
	}

	return result, nil
}

// EncodeResult implements ResultStore.
func (s *FileResultStore) EncodeResult(w io.Writer, result m.ExtractionResult, format Format) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatYAML:
		data, err = encodeYAML(result)
	case FormatJSON, "":
		data, err = encodeJSON(result)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}

	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

func encodeJSON(result m.ExtractionResult) ([]byte, error) {
	var compact bytes.Buffer

	compact.WriteString(`{"` + keyEndpoint + `":`)

	if result.Endpoint == nil {
		compact.WriteString("null")
	} else if err := writeJSONValue(&compact, *result.Endpoint); err != nil {
		return nil, err
	}

	for _, section := range []struct {
		key  string
		kind m.OperationKind
	}{{keyQueries, m.Query}, {keyMutations, m.Mutation}} {
		compact.WriteString(`,"` + section.key + `":{`)

		for i, r := range result.Operations.OfKind(section.kind) {
			if i > 0 {
				compact.WriteByte(',')
			}

			if err := writeJSONValue(&compact, r.Name); err != nil {
				return nil, err
			}

			compact.WriteByte(':')

			if err := writeJSONValue(&compact, wireOperation{Query: r.Body, Variables: r.VariableNames()}); err != nil {
				return nil, err
			}
		}

		compact.WriteByte('}')
	}

	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indent result: %w", err)
	}

	out.WriteByte('\n')

	return out.Bytes(), nil
}

// writeJSONValue encodes v without HTML escaping and without the trailing newline.
func writeJSONValue(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer

	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))

	return nil
}

func decodeJSON(data []byte) (m.ExtractionResult, error) {
	result := m.ExtractionResult{Operations: m.NewOperationSet()}
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return result, err
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return result, err
		}

		key, _ := tok.(string)

		switch key {
		case keyEndpoint:
			var endpoint *string
			if err := dec.Decode(&endpoint); err != nil {
				return result, fmt.Errorf("endpoint: %w", err)
			}

			result.Endpoint = endpoint
		case keyQueries:
			err = decodeJSONOperations(dec, m.Query, result.Operations)
		case keyMutations:
			err = decodeJSONOperations(dec, m.Mutation, result.Operations)
		default:
			var skip json.RawMessage
			err = dec.Decode(&skip)
		}

		if err != nil {
			return result, err
		}
	}

	return result, expectDelim(dec, '}')
}

func decodeJSONOperations(dec *json.Decoder, kind m.OperationKind, set *m.OperationSet) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if tok == nil {
		return nil
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: %s must be an object", errMalformedResult, kind)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		name, _ := tok.(string)

		var op wireOperation
		if err := dec.Decode(&op); err != nil {
			return fmt.Errorf("%s %s: %w", kind, name, err)
		}

		set.Add(recordFromWire(kind, name, op))
	}

	return expectDelim(dec, '}')
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q", errMalformedResult, want)
	}

	return nil
}

func recordFromWire(kind m.OperationKind, name string, op wireOperation) m.OperationRecord {
	variables := make([]m.VariableDecl, 0, len(op.Variables))
	for _, v := range op.Variables {
		variables = append(variables, m.VariableDecl{Name: v})
	}

	return m.OperationRecord{Kind: kind, Name: name, Body: op.Query, Variables: variables}
}

func encodeYAML(result m.ExtractionResult) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	endpoint := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	if result.Endpoint != nil {
		endpoint = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: *result.Endpoint}
	}

	root.Content = append(root.Content, yamlString(keyEndpoint), endpoint)

	for _, section := range []struct {
		key  string
		kind m.OperationKind
	}{{keyQueries, m.Query}, {keyMutations, m.Mutation}} {
		ops := &yaml.Node{Kind: yaml.MappingNode}

		for _, r := range result.Operations.OfKind(section.kind) {
			vars := &yaml.Node{Kind: yaml.SequenceNode}
			if len(r.Variables) == 0 {
				vars.Style = yaml.FlowStyle
			}

			for _, name := range r.VariableNames() {
				vars.Content = append(vars.Content, yamlString(name))
			}

			op := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
				yamlString("query"), yamlString(r.Body),
				yamlString("variables"), vars,
			}}

			ops.Content = append(ops.Content, yamlString(r.Name), op)
		}

		root.Content = append(root.Content, yamlString(section.key), ops)
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	return buf.Bytes(), nil
}

func yamlString(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func decodeYAML(data []byte) (m.ExtractionResult, error) {
	result := m.ExtractionResult{Operations: m.NewOperationSet()}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return result, err
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return result, fmt.Errorf("%w: expected a mapping", errMalformedResult)
	}

	root := doc.Content[0]

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]

		switch key {
		case keyEndpoint:
			if value.Tag != "!!null" {
				endpoint := value.Value
				result.Endpoint = &endpoint
			}
		case keyQueries, keyMutations:
			kind := m.Query
			if key == keyMutations {
				kind = m.Mutation
			}

			if err := decodeYAMLOperations(value, kind, result.Operations); err != nil {
				return result, err
			}
		}
	}

	return result, nil
}

func decodeYAMLOperations(node *yaml.Node, kind m.OperationKind, set *m.OperationSet) error {
	if node.Tag == "!!null" {
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: %s must be a mapping", errMalformedResult, kind)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value

		var op wireOperation
		if err := node.Content[i+1].Decode(&op); err != nil {
			return fmt.Errorf("%s %s: %w", kind, name, err)
		}

		set.Add(recordFromWire(kind, name, op))
	}

	return nil
}
