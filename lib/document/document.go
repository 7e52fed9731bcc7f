// Package document builds component trees from declarative YAML documents.
//
// A document is a tree of GOV.UK element nodes:
//
//	title: Contact preference
//	body:
//	  - tag: govuk-form
//	    attrs: {action: /contact}
//	    children:
//	      - tag: govuk-radios
//	        attrs: {name: contact}
//	        children:
//	          - tag: govuk-radios-fieldset
//	            children:
//	              - tag: govuk-fieldset-legend
//	                children: [How would you like to be contacted?]
//	          - tag: govuk-radios-item
//	            attrs: {value: email}
//	            children: [Email]
//
// A bare scalar in a children list is text content.
package document

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pthm/govuk"
	"gopkg.in/yaml.v3"
)

// maxDocumentSize bounds documents read from disk.
const maxDocumentSize = 1 << 20

// ErrEmptyDocument is returned for a document with no body.
var ErrEmptyDocument = errors.New("document has no body")

// Document is a page described in YAML.
type Document struct {
	Title string `yaml:"title"`
	// Stylesheet is linked from the page head when the document is rendered
	// as a full page.
	Stylesheet string `yaml:"stylesheet"`
	Body       []Node `yaml:"body"`
	// Validation maps field names to the message recorded when the field is
	// submitted empty.
	Validation map[string]string `yaml:"validation"`
	// Next is where a valid submission is redirected.
	Next string `yaml:"next"`
	// ModelState previews errors and values without a submission.
	ModelState *govuk.ModelState `yaml:"model_state"`
}

// Node is one element of a document body.
type Node struct {
	Tag      string         `yaml:"tag"`
	Attrs    map[string]any `yaml:"attrs"`
	Text     string         `yaml:"text"`
	HTML     string         `yaml:"html"`
	Children []Node         `yaml:"children"`
}

// UnmarshalYAML accepts a scalar as a text node.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*n = Node{Text: value.Value}
		return nil
	}
	type plain Node
	return value.Decode((*plain)(n))
}

// Parse decodes a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if len(doc.Body) == 0 {
		return nil, ErrEmptyDocument
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxDocumentSize {
		return nil, fmt.Errorf("document %s exceeds %d bytes", path, maxDocumentSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Validate checks submitted values against the document's validation rules
// and returns the resulting model state. Every submitted value is kept so the
// page can redisplay it.
func (d *Document) Validate(values map[string][]string) *govuk.ModelState {
	state := govuk.NewModelState()
	for field, v := range values {
		if len(v) > 0 {
			state.SetValue(field, joinValues(v))
		}
	}
	for field, message := range d.Validation {
		if v, _ := state.Value(field); isBlank(v) {
			state.AddError(field, message)
		}
	}
	return state
}

// joinValues folds a repeated field (checkboxes) into the comma-separated
// form components read back.
func joinValues(v []string) string {
	return strings.Join(v, ",")
}

func isBlank(s string) bool {
	return strings.Trim(s, " \t\r\n,") == ""
}
