package document

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/a-h/templ"
	"github.com/pthm/govuk"
	"github.com/pthm/govuk/components"
)

var (
	// ErrUnknownElement is returned for a node whose tag is not registered.
	ErrUnknownElement = errors.New("unknown element")
	// ErrDuplicateTag is returned when a tag is registered twice.
	ErrDuplicateTag = errors.New("tag already registered")
)

// Factory builds the component for one node from its attributes.
type Factory func(attrs map[string]any) (templ.Component, error)

// Props returns a Factory that decodes attributes into P and passes them to
// build.
//
//	reg.Register(components.TagInput, document.Props(components.Input))
func Props[P any](build func(P) templ.Component) Factory {
	return func(attrs map[string]any) (templ.Component, error) {
		var p P
		if err := Decode(attrs, &p); err != nil {
			return nil, err
		}
		return build(p), nil
	}
}

// Bare returns a Factory for a component without attributes.
func Bare(build func() templ.Component) Factory {
	return func(attrs map[string]any) (templ.Component, error) {
		if len(attrs) > 0 {
			name := sortedKeys(attrs)[0]
			return nil, &AttributeError{Attribute: name, Err: ErrUnknownAttribute}
		}
		return build(), nil
	}
}

// Registry maps document tags to component factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for tag.
func (r *Registry) Register(tag string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[tag]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTag, tag)
	}
	r.factories[tag] = f
	return nil
}

// Lookup returns the factory for tag.
func (r *Registry) Lookup(tag string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[tag]
	return f, ok
}

// Tags returns the registered tags, sorted.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.factories)
}

// Build turns nodes into a single component.
func (r *Registry) Build(nodes []Node) (templ.Component, error) {
	built := make([]templ.Component, 0, len(nodes))
	for _, n := range nodes {
		c, err := r.build(n)
		if err != nil {
			return nil, err
		}
		built = append(built, c)
	}
	return govuk.Join(built...), nil
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (r *Registry) build(n Node) (templ.Component, error) {
	if n.Tag == "" {
		if n.HTML != "" {
			return govuk.HTML(n.HTML), nil
		}
		return govuk.Text(n.Text), nil
	}

	f, ok := r.Lookup(n.Tag)
	if !ok {
		return nil, fmt.Errorf("%w: <%s>", ErrUnknownElement, n.Tag)
	}
	c, err := f(n.Attrs)
	if err != nil {
		var ae *AttributeError
		if errors.As(err, &ae) && ae.Tag == "" {
			ae.Tag = n.Tag
		}
		return nil, err
	}

	children := make([]templ.Component, 0, len(n.Children)+2)
	if n.Text != "" {
		children = append(children, govuk.Text(n.Text))
	}
	if n.HTML != "" {
		children = append(children, govuk.HTML(n.HTML))
	}
	for _, child := range n.Children {
		cc, err := r.build(child)
		if err != nil {
			return nil, err
		}
		children = append(children, cc)
	}
	return govuk.With(c, children...), nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns a registry holding every GOV.UK component.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for tag, f := range builtins() {
			// Tags in builtins are unique.
			_ = defaultRegistry.Register(tag, f)
		}
	})
	return defaultRegistry
}

func builtins() map[string]Factory {
	return map[string]Factory{
		components.TagInput:          Props(components.Input),
		components.TagTextarea:       Props(components.Textarea),
		components.TagCharacterCount: Props(components.CharacterCount),
		components.TagFileUpload:     Props(components.FileUpload),
		components.TagSelect:         Props(components.Select),
		components.TagSelectItem:     Props(components.SelectItem),
		components.TagLabel:          Props(components.Label),
		components.TagHint:           Props(components.Hint),
		components.TagErrorMessage:   Props(components.ErrorMessage),
		components.TagValue:          Bare(components.Value),

		components.TagFieldset:           Props(components.Fieldset),
		components.TagLegend:             Props(components.Legend),
		components.TagRadiosFieldset:     Props(components.RadiosFieldset),
		components.TagCheckboxesFieldset: Props(components.CheckboxesFieldset),
		components.TagDateInputFieldset:  Props(components.DateInputFieldset),

		components.TagRadios:            Props(components.Radios),
		components.TagRadiosItem:        Props(components.RadiosItem),
		components.TagRadiosDivider:     Props(components.RadiosDivider),
		components.TagCheckboxes:        Props(components.Checkboxes),
		components.TagCheckboxesItem:    Props(components.CheckboxesItem),
		components.TagCheckboxesDivider: Props(components.CheckboxesDivider),
		components.TagConditional:       Props(components.Conditional),
		components.TagDateInput:         Props(components.DateInput),
		components.TagDateInputItem:     Props(components.DateInputItem),

		components.TagForm:                    Props(components.Form),
		components.TagPageTitle:               Props(components.PageTitle),
		components.TagErrorSummary:            Props(components.ErrorSummary),
		components.TagErrorSummaryTitle:       Props(components.ErrorSummaryTitle),
		components.TagErrorSummaryDescription: Props(components.ErrorSummaryDescription),
		components.TagErrorSummaryItem:        Props(components.ErrorSummaryItem),

		components.TagAccordion:            Props(components.Accordion),
		components.TagAccordionItem:        Props(components.AccordionItem),
		components.TagAccordionItemHeading: Props(components.AccordionItemHeading),
		components.TagAccordionItemSummary: Props(components.AccordionItemSummary),
		components.TagBreadcrumbs:          Props(components.Breadcrumbs),
		components.TagBreadcrumbsItem:      Props(components.BreadcrumbsItem),
		components.TagSummaryList:          Props(components.SummaryList),
		components.TagSummaryListRow:       Props(components.SummaryListRow),
		components.TagSummaryListRowKey:    Props(components.SummaryListRowKey),
		components.TagSummaryListRowValue:  Props(components.SummaryListRowValue),
		components.TagSummaryListRowAction: Props(components.SummaryListRowAction),
		components.TagTabs:                 Props(components.Tabs),
		components.TagTabsItem:             Props(components.TabsItem),

		components.TagDetails:                 Props(components.Details),
		components.TagDetailsSummary:          Props(components.DetailsSummary),
		components.TagDetailsText:             Props(components.DetailsText),
		components.TagPanel:                   Props(components.Panel),
		components.TagPanelTitle:              Props(components.PanelTitle),
		components.TagPanelBody:               Props(components.PanelBody),
		components.TagPhaseBanner:             Props(components.PhaseBanner),
		components.TagPhaseBannerTag:          Props(components.PhaseBannerTag),
		components.TagNotificationBanner:      Props(components.NotificationBanner),
		components.TagNotificationBannerTitle: Props(components.NotificationBannerTitle),

		components.TagTag:         Props(components.Tag),
		components.TagBackLink:    Props(components.BackLink),
		components.TagSkipLink:    Props(components.SkipLink),
		components.TagInsetText:   Props(components.InsetText),
		components.TagWarningText: Props(components.WarningText),
		components.TagButton:      Props(components.Button),
		components.TagButtonLink:  Props(components.ButtonLink),
	}
}
