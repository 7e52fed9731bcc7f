package govuk

// Options are global, read-only render behaviours. They are fixed for the
// lifetime of a traversal.
type Options struct {
	// PrependErrorSummary makes Form render an error summary, built from the
	// errors its form groups reported, above its content when the form does
	// not already contain one.
	PrependErrorSummary bool `koanf:"prepend_error_summary" yaml:"prepend_error_summary"`
	// PrependErrorToTitle prefixes PageTitle with TitleErrorPrefix when the
	// model state holds errors.
	PrependErrorToTitle bool `koanf:"prepend_error_to_title" yaml:"prepend_error_to_title"`
	// ErrorSummaryTitle is the default error summary heading.
	ErrorSummaryTitle string `koanf:"error_summary_title" yaml:"error_summary_title"`
	// VisuallyHiddenErrorPrefix is read by screen readers ahead of each
	// error message.
	VisuallyHiddenErrorPrefix string `koanf:"visually_hidden_error_prefix" yaml:"visually_hidden_error_prefix"`
	// TitleErrorPrefix is prepended to the page title when there are errors.
	TitleErrorPrefix string `koanf:"title_error_prefix" yaml:"title_error_prefix"`
}

// DefaultOptions returns the behaviour of the GOV.UK Design System patterns.
func DefaultOptions() Options {
	return Options{
		PrependErrorSummary:       true,
		PrependErrorToTitle:       true,
		ErrorSummaryTitle:         "There is a problem",
		VisuallyHiddenErrorPrefix: "Error",
		TitleErrorPrefix:          "Error: ",
	}
}

// withDefaults fills empty strings from DefaultOptions. Booleans are taken
// as given.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ErrorSummaryTitle == "" {
		o.ErrorSummaryTitle = d.ErrorSummaryTitle
	}
	if o.VisuallyHiddenErrorPrefix == "" {
		o.VisuallyHiddenErrorPrefix = d.VisuallyHiddenErrorPrefix
	}
	if o.TitleErrorPrefix == "" {
		o.TitleErrorPrefix = d.TitleErrorPrefix
	}
	return o
}
