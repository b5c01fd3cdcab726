package wordtoudf

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// withoutMedia skips media extraction; every image reference dangles
	// and is dropped from the output.
	withoutMedia bool
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		withoutMedia: false,
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		withoutMedia: o.withoutMedia,
	}
}
