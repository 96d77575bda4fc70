package duplicates

// Evaluate runs the scan selected by mode. RPA mode requires a source
// collection; a nil one is rejected before any comparison is made. COLLAB
// mode ignores sources.
func Evaluate(mode Mode, sources []SourceRecord, candidates []CandidateRecord, settings Settings) (*Report, error) {
	if err := CheckInputs(mode, sources != nil); err != nil {
		return nil, err
	}

	scanner, err := NewScanner(settings)
	if err != nil {
		return nil, err
	}

	if mode == ModeRPA {
		return scanner.EvaluateCross(sources, candidates), nil
	}
	return scanner.EvaluateSelf(candidates), nil
}

// CheckInputs validates a mode against the datasets that were supplied, so
// callers can fail before loading any file
func CheckInputs(mode Mode, haveSources bool) error {
	switch mode {
	case ModeRPA:
		if !haveSources {
			return &ConfigurationError{Setting: "RPA file", Value: string(mode), Err: ErrMissingDataset}
		}
	case ModeCollab:
	default:
		return &ConfigurationError{Setting: "duplication type", Value: string(mode), Err: ErrUnknownMode}
	}
	return nil
}
