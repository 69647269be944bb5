package prospect

import "errors"

var (
	ErrProspectNotFound   = errors.New("prospect not found")
	ErrCompanyNameMissing = errors.New("company name is required")
	ErrUnsupportedFile    = errors.New("unsupported import file format")
	ErrEmptyImport        = errors.New("import file has no data rows")
	ErrMissingCompanyCol  = errors.New("import file has no company name column")
)
