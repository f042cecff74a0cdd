package elapsed

import "errors"

// ErrUnknownLocale indicates that no built-in name tables match a locale code.
var ErrUnknownLocale = errors.New("elapsed: unknown locale")

// ErrInvalidTables marks locale tables with missing or malformed names.
var ErrInvalidTables = errors.New("elapsed: invalid locale tables")

// ErrLocked is returned by Refresher.Scan while another scan is running.
var ErrLocked = errors.New("elapsed: refresh is locked")

// ErrNoDocument is returned when a refresher is built without a document.
var ErrNoDocument = errors.New("elapsed: no document")
