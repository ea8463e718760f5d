// Package consts provides the names of the workon operations.
package consts

// Operation names, used in logs and unexpected error reports.
const (
	Start      = "Start"
	Done       = "Done"
	EditConfig = "EditConfig"
)
