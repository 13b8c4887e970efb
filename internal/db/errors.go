// internal/db/errors.go
package db

import "fmt"

// ConnectionError wraps failures opening or pinging a database
type ConnectionError struct {
	Driver     DriverType
	Underlying error
}

func (e *ConnectionError) Error() string {
	if e.Driver == "" {
		return fmt.Sprintf("connection failed: %v", e.Underlying)
	}
	return fmt.Sprintf("%s: connection failed: %v", e.Driver, e.Underlying)
}

func (e *ConnectionError) Unwrap() error {
	return e.Underlying
}

// QueryError wraps failures reading a table's column metadata
type QueryError struct {
	Driver     DriverType
	Table      string
	Underlying error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: reading columns of %q: %v", e.Driver, e.Table, e.Underlying)
}

func (e *QueryError) Unwrap() error {
	return e.Underlying
}

func connectionError(driver DriverType, err error) error {
	return &ConnectionError{Driver: driver, Underlying: err}
}

func queryError(driver DriverType, table string, err error) error {
	return &QueryError{Driver: driver, Table: table, Underlying: err}
}
