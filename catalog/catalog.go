// Package catalog ships the default set of four color schemes.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed schemes.json
var schemesJSON []byte

// Default returns the embedded schemes as rows of hex strings, in file order.
func Default() ([][]string, error) {
	var rows [][]string
	if err := json.Unmarshal(schemesJSON, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode embedded schemes: %w", err)
	}
	return rows, nil
}
