package cli

import (
	"encoding/json"
	"io"
	"strconv"

	"pathswitch/internal/errors"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0, errors.Newf(errors.ErrInvalidInput, "invalid index %q", s)
	}
	return i, nil
}
