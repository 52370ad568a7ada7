package pkg

import (
	"errors"
	"fmt"
	"strconv"
)

// IDFromVars reads the numeric "id" path variable. Callers treat any error
// as a bad request.
func IDFromVars(vars map[string]string) (int, error) {
	idStr := vars["id"]
	if idStr == "" {
		return 0, errors.New("error, id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("error, id NaN")
	}
	return id, nil
}

// PageSizeFromVars reads the "page" and "size" path variables of a list
// request. Bounds are checked by the caller.
func PageSizeFromVars(vars map[string]string) (page, size int, err error) {
	page, err = strconv.Atoi(vars["page"])
	if err != nil {
		return 0, 0, fmt.Errorf("parse form error, parameter <page>")
	}
	size, err = strconv.Atoi(vars["size"])
	if err != nil {
		return 0, 0, fmt.Errorf("parse form error, parameter <size>")
	}
	return page, size, nil
}
