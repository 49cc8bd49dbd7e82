package catalog

import "errors"

var ErrParse = errors.New("parse error")
