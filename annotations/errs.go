package annotations

import "errors"

var ErrDecode = errors.New("decode error")
