package port

import "errors"

// ErrNotFound возвращается хранилищем, когда записи нет у данного владельца.
var ErrNotFound = errors.New("not found")
