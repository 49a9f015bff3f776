package catalog

import "errors"

// ErrItemNotFound is returned when an item is not in the item table
var ErrItemNotFound = errors.New("item not found")
