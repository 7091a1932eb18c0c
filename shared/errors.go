package shared

import (
	"errors"
	"fmt"
)

// ErrPartialItem is matched by PartialItemError.
var ErrPartialItem = errors.New("partial item")

// PartialItemError reports an item cut short by the end of the stream.
type PartialItemError struct {
	Bits        int
	ItemBitSize int
}

func (err *PartialItemError) Error() string {
	return fmt.Sprintf("%v: %d of %d bits", ErrPartialItem, err.Bits, err.ItemBitSize)
}

func (err *PartialItemError) Is(target error) bool {
	return target == ErrPartialItem
}
