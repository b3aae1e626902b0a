package lru

import "fmt"

type constError string

const (
	// ErrInvalidCapacity may be returned from [New], [NewObserved], and [NewFrom].
	ErrInvalidCapacity = constError("invalid capacity")
	// ErrInvalidSeed may be returned from [NewFrom].
	ErrInvalidSeed = constError("invalid seed")
)

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidCapacity, MinimumCapacity, capacity)
}

func duplicateSeedError[Key comparable](key Key) error {
	return fmt.Errorf(
		"%w: key %v appears more than once",
		ErrInvalidSeed, key)
}

func overfullSeedError(capacity int) error {
	return fmt.Errorf(
		"%w: more than %d entries were supplied",
		ErrInvalidSeed, capacity)
}
