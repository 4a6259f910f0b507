package curve3d

import "errors"

// Errors returned by the factory and by transforms. They are always wrapped
// together with the offending values; test for them with [errors.Is].
var (
	ErrInvalidRadius       = errors.New("radius must be greater than Tolerance")
	ErrInvalidStep         = errors.New("step must be greater than Tolerance")
	ErrInvalidCenter       = errors.New("center must be finite")
	ErrDegenerateDirection = errors.New("direction vector cannot be normalized")
	ErrNotPerpendicular    = errors.New("directions are not perpendicular")
	ErrNotConformal        = errors.New("transform does not preserve the curve's shape")
	ErrUnknownKind         = errors.New("unknown curve kind")
)
