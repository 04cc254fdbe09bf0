package rushhour

import "errors"

// ErrUnknownStrategy is returned by Solve when given a StrategyName that
// does not name one of the five registered search strategies.
var ErrUnknownStrategy = errors.New("rushhour: unknown strategy")
