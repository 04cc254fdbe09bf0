// Package rushhour wires the board and search packages together behind a
// small logging facade. Apart from the cmd/rushhour-demo command, it is the
// only package in this module that takes a dependency on a logger
// (github.com/op/go-logging); board and the
// strategy packages (bfs, dfs, ids, ucs, astar) stay library-clean and
// communicate progress purely through their Option hooks.
//
// Solve runs a single named strategy against a board and logs its phase
// transitions and final statistics at Info/Debug level.
package rushhour

import "github.com/op/go-logging"

var log = logging.MustGetLogger("rushhour")
