package board

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed boards/us.json
var usBoard []byte

var defaultBoard = sync.OnceValue(func() *Board {
	b, err := parse(usBoard)
	if err != nil {
		panic(fmt.Sprintf("embedded board is invalid: %v", err))
	}
	return b
})

// Default returns the embedded US board layout.
func Default() *Board {
	return defaultBoard()
}
