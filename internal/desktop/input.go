package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/spaceshooter/internal/object"
)

// Key bindings. Any key in a group triggers the action.
var (
	keysLeft  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	keysRight = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	keysUp    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	keysDown  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	keysFire  = []ebiten.Key{ebiten.KeySpace}
	keysQuit  = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// readInput samples the keyboard for this tick.
func readInput() object.Input {
	return mapKeys(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// mapKeys builds an Input from key state queries. ebiten reports true
// key-down and just-pressed state, so no hold heuristics are needed.
func mapKeys(pressed, justPressed func(ebiten.Key) bool) object.Input {
	return object.Input{
		Quit:        anyKey(pressed, keysQuit),
		Left:        anyKey(pressed, keysLeft),
		Right:       anyKey(pressed, keysRight),
		Up:          anyKey(pressed, keysUp),
		Down:        anyKey(pressed, keysDown),
		Fire:        anyKey(pressed, keysFire),
		FirePressed: anyKey(justPressed, keysFire),
	}
}

func anyKey(test func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if test(k) {
			return true
		}
	}
	return false
}
