package window

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bella-project/bella/input"
)

// ErrUnknownKey reports a platform key event with no logical mapping.
// The poll loop drops such events; a malformed key must never take the
// frame loop down.
var ErrUnknownKey = errors.New("unknown key")

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyEsc:        input.KeyEscape,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

// TranslateKey maps a tcell key event to a logical key code
func TranslateKey(ev *tcell.EventKey) (input.Key, error) {
	if ev.Key() == tcell.KeyRune {
		return translateRune(ev.Rune())
	}
	if k, ok := specialKeys[ev.Key()]; ok {
		return k, nil
	}
	return input.KeyUnknown, fmt.Errorf("%w: tcell key %d", ErrUnknownKey, ev.Key())
}

func translateRune(r rune) (input.Key, error) {
	switch {
	case r >= 'a' && r <= 'z':
		return input.KeyA + input.Key(r-'a'), nil
	case r >= 'A' && r <= 'Z':
		return input.KeyA + input.Key(r-'A'), nil
	case r >= '0' && r <= '9':
		return input.Key0 + input.Key(r-'0'), nil
	case r == ' ':
		return input.KeySpace, nil
	}
	return input.KeyUnknown, fmt.Errorf("%w: rune %q", ErrUnknownKey, r)
}
