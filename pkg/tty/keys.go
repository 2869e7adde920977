package tty

// holdFrames is how long a key stays down after it was read. Terminals do
// not report key releases, auto repeat refreshes the hold.
const holdFrames = 6

// Keys turns terminal key presses into keypad press and release events
type Keys struct {
	hold   [16]int
	setKey func(code uint8, pressed bool)
}

// NewKeys returns a key tracker reporting state changes to setKey
func NewKeys(setKey func(code uint8, pressed bool)) *Keys {
	return &Keys{setKey: setKey}
}

// Press records a key read from the terminal
func (k *Keys) Press(code uint8) {
	code &= 0xF
	if k.hold[code] == 0 {
		k.setKey(code, true)
	}
	k.hold[code] = holdFrames
}

// Tick advances one frame and releases keys whose hold expired
func (k *Keys) Tick() {
	for code := range k.hold {
		if k.hold[code] == 0 {
			continue
		}
		k.hold[code]--
		if k.hold[code] == 0 {
			k.setKey(uint8(code), false)
		}
	}
}
