package input

// NumKeys is the number of keys on the CHIP-8 keypad, addressed 0x0-0xF.
const NumKeys = 16

// Keypad holds the level-triggered state of the 16-key input device.
//
// The input collaborator (a backend) is the only writer via Press and
// Release; the interpreter only reads. Besides the level state, the keypad
// latches the most recent press edge so the wait-for-key opcode can pick up
// a key that was tapped between two interpreter steps.
type Keypad struct {
	pressed [NumKeys]bool

	latched    bool
	latchedKey uint8
}

// NewKeypad returns a keypad with no keys pressed.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Press marks a key as held down. A transition from released to pressed is
// recorded in the press latch. Keys outside 0x0-0xF are ignored.
func (k *Keypad) Press(key uint8) {
	if key >= NumKeys {
		return
	}
	if !k.pressed[key] {
		k.latched = true
		k.latchedKey = key
	}
	k.pressed[key] = true
}

// Release marks a key as no longer held down.
func (k *Keypad) Release(key uint8) {
	if key >= NumKeys {
		return
	}
	k.pressed[key] = false
}

// IsPressed reports whether a key is currently held down.
func (k *Keypad) IsPressed(key uint8) bool {
	return key < NumKeys && k.pressed[key]
}

// ConsumePress returns the most recent press edge, if one occurred since
// the last call to ConsumePress or ClearPressLatch.
func (k *Keypad) ConsumePress() (uint8, bool) {
	if !k.latched {
		return 0, false
	}
	k.latched = false
	return k.latchedKey, true
}

// ClearPressLatch discards any recorded press edge. The interpreter calls
// this when a wait-for-key instruction starts, so only presses arriving
// afterwards satisfy the wait.
func (k *Keypad) ClearPressLatch() {
	k.latched = false
}
