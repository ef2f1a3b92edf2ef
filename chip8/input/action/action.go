package action

// Action represents input actions that can be performed in the emulator.
type Action int

const (
	// CHIP-8 keypad, keys 0x0 through 0xF. These stay contiguous so a key
	// index can be derived by offset from Key0.
	Key0 Action = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF

	// Emulator features
	EmulatorDebugToggle
	EmulatorSnapshot
	EmulatorPauseToggle
	EmulatorStepFrame
	EmulatorStepInstruction
	EmulatorQuit

	// Debug controls
	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

// Category classifies actions for backends: game input needs hold/release
// tracking, emulator actions are one-shot.
type Category int

const (
	CategoryGameInput Category = iota
	CategoryEmulator
)

// Info describes an action for input handling and debug output.
type Info struct {
	Description string
	Category    Category
}

var infoTable = map[Action]Info{
	EmulatorDebugToggle:     {Description: "toggle debug view", Category: CategoryEmulator},
	EmulatorSnapshot:        {Description: "save frame snapshot", Category: CategoryEmulator},
	EmulatorPauseToggle:     {Description: "pause/resume", Category: CategoryEmulator},
	EmulatorStepFrame:       {Description: "step one frame", Category: CategoryEmulator},
	EmulatorStepInstruction: {Description: "step one instruction", Category: CategoryEmulator},
	EmulatorQuit:            {Description: "quit", Category: CategoryEmulator},
	DebugLogLevelIncrease:   {Description: "log filter more verbose", Category: CategoryEmulator},
	DebugLogLevelDecrease:   {Description: "log filter less verbose", Category: CategoryEmulator},
}

// GetInfo returns metadata for an action. Keypad actions are generated.
func GetInfo(act Action) Info {
	if info, ok := infoTable[act]; ok {
		return info
	}
	if key, ok := KeyIndex(act); ok {
		return Info{
			Description: "keypad " + string("0123456789ABCDEF"[key]),
			Category:    CategoryGameInput,
		}
	}
	return Info{Description: "unknown", Category: CategoryEmulator}
}

// KeyIndex maps a keypad action to its hex key index.
func KeyIndex(act Action) (uint8, bool) {
	if act < Key0 || act > KeyF {
		return 0, false
	}
	return uint8(act - Key0), true
}

// KeyAction maps a hex key index to the corresponding action.
func KeyAction(key uint8) Action {
	return Key0 + Action(key&0xF)
}
