package hotkey

import "strings"

// Rawcodes are Windows virtual key codes, which gohook reports on all the
// platforms we hook. Letters occupy the contiguous 0x41-0x5A block.
const (
	vkEscape  uint16 = 27
	vkLetterA uint16 = 65
	vkLetterZ uint16 = 90
)

// LetterForRawcode maps a key press to its hint letter ('a'-'z').
// Returns false for any key that is not a plain letter.
func LetterForRawcode(rawcode uint16) (rune, bool) {
	if rawcode < vkLetterA || rawcode > vkLetterZ {
		return 0, false
	}
	return rune('a' + rawcode - vkLetterA), true
}

// IsCancel reports whether a key press cancels hint mode.
func IsCancel(rawcode uint16) bool {
	return rawcode == vkEscape
}

// keyNameToRawcodes maps a key name to its virtual key code rawcodes,
// both left and right variants for modifiers.
func keyNameToRawcodes(keyName string) []uint16 {
	keyName = strings.ToLower(strings.TrimSpace(keyName))

	switch keyName {
	case "ctrl":
		return []uint16{162, 163} // VK_LCONTROL, VK_RCONTROL
	case "alt":
		return []uint16{164, 165} // VK_LMENU, VK_RMENU
	case "shift":
		return []uint16{160, 161} // VK_LSHIFT, VK_RSHIFT
	case "win", "cmd", "super":
		return []uint16{91, 92} // VK_LWIN, VK_RWIN
	case "space":
		return []uint16{32} // VK_SPACE
	case "enter", "return":
		return []uint16{13} // VK_RETURN
	case "esc", "escape":
		return []uint16{vkEscape}
	case "tab":
		return []uint16{9} // VK_TAB
	}

	// Single letters and digits map straight to their VK codes.
	if len(keyName) == 1 {
		c := keyName[0]
		if c >= 'a' && c <= 'z' {
			return []uint16{uint16(c-'a') + vkLetterA}
		}
		if c >= '0' && c <= '9' {
			return []uint16{uint16(c-'0') + 48}
		}
	}

	// Function keys F1-F24 are VK 112-135.
	if strings.HasPrefix(keyName, "f") {
		n := 0
		for _, c := range keyName[1:] {
			if c < '0' || c > '9' {
				n = 0
				break
			}
			n = n*10 + int(c-'0')
		}
		if n >= 1 && n <= 24 {
			return []uint16{uint16(111 + n)}
		}
	}

	return nil
}
