package model

// KeypadLayout is the character map of the 4x4 key matrix, indexed [row][column].
var KeypadLayout = [4][4]rune{
	{'1', '2', '3', '4'},
	{'5', '6', '7', '8'},
	{'9', '0', 'A', 'B'},
	{'C', 'D', 'E', 'F'},
}

// IsKeypadKey reports whether key belongs to the keypad alphabet.
func IsKeypadKey(key rune) bool {
	return (key >= '0' && key <= '9') || (key >= 'A' && key <= 'F')
}
