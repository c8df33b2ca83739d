package nav

import "unicode"

// Symbol is an abstract input, independent of the key that produced it.
type Symbol int

const (
	SymNone Symbol = iota
	SymHome
	SymServers
	SymQuit
	SymNext
	SymPrev
	SymOpen
	SymConfirm
	SymBack
	SymAdd
	SymDelete
	SymEdit
	SymOpenMods
	SymToggle
	SymStart
	SymStop
	SymRestart
	SymStatus
	SymChar
	SymBackspace
)

var symbolNames = map[Symbol]string{
	SymNone:      "none",
	SymHome:      "home",
	SymServers:   "servers",
	SymQuit:      "quit",
	SymNext:      "next",
	SymPrev:      "prev",
	SymOpen:      "open",
	SymConfirm:   "confirm",
	SymBack:      "back",
	SymAdd:       "add",
	SymDelete:    "delete",
	SymEdit:      "edit",
	SymOpenMods:  "mods",
	SymToggle:    "toggle",
	SymStart:     "start",
	SymStop:      "stop",
	SymRestart:   "restart",
	SymStatus:    "status",
	SymChar:      "char",
	SymBackspace: "backspace",
}

func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return "unknown"
}

// Input is one dispatched event. Rune is set only for SymChar.
type Input struct {
	Sym  Symbol
	Rune rune
}

// Sym wraps a bare symbol.
func Sym(s Symbol) Input { return Input{Sym: s} }

// Char wraps a typed character.
func Char(r rune) Input { return Input{Sym: SymChar, Rune: r} }

func (in Input) String() string {
	if in.Sym == SymChar {
		return "char(" + string(in.Rune) + ")"
	}
	return in.Sym.String()
}

// --- Edit Buffer Alphabet ---

// Category is a class of characters the edit buffer accepts.
type Category struct {
	Name  string
	Match func(rune) bool
}

// AcceptedCategories is the full edit alphabet: a-z, 0-9 and space.
var AcceptedCategories = []Category{
	{Name: "digit", Match: func(r rune) bool { return r >= '0' && r <= '9' }},
	{Name: "lowercase letter", Match: func(r rune) bool { return r >= 'a' && r <= 'z' }},
	{Name: "space", Match: func(r rune) bool { return r == ' ' }},
}

// Accepts reports whether r may be appended to an edit buffer.
func Accepts(r rune) bool {
	if r > unicode.MaxASCII {
		return false
	}
	for _, c := range AcceptedCategories {
		if c.Match(r) {
			return true
		}
	}
	return false
}
