package nav

// Screen is a node of the navigation state machine.
type Screen int

const (
	Home Screen = iota
	Servers
	ServerDetail
	ServerEdit
	ModList
	ModDetail
	ModEdit
)

var screenNames = [...]string{
	Home:         "Home",
	Servers:      "Servers",
	ServerDetail: "Server Detail",
	ServerEdit:   "Server Edit",
	ModList:      "Server Mods",
	ModDetail:    "Mod Detail",
	ModEdit:      "Mod Edit",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "Unknown"
	}
	return screenNames[s]
}

// Parent is the screen Back leads to. Home and Servers have none.
func (s Screen) Parent() (Screen, bool) {
	switch s {
	case ServerDetail:
		return Servers, true
	case ServerEdit, ModList:
		return ServerDetail, true
	case ModDetail:
		return ModList, true
	case ModEdit:
		return ModDetail, true
	}
	return s, false
}
