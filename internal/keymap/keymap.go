package keymap

// Binding contexts.
const (
	ContextMenu = "menu" // one-letter console menu commands
	ContextView = "view" // terminal view keys
)

// Binding maps keys to an action in a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings. Menu bindings are listed in the order
// the menu prints them.
var Bindings = []Binding{
	// Console menu
	{ActionPlayCurrent, []string{"F"}, "Play current song", ContextMenu},
	{ActionNextSong, []string{"N"}, "Play next song", ContextMenu},
	{ActionPrevSong, []string{"P"}, "Play previous song", ContextMenu},
	{ActionAddAndPlay, []string{"A"}, "Add and play a new song at current location", ContextMenu},
	{ActionEraseCurrent, []string{"E"}, "Erase the song at current location", ContextMenu},
	{ActionShow, []string{"S"}, "Show the current playlist", ContextMenu},
	{ActionQuit, []string{"Q"}, "Quit", ContextMenu},

	// Terminal view
	{ActionPlayCurrent, []string{"f", "enter"}, "Play current", ContextView},
	{ActionNextSong, []string{"n", "pgdown", "down"}, "Next", ContextView},
	{ActionPrevSong, []string{"p", "pgup", "up"}, "Previous", ContextView},
	{ActionAddAndPlay, []string{"a"}, "Add", ContextView},
	{ActionEraseCurrent, []string{"e", "d", "delete"}, "Erase", ContextView},
	{ActionMoveUp, []string{"K", "shift+up"}, "Move song up", ContextView},
	{ActionMoveDown, []string{"J", "shift+down"}, "Move song down", ContextView},
	{ActionToggleRanked, []string{"r"}, "Toggle ranking order", ContextView},
	{ActionUndo, []string{"ctrl+z"}, "Undo", ContextView},
	{ActionRedo, []string{"ctrl+y"}, "Redo", ContextView},
	{ActionHelp, []string{"?"}, "Show key bindings", ContextView},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextView},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
