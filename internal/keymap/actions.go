// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Playback actions
	ActionPlayCurrent Action = "play_current"
	ActionNextSong    Action = "next_song"
	ActionPrevSong    Action = "prev_song"

	// Playlist mutations
	ActionAddAndPlay   Action = "add_and_play"
	ActionEraseCurrent Action = "erase_current"
	ActionMoveUp       Action = "move_up"
	ActionMoveDown     Action = "move_down"
	ActionUndo         Action = "undo" // ctrl+z
	ActionRedo         Action = "redo" // ctrl+y

	// Display
	ActionShow         Action = "show"
	ActionToggleRanked Action = "toggle_ranked" // ranking order instead of play order
	ActionHelp         Action = "help"

	ActionQuit Action = "quit"
)
