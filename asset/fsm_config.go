package asset

// DefaultScreenFSMConfig is the screen flow of the game
// Overridden at runtime by the file named in config key "screens"
//
// Triggers available to a screen graph:
//   - "Tick": evaluated every frame after on_update
//   - "EventConfirm": confirm key pressed this frame
//   - "EventPointScored": a point was scored this frame and no tick transition fired,
//     unused here, e.g. target a serve screen between points
//
// Actions: StartMatch, StepMatch, AnnounceWinner. Guards: MatchFinished, StateTimeExceeds{ms}
const DefaultScreenFSMConfig = `
initial = "Menu"

# --- TITLE ---

[states.Menu]
transitions = [
    { trigger = "EventConfirm", target = "Ingame" },
]

# --- MATCH ---

[states.Ingame]
on_enter = [
    { action = "StartMatch" },
]
on_update = [
    { action = "StepMatch" },
]
transitions = [
    { trigger = "Tick", target = "End", guard = "MatchFinished" },
]

# --- RESULT ---

[states.End]
on_enter = [
    { action = "AnnounceWinner" },
]
transitions = [
    { trigger = "EventConfirm", target = "Menu" },
]
`
