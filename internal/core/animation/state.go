package animation

// State represents the current Animator mode.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// Hooks receive animation output. Both are optional.
type Hooks struct {
	// OnValue is called with the interpolated value on every tick.
	OnValue func(value float32)
	// OnEnd is called once when a run reaches its target naturally.
	OnEnd func()
}
