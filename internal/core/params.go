package core

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim,
// in display order.
type ParameterSnapshot struct {
	Params []Parameter
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters. Implementations report whether the key was recognized.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// ParameterProvider exposes a snapshot of the sim's tunables.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
