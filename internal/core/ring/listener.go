package ring

// Listener receives progress and animation lifecycle callbacks.
type Listener interface {
	OnProgressValue(value float32)
	OnProgressStart()
	OnProgressPause()
	OnProgressResume()
	OnProgressEnd()
}

// ListenerFuncs adapts optional functions to a Listener.
type ListenerFuncs struct {
	Value  func(value float32)
	Start  func()
	Pause  func()
	Resume func()
	End    func()
}

// OnProgressValue calls Value if set.
func (funcs ListenerFuncs) OnProgressValue(value float32) {
	if funcs.Value != nil {
		funcs.Value(value)
	}
}

// OnProgressStart calls Start if set.
func (funcs ListenerFuncs) OnProgressStart() {
	if funcs.Start != nil {
		funcs.Start()
	}
}

// OnProgressPause calls Pause if set.
func (funcs ListenerFuncs) OnProgressPause() {
	if funcs.Pause != nil {
		funcs.Pause()
	}
}

// OnProgressResume calls Resume if set.
func (funcs ListenerFuncs) OnProgressResume() {
	if funcs.Resume != nil {
		funcs.Resume()
	}
}

// OnProgressEnd calls End if set.
func (funcs ListenerFuncs) OnProgressEnd() {
	if funcs.End != nil {
		funcs.End()
	}
}
