package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("empty frame reports ActionUp")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)
	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("set actions not reported")
	}

	f.SetAxis(0.5, -0.5)
	if !f.HasAxis {
		t.Error("HasAxis not set after SetAxis")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionPause) {
		t.Error("actions survive Clear")
	}
	if f.HasAxis || !f.Axis.IsZero() {
		t.Error("axis survives Clear")
	}
}

func TestInputFrameSetOnZeroValue(t *testing.T) {
	var f InputFrame // nil map
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero-value frame did not register")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.SetAxis(1, 0)

	clone := f.Clone()
	clone.Set(ActionDown)
	clone.Clear()

	if !f.Has(ActionRight) || !f.HasAxis {
		t.Error("mutating the clone changed the original")
	}
}

func TestDigitalVec(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    Vec
	}{
		{"none", nil, Vec{}},
		{"right", []Action{ActionRight}, Vec{X: 1}},
		{"up", []Action{ActionUp}, Vec{Y: -1}},
		{"diagonal", []Action{ActionLeft, ActionDown}, Vec{X: -1, Y: 1}},
		{"opposites cancel", []Action{ActionLeft, ActionRight}, Vec{}},
		{"vertical cancel", []Action{ActionUp, ActionDown, ActionRight}, Vec{X: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tt.actions {
				f.Set(a)
			}
			if got := f.DigitalVec(); got != tt.want {
				t.Errorf("DigitalVec() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
