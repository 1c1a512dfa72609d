package authz

import "testing"

type resource struct{ owner uint }

func (r resource) OwnerID() uint { return r.owner }

func TestCan(t *testing.T) {
	res := resource{owner: 7}

	for _, action := range []Action{ActionView, ActionUpdate, ActionDelete} {
		if !Can(7, action, res) {
			t.Errorf("owner denied %s", action)
		}
		if Can(8, action, res) {
			t.Errorf("non-owner allowed %s", action)
		}
	}
}
