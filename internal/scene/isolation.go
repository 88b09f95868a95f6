package scene

// PlanIsolation computes the objects to hide so a render shows only the
// target graph plus lighting. The keep-set is the targets, their ancestors
// and descendants, every light and every light's ancestors; the returned
// hide-set is every other object that is currently visible, so a caller can
// restore visibility unconditionally afterward.
func PlanIsolation(targets, all []*Object) []*Object {
	keep := make(map[*Object]bool)

	markWithAncestors := func(o *Object) {
		for p := o; p != nil; p = p.Parent {
			keep[p] = true
		}
	}

	for _, t := range targets {
		markWithAncestors(t)
		markDescendants(t, keep)
	}
	for _, o := range all {
		if o.Light {
			markWithAncestors(o)
		}
	}

	var hide []*Object
	for _, o := range all {
		if o.Visible && !keep[o] {
			hide = append(hide, o)
		}
	}
	return hide
}

func markDescendants(o *Object, keep map[*Object]bool) {
	keep[o] = true
	for _, c := range o.Children {
		markDescendants(c, keep)
	}
}

// Isolate hides everything PlanIsolation selects and returns a restore
// function. The caller must defer it so visibility comes back on every exit
// path, including render or write failures.
func Isolate(targets, all []*Object) (restore func()) {
	hidden := PlanIsolation(targets, all)
	for _, o := range hidden {
		o.Visible = false
	}
	return func() {
		for _, o := range hidden {
			o.Visible = true
		}
	}
}
