package ui

// FocusManager tracks and rotates keyboard focus across named regions.
// Regions are identified by stable string IDs (e.g. "controls", "tabs",
// "console"); Order defines the tab rotation.
type FocusManager struct {
	Current  string
	Order    []string
	OnChange func(from, to string)
}

// Next advances focus to the next region in order and returns its ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	from := f.Current
	f.Current = f.Order[(idx+1)%len(f.Order)]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}

// Prev advances focus to the previous region in order and returns its ID.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.indexOf(f.Current) - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	from := f.Current
	f.Current = f.Order[idx]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}

// SetFocus moves focus to the given region ID.
// Returns false if the ID is not in the rotation order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			from := f.Current
			f.Current = id
			if f.OnChange != nil && from != id {
				f.OnChange(from, id)
			}
			return true
		}
	}
	return false
}

// Focused reports whether the given region currently owns focus.
func (f *FocusManager) Focused(id string) bool {
	return f.Current == id
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
