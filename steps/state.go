package steps

// State is an ordered log of Steps with a movable cursor.
type State struct {
	steps  []Step
	cursor int
}

// NewState returns an empty State with the cursor at -1.
func NewState() *State {
	return &State{cursor: -1}
}

// Add appends a deep copy of step and moves the cursor onto it.
func (st *State) Add(step Step) {
	st.steps = append(st.steps, step.Clone())
	st.cursor = len(st.steps) - 1
}

// Len returns the number of recorded steps.
func (st *State) Len() int {
	return len(st.steps)
}

// Cursor returns the index of the current step, -1 when empty.
func (st *State) Cursor() int {
	return st.cursor
}

// Current returns the step under the cursor.
func (st *State) Current() (Step, bool) {
	return st.At(st.cursor)
}

// Next advances the cursor and returns the new current step. At the last
// index it returns ok=false and leaves the cursor where it is.
func (st *State) Next() (Step, bool) {
	if st.cursor >= len(st.steps)-1 {
		return Step{}, false
	}
	st.cursor++
	return st.steps[st.cursor].Clone(), true
}

// Previous moves the cursor back one step. At index 0 (or on an empty
// State) it returns ok=false and leaves the cursor where it is.
func (st *State) Previous() (Step, bool) {
	if st.cursor <= 0 {
		return Step{}, false
	}
	st.cursor--
	return st.steps[st.cursor].Clone(), true
}

// Reset moves the cursor to the first recorded step without discarding
// history. On an empty State it does nothing and the cursor stays at -1.
func (st *State) Reset() {
	if len(st.steps) == 0 {
		return
	}
	st.cursor = 0
}

// Seek moves the cursor to index i. It returns false, leaving the cursor
// unchanged, when i is out of range.
func (st *State) Seek(i int) bool {
	if i < 0 || i >= len(st.steps) {
		return false
	}
	st.cursor = i
	return true
}

// At returns a copy of the step at index i without moving the cursor.
func (st *State) At(i int) (Step, bool) {
	if i < 0 || i >= len(st.steps) {
		return Step{}, false
	}
	return st.steps[i].Clone(), true
}

// Last returns the final recorded step without moving the cursor.
func (st *State) Last() (Step, bool) {
	return st.At(len(st.steps) - 1)
}

// Done reports whether the cursor rests on the last step.
func (st *State) Done() bool {
	return len(st.steps) > 0 && st.cursor == len(st.steps)-1
}

// Drain advances the cursor to the end and returns the last step. It is the
// "peek at the final result" pattern: repeated Next until exhausted.
func (st *State) Drain() (Step, bool) {
	for {
		if _, ok := st.Next(); !ok {
			break
		}
	}
	return st.Current()
}

// Steps returns copies of every recorded step in order.
func (st *State) Steps() []Step {
	out := make([]Step, len(st.steps))
	for i := range st.steps {
		out[i] = st.steps[i].Clone()
	}
	return out
}
