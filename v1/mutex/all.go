package mutex

// LockAll locks every member of ms in slice order and runs f with their
// data in the same order. Members are released in reverse order. With an
// empty slice f runs immediately with an empty slice.
func LockAll[T any](ms []Mutex[T], f func(data []*T)) {
	held := make([]*T, 0, len(ms))
	var step func(i int)
	step = func(i int) {
		if i == len(ms) {
			f(held)
			return
		}
		ms[i].Lock(func(data *T) {
			held = append(held, data)
			step(i + 1)
		})
	}
	step(0)
}
