package shortest

// entry is a frontier item: a city and the tentative distance it was pushed with.
type entry struct {
	city int
	dist int64
}

// frontier is a min-heap of entries ordered by dist, for use with container/heap.
// Ties are broken arbitrarily.
type frontier []entry

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(entry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]
	return e
}
