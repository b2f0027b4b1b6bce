package agent

// mockRandom replays fixed draws and records how many were taken.
type mockRandom struct {
	floats []float64
	ints   []int
	draws  int
}

func (m *mockRandom) Float64() float64 {
	m.draws++
	if len(m.floats) == 0 {
		return 0.99
	}
	f := m.floats[0]
	m.floats = m.floats[1:]
	return f
}

func (m *mockRandom) Intn(n int) int {
	m.draws++
	if len(m.ints) == 0 {
		return 0
	}
	i := m.ints[0] % n
	m.ints = m.ints[1:]
	return i
}
