package fpsticker

func (t *Ticker) evictOldest() {
	if t.window.Len() != 0 {
		t.window.PopFront()
		t.evictions++
	}
}
