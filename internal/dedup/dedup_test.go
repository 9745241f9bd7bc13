package dedup

import "testing"

func TestSetAdd(t *testing.T) {
	s := NewSet()

	if !s.Add("https://www.linkedin.com/jobs/view/1") {
		t.Error("first Add should report a new URL")
	}
	if s.Add("https://www.linkedin.com/jobs/view/1") {
		t.Error("second Add of the same URL should report a duplicate")
	}
	if !s.Add("https://www.linkedin.com/jobs/view/2") {
		t.Error("a different URL should still be new")
	}
	if s.Len() != 2 {
		t.Errorf("got Len %d, want 2", s.Len())
	}
}
