package epool_test

import (
	"testing"

	ep "github.com/Andrej220/go-utils/epool"
)

func intEq(a, b int) bool { return a == b }
func intCmp(a, b int) int { return a - b }

func listOf(elems ...int) *ep.List[int] {
	l := ep.NewList[int]()
	for _, e := range elems {
		l.PushBack(e)
	}
	return l
}

func TestListPushPopSemantics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(t *testing.T)
	}{
		{"FifoBackToFront", func(t *testing.T) {
			l := listOf(1, 2, 3)
			for want := 1; want <= 3; want++ {
				got, ok := l.PopFront()
				if !ok || got != want {
					t.Fatalf("PopFront = %d,%v; want %d,true", got, ok, want)
				}
			}
			if _, ok := l.PopFront(); ok {
				t.Fatal("PopFront on empty list reported ok")
			}
		}},
		{"FifoFrontToBack", func(t *testing.T) {
			l := ep.NewList[int]()
			l.PushFront(1)
			l.PushFront(2)
			l.PushFront(3)
			for want := 1; want <= 3; want++ {
				got, ok := l.PopBack()
				if !ok || got != want {
					t.Fatalf("PopBack = %d,%v; want %d,true", got, ok, want)
				}
			}
		}},
		{"LenTracksPushesMinusPops", func(t *testing.T) {
			l := ep.NewList[int]()
			for i := 0; i < 10; i++ {
				l.PushBack(i)
			}
			if l.Len() != 10 {
				t.Fatalf("Len = %d; want 10", l.Len())
			}
			for i := 0; i < 4; i++ {
				l.PopFront()
			}
			l.PopBack()
			if l.Len() != 5 {
				t.Fatalf("Len = %d; want 5", l.Len())
			}
			l.Clear()
			if l.Len() != 0 || !l.IsEmpty() {
				t.Fatalf("after Clear: Len = %d, IsEmpty = %v", l.Len(), l.IsEmpty())
			}
		}},
		{"MixedEnds", func(t *testing.T) {
			l := ep.NewList[int]()
			l.PushBack(2)
			l.PushFront(1)
			l.PushBack(3)
			got := l.ToSlice()
			want := []int{1, 2, 3}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("ToSlice = %v; want %v", got, want)
				}
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.fn)
	}
}

func TestListPeeks(t *testing.T) {
	l := ep.NewList[int]()
	if _, ok := l.Front(); ok {
		t.Fatal("Front on empty list reported ok")
	}
	if l.FrontRef() != nil || l.BackRef() != nil {
		t.Fatal("refs on empty list must be nil")
	}

	l.PushBack(1)
	l.PushBack(2)

	if v, _ := l.Front(); v != 1 {
		t.Fatalf("Front = %d; want 1", v)
	}
	if v, _ := l.Back(); v != 2 {
		t.Fatalf("Back = %d; want 2", v)
	}

	*l.FrontRef() = 10
	*l.BackRef() = 20
	if v, _ := l.Front(); v != 10 {
		t.Fatalf("Front after ref mutation = %d; want 10", v)
	}
	if l.Len() != 2 {
		t.Fatalf("peeks must not remove: Len = %d", l.Len())
	}
}

func TestListIterators(t *testing.T) {
	l := listOf(1, 2, 3, 4)

	it := l.Iter()
	if it.Remaining() != 4 {
		t.Fatalf("Remaining = %d; want 4", it.Remaining())
	}
	for want := 1; want <= 4; want++ {
		got, ok := it.Next()
		if !ok || got != want {
			t.Fatalf("Next = %d,%v; want %d,true", got, ok, want)
		}
	}
	if _, ok := it.Next(); ok || it.Remaining() != 0 {
		t.Fatal("exhausted iterator still yields")
	}

	rev := l.Iter()
	for want := 4; want >= 1; want-- {
		got, ok := rev.Prev()
		if !ok || got != want {
			t.Fatalf("Prev = %d,%v; want %d,true", got, ok, want)
		}
	}

	// Mixed traversal visits each element at most once.
	mix := l.Iter()
	a, _ := mix.Next()
	b, _ := mix.Prev()
	c, _ := mix.Next()
	d, _ := mix.Prev()
	if a != 1 || b != 4 || c != 2 || d != 3 {
		t.Fatalf("mixed traversal = %d,%d,%d,%d; want 1,4,2,3", a, b, c, d)
	}
	if _, ok := mix.Next(); ok {
		t.Fatal("mixed traversal yielded an element twice")
	}
}

func TestListDrain(t *testing.T) {
	l := listOf(1, 2, 3)
	d := l.Drain()

	if v, _ := d.Next(); v != 1 {
		t.Fatalf("Drain.Next = %d; want 1", v)
	}
	if v, _ := d.Prev(); v != 3 {
		t.Fatalf("Drain.Prev = %d; want 3", v)
	}
	if d.Remaining() != 1 || l.Len() != 1 {
		t.Fatalf("Remaining = %d, Len = %d; want 1, 1", d.Remaining(), l.Len())
	}
	d.Next()
	if !l.IsEmpty() {
		t.Fatal("Drain did not empty the list")
	}
}

func TestCursorGhostCycle(t *testing.T) {
	l := listOf(10, 20, 30)
	c := l.Cursor()

	if _, ok := c.Index(); ok {
		t.Fatal("fresh cursor must start at the ghost position")
	}

	// len moves land on every element in order.
	for i := 0; i < l.Len(); i++ {
		c.MoveNext()
		idx, ok := c.Index()
		if !ok || idx != i {
			t.Fatalf("Index after move %d = %d,%v; want %d,true", i+1, idx, ok, i)
		}
	}

	// Move len+1 parks on the ghost, one more re-enters at index 0.
	c.MoveNext()
	if cur := c.Current(); cur != nil {
		t.Fatalf("Current at ghost = %v; want nil", *cur)
	}
	if _, ok := c.Index(); ok {
		t.Fatal("Index at ghost must be absent")
	}
	c.MoveNext()
	if idx, ok := c.Index(); !ok || idx != 0 {
		t.Fatalf("Index after ghost = %d,%v; want 0,true", idx, ok)
	}
}

func TestCursorMovePrevAndPeeks(t *testing.T) {
	l := listOf(10, 20, 30)
	c := l.Cursor()

	// MovePrev from the ghost enters at the back.
	c.MovePrev()
	if idx, ok := c.Index(); !ok || idx != 2 {
		t.Fatalf("Index = %d,%v; want 2,true", idx, ok)
	}
	if v, ok := c.PeekPrev(); !ok || v != 20 {
		t.Fatalf("PeekPrev = %d,%v; want 20,true", v, ok)
	}
	if _, ok := c.PeekNext(); ok {
		t.Fatal("PeekNext past the back must report absent")
	}

	c.MovePrev()
	c.MovePrev()
	if idx, _ := c.Index(); idx != 0 {
		t.Fatalf("Index = %d; want 0", idx)
	}
	if v, ok := c.PeekNext(); !ok || v != 20 {
		t.Fatalf("PeekNext = %d,%v; want 20,true", v, ok)
	}

	// Walking off the front parks on the ghost again.
	c.MovePrev()
	if _, ok := c.Index(); ok {
		t.Fatal("cursor must be at ghost after walking off the front")
	}

	// Cursor mutation writes through to the list.
	c.MoveNext()
	*c.Current() = 11
	if v, _ := l.Front(); v != 11 {
		t.Fatalf("Front after cursor write = %d; want 11", v)
	}
}

func TestListEqualCompare(t *testing.T) {
	a := listOf(1, 2, 3)
	b := listOf(1, 2, 3)
	c := listOf(1, 2)
	d := listOf(1, 2, 4)

	if !a.Equal(b, intEq) {
		t.Fatal("equal lists reported unequal")
	}
	if a.Equal(c, intEq) || a.Equal(d, intEq) {
		t.Fatal("unequal lists reported equal")
	}

	if got := a.Compare(b, intCmp); got != 0 {
		t.Fatalf("Compare(equal) = %d; want 0", got)
	}
	if got := a.Compare(c, intCmp); got <= 0 {
		t.Fatalf("Compare(longer vs prefix) = %d; want > 0", got)
	}
	if got := a.Compare(d, intCmp); got >= 0 {
		t.Fatalf("Compare(3 vs 4) = %d; want < 0", got)
	}
}

func TestListExtend(t *testing.T) {
	l := listOf(1)
	src := []int{2, 3}
	i := 0
	l.Extend(func() (int, bool) {
		if i == len(src) {
			return 0, false
		}
		v := src[i]
		i++
		return v, true
	})
	if !l.Equal(listOf(1, 2, 3), intEq) {
		t.Fatalf("Extend result = %v", l.ToSlice())
	}
}
