package nav

// Cursor indexes an ordered collection. None marks an empty collection.
type Cursor int

// None is the cursor of an empty collection.
const None Cursor = -1

// First returns 0 for a non-empty collection, otherwise None.
func First(n int) Cursor {
	if n > 0 {
		return 0
	}
	return None
}

// Valid reports whether c addresses an element.
func (c Cursor) Valid() bool { return c >= 0 }

// Index returns c as a slice index. Callers check Valid first.
func (c Cursor) Index() int { return int(c) }

// Clamp forces c into [0,n), or None when n is 0.
func (c Cursor) Clamp(n int) Cursor {
	switch {
	case n <= 0:
		return None
	case c < 0:
		return 0
	case int(c) >= n:
		return Cursor(n - 1)
	}
	return c
}

// Next moves forward with wraparound.
func (c Cursor) Next(n int) Cursor {
	if n <= 0 {
		return None
	}
	c = c.Clamp(n)
	return Cursor((int(c) + 1) % n)
}

// Prev moves backward with wraparound.
func (c Cursor) Prev(n int) Cursor {
	if n <= 0 {
		return None
	}
	c = c.Clamp(n)
	return Cursor((int(c) - 1 + n) % n)
}

// AfterAdd keeps the cursor on its element; an empty list's cursor lands on the new one.
func (c Cursor) AfterAdd() Cursor {
	if !c.Valid() {
		return 0
	}
	return c
}

// AfterDelete returns the cursor after removing the element at c, given the new length.
func (c Cursor) AfterDelete(n int) Cursor {
	if c > 0 {
		return (c - 1).Clamp(n)
	}
	return First(n)
}
